package config

import (
	"errors"
	"net"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
)

const (
	DefaultStore    = ".desk/questions.json"
	DefaultPerPage  = 5
	DefaultParallel = 3
	DefaultFormat   = "text"
	DefaultAddr     = ":8080"
	DefaultLogLevel = "info"
)

type Config struct {
	Store     string `koanf:"store"     validate:"required"`
	PerPage   int    `koanf:"per_page"  validate:"min=1,max=100"`
	Parallel  int    `koanf:"parallel"  validate:"min=1,max=32"`
	Format    string `koanf:"format"    validate:"oneof=text json html"`
	Color     bool   `koanf:"color"`
	Server    Server `koanf:"server"`
	ConfigDir string `koanf:"-"`
}

type Server struct {
	Addr     string `koanf:"addr"      validate:"listen_addr"`
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`
}

func Default() *Config {
	return &Config{
		Store:    DefaultStore,
		PerPage:  DefaultPerPage,
		Parallel: DefaultParallel,
		Format:   DefaultFormat,
		Color:    true,
		Server: Server{
			Addr:     DefaultAddr,
			LogLevel: DefaultLogLevel,
		},
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("listen_addr", func(fl validator.FieldLevel) bool {
		return isValidListenAddr(fl.Field().String())
	})

	return v
}

func (c *Config) ApplyDefaults() {
	if c.Store == "" {
		c.Store = DefaultStore
	}

	if c.PerPage == 0 {
		c.PerPage = DefaultPerPage
	}

	if c.Parallel == 0 {
		c.Parallel = DefaultParallel
	}

	if c.Format == "" {
		c.Format = DefaultFormat
	}

	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}

	c.Server.LogLevel = strings.ToLower(c.Server.LogLevel)
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = DefaultLogLevel
	}
}

func (c *Config) Validate() error {
	valErr := newValidator().Struct(c)
	if valErr == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(valErr, &validationErrors) {
		return oops.
			Code("CONFIG_INVALID").
			Wrapf(valErr, "validating config")
	}

	return mapValidationError(c, validationErrors[0])
}

func mapValidationError(c *Config, fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())

	switch {
	case field == "perpage":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "per_page").
			With("value", c.PerPage).
			Hint("Set per_page between 1 and 100").
			Errorf("invalid per_page %d", c.PerPage)

	case field == "parallel":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "parallel").
			With("value", c.Parallel).
			Hint("Set parallel between 1 and 32").
			Errorf("invalid parallel %d", c.Parallel)

	case fe.Tag() == "oneof" && field == "format":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "format").
			With("value", c.Format).
			Hint("Supported formats: text, json, html").
			Errorf("unknown output format %q", c.Format)

	case fe.Tag() == "listen_addr":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "server.addr").
			With("value", c.Server.Addr).
			Hint("Expected address format: host:port or :port").
			Errorf("invalid server address %q", c.Server.Addr)

	case fe.Tag() == "oneof" && field == "loglevel":
		return oops.
			Code("CONFIG_INVALID").
			With("field", "server.log_level").
			With("value", c.Server.LogLevel).
			Hint("Supported levels: debug, info, warn, error").
			Errorf("unknown log level %q", c.Server.LogLevel)

	default:
		return oops.
			Code("CONFIG_INVALID").
			With("field", field).
			With("tag", fe.Tag()).
			Errorf("validation failed for field %q", field)
	}
}

// StorePath is the question store file, absolute once the config is loaded.
func (c *Config) StorePath() string {
	return c.Store
}

func (c *Config) resolveStore() {
	if !filepath.IsAbs(c.Store) {
		c.Store = filepath.Clean(filepath.Join(c.ConfigDir, c.Store))
	}
}

func isValidListenAddr(addr string) bool {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return false
	}

	n, err := strconv.Atoi(port)
	return err == nil && n >= 0 && n <= 65535
}

// Starter is the file written by 'desk init'.
const Starter = `# desk configuration

# Question store, relative to this file.
store = ".desk/questions.json"

# Questions per page for 'desk list'.
per_page = 5

# Sources loaded at once by 'desk import'.
parallel = 3

# Answer output: text, json or html.
format = "text"
color = true

[server]
addr = ":8080"
log_level = "info"
`
