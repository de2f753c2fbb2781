package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/desk/internal/config"
)

const configFilename = "desk.toml"

func newInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a starter desk.toml in the current directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Overwrite an existing desk.toml"},
		},
		Action: initAction,
	}
}

func initAction(_ context.Context, cmd *cli.Command) error {
	dir, err := os.Getwd()
	if err != nil {
		return oops.Wrapf(err, "getting working directory")
	}

	path := filepath.Join(dir, configFilename)
	if _, statErr := os.Stat(path); statErr == nil && !cmd.Bool("force") {
		return oops.
			Code("CONFIG_EXISTS").
			With("path", path).
			Hint("Pass --force to overwrite it").
			Errorf("%s already exists", configFilename)
	} else if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return oops.Wrapf(statErr, "checking %q", path)
	}

	if err := os.WriteFile(path, []byte(config.Starter), 0o644); err != nil {
		return oops.
			Code("CONFIG_WRITE_ERROR").
			With("path", path).
			Wrapf(err, "writing %s", configFilename)
	}

	_, _ = fmt.Fprintf(stderr(cmd), "created %s\n", path)
	return nil
}
