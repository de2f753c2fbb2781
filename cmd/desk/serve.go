package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/g5becks/desk/internal/server"
)

func newServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the question store and parser over HTTP",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "addr", Aliases: []string{"a"}, Usage: "Listen address (default from config)"},
			&cli.BoolFlag{Name: "read-only", Usage: "Do not save changes to the store file"},
		},
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr
	if cmd.IsSet("addr") {
		addr = cmd.String("addr")
	}

	opts := server.Options{PerPage: cfg.PerPage}
	if !cmd.Bool("read-only") {
		opts.StorePath = cfg.StorePath()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(store, server.NewLogger(os.Stdout, cfg.Server.LogLevel), opts)
	return srv.ListenAndServe(ctx, addr)
}
