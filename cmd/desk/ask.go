package main

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"
)

func newAskCommand() *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Usage:     "Ask a question and store the generated answer",
		ArgsUsage: "<question...>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format: text, json, html"},
			&cli.BoolFlag{Name: "no-color", Usage: "Disable colored text output"},
		},
		Action: askAction,
	}
}

func askAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	q, err := store.Generate(ctx, strings.Join(cmd.Args().Slice(), " "))
	if err != nil {
		return err
	}

	if err := store.Save(cfg.StorePath()); err != nil {
		return err
	}

	return writeQuestion(cmd, q, renderOptions(cmd, cfg))
}
