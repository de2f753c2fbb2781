package main

import (
	"context"
	"fmt"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/desk/internal/question"
	"github.com/g5becks/desk/internal/render"
)

func newShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a question and its structured answer",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format: text, json, html"},
			&cli.BoolFlag{Name: "no-color", Usage: "Disable colored text output"},
		},
		Action: showAction,
	}
}

func showAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: desk show <id>").
			Errorf("expected 1 argument, got %d", cmd.Args().Len())
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	id := cmd.Args().First()
	q, ok := store.Get(id)
	if !ok {
		return question.NotFound(id)
	}

	return writeQuestion(cmd, q, renderOptions(cmd, cfg))
}

// writeQuestion prints the question heading, then its answer. JSON output
// is the answer tree alone.
func writeQuestion(cmd *cli.Command, q question.Question, opts render.Options) error {
	out := stdout(cmd)

	if opts.Format == render.FormatText || opts.Format == "" {
		_, _ = fmt.Fprintf(out, "#%s %s\n", q.ID, q.Question)
		_, _ = fmt.Fprintf(out, "%s · %s\n\n", q.Status, q.Timestamp.Local().Format("2006-01-02 15:04"))
	}

	return render.Write(out, q.Sections(), opts)
}
