package main

import (
	"context"
	"fmt"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/desk/internal/question"
)

const rateArgs = 2

func newRateCommand() *cli.Command {
	return &cli.Command{
		Name:      "rate",
		Usage:     "Rate an answer as helpful or not helpful",
		ArgsUsage: "<id> <helpful|not-helpful>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "comment", Aliases: []string{"m"}, Usage: "Attach a comment to the rating"},
		},
		Action: rateAction,
	}
}

func rateAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != rateArgs {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: desk rate <id> <helpful|not-helpful>").
			Errorf("expected %d arguments, got %d", rateArgs, cmd.Args().Len())
	}

	id := cmd.Args().Get(0)
	rating, ok := question.ParseRating(cmd.Args().Get(1))
	if !ok {
		return oops.
			Code("INVALID_ARGS").
			With("rating", cmd.Args().Get(1)).
			Hint("Use helpful or not-helpful").
			Errorf("unknown rating %q", cmd.Args().Get(1))
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	var comment *string
	if cmd.IsSet("comment") {
		text := cmd.String("comment")
		comment = &text
	}

	if _, err := store.SetFeedback(id, &rating, comment); err != nil {
		return err
	}

	if err := store.Save(cfg.StorePath()); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(stderr(cmd), "rated #%s %s\n", id, rating)
	return nil
}
