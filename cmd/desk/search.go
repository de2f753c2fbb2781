package main

import (
	"context"
	"strings"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/desk/internal/search"
	"github.com/g5becks/desk/internal/ui"
)

const defaultSearchLimit = 10

func newSearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Fuzzy search questions, section titles and topics",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "Max results (0 = unlimited)", Value: defaultSearchLimit},
			&cli.BoolFlag{Name: "json", Usage: "Output as JSON"},
		},
		Action: searchAction,
	}
}

func searchAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: desk search <query>").
			Errorf("expected a search query")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	results, err := search.Questions(store.All(), search.Options{
		Query: strings.Join(cmd.Args().Slice(), " "),
		Limit: int(cmd.Int("limit")),
	})
	if err != nil {
		return err
	}

	return ui.RenderSearchResults(stdout(cmd), results, cmd.Bool("json"))
}
