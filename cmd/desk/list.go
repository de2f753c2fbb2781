package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/g5becks/desk/internal/ui"
)

func newListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List stored questions one page at a time",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "Only show questions containing this text"},
			&cli.IntFlag{Name: "page", Aliases: []string{"p"}, Usage: "Page to show", Value: 1},
			&cli.BoolFlag{Name: "json", Usage: "Emit JSON output"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Show feedback column"},
		},
		Action: listAction,
	}
}

func listAction(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	store.SetSearchTerm(cmd.String("query"))
	store.SetCurrentPage(int(cmd.Int("page")))

	return ui.RenderQuestionPage(stdout(cmd), store.Page(), ui.ListOptions{
		JSON:    cmd.Bool("json"),
		Verbose: cmd.Bool("verbose"),
	})
}
