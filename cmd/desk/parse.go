package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/g5becks/desk/internal/answer"
	"github.com/g5becks/desk/internal/config"
	"github.com/g5becks/desk/internal/render"
	"github.com/g5becks/desk/internal/source"
)

func newParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse structured answers from files, globs, URLs or stdin",
		ArgsUsage: "[ref...]",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format: text, json, html"},
			&cli.BoolFlag{Name: "no-color", Usage: "Disable colored text output"},
			&cli.BoolFlag{Name: "stats", Usage: "Print node counts after each answer"},
		},
		Action: parseAction,
	}
}

func parseAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	refs := cmd.Args().Slice()
	if len(refs) == 0 {
		refs = []string{"-"}
	}

	loader := source.NewLoader()
	defer loader.Close()

	var docs []source.Document
	for _, ref := range refs {
		loaded, loadErr := loader.Load(ctx, ref)
		if loadErr != nil {
			return loadErr
		}
		docs = append(docs, loaded...)
	}

	opts := renderOptions(cmd, cfg)
	out := stdout(cmd)

	for i, doc := range docs {
		if len(docs) > 1 && opts.Format == render.FormatText {
			if i > 0 {
				_, _ = fmt.Fprintln(out)
			}
			_, _ = fmt.Fprintf(out, "==> %s <==\n", doc.Name)
		}

		sections := answer.Parse(doc.Content)
		if err := render.Write(out, sections, opts); err != nil {
			return err
		}

		if cmd.Bool("stats") {
			printStats(stderr(cmd), doc.Name, answer.Summarize(sections))
		}
	}

	return nil
}

func renderOptions(cmd *cli.Command, cfg *config.Config) render.Options {
	format := cfg.Format
	if cmd.IsSet("format") {
		format = cmd.String("format")
	}

	return render.Options{
		Format: format,
		Color:  cfg.Color && !cmd.Bool("no-color") && isTerminal(stdout(cmd)),
	}
}

func printStats(w io.Writer, name string, stats answer.Stats) {
	_, _ = fmt.Fprintf(w, "%s: %d section(s), %d text, %d bullet(s), %d nested, %d point(s)\n",
		name, stats.Sections, stats.Text, stats.Bullets, stats.Nested, stats.Points)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
