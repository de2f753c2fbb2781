package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/desk/internal/ingest"
	"github.com/g5becks/desk/internal/question"
	"github.com/g5becks/desk/internal/source"
	"github.com/g5becks/desk/internal/ui"
)

func newImportCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import answers from files, globs or URLs as questions",
		ArgsUsage: "<ref...>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{Name: "parallel", Aliases: []string{"p"}, Usage: "Maximum sources loaded at once (0 = config value)"},
			&cli.StringFlag{Name: "status", Usage: "Status of imported questions: answered, pending, reviewed", Value: string(question.StatusAnswered)},
		},
		Action: importAction,
	}
}

func importAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: desk import <ref...>").
			Errorf("expected at least one source")
	}

	status, err := parseStatus(cmd.String("status"))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}

	parallel := cfg.Parallel
	if n := int(cmd.Int("parallel")); n > 0 {
		parallel = n
	}

	loader := source.NewLoader()
	defer loader.Close()

	printer := ui.NewIngestPrinterWithWriter(stderr(cmd))
	ingested, runErr := ingest.Run(ctx, loader, cmd.Args().Slice(), ingest.Options{
		MaxParallel: parallel,
		OnEvent:     printer.HandleEvent,
	})
	if ingested == nil {
		return runErr
	}

	imported := 0
	for _, result := range ingested.Results {
		for _, doc := range result.Documents {
			if len(doc.Sections) == 0 {
				continue
			}
			store.Add(question.Question{
				Question: questionTitle(doc.Name),
				Answer:   doc.Content,
				Status:   status,
			})
			imported++
		}
	}

	if imported > 0 {
		if err := store.Save(cfg.StorePath()); err != nil {
			return err
		}
	}

	printer.PrintSummary(ingested, imported)
	return runErr
}

// questionTitle turns a document name like "reset-password.md" into
// "reset password".
func questionTitle(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.Join(strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	}), " ")
}

func parseStatus(s string) (question.Status, error) {
	switch status := question.Status(s); status {
	case question.StatusAnswered, question.StatusPending, question.StatusReviewed:
		return status, nil
	default:
		return "", oops.
			Code("INVALID_ARGS").
			With("status", s).
			Hint("Use answered, pending or reviewed").
			Errorf("unknown status %q", s)
	}
}
