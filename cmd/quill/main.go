package main

import (
	"context"
	"fmt"
	"os"

	"github.com/benjaminschreck/go-quill/pkg/quill"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "quill",
		Usage: "Inspect and rewrite word-processing documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log verbosity (debug, info, warn, error, off)",
				Value:   "info",
				Sources: cli.EnvVars("QUILL_LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "strict",
				Usage:   "Fail on markup the document model does not cover",
				Sources: cli.EnvVars("QUILL_STRICT_MODE"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg := &quill.Config{
				LogLevel:   cmd.String("log-level"),
				StrictMode: cmd.Bool("strict"),
			}
			if err := cfg.Validate(); err != nil {
				return ctx, fmt.Errorf("invalid configuration: %w", err)
			}
			quill.SetGlobalConfig(cfg)
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "text",
				Usage:     "Print the plain text of a document",
				ArgsUsage: "FILE",
				Action:    runText,
			},
			{
				Name:      "rewrite",
				Usage:     "Load a document and save it back through the engine",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Destination path (defaults to overwriting FILE)",
					},
				},
				Action: runRewrite,
			},
			{
				Name:      "parts",
				Usage:     "List the parts inside a document container",
				ArgsUsage: "FILE",
				Action:    runParts,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func inputPath(cmd *cli.Command) (string, error) {
	path := cmd.Args().First()
	if path == "" {
		return "", fmt.Errorf("missing FILE argument")
	}
	return path, nil
}

func runText(ctx context.Context, cmd *cli.Command) error {
	path, err := inputPath(cmd)
	if err != nil {
		return err
	}
	doc, err := quill.Load(path)
	if err != nil {
		return err
	}
	fmt.Println(doc.PlainText())
	return nil
}

func runRewrite(ctx context.Context, cmd *cli.Command) error {
	path, err := inputPath(cmd)
	if err != nil {
		return err
	}
	output := cmd.String("output")
	if output == "" {
		output = path
	}
	pkg := quill.NewPackage()
	doc, rels, err := pkg.LoadWithRelationships(path)
	if err != nil {
		return err
	}
	if err := pkg.Save(doc, rels, output); err != nil {
		return err
	}
	fmt.Printf("Rewrote %s (%d paragraphs)\n", output, len(doc.Paragraphs))
	return nil
}

func runParts(ctx context.Context, cmd *cli.Command) error {
	path, err := inputPath(cmd)
	if err != nil {
		return err
	}
	names, err := quill.NewPackage().Parts(path)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
