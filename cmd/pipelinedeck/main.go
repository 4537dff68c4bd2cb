package main

import (
	"context"
	"os"

	"pipelinedeck/internal/logging"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "pipelinedeck",
		Usage: "Present the AWS SageMaker ML pipeline deck in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (default $PIPELINEDECK_CONFIG)",
			},
			&cli.IntFlag{
				Name:  "slide",
				Usage: "Slide to start on (1-6)",
				Value: 1,
			},
			&cli.BoolFlag{
				Name:  "fullscreen",
				Usage: "Enter fullscreen on start",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Fullscreen facility: auto, altscreen or tmux",
			},
		},
		Action: runDeck,
		Commands: []*cli.Command{
			renderCommand(),
			slidesCommand(),
			configCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logging.New(os.Stderr, "error").Fatal("application error", "err", err)
	}
}
