package main

import (
	"context"
	"fmt"

	"pipelinedeck/internal/config"
	"pipelinedeck/internal/deck"
	"pipelinedeck/internal/ui"

	"github.com/urfave/cli/v3"
)

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Print slides to stdout without starting the interactive deck",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "slide",
				Usage: "Slide to print (1-6); 0 prints all",
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Render width in columns",
				Value: 100,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d := deck.Default()
			width := int(cmd.Int("width"))
			n := int(cmd.Int("slide"))
			if n < 0 || n > d.Len() {
				return fmt.Errorf("slide %d out of range 1-%d", n, d.Len())
			}
			if n > 0 {
				fmt.Println(ui.RenderSlide(d.Slide(n-1), width))
				return nil
			}
			for i, s := range d.Slides {
				if i > 0 {
					fmt.Println()
				}
				fmt.Println(ui.RenderSlide(s, width))
			}
			return nil
		},
	}
}

func slidesCommand() *cli.Command {
	return &cli.Command{
		Name:  "slides",
		Usage: "List slide titles",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d := deck.Default()
			for i, title := range d.Titles() {
				fmt.Printf("%d\t%-10s\t%s\n", i+1, deck.SlideID(i), title)
			}
			return nil
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the configuration file",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the example configuration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Where to write the file",
						Value:   "pipelinedeck.toml",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path := cmd.String("path")
					if err := config.CreateConfigFile(path); err != nil {
						return err
					}
					fmt.Printf("Wrote %s\n", path)
					return nil
				},
			},
		},
	}
}
