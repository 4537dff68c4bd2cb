package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pipelinedeck/internal/config"
	"pipelinedeck/internal/deck"
	"pipelinedeck/internal/display"
	"pipelinedeck/internal/logging"
	"pipelinedeck/internal/telemetry"
	"pipelinedeck/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

// runDeck is the default action: the interactive presentation.
func runDeck(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Resolve(cmd.String("config"))
	if err != nil {
		return err
	}
	if cmd.IsSet("mode") {
		cfg.Display.Mode = cmd.String("mode")
	}
	if cmd.Bool("fullscreen") {
		cfg.Display.StartFullscreen = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	interval, _ := cfg.PollInterval()

	logger, closer, err := logging.NewFile(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	mode, _ := display.ParseMode(cfg.Display.Mode)
	disp, err := display.New(mode, os.Stdout)
	if err != nil {
		if !errors.Is(err, display.ErrUnsupported) {
			return err
		}
		logger.Warn("fullscreen unavailable", "mode", mode, "err", err)
	}

	rec, err := telemetry.New(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := rec.Close(context.Background()); err != nil {
			logger.Error("telemetry shutdown", "err", err)
		}
	}()

	d := deck.Default()
	shell := ui.NewShell(d, disp)
	shell.Logger = logger.With("mode", mode)
	n := int(cmd.Int("slide"))
	if n < 1 || n > d.Len() {
		return fmt.Errorf("slide %d out of range 1-%d", n, d.Len())
	}
	shell.GoToSlide(n - 1)
	shell.Recorder = rec

	app := ui.NewAppModel(shell)
	app.StartFullscreen = cfg.Display.StartFullscreen
	p := tea.NewProgram(app.AsTeaModel(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	switch disp := disp.(type) {
	case *display.AltScreen:
		disp.Attach(p)
		app.Interceptor = disp
	case *display.TmuxZoom:
		if err := disp.Refresh(runCtx); err != nil {
			logger.Warn("tmux zoom query failed", "err", err)
		}
		go disp.Watch(runCtx, interval)
	}

	logger.Info("deck started", "session", rec.SessionID(), "mode", mode, "slide", shell.Current())
	_, err = p.Run()
	app.Close()

	// A zoomed pane outlives the program; restore it.
	if z, ok := disp.(*display.TmuxZoom); ok && z.Fullscreen() {
		if exitErr := z.Exit(context.Background()); exitErr != nil {
			logger.Warn("tmux unzoom failed", "err", exitErr)
		}
	}
	logger.Info("deck closed", "slide", shell.Current())
	return err
}
