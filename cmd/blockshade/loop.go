package main

import (
	"context"
	"fmt"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/blockshade/pkg/render"
)

// runInteractive owns the terminal for the lifetime of sc: alt screen in,
// one frame per tick, alt screen out.
func runInteractive(ctx context.Context, cfg *config, sc scene) error {
	term := uv.DefaultTerminal()
	if cfg.debug {
		term.SetLogger(cfg.logger)
	}

	screen, err := render.NewScreen(term, cfg.light)
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	cols, rows := screen.Size()
	cfg.logger.Debug("starting session", "cols", cols, "rows", rows, "fps", cfg.fps)

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		if err := term.Shutdown(context.Background()); err != nil {
			cfg.logger.Error("shutdown terminal", "err", err)
		}
	}()

	term.EnterAltScreen()
	term.HideCursor()
	if err := term.Resize(cols, rows); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}
	sc.Resize(cols, rows)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan uv.Event, 16)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				next, ok := applyResize(cfg, screen, ev.Width, ev.Height)
				if !ok {
					continue
				}
				screen = next
				term.Erase()
				if err := term.Resize(ev.Width, ev.Height); err != nil {
					return fmt.Errorf("resize terminal: %w", err)
				}
				sc.Resize(ev.Width, ev.Height)

			case uv.KeyPressEvent:
				if sc.HandleKey(screen, ev) {
					return nil
				}
			}

		case <-ticker.C:
			sc.Update()
			screen.Clear()
			sc.Render(screen)
			term.Draw(screen)
			if err := term.Display(); err != nil {
				return fmt.Errorf("display frame: %w", err)
			}
		}
	}
}

// applyResize returns a screen sized for the new terminal. An unusable size
// is logged and prev is kept.
func applyResize(cfg *config, prev *render.Screen, cols, rows int) (*render.Screen, bool) {
	next, err := resizeScreen(prev, cols, rows)
	if err != nil {
		cfg.logger.Debug("ignoring resize", "cols", cols, "rows", rows, "err", err)
		return prev, false
	}
	return next, true
}

// resizeScreen builds a screen of the new size that keeps the camera, light
// and hull oracle of prev.
func resizeScreen(prev *render.Screen, cols, rows int) (*render.Screen, error) {
	next, err := render.NewScreen(render.StaticSize{Width: cols, Height: rows}, prev.Light())
	if err != nil {
		return nil, err
	}
	next.Camera = prev.Camera
	next.SetHull(prev.Hull())
	return next, nil
}
