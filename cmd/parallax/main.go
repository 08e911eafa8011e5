package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/parallax/audio"
	"github.com/lixenwraith/parallax/config"
	"github.com/lixenwraith/parallax/content"
	"github.com/lixenwraith/parallax/engine"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: %+v", cfg)

	page := content.Default()
	if cfg.ContentPath != "" {
		if page, err = content.Load(cfg.ContentPath, cfg.AssetDir); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	} else if cfg.AssetDir != "" {
		page.Resolve(cfg.AssetDir)
	}

	if err := run(cfg, page); err != nil {
		fmt.Fprintf(os.Stderr, "parallax: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, page *content.Page) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	crash := func(r any) {
		// Restore terminal to sane state before printing
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPARALLAX CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	// Panic Recovery: ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	var cue engine.Cue
	if !cfg.Mute {
		// Non-fatal, the page runs without sound
		if c, err := audio.NewSpeakerCue(); err == nil {
			defer c.Close()
			cue = c
		} else {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := engine.NewApp(screen, cfg, page, cue)
	app.SetCrashHandler(crash)

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
