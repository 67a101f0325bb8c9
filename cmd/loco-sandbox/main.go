package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/loco/asset"
	"github.com/lixenwraith/loco/config"
	"github.com/lixenwraith/loco/input"
	"github.com/lixenwraith/loco/sim"
)

var (
	configFlag = flag.String("config", "", "TOML config file (defaults when empty)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/loco.log")
	keysFlag   = flag.Bool("keys", false, "Print the key map and exit")
	dumpFlag   = flag.Bool("dump-config", false, "Print the default config and exit")
)

// errQuit ends the session without an error exit
var errQuit = errors.New("quit")

func main() {
	flag.Parse()

	if *dumpFlag {
		fmt.Print(asset.DefaultConfig)
		return
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "loco-sandbox: %v\n", err)
			os.Exit(1)
		}
	}

	keys := input.DefaultKeyMap()
	if err := keys.ApplyOverrides(cfg.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "loco-sandbox: keys: %v\n", err)
		os.Exit(1)
	}

	if *keysFlag {
		for _, b := range keys.Bindings() {
			fmt.Printf("%-12s %s\n", b.Key, b.Action)
		}
		return
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, keys); err != nil {
		fmt.Fprintf(os.Stderr, "loco-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, keys *input.KeyMap) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}

	defer recoverCrash(screen, "LOCO")

	scene := sim.NewScene(cfg, nil)
	v := newView(screen)
	log.Printf("[Main] session started, tick rate %d", cfg.Sandbox.TickRate)

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		defer recoverCrash(screen, "EVENT POLLER")
		return pollInput(screen, keys, scene)
	})

	g.Go(func() error {
		defer recoverCrash(screen, "TICK LOOP")
		return tickLoop(ctx, scene, v, cfg.Sandbox.TickInterval(), cfg.Sandbox.DT())
	})

	// PollEvent only returns once the screen is finalized
	g.Go(func() error {
		<-ctx.Done()
		screen.Fini()
		return nil
	})

	err = g.Wait()
	log.Printf("[Main] session ended: %v", err)
	snap := scene.Stats().Snapshot()
	for _, key := range scene.Stats().Keys() {
		log.Printf("[Main] %s = %v", key, snap[key])
	}
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// pollInput translates key presses into scene events until quit or screen shutdown
func pollInput(screen tcell.Screen, keys *input.KeyMap, scene *sim.Scene) error {
	for {
		ev := screen.PollEvent()
		// Screen finalized
		if ev == nil {
			return errQuit
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			action := keys.Resolve(ev)
			if action == input.ActionQuit {
				return errQuit
			}
			if t, ok := action.Event(); ok {
				scene.Push(t)
			}
		}
	}
}

// tickLoop advances the scene at a fixed rate and redraws after every tick
func tickLoop(ctx context.Context, scene *sim.Scene, v *view, interval time.Duration, dt float64) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	v.draw(scene)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			scene.Tick(ctx, dt)
			v.draw(scene)
		}
	}
}

// recoverCrash restores the terminal before printing a panic and its stack
// Must be deferred directly by the goroutine it guards
func recoverCrash(screen tcell.Screen, who string) {
	if r := recover(); r != nil {
		screen.Fini()
		// \r\n for raw mode compatibility
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", who, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
