// Command banner-term renders the particle banner in a terminal. The mouse
// repels particles, 't' toggles the theme, 's' saves the effective config,
// 'q' or Esc quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/particle-banner/simulation"
	"github.com/olivierh59500/particle-banner/theme"
)

var (
	configFlag = flag.String("config", "", "JSON file overriding the default tuning")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 = time based)")
	jitterFlag = flag.String("jitter", "", "Jitter mode: uniform or perlin")
	prefsFlag  = flag.String("prefs", "", "Preference file (default: user config dir)")
	fpsFlag    = flag.Int("fps", 30, "Frames per second")
	debugFlag  = flag.Bool("debug", false, "Write a log to logs/banner-term.log")
	themeFlag  = flag.String("theme-file", "", "JSON file overriding the light and dark colours")
)

func main() {
	os.Exit(realMain())
}

// realMain returns the exit code so deferred cleanup runs before os.Exit
func realMain() (code int) {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	schemes := theme.DefaultSchemes()
	if *themeFlag != "" {
		if schemes, err = theme.LoadSchemes(*themeFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Restore the terminal even if the frame loop panics
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "banner-term crashed: %v\n%s\n", r, debug.Stack())
			code = 1
		}
	}()

	err = run(screen, cfg, schemes)
	screen.Fini()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func loadConfig() (simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFlag); err != nil {
			return cfg, err
		}
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *jitterFlag != "" {
		cfg.JitterMode = *jitterFlag
	}
	return cfg, cfg.Validate()
}

func openPrefs() (*theme.Store, theme.Mode) {
	path := *prefsFlag
	if path == "" {
		var err error
		if path, err = theme.DefaultStorePath(); err != nil {
			log.Printf("theme choice will not be saved: %v", err)
			return nil, theme.Light
		}
	}
	prefs, err := theme.OpenStore(path)
	if err != nil {
		log.Printf("preferences unavailable: %v", err)
		return nil, theme.Light
	}
	return prefs, theme.LoadMode(prefs)
}

func run(screen tcell.Screen, cfg simulation.Config, schemes theme.Schemes) error {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	prefs, mode := openPrefs()
	th, err := theme.Load(mode, schemes)
	if err != nil {
		return err
	}
	cols, rows := screen.Size()
	b, err := newTermBanner(cfg, cols, rows, th, prefs)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalised
				close(events)
				return
			}
			events <- ev
		}
	}()

	fps := max(*fpsFlag, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || b.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			b.frame(screen)
			screen.Show()
		}
	}
}
