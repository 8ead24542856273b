package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-banner/simulation"
	"github.com/olivierh59500/particle-banner/theme"
)

var (
	configFlag = flag.String("config", "", "JSON file overriding the default tuning")
	widthFlag  = flag.Int("width", 1200, "Banner width in pixels")
	heightFlag = flag.Int("height", 320, "Banner height in pixels")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 = time based)")
	jitterFlag = flag.String("jitter", "", "Jitter mode: uniform or perlin")
	prefsFlag  = flag.String("prefs", "", "Preference file (default: user config dir)")
	themeFlag  = flag.String("theme-file", "", "JSON file overriding the light and dark colours")
)

func main() {
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFlag); err != nil {
			log.Fatal(err)
		}
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *jitterFlag != "" {
		cfg.JitterMode = *jitterFlag
	}

	schemes := theme.DefaultSchemes()
	if *themeFlag != "" {
		var err error
		if schemes, err = theme.LoadSchemes(*themeFlag); err != nil {
			log.Fatal(err)
		}
	}
	prefs, mode := openPrefs(*prefsFlag)
	th, err := theme.Load(mode, schemes)
	if err != nil {
		log.Fatal(err)
	}

	// Initialize banner with the saved theme
	banner, err := NewBanner(cfg, *widthFlag, *heightFlag, th, prefs)
	if err != nil {
		log.Fatal(err)
	}

	// Set up Ebitengine game
	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Particle Banner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	// Run the game loop
	if err := ebiten.RunGame(banner); err != nil {
		log.Fatal(err)
	}
}

// openPrefs loads the preference store. Without one the theme still works
// but is not remembered.
func openPrefs(path string) (*theme.Store, theme.Mode) {
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
