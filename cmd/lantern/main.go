// Lantern runs a two-room demo: a scrolling panorama with an animated
// lamp and a wrap-around exit, and a cabin with a patrolling moth, a
// clickable window and a button back out. No external assets are
// required; every bitmap is generated at startup.
package main

import (
	"log/slog"
	"os"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/lantern"
	"github.com/phanxgames/lantern/config"
	"github.com/phanxgames/lantern/ebitenhost"
	"github.com/phanxgames/lantern/ecs"
	"github.com/phanxgames/lantern/palette"
)

const defaultConfigPath = "lantern.yaml"

func main() {
	if err := run(); err != nil {
		slog.Error("lantern exited", "err", err)
		os.Exit(1)
	}
}

func run() error {
	path := os.Getenv("LANTERN_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	pal, err := palette.Named(cfg.Palette)
	if err != nil {
		return err
	}
	policy, err := lantern.ParseErasePolicy(cfg.Panorama.ErasePolicy)
	if err != nil {
		return err
	}

	game := ebitenhost.NewGame(ebitenhost.Config{
		Width:          cfg.Window.Width,
		Height:         cfg.Window.Height,
		TicksPerSecond: cfg.TicksPerSecond,
		Debug:          cfg.Debug,
		ErasePolicy:    policy,
		ScreenshotDir:  cfg.ScreenshotDir,
		Loader:         generateAssets(cfg),
		Palette:        pal,
		Logger:         log,
	})
	stage := game.Stage
	stage.User().SetHandsOn(cfg.HandsOnAtStart)
	stage.User().SetHandlesNulls(cfg.HandlesNulls)

	store := ecs.NewDonburiStore(donburi.NewWorld())
	stage.SetEntityStore(store)

	if cfg.TestScript != "" {
		data, err := os.ReadFile(cfg.TestScript)
		if err != nil {
			return err
		}
		runner, err := lantern.LoadTestScript(data)
		if err != nil {
			return err
		}
		stage.SetTestRunner(runner)
	}

	rooms := stage.Rooms().(*lantern.RoomManager)
	d := &demo{game: game, cfg: cfg}
	rooms.Register(roomPanorama, d.buildPanorama)
	rooms.Register(roomCabin, d.buildCabin)
	rooms.OnChange = func(from, to int) {
		if to == roomPanorama {
			game.FadeIn(30)
		}
	}
	if err := rooms.Start(roomPanorama); err != nil {
		return err
	}

	if err := ebitenhost.Run(game, cfg.Window.Title, cfg.Window.Scale); err != nil {
		return err
	}
	counts := store.Counts()
	log.Info("session ended",
		"frames", stage.Frame(),
		"events", counts.Total,
		"unclaimed", counts.Routes[lantern.RouteUnclaimed])
	return nil
}
