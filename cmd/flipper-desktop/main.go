// File: cmd/flipper-desktop/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/lguibr/flipper/game"
	"github.com/lguibr/flipper/highscore"
	"github.com/lguibr/flipper/utils"
)

const ticksPerSecond = 60

// scoreSaver writes both players to the high-score table when a game ends.
type scoreSaver struct {
	game.NopListener
	store *highscore.Store
	clock utils.Clock
}

func (s scoreSaver) GameOver(scores [game.Players]int) {
	if err := s.store.Record(scores, s.clock.Now()); err != nil {
		log.Printf("[Desktop] Failed to save high scores: %v", err)
	}
}

// Desktop drives a local simulation from the ebiten loop.
type Desktop struct {
	sim    *game.Simulation
	scores *highscore.Store
	events *game.EventCollector

	notice      string
	noticeTicks int
}

func NewDesktop(cfg utils.Config, seed int64, scores *highscore.Store) *Desktop {
	clock := utils.SystemClock()
	events := &game.EventCollector{}
	listeners := game.Listeners{scoreSaver{store: scores, clock: clock}, events}
	sim := game.NewSimulation(cfg, clock, utils.NewRandom(seed), listeners)
	sim.Restart()
	return &Desktop{sim: sim, scores: scores, events: events}
}

func (d *Desktop) Update() error {
	d.handleInput()
	d.sim.Step(time.Second / ticksPerSecond)
	d.updateNotice()
	return nil
}

// updateNotice keeps the most recent life or game event on screen for a second.
func (d *Desktop) updateNotice() {
	for _, event := range d.events.Drain() {
		switch event.Kind {
		case game.EventLifeLost:
			d.notice = fmt.Sprintf("Player %d lost a ball, %d left", event.Player, event.Remaining)
		case game.EventGameOver:
			d.notice = fmt.Sprintf("Game over %d - %d", event.Scores[0], event.Scores[1])
		default:
			continue
		}
		d.noticeTicks = ticksPerSecond
	}
	if d.noticeTicks > 0 {
		d.noticeTicks--
	}
}

func (d *Desktop) handleInput() {
	d.sim.SetFlipperActive(game.Left, ebiten.IsKeyPressed(ebiten.KeyArrowLeft))
	d.sim.SetFlipperActive(game.Right, ebiten.IsKeyPressed(ebiten.KeyArrowRight))

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		d.sim.StartCharge()
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		if power, ok := d.sim.ReleaseCharge(); ok {
			log.Printf("[Desktop] Launched with power %.2f", power)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.sim.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		d.sim.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := d.scores.Clear(); err != nil {
			log.Printf("[Desktop] Failed to clear high scores: %v", err)
		}
	}
}

func (d *Desktop) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := d.sim.Config()
	return int(cfg.Width), int(cfg.Height)
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default game config")
	seed := flag.Int64("seed", 0, "random seed for launch angles (0 uses the clock)")
	appName := flag.String("app", "flipper", "application name for the high-score save directory")
	flag.Parse()

	cfg := utils.DefaultConfig()
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("[Desktop] %v", err)
		}
		cfg = loaded
	}

	manager, err := gdata.Open(gdata.Config{AppName: *appName})
	if err != nil {
		log.Printf("[Desktop] Warning: high scores will not persist: %v", err)
		manager = nil
	}
	scores := highscore.NewStore(manager, cfg.HighScoreLimit)

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Flipper")
	ebiten.SetTPS(ticksPerSecond)

	if err := ebiten.RunGame(NewDesktop(cfg, *seed, scores)); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
