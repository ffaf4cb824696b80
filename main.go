// File: main.go
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quasilyte/gdata/v2"

	"github.com/lguibr/flipper/bollywood"
	"github.com/lguibr/flipper/game"
	"github.com/lguibr/flipper/highscore"
	"github.com/lguibr/flipper/server"
	"github.com/lguibr/flipper/utils"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default game config")
	addr := flag.String("addr", ":3001", "HTTP listen address")
	seed := flag.Int64("seed", 0, "random seed for launch angles (0 uses the clock)")
	appName := flag.String("app", "flipper", "application name for the high-score save directory")
	flag.Parse()

	cfg := utils.DefaultConfig()
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("[Main] %v", err)
		}
		cfg = loaded
	}

	manager, err := gdata.Open(gdata.Config{AppName: *appName})
	if err != nil {
		log.Printf("[Main] Warning: high scores will not persist: %v", err)
		manager = nil
	}
	scores := highscore.NewStore(manager, cfg.HighScoreLimit)

	engine := bollywood.NewEngine()
	cache := game.NewStateCache()

	broadcasterPID := engine.Spawn(bollywood.NewProps(game.NewBroadcasterProducer()))
	sessionPID := engine.Spawn(bollywood.NewProps(game.NewSessionActorProducer(engine, game.SessionOptions{
		Config:      cfg,
		Clock:       utils.SystemClock(),
		Seed:        *seed,
		Broadcaster: broadcasterPID,
		Cache:       cache,
		Recorder:    scores,
	})))
	if broadcasterPID == nil || sessionPID == nil {
		log.Fatal("[Main] Failed to spawn game actors")
	}

	srv := server.New(engine, sessionPID, broadcasterPID, cache, scores)
	mux := http.NewServeMux()
	srv.Routes(mux)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		log.Println("[Main] Shutting down...")
		engine.Shutdown(2 * time.Second)
		os.Exit(0)
	}()

	log.Printf("[Main] Flipper table listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}
