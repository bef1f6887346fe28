package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/avolkova/quizboss/authority"
	"github.com/avolkova/quizboss/battle"
	"github.com/avolkova/quizboss/chat"
	"github.com/avolkova/quizboss/cliparse"
	"github.com/avolkova/quizboss/db"
	"github.com/avolkova/quizboss/ledger"
	"github.com/avolkova/quizboss/middleware"
	"github.com/avolkova/quizboss/questions"
	"github.com/avolkova/quizboss/registry"
	"github.com/avolkova/quizboss/router"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open SQLite score store
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Error("failed to create data directory", "error", err)
			os.Exit(1)
		}
	}

	conn, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Verify connection
	if err := conn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(conn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := registry.New()
	led := ledger.New(conn)
	hub := chat.NewHub(ctx)

	// Optional chat relay: forward relay events to overlays and count
	// them into active polls.
	if cfg.ChatRelayURL != "" {
		relay := chat.NewRelay(ctx, cfg.ChatRelayURL)
		go func() {
			for ev := range relay.Events() {
				hub.Publish(ev)
				reg.CountChat(ev.Username, ev.Text)
			}
		}()
		slog.Info("chat relay enabled", "url", cfg.ChatRelayURL)
	}

	// Create router
	mux := router.NewRouter(reg, led, hub)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// Optional local battle harness driven by simulated chat votes.
	if cfg.Simulate {
		go runSimulatedBattle(ctx, cfg)
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// runSimulatedBattle runs a battle session against the local authority,
// fed by fake chat votes, and logs a snapshot every few seconds.
func runSimulatedBattle(ctx context.Context, cfg cliparse.Config) {
	// Give the HTTP server a moment to come up.
	time.Sleep(500 * time.Millisecond)

	client := authority.NewClient(fmt.Sprintf("http://localhost:%d", cfg.Port))
	deck := questions.NewDeck(questions.DefaultSet())
	machine := battle.NewMachine(deck, client, client, time.Duration(cfg.PollSeconds)*time.Second)
	sim := chat.NewSimulator(ctx, cfg.SimulateRate, nil)
	runner := battle.NewRunner(ctx, machine, sim)

	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v := runner.View()
			slog.Info("battle snapshot",
				"phase", v.Phase,
				"score", v.Score,
				"boss_hp", v.BossHP,
				"player_hp", v.PlayerHP,
				"remaining", v.Remaining,
				"counts", v.Counts,
			)
		}
	}
}
