package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabasePath string
	PollSeconds  int
	ChatRelayURL string
	Simulate     bool
	SimulateRate int
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quizboss", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database path")
	fs.IntVar(&cfg.PollSeconds, "poll-seconds", 0, "Voting window per question, in seconds")
	fs.StringVar(&cfg.ChatRelayURL, "relay", "", "Websocket URL of an external chat relay (optional)")

	// Local battle harness
	fs.BoolVar(&cfg.Simulate, "simulate", false, "Run a battle session with simulated chat votes")
	fs.IntVar(&cfg.SimulateRate, "sim-rate", 0, "Simulated chat messages per second")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "data/scores.db"
	}

	if cfg.PollSeconds == 0 {
		if s := os.Getenv("POLL_SECONDS"); s != "" {
			secs, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid POLL_SECONDS env variable")
			}
			cfg.PollSeconds = secs
		} else {
			cfg.PollSeconds = 12
		}
	}
	if cfg.PollSeconds < 1 {
		return Config{}, errors.New("poll-seconds must be at least 1")
	}

	if cfg.ChatRelayURL == "" {
		cfg.ChatRelayURL = os.Getenv("CHAT_RELAY_URL")
	}

	if cfg.SimulateRate == 0 {
		cfg.SimulateRate = 6
	}
	if cfg.SimulateRate < 1 {
		return Config{}, errors.New("sim-rate must be at least 1")
	}

	return cfg, nil
}
