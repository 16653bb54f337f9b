package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	appName = "showtime-cli"

	envTicketDir = "SHOWTIME_TICKET_DIR"
	envSeatSeed  = "SHOWTIME_SEAT_SEED"
	envLogFile   = "SHOWTIME_LOG_FILE"
	envMovie     = "SHOWTIME_MOVIE"
)

// Config is read once at startup from the environment.
type Config struct {
	TicketDir string
	SeatSeed  uint64
	SeedFixed bool
	LogFile   string
	Movie     string
}

// Load reads configuration from the environment after loading envFiles (or
// ./.env when none are given). Missing env files are ignored; variables
// already set in the environment win over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := Config{
		LogFile: strings.TrimSpace(os.Getenv(envLogFile)),
		Movie:   strings.TrimSpace(os.Getenv(envMovie)),
	}

	if raw := strings.TrimSpace(os.Getenv(envSeatSeed)); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", envSeatSeed, raw, err)
		}
		cfg.SeatSeed = seed
		cfg.SeedFixed = true
	}

	dir := strings.TrimSpace(os.Getenv(envTicketDir))
	if dir == "" {
		var err error
		dir, err = defaultTicketDir()
		if err != nil {
			return Config{}, err
		}
	}
	cfg.TicketDir = dir

	return cfg, nil
}

func defaultTicketDir() (string, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		downloads := filepath.Join(home, "Downloads")
		if info, err := os.Stat(downloads); err == nil && info.IsDir() {
			return filepath.Join(downloads, appName), nil
		}
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve ticket directory: %w", err)
	}
	return filepath.Join(dir, appName, "tickets"), nil
}
