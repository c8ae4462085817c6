package config

import (
	"flag"
	"fmt"
	"math"
	"time"
)

// Default values for configuration
const (
	DefaultFPS    = 60
	MinFPS        = 30
	MaxFPS        = 240
	DefaultVolume = 1.0
)

// Config holds the application configuration
type Config struct {
	FPS     int
	Volume  float64
	Mute    bool
	Seed    int64
	LogPath string
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("batpong", flag.ContinueOnError)

	fps := fs.Int("fps", DefaultFPS, fmt.Sprintf("frames per second (%d-%d)", MinFPS, MaxFPS))
	volume := fs.Float64("volume", DefaultVolume, "master volume (0-1)")
	mute := fs.Bool("mute", false, "disable sound")
	seed := fs.Int64("seed", 0, "random seed, 0 seeds from the clock")
	logPath := fs.String("log", "", "append log lines to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if *fps < MinFPS || *fps > MaxFPS {
		return nil, fmt.Errorf("fps must be between %d and %d, got %d", MinFPS, MaxFPS, *fps)
	}

	if math.IsNaN(*volume) || *volume < 0 || *volume > 1 {
		return nil, fmt.Errorf("volume must be between 0 and 1, got %g", *volume)
	}

	cfg := &Config{
		FPS:     *fps,
		Volume:  *volume,
		Mute:    *mute,
		Seed:    *seed,
		LogPath: *logPath,
	}

	return cfg, nil
}

// FrameInterval is the time between two ticks at the configured rate.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
