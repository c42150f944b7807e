package app

import (
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"lifecanvas/internal/sims/life"
)

// Config represents the command-line and file parameters of a host.
type Config struct {
	File string `json:"-"`

	Width      int    `json:"width"`
	Height     int    `json:"height"`
	TPS        int    `json:"tps"`
	IntervalMS int    `json:"interval_ms"`
	Clusters   int    `json:"clusters"`
	Seed       int64  `json:"seed"`
	Random     bool   `json:"random"`
	HUDWidth   int    `json:"hud_width"`
	Frames     int    `json:"frames"`
	Out        string `json:"out"`
	LogLevel   string `json:"log_level"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      1080,
		Height:     720,
		TPS:        60,
		IntervalMS: 1000,
		Clusters:   life.DefaultClusters,
		Random:     true,
		HUDWidth:   220,
		Frames:     30,
		Out:        "frames",
		LogLevel:   "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "JSON config file; explicit flags override it")
	fs.IntVar(&c.Width, "width", c.Width, "surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "surface height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host frames per second")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "milliseconds between generations")
	fs.IntVar(&c.Clusters, "clusters", c.Clusters, "clusters seeded by randomize")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize (0 = clock)")
	fs.BoolVar(&c.Random, "random", c.Random, "randomize the board on start")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.IntVar(&c.Frames, "frames", c.Frames, "redraws to capture before exiting (headless)")
	fs.StringVar(&c.Out, "out", c.Out, "output directory for frames (headless)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// LoadConfig reads a JSON file on top of the defaults.
func LoadConfig(filename string) (*Config, error) {
	config := NewConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	config.File = filename
	return config, nil
}

// Parse binds a Config to fs and parses args. When -config names a file,
// its values are loaded and flags set explicitly on the command line are
// applied on top. Other flags already registered on fs are parsed as usual
// and left to the caller.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File == "" {
		return cfg, nil
	}

	loaded, err := LoadConfig(cfg.File)
	if err != nil {
		return nil, err
	}
	overlay := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	overlay.SetOutput(io.Discard)
	loaded.Bind(overlay)

	var setErr error
	fs.Visit(func(f *flag.Flag) {
		// Flags the host registered on fs itself are not part of Config.
		if overlay.Lookup(f.Name) == nil {
			return
		}
		if err := overlay.Set(f.Name, f.Value.String()); err != nil && setErr == nil {
			setErr = errors.Wrapf(err, "apply flag -%s", f.Name)
		}
	})
	if setErr != nil {
		return nil, setErr
	}
	return loaded, nil
}

// LifeConfig converts the host settings into an engine configuration.
func (c *Config) LifeConfig() life.Config {
	cfg := life.DefaultConfig()
	cfg.Width = float64(c.Width)
	cfg.Height = float64(c.Height)
	cfg.Seed = c.Seed
	if c.Clusters >= 0 {
		cfg.Clusters = c.Clusters
	}
	if c.IntervalMS > 0 {
		cfg.Interval = time.Duration(c.IntervalMS) * time.Millisecond
	}
	return cfg
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger builds a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.Level()}))
}
