package app

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"exhud/internal/config"
	"exhud/internal/core"
	"exhud/internal/demo"
	"exhud/internal/hud"

	"github.com/leonelquinteros/gotext"
)

// kvList collects repeatable key=value flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the collected pairs; later keys win.
func (l kvList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[k] = v
	}
	return m
}

// Config represents the command-line parameters for the applications.
type Config struct {
	Mode      string
	HUDFile   string
	NoDefault bool
	Settings  string
	Scale     int
	TPS       int
	Seed      int64
	NoDraw    bool
	Locale    string
	Lang      string
	Debug     bool
	World     kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 2, TPS: core.TicRate, Seed: 42, Lang: "en_US"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "game mode: doom, heretic or hexen (overrides the settings file)")
	fs.StringVar(&c.HUDFile, "hud", c.HUDFile, "user HUD configuration read before the packaged layouts")
	fs.BoolVar(&c.NoDefault, "nodefault", c.NoDefault, "skip the packaged HUD layouts")
	fs.StringVar(&c.Settings, "settings", c.Settings, "settings ini file")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the demo world")
	fs.BoolVar(&c.NoDraw, "nodraw", c.NoDraw, "hide the HUD entirely")
	fs.StringVar(&c.Locale, "locale", c.Locale, "directory holding gettext translations")
	fs.StringVar(&c.Lang, "lang", c.Lang, "translation language")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log HUD debug messages to stderr")
	fs.Var(&c.World, "set", "demo world override in key=value form (repeatable)")
}

// Load reads the settings file and applies the flag overrides.
func (c *Config) Load() (config.File, error) {
	f, err := config.LoadFile(c.Settings)
	if err != nil {
		return config.File{}, err
	}
	if c.Mode != "" {
		m, ok := core.ParseMode(c.Mode)
		if !ok {
			return config.File{}, fmt.Errorf("unknown mode %q", c.Mode)
		}
		f.Mode = m
	}
	if c.NoDraw {
		f.HUD.NoDraw = true
	}
	return f, nil
}

// Source returns the HUD configuration source selected by the flags.
func (c *Config) Source() config.Source {
	src := config.NewSource(c.HUDFile)
	if c.NoDefault {
		src.Packaged = ""
	}
	return src
}

// Logger returns the HUD debug logger.
func (c *Config) Logger() *log.Logger {
	var w io.Writer = io.Discard
	if c.Debug {
		w = os.Stderr
	}
	return log.New(w, "exhud: ", log.Ltime)
}

// ApplyLocale loads translations when a locale directory is set.
func (c *Config) ApplyLocale() {
	if c.Locale == "" {
		return
	}
	gotext.Configure(c.Locale, c.Lang, "exhud")
}

// NewWorld builds the demo world for f.
func (c *Config) NewWorld(f config.File) *demo.World {
	cfg := demo.FromMap(c.World.Map())
	if _, ok := c.World.Map()["seed"]; !ok {
		cfg.Seed = c.Seed
	}
	w := demo.New(f.Mode, f.HUD, cfg)
	if f.Strict {
		w.ToggleStrict()
	}
	return w
}

// NewHUD builds the HUD for world.
func (c *Config) NewHUD(world core.Game, f config.File) *hud.HUD {
	return hud.New(world, c.Source(),
		hud.WithLogger(c.Logger()),
		hud.WithStatusBarHeight(f.StatusBarHeight),
	)
}
