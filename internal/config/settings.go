// Package config loads the persistent settings file and the HUD layout text.
package config

import (
	"fmt"

	"exhud/internal/core"

	"gopkg.in/ini.v1"
)

const (
	sectionGame = "game"
	sectionHUD  = "hud"
)

// File is the content of a settings file.
type File struct {
	Mode            core.Mode
	Strict          bool
	HUD             core.Settings
	StatusBarHeight int
}

// DefaultFile returns the settings used when no file is given.
func DefaultFile() File {
	return File{
		Mode:            core.ModeDoom,
		HUD:             core.DefaultSettings(),
		StatusBarHeight: 32,
	}
}

var loadOptions = ini.LoadOptions{
	InsensitiveSections:     true,
	SkipUnrecognizableLines: true,
}

// LoadFile reads path over the defaults. An empty path yields the defaults.
func LoadFile(path string) (File, error) {
	if path == "" {
		return DefaultFile(), nil
	}
	f, err := decode(path)
	if err != nil {
		return File{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes settings from ini text over the defaults.
func Parse(data []byte) (File, error) {
	return decode(data)
}

func decode(src any) (File, error) {
	cfg, err := ini.LoadSources(loadOptions, src)
	if err != nil {
		return File{}, err
	}
	f := DefaultFile()

	game := cfg.Section(sectionGame)
	if game.HasKey("mode") {
		name := game.Key("mode").String()
		mode, ok := core.ParseMode(name)
		if !ok {
			return File{}, fmt.Errorf("unknown mode %q", name)
		}
		f.Mode = mode
	}
	f.Strict = game.Key("strict").MustBool(f.Strict)

	hud := cfg.Section(sectionHUD)
	s := &f.HUD
	s.ExHUD = hud.Key("exhud").MustBool(s.ExHUD)
	s.HUDDisplayed = hud.Key("hud_displayed").MustBool(s.HUDDisplayed)
	s.ShowFPS = hud.Key("show_fps").MustBool(s.ShowFPS)
	s.ShowMinimap = hud.Key("show_minimap").MustBool(s.ShowMinimap)
	s.ShowLevelSplits = hud.Key("show_level_splits").MustBool(s.ShowLevelSplits)
	s.CoordinateDisplay = hud.Key("coordinate_display").MustBool(s.CoordinateDisplay)
	s.CommandDisplay = hud.Key("command_display").MustBool(s.CommandDisplay)
	f.StatusBarHeight = hud.Key("status_bar_height").MustInt(f.StatusBarHeight)
	return f, nil
}

// SaveFile writes f to path in ini format.
func SaveFile(path string, f File) error {
	cfg := ini.Empty()

	game := cfg.Section(sectionGame)
	game.Key("mode").SetValue(f.Mode.String())
	game.Key("strict").SetValue(fmt.Sprint(f.Strict))

	hud := cfg.Section(sectionHUD)
	for _, kv := range []struct {
		key string
		val any
	}{
		{"exhud", f.HUD.ExHUD},
		{"hud_displayed", f.HUD.HUDDisplayed},
		{"show_fps", f.HUD.ShowFPS},
		{"show_minimap", f.HUD.ShowMinimap},
		{"show_level_splits", f.HUD.ShowLevelSplits},
		{"coordinate_display", f.HUD.CoordinateDisplay},
		{"command_display", f.HUD.CommandDisplay},
		{"status_bar_height", f.StatusBarHeight},
	} {
		hud.Key(kv.key).SetValue(fmt.Sprint(kv.val))
	}

	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("save settings %s: %w", path, err)
	}
	return nil
}
