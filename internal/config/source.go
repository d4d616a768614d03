package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed default.cfg
var defaultHUD string

// DefaultHUD returns the packaged HUD layouts.
func DefaultHUD() string { return defaultHUD }

// Source yields the HUD configuration text: the optional user file followed
// by the packaged layouts.
type Source struct {
	UserFile string
	Packaged string
}

// NewSource returns a Source reading userFile ahead of the packaged layouts.
func NewSource(userFile string) Source {
	return Source{UserFile: userFile, Packaged: defaultHUD}
}

// HUDConfig implements hud.Source.
func (s Source) HUDConfig() (string, error) {
	if s.UserFile == "" {
		return s.Packaged, nil
	}
	data, err := os.ReadFile(s.UserFile)
	if err != nil {
		return "", fmt.Errorf("read hud config: %w", err)
	}
	text := string(data)
	if s.Packaged == "" {
		return text, nil
	}
	var b strings.Builder
	b.Grow(len(text) + len(s.Packaged) + 1)
	b.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		b.WriteByte('\n')
	}
	b.WriteString(s.Packaged)
	return b.String(), nil
}
