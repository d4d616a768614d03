package demo

import "strconv"

// Params holds the tunable pacing of the scripted run.
type Params struct {
	WallChance       float64
	SmoothPasses     int
	LevelTics        int
	IntermissionTics int
	EventChance      int // one in n tics
	DamageChance     int
	FireChance       int
	Monsters         int
	Items            int
	Secrets          int
	RevealRadius     int
}

// Config controls the demo world.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  64,
		Height: 48,
		Seed:   1337,
		Params: Params{
			WallChance:       0.35,
			SmoothPasses:     2,
			LevelTics:        35 * 40,
			IntermissionTics: 35 * 4,
			EventChance:      350,
			DamageChance:     70,
			FireChance:       8,
			Monsters:         24,
			Items:            12,
			Secrets:          3,
			RevealRadius:     4,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	ints := map[string]*int{
		"w":                 &c.Width,
		"h":                 &c.Height,
		"level_tics":        &c.Params.LevelTics,
		"intermission_tics": &c.Params.IntermissionTics,
		"event_chance":      &c.Params.EventChance,
		"damage_chance":     &c.Params.DamageChance,
		"fire_chance":       &c.Params.FireChance,
		"monsters":          &c.Params.Monsters,
		"items":             &c.Params.Items,
		"secrets":           &c.Params.Secrets,
		"reveal_radius":     &c.Params.RevealRadius,
	}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["smooth_passes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SmoothPasses = parsed
		}
	}
	if v, ok := cfg["wall_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
			c.Params.WallChance = parsed
		}
	}
	return c
}
