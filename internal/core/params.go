package core

import "time"

// TicRate is the number of game tics per second.
const TicRate = 35

// Settings holds the user options that drive which HUD widgets are shown.
type Settings struct {
	ExHUD             bool
	HUDDisplayed      bool
	NoDraw            bool
	ShowFPS           bool
	ShowMinimap       bool
	ShowLevelSplits   bool
	CoordinateDisplay bool
	CommandDisplay    bool
}

// DefaultSettings returns the options used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{ExHUD: true, HUDDisplayed: true}
}

// Player describes the console player.
type Player struct {
	Health      int
	Armor       int
	ArmorClass  int
	ReadyWeapon int
	WeaponName  string
	// AmmoType is the index into Ammo used by the ready weapon, -1 for none.
	AmmoType int
	Ammo     []int
	MaxAmmo  []int
	Keys     []bool
	Artifact string

	X, Y, Z    float64
	MomX, MomY float64
	Angle      float64
}

// Level holds statistics for the level in progress.
type Level struct {
	Name         string
	Kills        int
	TotalKills   int
	Items        int
	TotalItems   int
	Secrets      int
	TotalSecrets int
	Attempts     int
}

// RenderStats are counters published by the renderer for the last frame.
type RenderStats struct {
	Walls     int
	Flats     int
	Sprites   int
	Visplanes int
}

// Split is the recorded completion time of one level.
type Split struct {
	Level string
	Tics  int
	Total int
}

// EventSplit is a timing mark taken when a notable event happens mid-level.
type EventSplit struct {
	Name string
	Tic  int
}

// Line describes a line special the player activated.
type Line struct {
	ID      int
	Special int
}

// Snapshot bundles the signals widgets read during Update.
type Snapshot struct {
	Now       time.Time
	LevelTics int
	TotalTics int
	FPS       int

	Player Player
	Level  Level
	Render RenderStats

	Commands []string
	Splits   []Split
	Event    *EventSplit
	Lines    []Line
	Tracked  []string

	Automap    *ByteGrid
	AutomapPos [2]int
}
