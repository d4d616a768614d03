package widgets

import (
	"fmt"
	"math"
	"strings"

	"exhud/internal/core"
)

var ammoNames = []string{"BUL", "SHL", "RKT", "CEL"}

var keyNames = []string{"B", "Y", "R", "B", "Y", "R"}

func ammoName(i int) string {
	if i < len(ammoNames) {
		return ammoNames[i]
	}
	return fmt.Sprintf("AM%d", i+1)
}

type healthText struct{ text }

// NewHealthText shows the player's health with a label.
func NewHealthText(p core.Placement) core.Widget { return &healthText{text{p: p}} }

func (w *healthText) Update(s *core.Snapshot) {
	hp := s.Player.Health
	w.set(line{labelled("HEL", "%d%%", hp), healthColor(hp)})
}

type armorText struct{ text }

// NewArmorText shows the player's armor with a label.
func NewArmorText(p core.Placement) core.Widget { return &armorText{text{p: p}} }

func (w *armorText) Update(s *core.Snapshot) {
	w.set(line{labelled("ARM", "%d%%", s.Player.Armor), armorColor(s.Player.ArmorClass)})
}

type ammoText struct{ text }

// NewAmmoText lists every ammo pool as current/max.
func NewAmmoText(p core.Placement) core.Widget { return &ammoText{text{p: p}} }

func (w *ammoText) Update(s *core.Snapshot) {
	lines := make([]line, 0, len(s.Player.Ammo))
	for i, v := range s.Player.Ammo {
		max := 0
		if i < len(s.Player.MaxAmmo) {
			max = s.Player.MaxAmmo[i]
		}
		lines = append(lines, line{fmt.Sprintf("%s %3d/%3d", ammoName(i), v, max), ammoColor(v, max)})
	}
	w.set(lines...)
}

type readyAmmoText struct{ text }

// NewReadyAmmoText shows the ammo of the ready weapon.
func NewReadyAmmoText(p core.Placement) core.Widget { return &readyAmmoText{text{p: p}} }

func (w *readyAmmoText) Update(s *core.Snapshot) {
	v, max, ok := readyAmmo(&s.Player)
	if !ok {
		w.set(line{labelled("AMM", "N/A"), colorLabel})
		return
	}
	w.set(line{labelled("AMM", "%d", v), ammoColor(v, max)})
}

func readyAmmo(p *core.Player) (v, max int, ok bool) {
	if p.AmmoType < 0 || p.AmmoType >= len(p.Ammo) {
		return 0, 0, false
	}
	v = p.Ammo[p.AmmoType]
	if p.AmmoType < len(p.MaxAmmo) {
		max = p.MaxAmmo[p.AmmoType]
	}
	return v, max, true
}

type weaponText struct{ text }

// NewWeaponText names the ready weapon.
func NewWeaponText(p core.Placement) core.Widget { return &weaponText{text{p: p}} }

func (w *weaponText) Update(s *core.Snapshot) {
	w.set(line{labelled("WPN", "%d %s", s.Player.ReadyWeapon+1, s.Player.WeaponName), colorNormal})
}

type keysWidget struct{ text }

// NewKeys lists the keys the player holds, cards first.
func NewKeys(p core.Placement) core.Widget { return &keysWidget{text{p: p}} }

func (w *keysWidget) Update(s *core.Snapshot) {
	var b strings.Builder
	for i, held := range s.Player.Keys {
		if !held || i >= len(keyNames) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(keyNames[i])
	}
	if b.Len() == 0 {
		w.set()
		return
	}
	w.set(line{b.String(), colorWarn})
}

type speedText struct{ text }

// NewSpeedText shows horizontal speed in map units per tic.
func NewSpeedText(p core.Placement) core.Widget { return &speedText{text{p: p}} }

func (w *speedText) Update(s *core.Snapshot) {
	speed := math.Hypot(s.Player.MomX, s.Player.MomY)
	w.set(line{labelled("SPD", "%.2f", speed), colorNormal})
}

// bigNumber draws a bare value for the large status widgets.
type bigNumber struct {
	text
	value func(s *core.Snapshot) line
}

func (w *bigNumber) Update(s *core.Snapshot) {
	w.set(w.value(s))
}

// NewBigHealth shows health as a bare number.
func NewBigHealth(p core.Placement) core.Widget {
	return &bigNumber{text: text{p: p}, value: func(s *core.Snapshot) line {
		hp := s.Player.Health
		return line{fmt.Sprint(hp), healthColor(hp)}
	}}
}

// NewBigHealthText shows health as a percentage.
func NewBigHealthText(p core.Placement) core.Widget {
	return &bigNumber{text: text{p: p}, value: func(s *core.Snapshot) line {
		hp := s.Player.Health
		return line{fmt.Sprintf("%d%%", hp), healthColor(hp)}
	}}
}

// NewBigArmor shows armor as a bare number.
func NewBigArmor(p core.Placement) core.Widget {
	return &bigNumber{text: text{p: p}, value: func(s *core.Snapshot) line {
		return line{fmt.Sprint(s.Player.Armor), armorColor(s.Player.ArmorClass)}
	}}
}

// NewBigArmorText shows armor as a percentage.
func NewBigArmorText(p core.Placement) core.Widget {
	return &bigNumber{text: text{p: p}, value: func(s *core.Snapshot) line {
		return line{fmt.Sprintf("%d%%", s.Player.Armor), armorColor(s.Player.ArmorClass)}
	}}
}

// NewBigAmmo shows the ready weapon's ammo as a bare number.
func NewBigAmmo(p core.Placement) core.Widget {
	return &bigNumber{text: text{p: p}, value: func(s *core.Snapshot) line {
		v, max, ok := readyAmmo(&s.Player)
		if !ok {
			return line{}
		}
		return line{fmt.Sprint(v), ammoColor(v, max)}
	}}
}

// NewBigArtifact names the selected inventory artifact.
func NewBigArtifact(p core.Placement) core.Widget {
	return &bigNumber{text: text{p: p}, value: func(s *core.Snapshot) line {
		return line{s.Player.Artifact, colorWarn}
	}}
}
