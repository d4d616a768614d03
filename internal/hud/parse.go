package hud

import (
	"strconv"
	"strings"

	"exhud/internal/core"

	"github.com/zyedidia/generic/mapset"
)

const maxArgs = 4

var alignments = map[string]core.Flags{
	"bottom_left":  core.AlignLeftBottom,
	"bottom_right": core.AlignRightBottom,
	"top_left":     core.AlignLeftTop,
	"top_right":    core.AlignRightTop,
	"top":          core.AlignTop,
	"bottom":       core.AlignBottom,
	"left":         core.AlignLeft,
	"right":        core.AlignRight,
}

var modeKeywords = func() mapset.Set[string] {
	s := mapset.New[string]()
	for _, m := range core.Modes() {
		s.Put(m.String())
	}
	return s
}()

// Source supplies the raw configuration text.
type Source interface {
	HUDConfig() (string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (string, error)

func (f SourceFunc) HUDConfig() (string, error) { return f() }

// SplitLines breaks configuration text into lines on \n, \r\n and \r.
// Empty lines are kept so that line numbers match the source text.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Load reads and parses the configuration once. Later calls return the
// result of the first one.
func (h *HUD) Load() error {
	if h.configLoaded {
		return h.loadErr
	}
	h.configLoaded = true

	if h.src == nil {
		return nil
	}
	text, err := h.src.HUDConfig()
	if err != nil {
		h.loadErr = err
		return err
	}
	h.loadErr = h.Parse(SplitLines(text))
	return h.loadErr
}

// Parse scans lines for sections of the current game mode and initializes
// the components they place.
func (h *HUD) Parse(lines []string) error {
	mode := h.game.Mode().String()
	for i := 0; i < len(lines); i++ {
		tok, ok := tokens(lines[i])
		if !ok || len(tok) < 2 || tok[0] != mode {
			continue
		}
		v, found := variantByName(tok[1])
		if !found {
			h.log.Printf("hud: skipping unknown variant %q", tok[1])
			continue
		}
		c := &h.containers[v]
		c.Loaded = true
		c.reset(&h.table)

		next, err := h.parseSection(c, lines, i+1)
		if err != nil {
			return err
		}
		i = next - 1
	}
	return nil
}

// parseSection applies directives from lines[start:] to c and returns the
// index of the first line it did not consume.
func (h *HUD) parseSection(c *Container, lines []string, start int) (int, error) {
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if isComment(line) {
			continue
		}
		tok, ok := tokens(line)
		if !ok {
			return i, &ConfigError{Line: i + 1, Text: line, Err: ErrInvalidDefinition}
		}
		if len(tok) == 0 {
			continue
		}
		if len(tok) >= 2 && modeKeywords.Has(tok[0]) {
			return i, nil
		}
		if err := h.directive(c, tok); err != nil {
			return i, &ConfigError{Line: i + 1, Text: line, Err: err}
		}
	}
	return len(lines), nil
}

func (h *HUD) directive(c *Container, tok []string) error {
	if len(tok) < 2 {
		return ErrInvalidDefinition
	}
	id, ok := h.table.Lookup(tok[0])
	if !ok {
		return ErrUnknownComponent
	}
	if len(tok) < 4 {
		return ErrInvalidArgs
	}
	x, errX := strconv.Atoi(tok[1])
	y, errY := strconv.Atoi(tok[2])
	if errX != nil || errY != nil {
		return ErrInvalidArgs
	}
	align, ok := alignments[tok[3]]
	if !ok {
		return ErrInvalidAlignment
	}

	var args []int
	for _, s := range tok[4:] {
		if len(args) == maxArgs {
			break
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			break
		}
		args = append(args, n)
	}

	comp := &c.Components[id]
	comp.Initialized = true
	comp.Data = comp.New(core.Placement{
		X:     x,
		Y:     y,
		Flags: align | comp.DefaultFlags | core.FlagExText,
		Args:  args,
	})
	c.set(id, !comp.OffByDefault)
	return nil
}

func isComment(line string) bool {
	if line == "" {
		return false
	}
	switch line[0] {
	case '#', '/', '!':
		return true
	}
	return false
}

// tokens splits a line on whitespace. It reports false when a token is
// longer than the configuration format allows.
func tokens(line string) ([]string, bool) {
	tok := strings.Fields(line)
	for _, t := range tok {
		if len(t) > maxNameLen {
			return nil, false
		}
	}
	return tok, true
}

func variantByName(name string) (Variant, bool) {
	for _, v := range Variants() {
		if v.String() == name {
			return v, true
		}
	}
	return 0, false
}
