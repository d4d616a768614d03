package main

import (
	"fmt"
	"io"

	"exhud/internal/hud"

	"github.com/gookit/color"
	"github.com/tidwall/sjson"
	"github.com/zyedidia/generic/mapset"
)

var (
	styleHeader  = color.Style{color.FgCyan, color.OpBold}
	styleOn      = color.Style{color.FgGreen}
	styleOff     = color.Style{color.FgYellow}
	styleMissing = color.Style{color.FgRed}
)

// Widget is one placed component.
type Widget struct {
	Name string
	On   bool
}

// Section summarizes one container.
type Section struct {
	Name      string
	Loaded    bool
	StatusBar bool
	Widgets   []Widget
}

// Report is the result of checking one HUD configuration.
type Report struct {
	Mode     string
	State    string
	Sections []Section
	// Unplaced names the components no loaded container places.
	Unplaced []string
}

// NewReport inspects the loaded containers of h.
func NewReport(mode string, h *hud.HUD) Report {
	r := Report{Mode: mode, State: h.State().String()}
	placed := mapset.New[string]()
	for _, v := range hud.Variants() {
		c := h.Container(v)
		s := Section{Name: c.Name, Loaded: c.Loaded, StatusBar: c.StatusBar}
		for _, id := range c.Placed() {
			s.Widgets = append(s.Widgets, Widget{Name: id.String(), On: c.Components[id].On})
			placed.Put(id.String())
		}
		r.Sections = append(r.Sections, s)
	}
	for _, id := range hud.IDs() {
		if !placed.Has(id.String()) {
			r.Unplaced = append(r.Unplaced, id.String())
		}
	}
	return r
}

// JSON encodes the report.
func (r Report) JSON() ([]byte, error) {
	out := []byte(`{"sections":[],"unplaced":[]}`)
	var err error
	set := func(path string, v any) {
		if err == nil {
			out, err = sjson.SetBytes(out, path, v)
		}
	}
	set("mode", r.Mode)
	set("state", r.State)
	for _, s := range r.Sections {
		sec, serr := s.json()
		if serr != nil {
			return nil, serr
		}
		if err == nil {
			out, err = sjson.SetRawBytes(out, "sections.-1", sec)
		}
	}
	for _, name := range r.Unplaced {
		set("unplaced.-1", name)
	}
	return out, err
}

func (s Section) json() ([]byte, error) {
	out := []byte(`{"widgets":[]}`)
	var err error
	set := func(path string, v any) {
		if err == nil {
			out, err = sjson.SetBytes(out, path, v)
		}
	}
	set("name", s.Name)
	set("loaded", s.Loaded)
	set("status_bar", s.StatusBar)
	for _, w := range s.Widgets {
		set("widgets.-1", map[string]any{"name": w.Name, "on": w.On})
	}
	return out, err
}

// WriteText prints the report for people, coloured when colored is set.
func (r Report) WriteText(w io.Writer, colored bool) error {
	paint := func(st color.Style, s string) string {
		if !colored {
			return s
		}
		return st.Sprint(s)
	}
	if _, err := fmt.Fprintf(w, "mode %s, active container %s\n", r.Mode, r.State); err != nil {
		return err
	}
	for _, s := range r.Sections {
		status := "loaded"
		if !s.Loaded {
			status = "not loaded"
		}
		if _, err := fmt.Fprintf(w, "%s (%s, %d widgets)\n", paint(styleHeader, s.Name), status, len(s.Widgets)); err != nil {
			return err
		}
		for _, wd := range s.Widgets {
			state := paint(styleOn, "on")
			if !wd.On {
				state = paint(styleOff, "off")
			}
			if _, err := fmt.Fprintf(w, "  %-20s %s\n", wd.Name, state); err != nil {
				return err
			}
		}
	}
	if len(r.Unplaced) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, paint(styleMissing, "never placed:")); err != nil {
		return err
	}
	for _, name := range r.Unplaced {
		if _, err := fmt.Fprintf(w, "  %s\n", name); err != nil {
			return err
		}
	}
	return nil
}
