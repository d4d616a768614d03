package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"exhud/internal/core"
)

// OpKind identifies a recorded draw operation.
type OpKind int

const (
	OpText OpKind = iota
	OpFill
	OpGrid
)

func (k OpKind) String() string {
	switch k {
	case OpText:
		return "text"
	case OpFill:
		return "fill"
	case OpGrid:
		return "grid"
	}
	return "unknown"
}

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	Rect  image.Rectangle
	Text  string
	Color color.RGBA
}

// Recorder is an in-memory Surface that keeps every draw call.
type Recorder struct {
	W, H         int
	CharW, LineH int
	Ops          []Op
}

var _ core.Surface = (*Recorder)(nil)

// NewRecorder returns a recorder for a w×h surface with the given metrics.
func NewRecorder(w, h, charW, lineH int) *Recorder {
	return &Recorder{W: w, H: h, CharW: charW, LineH: lineH}
}

// Size returns the recorded surface dimensions.
func (r *Recorder) Size() (int, int) { return r.W, r.H }

// Metrics returns the configured glyph metrics.
func (r *Recorder) Metrics() (int, int) { return r.CharW, r.LineH }

// Text records a text draw.
func (r *Recorder) Text(at image.Point, s string, c color.RGBA) {
	w := len([]rune(s)) * r.CharW
	r.Ops = append(r.Ops, Op{Kind: OpText, Rect: image.Rect(at.X, at.Y, at.X+w, at.Y+r.LineH), Text: s, Color: c})
}

// Fill records a rectangle fill.
func (r *Recorder) Fill(rect image.Rectangle, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Rect: rect, Color: c})
}

// Grid records a grid blit.
func (r *Recorder) Grid(at image.Point, g *core.ByteGrid, _ []color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpGrid, Rect: image.Rect(at.X, at.Y, at.X+g.W, at.Y+g.H)})
}

// Texts returns the strings of all text ops in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Dump writes one line per op.
func (r *Recorder) Dump(w io.Writer) error {
	for _, op := range r.Ops {
		var err error
		if op.Kind == OpText {
			_, err = fmt.Fprintf(w, "%-4s %v %q\n", op.Kind, op.Rect, op.Text)
		} else {
			_, err = fmt.Fprintf(w, "%-4s %v\n", op.Kind, op.Rect)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
