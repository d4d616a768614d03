package core

// Flags controls where and how a widget is placed on screen.
type Flags int

const (
	FlagAlignLeft Flags = 1 << iota
	FlagAlignRight
	FlagAlignTop
	FlagAlignBottom
	// FlagNoOffset ignores the space reserved for the status bar.
	FlagNoOffset
	// FlagExText marks extended HUD text, drawn with a drop shadow.
	FlagExText
)

// Alignment combinations accepted by the configuration format.
const (
	AlignLeftTop     = FlagAlignLeft | FlagAlignTop
	AlignRightTop    = FlagAlignRight | FlagAlignTop
	AlignLeftBottom  = FlagAlignLeft | FlagAlignBottom
	AlignRightBottom = FlagAlignRight | FlagAlignBottom
	AlignTop         = FlagAlignTop
	AlignBottom      = FlagAlignBottom
	AlignLeft        = FlagAlignLeft
	AlignRight       = FlagAlignRight
)

// AlignMask selects the alignment bits of a Flags value.
const AlignMask = FlagAlignLeft | FlagAlignRight | FlagAlignTop | FlagAlignBottom

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }
