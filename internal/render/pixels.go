package render

import "image/color"

// FillPalette writes one RGBA pixel per cell into buf. Values past the end of
// the palette use its last entry; an empty palette yields transparent black.
func FillPalette(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}
	for i, v := range cells {
		c := palette[min(int(v), len(palette)-1)]
		copy(buf[i*4:i*4+4], []byte{c.R, c.G, c.B, c.A})
	}
}
