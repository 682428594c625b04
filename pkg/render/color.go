// pkg/render/color.go
package render

import "image/color"

// RGBA8 раскладывает цвет в 8-битные компоненты.
func RGBA8(c color.Color) (r, g, b, a uint8) {
	if c == nil {
		return 0, 0, 0, 0
	}
	cr, cg, cb, ca := c.RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)
}

