package gamemath

import "image"

// AlphaThreshold is the minimum alpha (8-bit) for a pixel to count as solid.
const AlphaThreshold = 127

// Mask is a per-pixel opacity silhouette used for exact overlap tests.
type Mask struct {
	W, H int
	bits []uint64
}

// NewMask builds a mask from the alpha channel of img.
func NewMask(img image.Image) *Mask {
	b := img.Bounds()
	m := newMask(b.Dx(), b.Dy())
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > AlphaThreshold {
				m.set(x, y)
			}
		}
	}
	return m
}

// SolidMask returns a mask with every pixel set.
func SolidMask(w, h int) *Mask {
	m := newMask(w, h)
	for i := 0; i < w*h; i++ {
		m.bits[i/64] |= 1 << (i % 64)
	}
	return m
}

func newMask(w, h int) *Mask {
	return &Mask{W: w, H: h, bits: make([]uint64, (w*h+63)/64)}
}

func (m *Mask) set(x, y int) {
	i := y*m.W + x
	m.bits[i/64] |= 1 << (i % 64)
}

// At reports whether the pixel at x,y is solid. Out of range pixels are empty.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	i := y*m.W + x
	return m.bits[i/64]&(1<<(i%64)) != 0
}

// Count returns the number of solid pixels.
func (m *Mask) Count() int {
	n := 0
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.At(x, y) {
				n++
			}
		}
	}
	return n
}

// Overlaps reports whether any solid pixel of o, placed at offset dx,dy relative to
// m's top-left corner, coincides with a solid pixel of m.
func (m *Mask) Overlaps(o *Mask, dx, dy int) bool {
	if m == nil || o == nil {
		return false
	}
	x0, x1 := max(0, dx), min(m.W, dx+o.W)
	y0, y1 := max(0, dy), min(m.H, dy+o.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) && o.At(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
