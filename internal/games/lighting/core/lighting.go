package core

import "math"

// LightDistance returns the distance between two points in whole blocks:
// the Euclidean pixel distance truncated, then divided by BlockSize.
func LightDistance(a, b Point) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int(math.Sqrt(dx*dx+dy*dy)) / BlockSize
}

// BrightnessAt returns the brightness for a visible distance in [0, LightRadius].
// Brightness falls 16 levels per block and reaches exactly 0 at the radius.
func BrightnessAt(d int) uint8 {
	v := MaxBrightness - d*BlockSize*2
	if d == LightRadius {
		v++
	}
	return uint8(v)
}

// Illuminate recomputes visibility and brightness from the observer position.
// Beyond the light radius the body becomes invisible and keeps its last
// brightness.
func (b *Body) Illuminate(observer Point) {
	d := LightDistance(b.Pos, observer)
	if d > LightRadius {
		b.Visible = false
		return
	}
	b.Visible = true
	b.Brightness = BrightnessAt(d)
}

// ApplyLighting runs one lighting pass over an entity arena in place.
func ApplyLighting[T any, PT interface {
	*T
	Lit
}](items []T, observer Point) {
	for i := range items {
		PT(&items[i]).body().Illuminate(observer)
	}
}
