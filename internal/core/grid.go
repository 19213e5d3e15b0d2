package core

import (
	"fmt"
	"math"
)

// Grid stores a 2D field of float64 elevation values in row-major order.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]float64, w*h)}
}

// GridFromValues wraps an existing row-major slice. The slice length must be
// w*h; ownership transfers to the grid.
func GridFromValues(w, h int, values []float64) (*Grid, error) {
	if w <= 0 || h <= 0 || len(values) != w*h {
		return nil, fmt.Errorf("grid %dx%d with %d values: %w", w, h, len(values), ErrInvalidSize)
	}
	return &Grid{W: w, H: h, data: values}, nil
}

// Values exposes the backing slice so callers can read/write cells directly.
func (g *Grid) Values() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y).
func (g *Grid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set writes the value at (x, y).
func (g *Grid) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]float64, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// MinMax returns the smallest and largest cell values.
func (g *Grid) MinMax() (min, max float64) {
	min, max = g.data[0], g.data[0]
	for _, v := range g.data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Sum returns the total of all cell values.
func (g *Grid) Sum() float64 {
	total := 0.0
	for _, v := range g.data {
		total += v
	}
	return total
}

// Mean returns the average cell value.
func (g *Grid) Mean() float64 {
	return g.Sum() / float64(len(g.data))
}

// Normalize rescales the grid in place to [0,1]. A flat grid becomes all
// zeros. This is the canonical range generators hand downstream.
func (g *Grid) Normalize() {
	min, max := g.MinMax()
	span := max - min
	if span == 0 {
		g.Fill(0)
		return
	}
	inv := 1 / span
	for i, v := range g.data {
		g.data[i] = (v - min) * inv
	}
}

// EqualizeMean scales the grid so its mean matches target. A zero-mean grid
// is shifted instead of scaled.
func (g *Grid) EqualizeMean(target float64) {
	mean := g.Mean()
	if mean == 0 {
		for i := range g.data {
			g.data[i] += target
		}
		return
	}
	factor := target / mean
	for i := range g.data {
		g.data[i] *= factor
	}
}

// CheckFinite reports ErrNumericalInstability if any cell is NaN or ±Inf.
func (g *Grid) CheckFinite() error {
	for i, v := range g.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite value %v at index %d: %w", v, i, ErrNumericalInstability)
		}
	}
	return nil
}
