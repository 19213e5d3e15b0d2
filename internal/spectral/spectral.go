// Package spectral derives frequency-domain statistics from elevation grids:
// the radially averaged power spectrum, its log-log slope, and a box-counting
// fractal dimension.
package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

// Bin is one annulus of the radial power spectrum: an integer radial
// frequency and the mean spectral power over all cells at that radius.
type Bin struct {
	Freq  float64
	Power float64
}

// Exponent is the fitted log-log slope of the mid-band spectrum. Beta is
// negative for fractal surfaces (power falls with frequency); the same sign
// convention is assumed by the reverse-engineering fit.
type Exponent struct {
	Beta      float64
	Intercept float64
}

// Mid-band bounds for the slope fit. The DC side and the highest-frequency
// noise floor both bias the regression, so the fit runs over
// [fitFreqMin, min(W,H)/fitFreqMaxDiv].
const (
	fitFreqMin    = 5.0
	fitFreqMaxDiv = 3
)

// RadialPowerSpectrum computes the 2D FFT of the grid, bins |F|^2 by integer
// radial frequency measured from the centered zero-frequency origin, and
// averages each annulus. The DC bin is skipped.
func RadialPowerSpectrum(g *core.Grid) ([]Bin, error) {
	w, h := g.W, g.H
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("spectrum needs at least 2x2 grid, got %dx%d: %w", w, h, core.ErrInvalidSize)
	}

	coeff := fft2(g)

	cx, cy := w/2, h/2
	maxR := int(math.Hypot(float64(cx), float64(cy)))
	sums := make([]float64, maxR+1)
	counts := make([]int, maxR+1)

	for ky := 0; ky < h; ky++ {
		sy := (ky + h/2) % h // shifted row index, DC at (cy, cx)
		for kx := 0; kx < w; kx++ {
			sx := (kx + w/2) % w
			r := int(math.Hypot(float64(sx-cx), float64(sy-cy)))
			if r > maxR {
				r = maxR
			}
			c := coeff[ky*w+kx]
			p := real(c)*real(c) + imag(c)*imag(c)
			sums[r] += p
			counts[r]++
		}
	}

	bins := make([]Bin, 0, maxR)
	for r := 1; r <= maxR; r++ {
		if counts[r] == 0 {
			continue
		}
		bins = append(bins, Bin{Freq: float64(r), Power: sums[r] / float64(counts[r])})
	}
	return bins, nil
}

// EstimateExponent fits log(power) against log(frequency) over the mid-band
// and returns the slope and intercept.
func EstimateExponent(g *core.Grid) (Exponent, error) {
	bins, err := RadialPowerSpectrum(g)
	if err != nil {
		return Exponent{}, err
	}
	side := g.W
	if g.H < side {
		side = g.H
	}
	fmax := float64(side / fitFreqMaxDiv)

	var logF, logP []float64
	for _, b := range bins {
		if b.Freq < fitFreqMin || b.Freq > fmax || b.Power <= 0 {
			continue
		}
		logF = append(logF, math.Log(b.Freq))
		logP = append(logP, math.Log(b.Power))
	}
	if len(logF) < 2 {
		return Exponent{}, fmt.Errorf("only %d usable spectrum bins in [%v,%v]: %w",
			len(logF), fitFreqMin, fmax, core.ErrInvalidParameter)
	}

	intercept, beta := stat.LinearRegression(logF, logP, nil, false)
	return Exponent{Beta: beta, Intercept: intercept}, nil
}

// fft2 returns the unshifted 2D Fourier coefficients of the grid, rows first
// then columns.
func fft2(g *core.Grid) []complex128 {
	w, h := g.W, g.H
	values := g.Values()
	coeff := make([]complex128, w*h)
	for i, v := range values {
		coeff[i] = complex(v, 0)
	}

	rowFFT := fourier.NewCmplxFFT(w)
	row := make([]complex128, w)
	for y := 0; y < h; y++ {
		copy(row, coeff[y*w:(y+1)*w])
		rowFFT.Coefficients(coeff[y*w:(y+1)*w], row)
	}

	colFFT := fourier.NewCmplxFFT(h)
	colIn := make([]complex128, h)
	colOut := make([]complex128, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			colIn[y] = coeff[y*w+x]
		}
		colFFT.Coefficients(colOut, colIn)
		for y := 0; y < h; y++ {
			coeff[y*w+x] = colOut[y]
		}
	}
	return coeff
}
