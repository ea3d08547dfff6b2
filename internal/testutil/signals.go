package testutil

import (
	"math"
	"math/rand"
)

// Gaussian samples amplitude*exp(-(i-center)²/(2σ²)) at i = 0..length-1.
func Gaussian(length int, center, sigma, amplitude float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		d := float64(i) - center
		out[i] = amplitude * math.Exp(-d*d/(2*sigma*sigma))
	}
	return out
}

// Linear returns start + step*i for i = 0..length-1.
func Linear(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Band returns a row-major width×height frame whose rows top..bottom-1
// carry profile (repeated when shorter than width) on top of background.
// Rows outside the band hold background only.
func Band(width, height, top, bottom int, profile []float64, background float64) []float64 {
	out := DC(background, width*height)
	for y := max(top, 0); y < min(bottom, height); y++ {
		for x := range width {
			if len(profile) > 0 {
				out[y*width+x] += profile[x%len(profile)]
			}
		}
	}
	return out
}
