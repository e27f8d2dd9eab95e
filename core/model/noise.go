package model

import "math"

// Noise is a continuous 1-D field with values in [0,1).
type Noise interface {
	At(x float64) float64
}

// ValueNoise is seeded fractal value noise: a hashed lattice of random values,
// cosine-interpolated and summed over octaves with halving weight.
type ValueNoise struct {
	Seed    uint64
	Octaves int
	Falloff float64
}

func NewValueNoise(seed uint64) *ValueNoise {
	return &ValueNoise{Seed: seed, Octaves: 4, Falloff: 0.5}
}

func (n *ValueNoise) At(x float64) float64 {
	octaves := n.Octaves
	if octaves < 1 {
		octaves = 1
	}
	falloff := n.Falloff
	if falloff <= 0 || falloff >= 1 {
		falloff = 0.5
	}

	var sum, total float64
	amp, freq := 1.0, 1.0
	for o := 0; o < octaves; o++ {
		sum += amp * n.smooth(x*freq, uint64(o))
		total += amp
		amp *= falloff
		freq *= 2
	}
	v := sum / total
	if v >= 1 {
		v = math.Nextafter(1, 0)
	}
	return v
}

func (n *ValueNoise) smooth(x float64, octave uint64) float64 {
	fl := math.Floor(x)
	i := int64(fl)
	t := x - fl
	w := 0.5 * (1 - math.Cos(t*math.Pi))
	a := n.lattice(i, octave)
	b := n.lattice(i+1, octave)
	return a + (b-a)*w
}

// lattice hashes (seed, octave, i) with splitmix64 into [0,1).
func (n *ValueNoise) lattice(i int64, octave uint64) float64 {
	z := n.Seed ^ uint64(i)*0x9e3779b97f4a7c15 ^ octave*0xd1b54a32d192ed03
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return float64(z>>11) / (1 << 53)
}
