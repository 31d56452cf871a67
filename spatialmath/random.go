package spatialmath

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandomQuaternion samples a unit quaternion uniformly over all rotations by normalizing four
// independent standard normal samples. A nil src uses the global source.
func RandomQuaternion(src rand.Source) Quaternion {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for {
		q, err := NewQuaternionXYZW(dist.Rand(), dist.Rand(), dist.Rand(), dist.Rand()).Normalized()
		if err == nil {
			return q
		}
	}
}

// RandomEuler samples Euler angles uniformly in [0, 2π) on every axis.
func RandomEuler(src rand.Source) Vector3 {
	dist := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}
	return NewVector3(dist.Rand(), dist.Rand(), dist.Rand())
}
