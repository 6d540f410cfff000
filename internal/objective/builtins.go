package objective

import (
	"fmt"
	"math"
)

func box(lo, hi float64, dims int) ([]float64, []float64) {
	lower := make([]float64, dims)
	upper := make([]float64, dims)
	for k := range lower {
		lower[k] = lo
		upper[k] = hi
	}
	return lower, upper
}

// Paraboloid is a smooth concave bowl on [0,1]^dims with its maximum of 0 at
// the center point (0.5, ..., 0.5).
func Paraboloid(dims int) Objective {
	lower, upper := box(0, 1, dims)
	return New("paraboloid", fmt.Sprintf("negated %d-d paraboloid centered at 0.5", dims),
		lower, upper, func(x []float64) float64 {
			s := 0.0
			for _, v := range x {
				d := v - 0.5
				s -= d * d
			}
			return s
		})
}

// Sphere is the negated sphere function on [-5.12, 5.12]^dims, maximum 0 at
// the origin.
func Sphere(dims int) Objective {
	lower, upper := box(-5.12, 5.12, dims)
	return New("sphere", fmt.Sprintf("negated %d-d sphere function", dims),
		lower, upper, func(x []float64) float64 {
			s := 0.0
			for _, v := range x {
				s -= v * v
			}
			return s
		})
}

// Rastrigin is the negated Rastrigin function on [-5.12, 5.12]^dims, a highly
// multimodal surface with its maximum of 0 at the origin.
func Rastrigin(dims int) Objective {
	lower, upper := box(-5.12, 5.12, dims)
	return New("rastrigin", fmt.Sprintf("negated %d-d Rastrigin function", dims),
		lower, upper, func(x []float64) float64 {
			s := 10 * float64(len(x))
			for _, v := range x {
				s += v*v - 10*math.Cos(2*math.Pi*v)
			}
			return -s
		})
}

// Rosenbrock is the negated Rosenbrock valley on [-2.048, 2.048]^dims,
// maximum 0 at (1, ..., 1).
func Rosenbrock(dims int) Objective {
	lower, upper := box(-2.048, 2.048, dims)
	return New("rosenbrock", fmt.Sprintf("negated %d-d Rosenbrock valley", dims),
		lower, upper, func(x []float64) float64 {
			s := 0.0
			for k := 0; k+1 < len(x); k++ {
				a := x[k+1] - x[k]*x[k]
				b := 1 - x[k]
				s += 100*a*a + b*b
			}
			return -s
		})
}

// Ackley is the negated Ackley function on [-32.768, 32.768]^dims, maximum 0
// at the origin.
func Ackley(dims int) Objective {
	lower, upper := box(-32.768, 32.768, dims)
	return New("ackley", fmt.Sprintf("negated %d-d Ackley function", dims),
		lower, upper, func(x []float64) float64 {
			n := float64(len(x))
			sumSq, sumCos := 0.0, 0.0
			for _, v := range x {
				sumSq += v * v
				sumCos += math.Cos(2 * math.Pi * v)
			}
			return -(-20*math.Exp(-0.2*math.Sqrt(sumSq/n)) -
				math.Exp(sumCos/n) + 20 + math.E)
		})
}
