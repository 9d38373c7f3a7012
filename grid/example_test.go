package grid_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ppgrid/grid"
)

// ExamplePlane demonstrates a plane search with the variance index on a
// block whose second variable is constant: the entire variance lies
// along the first axis, so the optimal direction is (1, 0) exactly and
// the objective is the sample variance of the first column.
func ExamplePlane() {
	block := mat.NewDense(5, 2, []float64{
		-2, 0,
		-1, 0,
		0, 0,
		1, 0,
		2, 0,
	})
	variance := grid.IndexFunc(func(score, _ []float64) (float64, error) {
		return stat.Variance(score, nil), nil
	})

	res, err := grid.Plane(block, nil, variance, grid.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("w=(%.3f, %.3f)\n", res.Direction[0], res.Direction[1])
	fmt.Printf("objective=%.2f\n", res.Objective)
	// Output:
	// w=(1.000, 0.000)
	// objective=2.50
}

// ExampleReduce demonstrates the pairwise reducer on three variables
// where the first carries far more variance than the other two; the
// unit-norm direction concentrates on it.
func ExampleReduce() {
	data := mat.NewDense(6, 3, []float64{
		-5, 0.3, -0.2,
		-3, -0.1, 0.4,
		-1, 0.2, -0.3,
		1, -0.3, 0.1,
		3, 0.1, -0.4,
		5, -0.2, 0.2,
	})
	variance := grid.IndexFunc(func(score, _ []float64) (float64, error) {
		return stat.Variance(score, nil), nil
	})

	opts := grid.DefaultOptions()
	opts.NDir = 1001

	res, err := grid.Reduce(data, nil, variance, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	dominant := 0
	for j, w := range res.Direction {
		if math.Abs(w) > math.Abs(res.Direction[dominant]) {
			dominant = j
		}
	}
	fmt.Printf("norm=%.2f\n", floats.Norm(res.Direction, 2))
	fmt.Printf("dominant=%d\n", dominant)
	// Output:
	// norm=1.00
	// dominant=0
}
