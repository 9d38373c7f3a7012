package ppdire_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ppgrid/moment"
	"github.com/katalvlaran/ppgrid/ppdire"
)

// ExampleModel_Fit extracts one variance-maximizing component from a
// table whose second column is constant: every bit of variance lies
// along the first axis, so the weight vector is (1, 0) exactly and the
// component explains all of the preprocessed variance.
func ExampleModel_Fit() {
	x := mat.NewDense(4, 2, []float64{
		-3, 1,
		-1, 1,
		1, 1,
		3, 1,
	})

	idx, err := moment.New(moment.Variance, moment.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	model, err := ppdire.New(idx, ppdire.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_, err = model.Fit(x, nil, ppdire.DefaultFitOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("weights=(%.3f, %.3f)\n", model.Weights.At(0, 0), model.Weights.At(1, 0))
	fmt.Printf("explained=%.2f\n", model.ExplainedVar[0])
	// Output:
	// weights=(1.000, 0.000)
	// explained=1.00
}
