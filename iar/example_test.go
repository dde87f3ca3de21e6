package iar_test

import (
	"fmt"

	"github.com/arealstats/besag/adjacency"
	"github.com/arealstats/besag/iar"
)

// ExampleEvaluator_LogDensity demonstrates the sampler-facing workflow:
// encode the study region's adjacency once, build an Evaluator, then
// evaluate the IAR contribution for each proposed (h, tau) and sum it
// into the caller's log-posterior accumulator.
func ExampleEvaluator_LogDensity() {
	// Two regions sharing one border: the minimal study area.
	enc, err := adjacency.Encode([][]int{{1}, {0}})
	if err != nil {
		fmt.Println("encode failed:", err)

		return
	}

	eval, err := iar.NewEvaluator(enc)
	if err != nil {
		fmt.Println("evaluator failed:", err)

		return
	}

	// One sampler iteration: a proposed spatial effect and precision.
	logContrib, err := eval.LogDensity([]float64{2.0, 3.0}, 1.0)
	if err != nil {
		fmt.Println("evaluation failed:", err)

		return
	}

	fmt.Printf("IAR log-density contribution: %.1f\n", logContrib)
	// Output:
	// IAR log-density contribution: -0.5
}
