package simulation_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/replan/gridgraph"
	"github.com/katalvlaran/replan/simulation"
)

// ExampleSimulation_Run plans twice on a fixed grid with relocation disabled.
func ExampleSimulation_Run() {
	g, _ := gridgraph.FromRows([][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	s, err := simulation.New(
		simulation.WithGrid(g),
		simulation.WithSteps(2),
		simulation.WithMoveCount(0),
		simulation.WithPacer(simulation.NopPacer{}),
		simulation.WithReporter(simulation.ReporterFunc(func(r simulation.StepResult) {
			fmt.Printf("step %d/%d found=%v length=%d\n", r.Step, r.Steps, r.Found, len(r.Path))
		})),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	m, _ := s.Run(context.Background())
	fmt.Println("successes:", m.Successes, "shortest:", m.ShortestPath)
	// Output:
	// step 1/2 found=true length=5
	// step 2/2 found=true length=5
	// successes: 2 shortest: 4
}
