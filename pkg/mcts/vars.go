package mcts

import (
	"math"
	"time"
)

// Number of exploration rounds run for every decision. The fixed
// count bounds worst-case latency of a ChooseMove call.
const DefaultRounds = 1000

// Exploration parameter used in the UCB1 potential, higher values
// favor exploration over exploitation. Default is sqrt(2).
var ExplorationParam float64 = math.Sqrt2

// Set the exploration parameter used in the UCB1 potential
func SetExplorationParam(c float64) {
	ExplorationParam = max(0.0, c)
}

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator for the random number sources drawn per
// operation, by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
