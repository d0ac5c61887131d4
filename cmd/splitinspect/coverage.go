package main

import (
	"fmt"
	"maps"
	"strings"

	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/gomlx/loopnest/pkg/lower"
	"github.com/pkg/errors"
)

// Report summarizes one run of a loop nest over the required region.
type Report struct {
	Nest *lower.StageNest

	// Iterations is the number of times the body was executed.
	Iterations int64

	// Required is the number of sites in the required region.
	Required int64

	// Covered is the number of distinct required sites visited.
	Covered int64

	// Recomputed is the number of visits to sites that had been visited before.
	Recomputed int64

	// Outside is the number of visits to sites outside the required region of the pure variables.
	// RoundUp tails can do that.
	Outside int64
}

// Complete returns whether every required site was visited.
func (r *Report) Complete() bool {
	return r.Covered == r.Required
}

func (r *Report) String() string {
	return fmt.Sprintf("%d iterations, %d of %d required sites covered, %d recomputed, %d outside the region",
		r.Iterations, r.Covered, r.Required, r.Recomputed, r.Outside)
}

// Run the loop nest with the given inputs and report how it covered the required region.
func Run(nest *lower.StageNest, inputs map[string]int64) (*Report, error) {
	numArgs := len(nest.Args)
	mins := make([]int64, numArgs)
	maxs := make([]int64, numArgs)
	required := int64(1)
	for i, arg := range nest.Args {
		var found bool
		if mins[i], found = inputs[arg+lower.MinSuffix]; !found {
			return nil, errors.Errorf("missing input %s%s", arg, lower.MinSuffix)
		}
		if maxs[i], found = inputs[arg+lower.MaxSuffix]; !found {
			return nil, errors.Errorf("missing input %s%s", arg, lower.MaxSuffix)
		}
		required *= maxs[i] - mins[i] + 1
	}
	if len(nest.RVars) > 0 {
		// The reduction domain is given by the bounds of its loops.
		env := maps.Clone(inputs)
		for _, let := range nest.Bounds {
			value, err := ir.Eval(let.Value, env)
			if err != nil {
				return nil, errors.WithMessagef(err, "evaluating %s", let.Name)
			}
			env[let.Name] = value
		}
		// A purified reduction variable iterates over the region of its replacement instead.
		purified := nest.PurifiedRVars()
		for _, rvar := range nest.RVars {
			if target, found := purified[rvar]; found {
				rvar = target
			}
			required *= env[rvar+lower.LoopExtentSuffix]
		}
	}

	report := &Report{Nest: nest, Required: required}
	visited := make(map[string]bool)
	var key strings.Builder
	err := nest.Iterate(inputs, func(site []int64) error {
		report.Iterations++
		for i := range numArgs {
			if site[i] < mins[i] || site[i] > maxs[i] {
				report.Outside++
				return nil
			}
		}
		key.Reset()
		for _, v := range site {
			fmt.Fprintf(&key, "%d,", v)
		}
		if visited[key.String()] {
			report.Recomputed++
			return nil
		}
		visited[key.String()] = true
		report.Covered++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
