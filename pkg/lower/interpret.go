package lower

import (
	"maps"

	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/pkg/errors"
)

// MaxIterations bounds the number of iterations Iterate runs before giving up.
var MaxIterations int64 = 1 << 24

// Iterate runs the loop nest: inputs gives the values of the variables listed by Inputs, and
// visit is called with the values of Site at every iteration of the innermost loop whose guard
// holds, in execution order. The site slice is reused across calls.
//
// It is a reference interpreter, used to check and explore schedules on small domains.
func (n *StageNest) Iterate(inputs map[string]int64, visit func(site []int64) error) error {
	env := maps.Clone(inputs)
	if env == nil {
		env = make(map[string]int64)
	}
	for _, let := range n.Bounds {
		v, err := ir.Eval(let.Value, env)
		if err != nil {
			return errors.WithMessagef(err, "evaluating bound %s", let)
		}
		env[let.Name] = v
	}

	lets := n.Results.LetBindings()
	guard := n.Guard()
	site := n.Site()
	values := make([]int64, len(site))
	var iterations int64

	body := func() error {
		iterations++
		if iterations > MaxIterations {
			return errors.Errorf("loop nest of %s runs more than %d iterations", n.Prefix, MaxIterations)
		}
		// The first let binding is the innermost one.
		for i := len(lets) - 1; i >= 0; i-- {
			v, err := ir.Eval(lets[i].Value, env)
			if err != nil {
				return errors.WithMessagef(err, "evaluating let %s", lets[i])
			}
			env[lets[i].Name] = v
		}
		cond, err := ir.Eval(guard, env)
		if err != nil {
			return errors.WithMessagef(err, "evaluating guard %s", guard)
		}
		if cond == 0 {
			return nil
		}
		for i, e := range site {
			if values[i], err = ir.Eval(e, env); err != nil {
				return errors.WithMessagef(err, "evaluating %s", e)
			}
		}
		return visit(values)
	}

	var loop func(depth int) error
	loop = func(depth int) error {
		if depth == len(n.Loops) {
			return body()
		}
		name := n.Loops[depth].Name
		loopMin, foundMin := env[name+LoopMinSuffix]
		loopExtent, foundExtent := env[name+LoopExtentSuffix]
		if !foundMin || !foundExtent {
			return errors.Errorf("bounds of loop %s are not defined", name)
		}
		for i := loopMin; i < loopMin+loopExtent; i++ {
			env[name] = i
			if err := loop(depth + 1); err != nil {
				return err
			}
		}
		return nil
	}
	return loop(0)
}
