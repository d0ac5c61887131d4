package lower

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/gomlx/loopnest/pkg/schedule"
	"github.com/gomlx/loopnest/pkg/types/dtypes"
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Loop is one loop of a StageNest.
type Loop struct {
	// Name is the qualified name of the loop variable, e.g. "f.s0.xo".
	Name string
	Dim  schedule.Dim
}

// String implements fmt.Stringer.
func (l Loop) String() string {
	return fmt.Sprintf("for %s in [%s, %s]", l.Name, l.Name+LoopMinSuffix, l.Name+LoopMaxSuffix)
}

// StageNest is the lowered loop nest of one stage of a function: the loops it iterates over,
// the definitions of their bounds, and what the directives of the stage resolved into.
type StageNest struct {
	Func   string
	Stage  int
	Prefix string

	// Args are the qualified names of the pure variables of the function, and RVars the ones of
	// the reduction variables of the stage. They are defined in the body in terms of the loops.
	Args, RVars []string

	// Loops from the outermost (the sentinel) to the innermost.
	Loops []Loop

	// Bounds define the bounds of the loops, in evaluation order: each may refer to the ones
	// before it, and to the inputs of the nest (see Inputs).
	Bounds []Let

	// Results of the directives of the stage, to be placed in the innermost loop.
	Results Results

	// Alignment is what is known about the loop extents after all directives.
	Alignment Alignment

	// Splits are the directives of the stage, in the order they were applied.
	Splits []schedule.Split
}

// LowerStage applies the directives of stage stageIndex of fn and returns its loop nest.
//
// It returns a *schedule.UserError if the schedule of the stage can't be realized.
func LowerStage(fn *schedule.Function, stageIndex int) (*StageNest, error) {
	stage, err := fn.Stage(stageIndex)
	if err != nil {
		return nil, err
	}
	if err := stage.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "lowering stage %d of %s", stageIndex, fn.Name)
	}
	for _, rv := range stage.RVars {
		if rv.Min == nil || rv.Extent == nil {
			return nil, schedule.UserErrorf(fn.Name, rv.Var, "reduction variable %s of stage %d has undefined bounds",
				rv.Var, stageIndex)
		}
		if rv.Min.DType != dtypes.Int32 || rv.Extent.DType != dtypes.Int32 {
			return nil, schedule.UserErrorf(fn.Name, rv.Var,
				"reduction variable %s of stage %d must have int32 bounds, got min=%s (%s) and extent=%s (%s)",
				rv.Var, stageIndex, rv.Min, rv.Min.DType, rv.Extent, rv.Extent.DType)
		}
	}

	prefix := StagePrefix(fn.Name, stageIndex)
	klog.V(1).Infof("lowering %s: %s", strings.TrimSuffix(prefix, "."), stage.DimsString())
	nest := &StageNest{
		Func:      fn.Name,
		Stage:     stageIndex,
		Prefix:    prefix,
		Alignment: InitialAlignment(fn.Schedule, stage),
		Splits:    stage.Splits,
	}
	nest.Results, err = ApplySplits(stage.Splits, fn.IsUpdate(stageIndex), prefix, nest.Alignment)
	if err != nil {
		if userErr := schedule.AsUserError(err); userErr != nil && userErr.Func == "" {
			userErr.Func = fn.Name
		}
		return nil, err
	}

	nest.Bounds = ArgLoopBounds(fn.Args, prefix)
	nest.Bounds = append(nest.Bounds, ReductionLoopBounds(stage.RVars, prefix)...)
	nest.Bounds = append(nest.Bounds, StageLoopBounds(stage.Splits, prefix)...)
	for _, arg := range fn.Args {
		nest.Args = append(nest.Args, prefix+arg)
	}
	for _, rv := range stage.RVars {
		nest.RVars = append(nest.RVars, prefix+rv.Var)
	}
	for i := len(stage.Dims) - 1; i >= 0; i-- {
		d := stage.Dims[i]
		nest.Loops = append(nest.Loops, Loop{Name: prefix + d.Var, Dim: d})
	}
	return nest, nil
}

// PurifiedRVars maps the qualified name of each purified reduction variable to the qualified name
// of the pure variable that replaces it. Renames before the purify are followed.
func (n *StageNest) PurifiedRVars() map[string]string {
	purified := make(map[string]string)
	for _, rvar := range n.RVars {
		name := strings.TrimPrefix(rvar, n.Prefix)
		for _, split := range n.Splits {
			if split.OldVar != name {
				continue
			}
			if split.IsRename() {
				name = split.Outer
				continue
			}
			if split.IsPurify() {
				purified[rvar] = n.Prefix + split.Outer
			}
			break
		}
	}
	return purified
}

// Inputs returns the sorted names of the variables the bounds depend on but don't define:
// typically the region required of each pure variable, and the bounds of the reduction domain.
func (n *StageNest) Inputs() []string {
	defined := set.New[string](len(n.Bounds))
	inputs := set.New[string](len(n.Args) * 2)
	for _, let := range n.Bounds {
		for name := range ir.FreeVars(let.Value).Items() {
			if !defined.Contains(name) {
				inputs.Insert(name)
			}
		}
		defined.Insert(let.Name)
	}
	return slices.Sorted(inputs.Items())
}

// Guard returns the conjunction of the predicates of the nest, true if there are none.
func (n *StageNest) Guard() *ir.Expr {
	return ir.Simplify(ir.Conjunction(n.Results.Predicates()...))
}

// Site returns the values of the pure and reduction variables of the function at the current
// iteration, in terms of the loop variables and the let bindings.
func (n *StageNest) Site() []*ir.Expr {
	site := make([]*ir.Expr, 0, len(n.Args)+len(n.RVars))
	for _, name := range slices.Concat(n.Args, n.RVars) {
		site = append(site, n.Results.Substitute(ir.Var(name)))
	}
	return site
}

// Write writes the loop nest as pseudo-code.
func (n *StageNest) Write(w io.Writer) error {
	var err error
	indent := ""
	writeLine := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, indent+format+"\n", args...)
	}

	for _, let := range n.Bounds {
		writeLine("let %s", let)
	}
	for _, loop := range n.Loops {
		writeLine("%s: %s", loop, loop.Dim.ForType)
		indent += "  "
	}
	lets := n.Results.LetBindings()
	for i := len(lets) - 1; i >= 0; i-- {
		writeLine("let %s", lets[i])
	}
	guard := n.Guard()
	if !ir.IsOne(guard) {
		writeLine("if %s:", guard)
		indent += "  "
	}
	site := make([]string, 0, len(n.Args)+len(n.RVars))
	for _, e := range n.Site() {
		site = append(site, e.String())
	}
	writeLine("%s(%s)", n.Func, strings.Join(site, ", "))
	return err
}

// String implements fmt.Stringer.
func (n *StageNest) String() string {
	var sb strings.Builder
	if err := n.Write(&sb); err != nil {
		return fmt.Sprintf("<invalid loop nest: %v>", err)
	}
	return sb.String()
}
