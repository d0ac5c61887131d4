package lower

import (
	"fmt"

	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/gomlx/loopnest/pkg/schedule"
	"k8s.io/klog/v2"
)

// Suffixes of the names of the bounds of a loop variable.
const (
	LoopMinSuffix    = ".loop_min"
	LoopMaxSuffix    = ".loop_max"
	LoopExtentSuffix = ".loop_extent"

	// MinSuffix and MaxSuffix name the region of a pure variable required by the consumers of a
	// function, as computed by bounds inference.
	MinSuffix = ".min"
	MaxSuffix = ".max"
)

// StagePrefix returns the prefix of the names of the loop variables of a stage, e.g. "f.s0.".
func StagePrefix(funcName string, stageIndex int) string {
	return fmt.Sprintf("%s.s%d.", funcName, stageIndex)
}

// boundLets returns the let bindings of the min, max and extent of the loop name.
func boundLets(name string, loopMin, loopMax, loopExtent *ir.Expr) []Let {
	return []Let{
		{Name: name + LoopMinSuffix, Value: ir.Simplify(loopMin)},
		{Name: name + LoopMaxSuffix, Value: ir.Simplify(loopMax)},
		{Name: name + LoopExtentSuffix, Value: ir.Simplify(loopExtent)},
	}
}

// ComputeLoopBoundsAfterSplit returns the let bindings defining the bounds of the loops
// introduced by split, in terms of the bounds of the loops it consumes.
//
// The new loops all start at 0: ApplySplit offsets their values by the min of the old loop.
// PurifyRVar introduces no bounds, since the purified variable is bounded like a pure one.
func ComputeLoopBoundsAfterSplit(split schedule.Split, prefix string) []Let {
	oldName := prefix + split.OldVar
	innerName := prefix + split.Inner
	outerName := prefix + split.Outer

	var lets []Let
	switch split.SplitType {
	case schedule.SplitVar:
		factor := split.Factor
		oldMin := ir.Var(oldName + LoopMinSuffix)
		oldMax := ir.Var(oldName + LoopMaxSuffix)
		outerExtent := ir.Simplify(ir.Div(ir.Add(ir.Sub(oldMax, oldMin), factor), factor))
		lets = append(lets, boundLets(innerName, ir.Int(0), ir.Sub(factor, ir.Int(1)), factor)...)
		lets = append(lets, boundLets(outerName, ir.Int(0), ir.Sub(outerExtent, ir.Int(1)), outerExtent)...)

	case schedule.FuseVars:
		extent := ir.Mul(ir.Var(innerName+LoopExtentSuffix), ir.Var(outerName+LoopExtentSuffix))
		lets = boundLets(oldName, ir.Int(0), ir.Sub(extent, ir.Int(1)), extent)

	case schedule.RenameVar:
		lets = boundLets(outerName,
			ir.Var(oldName+LoopMinSuffix), ir.Var(oldName+LoopMaxSuffix), ir.Var(oldName+LoopExtentSuffix))

	case schedule.PurifyRVar:
	}
	for _, let := range lets {
		klog.V(2).Infof("  bound %s", let)
	}
	return lets
}

// StageLoopBounds returns the let bindings of the bounds of all loops introduced by splits,
// in evaluation order. Variables introduced by PurifyRVar get the bounds of a pure variable
// (see ArgLoopBounds).
func StageLoopBounds(splits []schedule.Split, prefix string) []Let {
	var lets []Let
	for _, split := range splits {
		lets = append(lets, ComputeLoopBoundsAfterSplit(split, prefix)...)
		if split.IsPurify() {
			lets = append(lets, argLoopBounds(prefix+split.Outer)...)
		}
	}
	return lets
}

// ArgLoopBounds returns the let bindings of the bounds of the loops over the pure variables
// args, from the region required of them (prefix+arg+".min" and ".max"), followed by the
// bounds of the outermost sentinel loop, which has a single iteration.
func ArgLoopBounds(args []string, prefix string) []Let {
	lets := make([]Let, 0, 3*len(args)+3)
	for _, arg := range args {
		lets = append(lets, argLoopBounds(prefix+arg)...)
	}
	lets = append(lets, boundLets(prefix+schedule.OutermostVar, ir.Int(0), ir.Int(0), ir.Int(1))...)
	return lets
}

func argLoopBounds(name string) []Let {
	argMin, argMax := ir.Var(name+MinSuffix), ir.Var(name+MaxSuffix)
	return boundLets(name, argMin, argMax, ir.Sub(ir.Add(argMax, ir.Int(1)), argMin))
}

// ReductionLoopBounds returns the let bindings of the bounds of the loops over the reduction
// variables, iterating over [Min, Min+Extent).
func ReductionLoopBounds(rvars []schedule.ReductionVariable, prefix string) []Let {
	lets := make([]Let, 0, 3*len(rvars))
	for _, rv := range rvars {
		lets = append(lets, boundLets(prefix+rv.Var, rv.Min, ir.Sub(ir.Add(rv.Min, rv.Extent), ir.Int(1)), rv.Extent)...)
	}
	return lets
}

// InitialAlignment returns what is known about the extents of the loops of a stage before
// any directive is applied: explicit bounds of the function fix the extent of the loops over
// pure variables (or, failing that, a modulus of it), and the reduction domain fixes the
// extent of the loops over reduction variables.
func InitialAlignment(fs *schedule.FuncSchedule, stage *schedule.StageSchedule) Alignment {
	alignment := NewAlignment()
	for _, b := range fs.Bounds {
		switch {
		case b.Extent != nil:
			alignment[b.Var] = b.Extent
		case b.Modulus != nil:
			alignment[b.Var] = b.Modulus
		}
	}
	for _, rv := range stage.RVars {
		if rv.Extent != nil {
			alignment[rv.Var] = rv.Extent
		}
	}
	return alignment
}
