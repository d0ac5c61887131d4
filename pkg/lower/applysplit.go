package lower

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/gomlx/loopnest/pkg/schedule"
	"github.com/gomlx/loopnest/pkg/types/dtypes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Alignment maps an unqualified loop variable name to an expression known to evenly divide
// the extent of that loop.
//
// It is created for the lowering of one stage (see InitialAlignment) and threaded through the
// directives of that stage: ApplySplit reads it to skip unneeded guards, and records in it what
// it learns about the loops it introduces. It must not be shared across stages.
type Alignment map[string]*ir.Expr

// NewAlignment returns an empty Alignment.
func NewAlignment() Alignment {
	return make(Alignment)
}

// ResolveTail returns the tail strategy a SplitVar directive actually uses: an explicit
// strategy is kept, and TailAuto becomes TailGuardWithIf for exact splits, TailRoundUp for
// splits of update stages and TailShiftInwards otherwise.
func ResolveTail(split schedule.Split, isUpdate bool) schedule.TailStrategy {
	if split.Tail != schedule.TailAuto {
		return split.Tail
	}
	switch {
	case split.Exact:
		return schedule.TailGuardWithIf
	case isUpdate:
		return schedule.TailRoundUp
	default:
		return schedule.TailShiftInwards
	}
}

// ApplySplit resolves one directive into substitutions, let bindings and predicates.
//
// All variables are referred to as prefix + name, where prefix identifies the stage being
// lowered (see StagePrefix). Bounds of a loop v are referred to as prefix+v+".loop_min",
// ".loop_max" and ".loop_extent".
//
// It returns a *schedule.UserError if the directive can't be realized, in which case neither
// the results nor the alignment are changed.
func ApplySplit(split schedule.Split, isUpdate bool, prefix string, alignment Alignment) (Results, error) {
	switch split.SplitType {
	case schedule.SplitVar:
		return applySplitVar(split, isUpdate, prefix, alignment)
	case schedule.FuseVars:
		return applyFuse(split, prefix, alignment), nil
	case schedule.RenameVar, schedule.PurifyRVar:
		return applyRename(split, prefix), nil
	}
	exceptions.Panicf("internal error: unknown split type %s applying %s", split.SplitType, split)
	return nil, nil
}

// ApplySplits applies the directives in order, concatenating their results.
func ApplySplits(splits []schedule.Split, isUpdate bool, prefix string, alignment Alignment) (Results, error) {
	var results Results
	for _, split := range splits {
		splitResults, err := ApplySplit(split, isUpdate, prefix, alignment)
		if err != nil {
			return nil, errors.WithMessagef(err, "applying %s to %s", split, prefix)
		}
		results = append(results, splitResults...)
	}
	return results, nil
}

// validateSplitVar returns a user error if the split can't be realized with the given tail strategy.
func validateSplitVar(split schedule.Split, isUpdate bool, prefix string, tail schedule.TailStrategy) error {
	if split.Factor == nil {
		return schedule.UserErrorf("", split.OldVar, "can't split %s%s by an undefined factor", prefix, split.OldVar)
	}
	if split.Factor.DType != dtypes.Int32 {
		return schedule.UserErrorf("", split.OldVar, "can't split %s%s by %s: factor must be an int32, got %s",
			prefix, split.OldVar, split.Factor, split.Factor.DType)
	}
	if factor, ok := ir.AsConst(ir.Simplify(split.Factor)); ok && factor <= 0 {
		return schedule.UserErrorf("", split.OldVar, "can't split %s%s by %d: Split factors must be strictly positive",
			prefix, split.OldVar, factor)
	}
	if isUpdate && tail == schedule.TailShiftInwards {
		return schedule.UserErrorf("", split.OldVar,
			"can't use TailStrategy ShiftInwards to split %s%s of an update definition: "+
				"it may change the values the update reads and writes, use GuardWithIf or RoundUp instead",
			prefix, split.OldVar)
	}
	if split.Exact && tail != schedule.TailGuardWithIf {
		return schedule.UserErrorf("", split.OldVar,
			"can't split %s%s with TailStrategy %s: splits of reduction variables must be exact, "+
				"use GuardWithIf (or Auto)", prefix, split.OldVar, tail)
	}
	return nil
}

func applySplitVar(split schedule.Split, isUpdate bool, prefix string, alignment Alignment) (Results, error) {
	tail := ResolveTail(split, isUpdate)
	if err := validateSplitVar(split, isUpdate, prefix, tail); err != nil {
		return nil, err
	}
	klog.V(1).Infof("split %s%s into %s and %s by %s: tail strategy %s", prefix, split.OldVar, split.Outer, split.Inner,
		split.Factor, tail)

	factor := ir.Simplify(split.Factor)
	outer := ir.Var(prefix + split.Outer)
	inner := ir.Var(prefix + split.Inner)
	oldName := prefix + split.OldVar
	oldMin := ir.Var(oldName + ".loop_min")
	oldMax := ir.Var(oldName + ".loop_max")
	oldExtent := ir.Var(oldName + ".loop_extent")
	baseName := prefix + split.Inner + ".base"
	baseVar := ir.Var(baseName)

	base := ir.Add(ir.Mul(outer, factor), oldMin)
	var results Results
	emit := func(resultType ResultType, name string, value *ir.Expr) {
		value = ir.Simplify(value)
		klog.V(2).Infof("  %s %s = %s", resultType, name, value)
		results = append(results, ApplySplitResult{Type: resultType, Name: name, Value: value, Tail: tail})
	}

	known, isKnown := alignment[split.OldVar]
	alignment[split.Inner] = factor
	switch {
	case isKnown && ir.IsZero(ir.Simplify(ir.Mod(known, factor))):
		// The factor divides the extent: no need to adjust the base or to guard the body.
		alignment[split.Outer] = ir.Simplify(ir.Div(known, factor))
		klog.V(2).Infof("  %s%s extent is a multiple of %s: %s%s extent is a multiple of %s",
			prefix, split.OldVar, factor, prefix, split.Outer, alignment[split.Outer])

	case ir.IsOne(factor):
		// Trivially exact, but nothing new is known about the outer loop.

	case tail.IsGuard():
		// A single rebased variable, so bounds inference can relate it to the guard.
		rebasedName := oldName + ".rebased"
		rebasedVar := ir.Var(rebasedName)
		emit(ResultSubstitution, oldName, ir.Add(rebasedVar, oldMin))
		emit(ResultPredicate, "", ir.Likely(ir.LT(rebasedVar, oldExtent)))
		emit(ResultLetBinding, rebasedName, ir.Add(ir.Mul(outer, factor), inner))

	case tail == schedule.TailShiftInwards:
		// Shift the last tile inwards so it ends at the old max. The base is only worth a loop
		// partition if this is the innermost non-trivial loop.
		base = ir.Min(ir.LikelyIfInnermost(base), ir.Add(oldMax, ir.Sub(ir.Int(1), factor)))

	case tail == schedule.TailRoundUp:
		// The caller guarantees the extent is (or can be rounded up to) a multiple of the factor.

	default:
		exceptions.Panicf("internal error: unexpected tail strategy %s splitting %s", tail, oldName)
	}

	emit(ResultSubstitution, oldName, ir.Add(baseVar, inner))
	emit(ResultLetBinding, oldName, ir.Add(baseVar, inner))
	emit(ResultLetBinding, baseName, base)
	return results, nil
}

func applyFuse(split schedule.Split, prefix string, alignment Alignment) Results {
	fused := ir.Var(prefix + split.OldVar)
	innerMin := ir.Var(prefix + split.Inner + ".loop_min")
	outerMin := ir.Var(prefix + split.Outer + ".loop_min")
	innerExtent := ir.Var(prefix + split.Inner + ".loop_extent")

	// Clamped so that an empty inner loop doesn't divide by zero.
	factor := ir.Max(innerExtent, ir.Int(1))
	innerValue := ir.Add(ir.Mod(fused, factor), innerMin)
	outerValue := ir.Add(ir.Div(fused, factor), outerMin)
	klog.V(1).Infof("fuse %s%s and %s%s into %s%s", prefix, split.Inner, prefix, split.Outer, prefix, split.OldVar)

	results := Results{
		{Type: ResultSubstitution, Name: prefix + split.Inner, Value: innerValue, Tail: split.Tail},
		{Type: ResultSubstitution, Name: prefix + split.Outer, Value: outerValue, Tail: split.Tail},
		{Type: ResultLetBinding, Name: prefix + split.Inner, Value: innerValue, Tail: split.Tail},
		{Type: ResultLetBinding, Name: prefix + split.Outer, Value: outerValue, Tail: split.Tail},
	}

	// Keep track of the known size of the fused loop, for later splits of it.
	innerAlignment, innerKnown := alignment[split.Inner]
	outerAlignment, outerKnown := alignment[split.Outer]
	if innerKnown && outerKnown {
		alignment[split.OldVar] = ir.Simplify(ir.Mul(innerAlignment, outerAlignment))
		klog.V(2).Infof("  %s%s extent is a multiple of %s", prefix, split.OldVar, alignment[split.OldVar])
	}
	return results
}

func applyRename(split schedule.Split, prefix string) Results {
	newVar := ir.Var(prefix + split.Outer)
	klog.V(1).Infof("%s %s%s to %s", split.SplitType, prefix, split.OldVar, newVar)
	return Results{
		{Type: ResultSubstitution, Name: prefix + split.OldVar, Value: newVar, Tail: split.Tail},
		{Type: ResultLetBinding, Name: prefix + split.OldVar, Value: newVar, Tail: split.Tail},
	}
}
