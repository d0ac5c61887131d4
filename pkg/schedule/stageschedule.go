package schedule

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/loopnest/internal/utils"
	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/hashicorp/go-set/v3"
	"k8s.io/klog/v2"
)

// ReductionVariable is one variable of a reduction domain, iterating over [Min, Min+Extent).
type ReductionVariable struct {
	Var         string
	Min, Extent *ir.Expr
}

// PrefetchDirective requests the region of Name needed by iteration From to be prefetched at
// the loop At, Offset iterations ahead.
type PrefetchDirective struct {
	Name     string
	At, From string
	Offset   *ir.Expr
	Strategy PrefetchBoundStrategy
}

// StageSchedule is the schedule of one stage of a function: its pure definition or one of its
// updates.
type StageSchedule struct {
	// Func is the name of the function, used in error messages.
	Func string

	// RVars are the reduction variables in scope of the stage.
	RVars []ReductionVariable

	// Splits is applied in order: a directive may refer to variables introduced by earlier ones.
	Splits []Split

	// Dims is the final loop nest, innermost first. The last one is always the OutermostVar sentinel.
	Dims []Dim

	Prefetches []PrefetchDirective
	FuseLevel  FuseLoopLevel
	FusedPairs []FusedPair

	// AllowRaceConditions allows impure reduction variables to be parallelized.
	AllowRaceConditions bool

	// Atomic makes the update atomic, which allows reordering and parallelizing impure
	// reduction variables.
	Atomic bool

	// OverrideAtomicAssociativityTest skips the check that an atomic update is associative.
	OverrideAtomicAssociativityTest bool
}

// NewStageSchedule creates the schedule of a stage with the given pure variables and
// reduction variables: the initial loop nest has the reduction variables innermost (first
// one innermost), then the pure variables (first one innermost), then the outermost sentinel.
//
// Reduction variables are marked as DimTypeImpureRVar, since nothing is known about the
// hazards of the update they belong to.
func NewStageSchedule(pureArgs []string, rvars []ReductionVariable) *StageSchedule {
	s := &StageSchedule{
		RVars:     slices.Clone(rvars),
		FuseLevel: NewFuseLoopLevel(),
	}
	s.Dims = make([]Dim, 0, len(rvars)+len(pureArgs)+1)
	for _, rv := range rvars {
		s.Dims = append(s.Dims, Dim{Var: rv.Var, DimType: DimTypeImpureRVar})
	}
	for _, arg := range pureArgs {
		s.Dims = append(s.Dims, Dim{Var: arg, DimType: DimTypePureVar})
	}
	s.Dims = append(s.Dims, Dim{Var: OutermostVar, DimType: DimTypePureVar})
	return s
}

// Clone returns a deep copy of the stage schedule. The FuseLevel handle is shared.
func (s *StageSchedule) Clone() *StageSchedule {
	clone := *s
	clone.RVars = slices.Clone(s.RVars)
	clone.Splits = slices.Clone(s.Splits)
	clone.Dims = slices.Clone(s.Dims)
	clone.Prefetches = slices.Clone(s.Prefetches)
	clone.FuseLevel = s.FuseLevel.Clone()
	clone.FusedPairs = slices.Clone(s.FusedPairs)
	return &clone
}

// Dim returns the dimension named varName and its index in Dims.
func (s *StageSchedule) Dim(varName string) (Dim, int, bool) {
	for i, d := range s.Dims {
		if utils.VarNameMatch(d.Var, varName) {
			return d, i, true
		}
	}
	return Dim{}, -1, false
}

// IsRVar returns whether varName is one of the reduction variables in scope.
func (s *StageSchedule) IsRVar(varName string) bool {
	return slices.ContainsFunc(s.RVars, func(rv ReductionVariable) bool { return rv.Var == varName })
}

// dimNames returns the set of the names of the current loops.
func (s *StageSchedule) dimNames() *set.Set[string] {
	names := set.New[string](len(s.Dims))
	for _, d := range s.Dims {
		names.Insert(d.Var)
	}
	return names
}

// checkNewNames verifies that the new loop names don't collide with existing ones, except
// for the ones in reused.
func (s *StageSchedule) checkNewNames(op string, names []string, reused ...string) error {
	existing := s.dimNames()
	existing.RemoveSlice(reused)
	seen := set.New[string](len(names))
	for _, name := range names {
		if name == "" {
			return UserErrorf(s.Func, "", "%s: empty variable name", op)
		}
		if strings.HasPrefix(name, "__") {
			return UserErrorf(s.Func, name, "%s: variable names starting with \"__\" are reserved", op)
		}
		if existing.Contains(name) || !seen.Insert(name) {
			return UserErrorf(s.Func, name, "%s: variable %s is already a loop of the stage", op, name)
		}
	}
	return nil
}

func (s *StageSchedule) findDim(op, varName string) (int, error) {
	_, idx, found := s.Dim(varName)
	if !found || s.Dims[idx].IsOutermost() {
		return -1, UserErrorf(s.Func, varName, "%s: could not find dimension %s, loops are %s", op, varName, s.DimsString())
	}
	return idx, nil
}

// Split splits the loop oldVar into outer and inner, with inner iterating over [0, factor).
// The inner loop takes the place of oldVar in the loop nest, and outer is just outside of it.
//
// Splitting a reduction variable is exact: it can't compute values outside of the reduction domain.
func (s *StageSchedule) Split(oldVar, outer, inner string, factor *ir.Expr, tail TailStrategy) error {
	if factor == nil {
		return UserErrorf(s.Func, oldVar, "split of %s: undefined factor", oldVar)
	}
	idx, err := s.findDim("split", oldVar)
	if err != nil {
		return err
	}
	old := s.Dims[idx]
	if err := s.checkNewNames("split of "+oldVar, []string{outer, inner}, old.Var); err != nil {
		return err
	}
	exact := old.IsRVar()
	s.Splits = append(s.Splits, NewSplitVar(old.Var, outer, inner, factor, exact, tail))
	innerDim, outerDim := old, old
	innerDim.Var, outerDim.Var = inner, outer
	s.Dims[idx] = innerDim
	s.Dims = slices.Insert(s.Dims, idx+1, outerDim)
	klog.V(2).Infof("%s: split %s into %s and %s by %s (tail=%s, exact=%v)", s.Func, old.Var, outer, inner, factor, tail, exact)
	return nil
}

// Fuse fuses the loop inner with the loop outer immediately outside of it into the single loop fused.
func (s *StageSchedule) Fuse(inner, outer, fused string) error {
	innerIdx, err := s.findDim("fuse", inner)
	if err != nil {
		return err
	}
	outerIdx, err := s.findDim("fuse", outer)
	if err != nil {
		return err
	}
	if outerIdx != innerIdx+1 {
		return UserErrorf(s.Func, inner, "fuse: %s must be the loop immediately outside of %s, loops are %s",
			outer, inner, s.DimsString())
	}
	innerDim, outerDim := s.Dims[innerIdx], s.Dims[outerIdx]
	if err := s.checkNewNames("fuse", []string{fused}, innerDim.Var, outerDim.Var); err != nil {
		return err
	}
	fusedDim := innerDim
	fusedDim.Var = fused
	switch {
	case innerDim.DimType == DimTypePureVar && outerDim.DimType == DimTypePureVar:
		fusedDim.DimType = DimTypePureVar
	case innerDim.DimType == DimTypeImpureRVar || outerDim.DimType == DimTypeImpureRVar:
		fusedDim.DimType = DimTypeImpureRVar
	default:
		fusedDim.DimType = DimTypePureRVar
	}
	s.Splits = append(s.Splits, NewFuse(innerDim.Var, outerDim.Var, fused))
	s.Dims[innerIdx] = fusedDim
	s.Dims = slices.Delete(s.Dims, outerIdx, outerIdx+1)
	return nil
}

// Rename renames the loop oldVar to newVar.
func (s *StageSchedule) Rename(oldVar, newVar string) error {
	idx, err := s.findDim("rename", oldVar)
	if err != nil {
		return err
	}
	if err := s.checkNewNames("rename of "+oldVar, []string{newVar}, s.Dims[idx].Var); err != nil {
		return err
	}
	s.Splits = append(s.Splits, NewRename(s.Dims[idx].Var, newVar))
	s.Dims[idx].Var = newVar
	return nil
}

// Purify replaces the reduction variable loop oldVar by the pure variable newVar. The caller
// asserts the loop has no hazard: its bounds are then given by bounds inference, like any
// pure variable.
func (s *StageSchedule) Purify(oldVar, newVar string) error {
	idx, err := s.findDim("purify", oldVar)
	if err != nil {
		return err
	}
	if !s.Dims[idx].IsRVar() {
		return UserErrorf(s.Func, oldVar, "purify: %s is not a reduction variable", oldVar)
	}
	if err := s.checkNewNames("purify of "+oldVar, []string{newVar}, s.Dims[idx].Var); err != nil {
		return err
	}
	s.Splits = append(s.Splits, NewPurify(s.Dims[idx].Var, newVar))
	s.Dims[idx].Var = newVar
	s.Dims[idx].DimType = DimTypePureVar
	return nil
}

// Reorder reorders the given loops, listed innermost first, among the positions they
// currently occupy. Loops not listed keep their positions.
//
// Impure reduction variables can't change their relative order unless the stage is atomic.
func (s *StageSchedule) Reorder(vars ...string) error {
	indices := make([]int, len(vars))
	seen := set.New[int](len(vars))
	for i, v := range vars {
		idx, err := s.findDim("reorder", v)
		if err != nil {
			return err
		}
		if !seen.Insert(idx) {
			return UserErrorf(s.Func, v, "reorder: %s is listed more than once", v)
		}
		indices[i] = idx
	}
	if !s.Atomic {
		for i := range vars {
			for j := i + 1; j < len(vars); j++ {
				a, b := s.Dims[indices[i]], s.Dims[indices[j]]
				if a.IsPure() || b.IsPure() {
					continue
				}
				// vars[i] is requested inside of vars[j]: their current order must agree.
				if indices[i] > indices[j] {
					return UserErrorf(s.Func, a.Var,
						"can't reorder the reduction variables %s and %s, because it may change the meaning of the "+
							"algorithm: mark the update as atomic if it is associative and commutative", a.Var, b.Var)
				}
			}
		}
	}
	slots := slices.Clone(indices)
	slices.Sort(slots)
	original := slices.Clone(s.Dims)
	for i, slot := range slots {
		s.Dims[slot] = original[indices[i]]
	}
	return nil
}

// SetForType sets how the loop varName is iterated.
//
// Iterating an impure reduction variable out of order is a race condition, only accepted if
// AllowRaceConditions or Atomic is set.
func (s *StageSchedule) SetForType(varName string, forType ForType) error {
	idx, err := s.findDim("set loop type", varName)
	if err != nil {
		return err
	}
	d := &s.Dims[idx]
	if forType.IsUnordered() && d.DimType == DimTypeImpureRVar && !s.AllowRaceConditions && !s.Atomic {
		return UserErrorf(s.Func, varName,
			"marking %s as %s may introduce a race condition resulting in incorrect output: "+
				"use the atomic or allow race conditions settings if this is intended", d.Var, forType)
	}
	d.ForType = forType
	return nil
}

// Parallel marks the loop varName as parallel.
func (s *StageSchedule) Parallel(varName string) error { return s.SetForType(varName, ForTypeParallel) }

// Vectorize marks the loop varName as vectorized.
func (s *StageSchedule) Vectorize(varName string) error {
	return s.SetForType(varName, ForTypeVectorized)
}

// Unroll marks the loop varName as unrolled.
func (s *StageSchedule) Unroll(varName string) error { return s.SetForType(varName, ForTypeUnrolled) }

// Validate checks that the directives are consistent: each consumes variables that are still
// live, and introduces new names; and the dims list only holds live variables and ends with
// the outermost sentinel.
func (s *StageSchedule) Validate() error {
	if len(s.Dims) == 0 || !s.Dims[len(s.Dims)-1].IsOutermost() {
		return UserErrorf(s.Func, "", "the loop nest must end with %s, got %s", OutermostVar, s.DimsString())
	}
	consumed := set.New[string](len(s.Splits))
	introduced := set.New[string](len(s.Splits))
	for _, sp := range s.Splits {
		for _, in := range sp.Inputs() {
			if !consumed.Insert(in) {
				return UserErrorf(s.Func, in, "%s uses %s, which was already split, fused or renamed", sp, in)
			}
		}
		for _, out := range sp.Outputs() {
			if consumed.Contains(out) || !introduced.Insert(out) {
				return UserErrorf(s.Func, out, "%s redefines %s", sp, out)
			}
		}
	}
	names := set.New[string](len(s.Dims))
	for _, d := range s.Dims {
		if !names.Insert(d.Var) {
			return UserErrorf(s.Func, d.Var, "loop %s appears more than once in %s", d.Var, s.DimsString())
		}
		if consumed.Contains(d.Var) {
			return UserErrorf(s.Func, d.Var, "loop %s was transformed away by a directive, but is still in %s",
				d.Var, s.DimsString())
		}
	}
	return nil
}

// DimsString lists the loops outermost first, as they'd be nested in the code.
func (s *StageSchedule) DimsString() string {
	parts := make([]string, 0, len(s.Dims))
	for i := len(s.Dims) - 1; i >= 0; i-- {
		parts = append(parts, s.Dims[i].String())
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
