package schedule

import (
	"maps"
	"slices"

	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/pkg/errors"
)

// StorageDim is one dimension of the storage of a function.
type StorageDim struct {
	Var string

	// Alignment, if defined, forces the allocated extent to a multiple of it.
	Alignment *ir.Expr

	// Bound, if defined, is an upper bound of the allocated extent.
	Bound *ir.Expr

	// Fold, if defined, makes the storage a circular buffer of this size along this dimension.
	Fold *ir.Expr

	// FoldForward is true if the fold slides towards increasing coordinates.
	FoldForward bool
}

// Bound is an explicit constraint on the region of a function computed along one variable.
type Bound struct {
	Var string

	// Min and Extent, if defined, fix the region computed.
	Min, Extent *ir.Expr

	// Modulus and Remainder, if defined, constrain the min of the region to be
	// congruent to Remainder modulo Modulus.
	Modulus, Remainder *ir.Expr
}

// FuncSchedule is the part of the schedule shared by all stages of a function: where it is
// stored and computed, and how its storage is laid out.
type FuncSchedule struct {
	StoreLevel, ComputeLevel, HoistStorageLevel LoopLevel

	StorageDims []StorageDim

	Bounds    []Bound
	Estimates []Bound

	// Wrappers maps the name of a function to the wrapper of this function used in its place
	// by that function. The empty name is the global wrapper.
	Wrappers map[string]string

	MemoryType MemoryType

	// RingBuffer, if defined, is the number of copies of the storage used to pipeline
	// producer and consumer.
	RingBuffer *ir.Expr

	Memoized           bool
	MemoizeEvictionKey *ir.Expr
	Async              bool
}

// NewFuncSchedule returns the default schedule of a function: inlined, with no constraints.
func NewFuncSchedule() *FuncSchedule {
	return &FuncSchedule{
		StoreLevel:        Inlined(),
		ComputeLevel:      Inlined(),
		HoistStorageLevel: Inlined(),
		Wrappers:          make(map[string]string),
	}
}

// Clone returns a copy of the schedule. The LoopLevel handles are shared with the original,
// everything else is copied.
func (s *FuncSchedule) Clone() *FuncSchedule {
	clone := *s
	clone.StorageDims = slices.Clone(s.StorageDims)
	clone.Bounds = slices.Clone(s.Bounds)
	clone.Estimates = slices.Clone(s.Estimates)
	clone.Wrappers = maps.Clone(s.Wrappers)
	return &clone
}

// Bound returns the explicit bound on the variable varName, if any.
func (s *FuncSchedule) Bound(varName string) (Bound, bool) {
	for _, b := range s.Bounds {
		if b.Var == varName {
			return b, true
		}
	}
	return Bound{}, false
}

// Validate checks that the function funcName is stored at the same or an outer site than
// where it is computed.
//
// Store and compute sites that belong to different stages can't be compared here and are
// accepted: their relative nesting depends on where those stages are computed.
func (s *FuncSchedule) Validate(funcName string, env Env) error {
	store, compute := s.StoreLevel, s.ComputeLevel
	if !store.Defined() || !compute.Defined() {
		return UserErrorf(funcName, "", "store level (%s) and compute level (%s) must be defined", store, compute)
	}
	switch {
	case compute.IsInlined() || store.IsInlined():
		if compute.IsInlined() != store.IsInlined() {
			return UserErrorf(funcName, "",
				"it is stored at %s but computed at %s: a function is either inlined or stored and computed somewhere",
				store, compute)
		}
		return nil
	case store.IsRoot():
		return nil
	case compute.IsRoot():
		return UserErrorf(funcName, "", "it is stored at %s but computed at root, outside of where it is stored", store)
	}

	if store.Func() != compute.Func() {
		return nil
	}
	storeStage, storeIdx, err := store.Resolve(env)
	if err != nil {
		return errors.WithMessagef(err, "resolving store level of %s", funcName)
	}
	computeStage, computeIdx, err := compute.Resolve(env)
	if err != nil {
		return errors.WithMessagef(err, "resolving compute level of %s", funcName)
	}
	if storeStage != computeStage {
		return nil
	}
	// Dims are ordered innermost first: an outer loop has a larger index.
	if storeIdx < computeIdx {
		return UserErrorf(funcName, store.Var(),
			"it is stored at %s, which is inside of where it is computed (%s)", store, compute)
	}
	return nil
}
