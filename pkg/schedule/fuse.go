package schedule

import (
	"cmp"
	"fmt"
	"maps"
)

// FuseLoopLevel is the loop level down to which the loop nest of a stage is interleaved with
// the loop nest of another, with the alignment strategy of each fused dimension.
type FuseLoopLevel struct {
	Level LoopLevel

	// Align maps a loop variable name to how the bounds of the two fused loops are reconciled.
	// Variables not listed use AlignAuto.
	Align map[string]LoopAlignStrategy
}

// NewFuseLoopLevel returns the default FuseLoopLevel: not fused with anything.
func NewFuseLoopLevel() FuseLoopLevel {
	return FuseLoopLevel{Level: Inlined().Lock(), Align: make(map[string]LoopAlignStrategy)}
}

// AlignmentOf returns the alignment strategy for the loop variable varName.
func (f FuseLoopLevel) AlignmentOf(varName string) LoopAlignStrategy {
	if align, found := f.Align[varName]; found {
		return align
	}
	return AlignAuto
}

// Clone returns a copy with its own Align map. The Level handle is shared.
func (f FuseLoopLevel) Clone() FuseLoopLevel {
	return FuseLoopLevel{Level: f.Level, Align: maps.Clone(f.Align)}
}

// FusedPair records that stage Stage2 of Func2 is computed within the loop VarName of stage
// Stage1 of Func1, sharing the loops from the outermost down to VarName.
type FusedPair struct {
	Func1   string
	Stage1  int
	Func2   string
	Stage2  int
	VarName string
}

// Compare orders fused pairs by Func1, Func2, Stage1, Stage2 and then VarName.
func (p FusedPair) Compare(other FusedPair) int {
	return cmp.Or(
		cmp.Compare(p.Func1, other.Func1),
		cmp.Compare(p.Func2, other.Func2),
		cmp.Compare(p.Stage1, other.Stage1),
		cmp.Compare(p.Stage2, other.Stage2),
		cmp.Compare(p.VarName, other.VarName),
	)
}

// String implements fmt.Stringer.
func (p FusedPair) String() string {
	return fmt.Sprintf("%s.s%d + %s.s%d at %s", p.Func1, p.Stage1, p.Func2, p.Stage2, p.VarName)
}
