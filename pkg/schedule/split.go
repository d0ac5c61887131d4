package schedule

import (
	"fmt"

	"github.com/gomlx/loopnest/pkg/ir"
)

// Split is one loop transformation directive of a stage.
//
// For SplitVar, OldVar is split into Outer and Inner with Inner iterating over [0, Factor).
// For FuseVars, Inner and Outer are fused into OldVar. For RenameVar and PurifyRVar, OldVar
// becomes Outer: Inner is unused and Factor is the identity 1.
type Split struct {
	OldVar, Outer, Inner string

	// Factor of a SplitVar. Undefined (nil) for FuseVars.
	Factor *ir.Expr

	// Exact is set for splits of reduction variables: they must not compute any value outside
	// of the original domain.
	Exact bool

	Tail      TailStrategy
	SplitType SplitType
}

// NewSplitVar creates a directive splitting oldVar by factor.
func NewSplitVar(oldVar, outer, inner string, factor *ir.Expr, exact bool, tail TailStrategy) Split {
	return Split{
		OldVar:    oldVar,
		Outer:     outer,
		Inner:     inner,
		Factor:    factor,
		Exact:     exact,
		Tail:      tail,
		SplitType: SplitVar,
	}
}

// NewFuse creates a directive fusing inner and outer into fused.
func NewFuse(inner, outer, fused string) Split {
	return Split{OldVar: fused, Outer: outer, Inner: inner, SplitType: FuseVars}
}

// NewRename creates a directive renaming oldVar to newVar.
func NewRename(oldVar, newVar string) Split {
	return Split{OldVar: oldVar, Outer: newVar, Factor: ir.Int(1), SplitType: RenameVar}
}

// NewPurify creates a directive replacing the reduction variable oldVar by the pure variable newVar.
func NewPurify(oldVar, newVar string) Split {
	return Split{OldVar: oldVar, Outer: newVar, Factor: ir.Int(1), SplitType: PurifyRVar}
}

func (s Split) IsSplit() bool  { return s.SplitType == SplitVar }
func (s Split) IsFuse() bool   { return s.SplitType == FuseVars }
func (s Split) IsRename() bool { return s.SplitType == RenameVar }
func (s Split) IsPurify() bool { return s.SplitType == PurifyRVar }

// Inputs returns the variables consumed by the directive.
func (s Split) Inputs() []string {
	if s.IsFuse() {
		return []string{s.Inner, s.Outer}
	}
	return []string{s.OldVar}
}

// Outputs returns the variables introduced by the directive.
func (s Split) Outputs() []string {
	switch s.SplitType {
	case SplitVar:
		return []string{s.Outer, s.Inner}
	case FuseVars:
		return []string{s.OldVar}
	default:
		return []string{s.Outer}
	}
}

// Equal returns whether the two directives are identical.
func (s Split) Equal(other Split) bool {
	return s.OldVar == other.OldVar && s.Outer == other.Outer && s.Inner == other.Inner &&
		ir.Equal(s.Factor, other.Factor) && s.Exact == other.Exact && s.Tail == other.Tail &&
		s.SplitType == other.SplitType
}

// String implements fmt.Stringer.
func (s Split) String() string {
	switch s.SplitType {
	case SplitVar:
		return fmt.Sprintf("split(%s, %s, %s, %s, %s)", s.OldVar, s.Outer, s.Inner, s.Factor, s.Tail)
	case FuseVars:
		return fmt.Sprintf("fuse(%s, %s, %s)", s.Inner, s.Outer, s.OldVar)
	case RenameVar:
		return fmt.Sprintf("rename(%s, %s)", s.OldVar, s.Outer)
	case PurifyRVar:
		return fmt.Sprintf("purify(%s, %s)", s.OldVar, s.Outer)
	}
	return fmt.Sprintf("unknown split type %s", s.SplitType)
}
