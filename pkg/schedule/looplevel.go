package schedule

import (
	"fmt"
	"strings"

	"github.com/gomlx/loopnest/internal/utils"
)

// RootVar and InlinedVar are the names printed for the root and inlined loop levels.
const (
	RootVar    = "__root"
	InlinedVar = "__inlined"
)

// StageUnspecified is the stage index of a LoopLevel that refers to the last stage of its function.
const StageUnspecified = -1

type loopLevelKind int

const (
	loopLevelUndefined loopLevelKind = iota
	loopLevelRoot
	loopLevelInlined
	loopLevelSite
)

// loopLevelContents is the storage shared by all copies of a LoopLevel.
type loopLevelContents struct {
	kind       loopLevelKind
	funcName   string
	varName    string
	isRVar     bool
	stageIndex int
	locked     bool
}

// LoopLevel identifies a site in a loop nest: a loop of a stage of a function, the root
// (outside all loops) or "inlined" (no loop nest at all).
//
// A LoopLevel is a handle to shared storage: copies of a LoopLevel refer to the same site,
// and Set rebinds all of them. This allows a LoopLevel to be passed around (e.g. to ComputeAt)
// before the final site is known. Once locked, it can no longer be Set.
//
// The function is referenced by name only, and resolved through an Env (see Resolve), so
// schedules referring to each other never hold pointers to each other.
//
// A LoopLevel is owned by one compile and is not safe for concurrent mutation.
// The zero value is undefined and can't be Set: use NewLoopLevel.
type LoopLevel struct {
	contents *loopLevelContents
}

// NewLoopLevel returns a new undefined LoopLevel, to be Set later.
func NewLoopLevel() LoopLevel {
	return LoopLevel{contents: &loopLevelContents{stageIndex: StageUnspecified}}
}

// Root returns a new LoopLevel pointing outside of all loops.
func Root() LoopLevel {
	return LoopLevel{contents: &loopLevelContents{kind: loopLevelRoot, stageIndex: StageUnspecified}}
}

// Inlined returns a new LoopLevel meaning "no loop nest": the stage is inlined in its callers.
func Inlined() LoopLevel {
	return LoopLevel{contents: &loopLevelContents{kind: loopLevelInlined, stageIndex: StageUnspecified}}
}

// At returns a new LoopLevel at the loop varName of stage stageIndex of funcName.
// Use StageUnspecified for the last stage of the function.
func At(funcName, varName string, isRVar bool, stageIndex int) LoopLevel {
	return LoopLevel{contents: &loopLevelContents{
		kind:       loopLevelSite,
		funcName:   funcName,
		varName:    varName,
		isRVar:     isRVar,
		stageIndex: stageIndex,
	}}
}

// Set makes l (and all its copies) point to the same site as other.
// It fails if l is locked, and it doesn't change the locked status of l.
func (l LoopLevel) Set(other LoopLevel) error {
	if l.contents == nil {
		return UserErrorf("", "", "cannot set the zero LoopLevel, create it with NewLoopLevel")
	}
	if l.contents.locked {
		return UserErrorf(l.contents.funcName, l.contents.varName, "cannot set locked LoopLevel %s to %s", l, other)
	}
	if other.contents == nil {
		*l.contents = loopLevelContents{stageIndex: StageUnspecified}
		return nil
	}
	*l.contents = *other.contents
	l.contents.locked = false
	return nil
}

// Lock forbids further calls to Set. It returns l for convenience.
func (l LoopLevel) Lock() LoopLevel {
	if l.contents != nil {
		l.contents.locked = true
	}
	return l
}

// Locked returns whether Set is forbidden.
func (l LoopLevel) Locked() bool {
	return l.contents != nil && l.contents.locked
}

// Defined returns whether the LoopLevel points to something: root, inlined or a loop.
func (l LoopLevel) Defined() bool {
	return l.contents != nil && l.contents.kind != loopLevelUndefined
}

func (l LoopLevel) IsRoot() bool    { return l.kind() == loopLevelRoot }
func (l LoopLevel) IsInlined() bool { return l.kind() == loopLevelInlined }

// IsSite returns whether the LoopLevel points to a loop of some function.
func (l LoopLevel) IsSite() bool { return l.kind() == loopLevelSite }

func (l LoopLevel) kind() loopLevelKind {
	if l.contents == nil {
		return loopLevelUndefined
	}
	return l.contents.kind
}

// Func returns the name of the function of the site, or "" if the LoopLevel is not a site.
func (l LoopLevel) Func() string {
	if !l.IsSite() {
		return ""
	}
	return l.contents.funcName
}

// Var returns the name of the loop variable of the site, RootVar, InlinedVar or "".
func (l LoopLevel) Var() string {
	switch l.kind() {
	case loopLevelRoot:
		return RootVar
	case loopLevelInlined:
		return InlinedVar
	case loopLevelSite:
		return l.contents.varName
	}
	return ""
}

// IsRVar returns whether the site's loop is over a reduction variable.
func (l LoopLevel) IsRVar() bool {
	return l.IsSite() && l.contents.isRVar
}

// StageIndex returns the stage of the site, or StageUnspecified.
func (l LoopLevel) StageIndex() int {
	if l.contents == nil {
		return StageUnspecified
	}
	return l.contents.stageIndex
}

// SameHandle returns whether l and other share their storage, that is, whether Set on one is
// seen by the other.
func (l LoopLevel) SameHandle(other LoopLevel) bool {
	return l.contents != nil && l.contents == other.contents
}

// Equal returns whether both point to the same site. It compares what they point to, not
// whether they are the same handle, and it ignores the locked status.
func (l LoopLevel) Equal(other LoopLevel) bool {
	if l.kind() != other.kind() {
		return false
	}
	if !l.IsSite() {
		return true
	}
	a, b := l.contents, other.contents
	return a.funcName == b.funcName && a.varName == b.varName && a.isRVar == b.isRVar &&
		a.stageIndex == b.stageIndex
}

// loopPrefix is the prefix of the names of all loops of the site's stage.
func (l LoopLevel) loopPrefix() string {
	if l.contents.stageIndex == StageUnspecified {
		return l.contents.funcName + "."
	}
	return fmt.Sprintf("%s.s%d.", l.contents.funcName, l.contents.stageIndex)
}

// String implements fmt.Stringer: "f.s0.x", "__root", "__inlined" or "undefined".
func (l LoopLevel) String() string {
	switch l.kind() {
	case loopLevelRoot:
		return RootVar
	case loopLevelInlined:
		return InlinedVar
	case loopLevelSite:
		return l.loopPrefix() + l.contents.varName
	}
	return "undefined"
}

// Match returns whether the fully qualified loop name (e.g. "f.s1.x.xi") is the loop of this site.
func (l LoopLevel) Match(loopName string) bool {
	switch l.kind() {
	case loopLevelRoot:
		return loopName == RootVar
	case loopLevelSite:
		return strings.HasPrefix(loopName, l.loopPrefix()) && utils.VarNameMatch(loopName, l.contents.varName)
	}
	return false
}

// Resolve finds the site in the given function table: it returns the stage schedule and the
// index of the loop in its dims list. Resolving an unspecified stage picks the last stage.
//
// Only sites can be resolved.
func (l LoopLevel) Resolve(env Env) (*StageSchedule, int, error) {
	if !l.IsSite() {
		return nil, 0, UserErrorf("", "", "cannot resolve LoopLevel %s: it is not a loop", l)
	}
	c := l.contents
	fn, err := env.Lookup(c.funcName)
	if err != nil {
		return nil, 0, err
	}
	stageIndex := c.stageIndex
	if stageIndex == StageUnspecified {
		stageIndex = len(fn.Stages) - 1
	}
	if stageIndex < 0 || stageIndex >= len(fn.Stages) {
		return nil, 0, UserErrorf(c.funcName, c.varName,
			"LoopLevel %s refers to stage %d, but %s has %d stages", l, stageIndex, c.funcName, len(fn.Stages))
	}
	stage := fn.Stages[stageIndex]
	_, dimIdx, found := stage.Dim(c.varName)
	if !found {
		return nil, 0, UserErrorf(c.funcName, c.varName,
			"LoopLevel %s refers to a variable that is not a loop of stage %d of %s", l, stageIndex, c.funcName)
	}
	if stage.Dims[dimIdx].IsRVar() != c.isRVar {
		kind := "a Var"
		if c.isRVar {
			kind = "an RVar"
		}
		return nil, 0, UserErrorf(c.funcName, c.varName,
			"LoopLevel %s was created with %s, but the loop %s is not one", l, kind, stage.Dims[dimIdx].Var)
	}
	return stage, dimIdx, nil
}
