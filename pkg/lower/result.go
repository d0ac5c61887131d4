// Package lower resolves the loop transformation directives of a stage schedule into the
// primitives consumed when building its loop nest: substitutions of the original loop variables,
// let bindings of the new ones, boundary predicates and loop bounds.
package lower

import (
	"fmt"

	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/gomlx/loopnest/pkg/schedule"
)

// ResultType is the kind of an ApplySplitResult.
type ResultType int

//go:generate go tool enumer -type=ResultType -trimprefix=Result -text -output=gen_resulttype_enumer.go result.go

const (
	// ResultSubstitution replaces every reference to Name in the body of the stage by Value.
	ResultSubstitution ResultType = iota

	// ResultLetBinding defines Name as Value around the body of the stage.
	ResultLetBinding

	// ResultPredicate guards the body of the stage with the boolean Value.
	ResultPredicate
)

// ApplySplitResult is one primitive produced by applying a directive.
type ApplySplitResult struct {
	Type ResultType

	// Name is the variable substituted or bound. Empty for predicates.
	Name string

	Value *ir.Expr

	// Tail is the resolved tail strategy of the directive that produced this result. For
	// predicates, TailPredicateLoads and TailPredicateStores tell the backend to guard only
	// the loads or the stores.
	Tail schedule.TailStrategy
}

func (r ApplySplitResult) IsSubstitution() bool { return r.Type == ResultSubstitution }
func (r ApplySplitResult) IsLet() bool          { return r.Type == ResultLetBinding }
func (r ApplySplitResult) IsPredicate() bool    { return r.Type == ResultPredicate }

// String implements fmt.Stringer.
func (r ApplySplitResult) String() string {
	switch r.Type {
	case ResultSubstitution:
		return fmt.Sprintf("substitute %s -> %s", r.Name, r.Value)
	case ResultLetBinding:
		return fmt.Sprintf("let %s = %s", r.Name, r.Value)
	case ResultPredicate:
		if r.Tail.IsPredicate() {
			return fmt.Sprintf("predicate %s (%s)", r.Value, r.Tail)
		}
		return fmt.Sprintf("predicate %s", r.Value)
	}
	return fmt.Sprintf("invalid result type %s", r.Type)
}

// Let is a (name, value) pair: a let binding or a substitution.
type Let struct {
	Name  string
	Value *ir.Expr
}

// String implements fmt.Stringer.
func (l Let) String() string {
	return fmt.Sprintf("%s = %s", l.Name, l.Value)
}

// Results is the ordered sequence of primitives produced by ApplySplits.
//
// Order matters: substitutions are applied in order, and let bindings are nested with the
// first one innermost, so a let may refer to names bound by the lets after it.
type Results []ApplySplitResult

// Substitutions returns the substitutions, in order.
func (rs Results) Substitutions() []Let {
	return rs.pairs(ResultSubstitution)
}

// LetBindings returns the let bindings, in order: the first one is the innermost.
func (rs Results) LetBindings() []Let {
	return rs.pairs(ResultLetBinding)
}

func (rs Results) pairs(resultType ResultType) []Let {
	var lets []Let
	for _, r := range rs {
		if r.Type == resultType {
			lets = append(lets, Let{Name: r.Name, Value: r.Value})
		}
	}
	return lets
}

// Predicates returns the boundary predicates, in order.
func (rs Results) Predicates() []*ir.Expr {
	var preds []*ir.Expr
	for _, r := range rs {
		if r.Type == ResultPredicate {
			preds = append(preds, r.Value)
		}
	}
	return preds
}

// Substitute applies the substitutions in order to e.
func (rs Results) Substitute(e *ir.Expr) *ir.Expr {
	for _, r := range rs {
		if r.Type == ResultSubstitution {
			e = ir.Substitute(r.Name, r.Value, e)
		}
	}
	return e
}
