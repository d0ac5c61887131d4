package schedule

import "fmt"

// OutermostVar is the name of the sentinel dimension that terminates every dims list.
// It is a loop of extent 1 outside of all the others.
const OutermostVar = "__outermost"

// Dim is one loop dimension of the loop nest of a stage.
type Dim struct {
	// Var is the name of the loop variable.
	Var string

	ForType   ForType
	DeviceAPI DeviceAPI
	DimType   DimType

	// Partition controls whether the loop may be partitioned into a steady state and tails.
	Partition Partition
}

// IsPure returns whether the dimension is a pure variable or a pure reduction variable.
func (d Dim) IsPure() bool {
	return d.DimType == DimTypePureVar || d.DimType == DimTypePureRVar
}

// IsRVar returns whether the dimension iterates over a reduction domain.
func (d Dim) IsRVar() bool {
	return d.DimType == DimTypePureRVar || d.DimType == DimTypeImpureRVar
}

// IsUnorderedParallel returns whether the iterations of the dimension may happen in any order.
func (d Dim) IsUnorderedParallel() bool {
	return d.ForType.IsUnordered()
}

// IsParallel returns whether the dimension runs its iterations on concurrent threads.
func (d Dim) IsParallel() bool {
	return d.ForType.IsParallel()
}

// IsOutermost returns whether this is the sentinel outermost dimension.
func (d Dim) IsOutermost() bool {
	return d.Var == OutermostVar
}

// String implements fmt.Stringer.
func (d Dim) String() string {
	s := fmt.Sprintf("%s:%s", d.Var, d.ForType)
	if d.DeviceAPI != DeviceAPINone {
		s += "@" + d.DeviceAPI.String()
	}
	if d.IsRVar() {
		s += "(" + d.DimType.String() + ")"
	}
	return s
}
