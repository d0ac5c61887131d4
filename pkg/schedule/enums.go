package schedule

// ForType is how a loop dimension is iterated.
type ForType int

//go:generate go tool enumer -type=ForType -trimprefix=ForType -text -output=gen_fortype_enumer.go enums.go

const (
	ForTypeSerial ForType = iota
	ForTypeParallel
	ForTypeVectorized
	ForTypeUnrolled
	ForTypeExtern
	ForTypeGPUBlock
	ForTypeGPUThread
	ForTypeGPULane
)

// IsGPU returns whether the loop is mapped to a GPU block, thread or lane index.
func (t ForType) IsGPU() bool {
	return t == ForTypeGPUBlock || t == ForTypeGPUThread || t == ForTypeGPULane
}

// IsParallel returns whether iterations of the loop may run concurrently on separate threads.
func (t ForType) IsParallel() bool {
	return t == ForTypeParallel || t == ForTypeGPUBlock || t == ForTypeGPUThread
}

// IsUnordered returns whether the iterations of the loop may happen in any order (or at once).
func (t ForType) IsUnordered() bool {
	return t == ForTypeParallel || t == ForTypeVectorized || t.IsGPU()
}

// DeviceAPI is the device a loop runs on.
type DeviceAPI int

//go:generate go tool enumer -type=DeviceAPI -trimprefix=DeviceAPI -text -output=gen_deviceapi_enumer.go enums.go

const (
	DeviceAPINone DeviceAPI = iota
	DeviceAPIHost
	DeviceAPIDefaultGPU
	DeviceAPICUDA
	DeviceAPIOpenCL
	DeviceAPIMetal
	DeviceAPIHexagon
	DeviceAPIHexagonDma
	DeviceAPID3D12Compute
	DeviceAPIVulkan
	DeviceAPIWebGPU
)

// DimType classifies a loop dimension by what kind of variable it iterates.
type DimType int

//go:generate go tool enumer -type=DimType -trimprefix=DimType -text -output=gen_dimtype_enumer.go enums.go

const (
	// DimTypePureVar is a pure variable of the function.
	DimTypePureVar DimType = iota

	// DimTypePureRVar is a reduction variable with no loop-carried hazard: it may be reordered
	// and parallelized freely.
	DimTypePureRVar

	// DimTypeImpureRVar is a reduction variable whose iteration order matters.
	DimTypeImpureRVar
)

// TailStrategy is the policy used when a split factor may not divide the loop extent.
type TailStrategy int

//go:generate go tool enumer -type=TailStrategy -trimprefix=Tail -text -output=gen_tailstrategy_enumer.go enums.go

const (
	// TailAuto picks GuardWithIf for exact splits, RoundUp for updates and ShiftInwards otherwise.
	TailAuto TailStrategy = iota

	// TailGuardWithIf wraps the body in an if statement that skips the out-of-range iterations.
	TailGuardWithIf

	// TailPredicate is like TailGuardWithIf, but the backend may predicate the loads and stores instead.
	TailPredicate

	// TailPredicateLoads guards only the loads.
	TailPredicateLoads

	// TailPredicateStores guards only the stores.
	TailPredicateStores

	// TailShiftInwards shifts the last tile inwards, recomputing some values.
	TailShiftInwards

	// TailRoundUp rounds the extent up to a multiple of the factor.
	TailRoundUp
)

// IsPredicate returns whether the strategy is one of the predication variants.
func (t TailStrategy) IsPredicate() bool {
	return t == TailPredicate || t == TailPredicateLoads || t == TailPredicateStores
}

// IsGuard returns whether the strategy guards out-of-range iterations with a condition.
func (t TailStrategy) IsGuard() bool {
	return t == TailGuardWithIf || t.IsPredicate()
}

// SplitType is the kind of loop transformation of a Split.
type SplitType int

//go:generate go tool enumer -type=SplitType -text -output=gen_splittype_enumer.go enums.go

const (
	SplitVar SplitType = iota
	RenameVar
	FuseVars
	PurifyRVar
)

// LoopAlignStrategy reconciles the bounds of two fused loops whose mins or maxes differ.
type LoopAlignStrategy int

//go:generate go tool enumer -type=LoopAlignStrategy -text -output=gen_loopalignstrategy_enumer.go enums.go

const (
	// AlignStart shifts the loops so that their starts line up.
	AlignStart LoopAlignStrategy = iota

	// AlignEnd shifts the loops so that their ends line up.
	AlignEnd

	// NoAlign leaves the bounds alone.
	NoAlign

	// AlignAuto lets the compiler pick.
	AlignAuto
)

// MemoryType is where the storage of a function lives.
type MemoryType int

//go:generate go tool enumer -type=MemoryType -trimprefix=Memory -text -output=gen_memorytype_enumer.go enums.go

const (
	MemoryAuto MemoryType = iota
	MemoryHeap
	MemoryStack
	MemoryRegister
	MemoryGPUShared
	MemoryGPUTexture
	MemoryLockedCache
	MemoryVTCM
	MemoryAMXTile
)

// PrefetchBoundStrategy is how a prefetch handles the boundary of the prefetched buffer.
type PrefetchBoundStrategy int

//go:generate go tool enumer -type=PrefetchBoundStrategy -trimprefix=Prefetch -text -output=gen_prefetchboundstrategy_enumer.go enums.go

const (
	PrefetchClamp PrefetchBoundStrategy = iota
	PrefetchGuardWithIf
	PrefetchNonFaulting
)

// Partition is the loop partitioning policy of a dimension.
type Partition int

//go:generate go tool enumer -type=Partition -trimprefix=Partition -text -output=gen_partition_enumer.go enums.go

const (
	PartitionAuto Partition = iota
	PartitionNever
	PartitionAlways
)
