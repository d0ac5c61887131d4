package schedule

import (
	"testing"

	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// dimVars lists the loop names innermost first.
func dimVars(s *StageSchedule) []string {
	vars := make([]string, len(s.Dims))
	for i, d := range s.Dims {
		vars[i] = d.Var
	}
	return vars
}

func TestNewStageSchedule(t *testing.T) {
	s := NewStageSchedule([]string{"x", "y"}, []ReductionVariable{{Var: "r"}, {Var: "s"}})
	require.Equal(t, []string{"r", "s", "x", "y", OutermostVar}, dimVars(s))
	require.Equal(t, DimTypeImpureRVar, s.Dims[0].DimType)
	require.Equal(t, DimTypePureVar, s.Dims[2].DimType)
	require.True(t, s.Dims[4].IsOutermost())
	require.True(t, s.IsRVar("s"))
	require.False(t, s.IsRVar("x"))
	require.Empty(t, s.Splits)
	require.True(t, s.FuseLevel.Level.IsInlined())
	require.True(t, s.FuseLevel.Level.Locked())
	require.NoError(t, s.Validate())
}

func TestSplitFuseRename(t *testing.T) {
	f := NewFunction("f", "x", "y")
	s := f.Stages[0]

	require.NoError(t, s.Split("x", "xo", "xi", ir.Int(4), TailRoundUp))
	require.Equal(t, []string{"xi", "xo", "y", OutermostVar}, dimVars(s))
	require.NoError(t, s.Fuse("xo", "y", "t"))
	require.Equal(t, []string{"xi", "t", OutermostVar}, dimVars(s))
	require.NoError(t, s.Rename("t", "tile"))
	require.Equal(t, []string{"xi", "tile", OutermostVar}, dimVars(s))

	want := []Split{
		NewSplitVar("x", "xo", "xi", ir.Int(4), false, TailRoundUp),
		NewFuse("xo", "y", "t"),
		NewRename("t", "tile"),
	}
	if diff := cmp.Diff(want, s.Splits); diff != "" {
		t.Errorf("splits mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, s.Validate())
	require.Equal(t, "[__outermost:Serial, tile:Serial, xi:Serial]", s.DimsString())
}

func TestSplitErrors(t *testing.T) {
	s := NewFunction("f", "x", "y").Stages[0]
	testCases := []struct {
		name string
		run  func() error
	}{
		{"unknown var", func() error { return s.Split("z", "zo", "zi", ir.Int(2), TailAuto) }},
		{"outermost", func() error { return s.Split(OutermostVar, "a", "b", ir.Int(2), TailAuto) }},
		{"undefined factor", func() error { return s.Split("x", "xo", "xi", nil, TailAuto) }},
		{"name collision", func() error { return s.Split("x", "y", "xi", ir.Int(2), TailAuto) }},
		{"same names", func() error { return s.Split("x", "xi", "xi", ir.Int(2), TailAuto) }},
		{"reserved name", func() error { return s.Split("x", "__xo", "xi", ir.Int(2), TailAuto) }},
		{"fuse not adjacent", func() error { return s.Fuse("y", "x", "xy") }},
		{"rename collision", func() error { return s.Rename("x", "y") }},
		{"purify pure var", func() error { return s.Purify("x", "u") }},
		{"reorder twice", func() error { return s.Reorder("x", "x") }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.Error(t, err)
			require.True(t, IsUserError(err))
			require.Equal(t, "f", AsUserError(err).Func)
		})
	}
	// Failed directives leave the schedule untouched.
	require.Empty(t, s.Splits)
	require.Equal(t, []string{"x", "y", OutermostVar}, dimVars(s))
}

func TestSplitRVarIsExact(t *testing.T) {
	f := NewFunction("f", "x")
	update := f.AddUpdate(ReductionVariable{Var: "r", Min: ir.Int(0), Extent: ir.Int(10)})
	require.NoError(t, update.Split("r", "ro", "ri", ir.Int(4), TailAuto))
	require.True(t, update.Splits[0].Exact)
	require.Equal(t, []string{"ri", "ro", "x", OutermostVar}, dimVars(update))
	require.Equal(t, DimTypeImpureRVar, update.Dims[1].DimType)

	require.NoError(t, f.Stages[0].Split("x", "xo", "xi", ir.Int(4), TailAuto))
	require.False(t, f.Stages[0].Splits[0].Exact)
}

func TestFuseDimType(t *testing.T) {
	f := NewFunction("f", "x")
	update := f.AddUpdate(ReductionVariable{Var: "r"}, ReductionVariable{Var: "s"})
	require.NoError(t, update.Fuse("s", "x", "sx"))
	require.Equal(t, DimTypeImpureRVar, update.Dims[1].DimType)
	require.NoError(t, update.Purify("r", "u"))
	require.Equal(t, DimTypePureVar, update.Dims[0].DimType)
	require.NoError(t, update.Fuse("u", "sx", "all"))
	require.Equal(t, []string{"all", OutermostVar}, dimVars(update))
	require.Equal(t, DimTypeImpureRVar, update.Dims[0].DimType)
	require.NoError(t, update.Validate())

	g := NewFunction("g", "x", "y")
	require.NoError(t, g.Stages[0].Fuse("x", "y", "xy"))
	require.Equal(t, DimTypePureVar, g.Stages[0].Dims[0].DimType)
}

func TestReorder(t *testing.T) {
	s := NewFunction("f", "x", "y", "c").Stages[0]
	require.NoError(t, s.Reorder("c", "x", "y"))
	require.Equal(t, []string{"c", "x", "y", OutermostVar}, dimVars(s))

	// Only the listed loops move, among their own positions.
	require.NoError(t, s.Reorder("y", "c"))
	require.Equal(t, []string{"y", "x", "c", OutermostVar}, dimVars(s))

	require.Error(t, s.Reorder("x", OutermostVar))
}

func TestReorderImpureRVars(t *testing.T) {
	f := NewFunction("f", "x")
	update := f.AddUpdate(ReductionVariable{Var: "r"}, ReductionVariable{Var: "s"})

	// Moving a pure var across rvars is fine.
	require.NoError(t, update.Reorder("x", "r", "s"))
	require.Equal(t, []string{"x", "r", "s", OutermostVar}, dimVars(update))

	// Swapping two impure rvars is not.
	err := update.Reorder("s", "r")
	require.Error(t, err)
	require.True(t, IsUserError(err))

	update.Atomic = true
	require.NoError(t, update.Reorder("s", "r"))
	require.Equal(t, []string{"x", "s", "r", OutermostVar}, dimVars(update))
}

func TestSetForType(t *testing.T) {
	f := NewFunction("f", "x", "y")
	pure := f.Stages[0]
	require.NoError(t, pure.Parallel("y"))
	require.NoError(t, pure.Vectorize("x"))
	require.Equal(t, ForTypeVectorized, pure.Dims[0].ForType)
	require.Equal(t, ForTypeParallel, pure.Dims[1].ForType)
	require.True(t, pure.Dims[1].IsParallel())
	require.True(t, pure.Dims[0].IsUnorderedParallel())
	require.False(t, pure.Dims[0].IsParallel())

	update := f.AddUpdate(ReductionVariable{Var: "r"})
	require.NoError(t, update.Unroll("r"))
	require.Error(t, update.Parallel("r"))
	require.Error(t, update.Vectorize("r"))
	update.AllowRaceConditions = true
	require.NoError(t, update.Parallel("r"))

	// Splitting keeps the loop type on both halves.
	require.NoError(t, pure.Split("y", "yo", "yi", ir.Int(2), TailAuto))
	require.Equal(t, ForTypeParallel, pure.Dims[1].ForType)
	require.Equal(t, ForTypeParallel, pure.Dims[2].ForType)
}

func TestValidate(t *testing.T) {
	s := NewStageSchedule([]string{"x"}, nil)
	s.Splits = append(s.Splits,
		NewSplitVar("x", "xo", "xi", ir.Int(2), false, TailAuto),
		NewSplitVar("x", "a", "b", ir.Int(2), false, TailAuto))
	require.Error(t, s.Validate(), "x used twice")

	s = NewStageSchedule([]string{"x", "y"}, nil)
	s.Splits = append(s.Splits, NewRename("x", "z"))
	s.Dims[0].Var = "y"
	require.Error(t, s.Validate(), "y appears twice")

	s = NewStageSchedule([]string{"x"}, nil)
	s.Splits = append(s.Splits, NewRename("x", "z"))
	require.Error(t, s.Validate(), "x still in the dims")

	s = NewStageSchedule([]string{"x"}, nil)
	s.Dims = s.Dims[:1]
	require.Error(t, s.Validate(), "missing outermost")
}

func TestClone(t *testing.T) {
	f := NewFunction("f", "x", "y")
	s := f.Stages[0]
	s.FuseLevel.Align["x"] = AlignStart
	clone := s.Clone()
	require.NoError(t, clone.Split("x", "xo", "xi", ir.Int(4), TailAuto))
	clone.FuseLevel.Align["x"] = AlignEnd
	require.Empty(t, s.Splits)
	require.Equal(t, []string{"x", "y", OutermostVar}, dimVars(s))
	require.Equal(t, AlignStart, s.FuseLevel.AlignmentOf("x"))
	require.Equal(t, AlignAuto, s.FuseLevel.AlignmentOf("y"))
	require.True(t, clone.FuseLevel.Level.SameHandle(s.FuseLevel.Level))
}
