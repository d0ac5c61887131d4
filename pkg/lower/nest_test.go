package lower

import (
	"slices"
	"testing"

	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/gomlx/loopnest/pkg/schedule"
	"github.com/gomlx/loopnest/pkg/types/dtypes"
	"github.com/stretchr/testify/require"
)

// collectSites runs the nest and returns the site of every iteration.
func collectSites(t *testing.T, nest *StageNest, inputs map[string]int64) [][]int64 {
	t.Helper()
	var sites [][]int64
	require.NoError(t, nest.Iterate(inputs, func(site []int64) error {
		sites = append(sites, slices.Clone(site))
		return nil
	}))
	return sites
}

func loopNames(nest *StageNest) []string {
	names := make([]string, len(nest.Loops))
	for i, loop := range nest.Loops {
		names[i] = loop.Name
	}
	return names
}

func TestLowerStage(t *testing.T) {
	f := schedule.NewFunction("f", "x", "y")
	require.NoError(t, f.Stages[0].Split("x", "xo", "xi", ir.Int(4), schedule.TailAuto))
	nest, err := LowerStage(f, 0)
	require.NoError(t, err)
	require.Equal(t, "f.s0.", nest.Prefix)
	require.Equal(t, []string{"f.s0.__outermost", "f.s0.y", "f.s0.xo", "f.s0.xi"}, loopNames(nest))
	require.Equal(t, []string{"f.s0.x.max", "f.s0.x.min", "f.s0.y.max", "f.s0.y.min"}, nest.Inputs())
	require.Len(t, nest.Results, 3)
	require.True(t, ir.IsOne(nest.Guard()))

	// ShiftInwards recomputes some points, but never outside of the required region.
	sites := collectSites(t, nest, map[string]int64{
		"f.s0.x.min": 0, "f.s0.x.max": 9, "f.s0.y.min": 3, "f.s0.y.max": 4})
	require.Len(t, sites, 3*4*2)
	covered := make(map[[2]int64]bool)
	for _, site := range sites {
		require.GreaterOrEqual(t, site[0], int64(0))
		require.LessOrEqual(t, site[0], int64(9))
		covered[[2]int64{site[0], site[1]}] = true
	}
	require.Len(t, covered, 10*2)
}

func TestLowerStageUpdate(t *testing.T) {
	f := schedule.NewFunction("f", "x")
	update := f.AddUpdate(schedule.ReductionVariable{Var: "r", Min: ir.Int(0), Extent: ir.Int(10)})
	require.NoError(t, update.Split("r", "ro", "ri", ir.Int(4), schedule.TailAuto))
	nest, err := LowerStage(f, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"f.s1.x.max", "f.s1.x.min"}, nest.Inputs())
	require.Equal(t, []string{"f.s1.x"}, nest.Args)
	require.Equal(t, []string{"f.s1.r"}, nest.RVars)
	require.Equal(t, "likely((f.s1.r.rebased < f.s1.r.loop_extent))", nest.Guard().String())

	// Splits of reduction variables are exact: each r is visited once, in order.
	sites := collectSites(t, nest, map[string]int64{"f.s1.x.min": 7, "f.s1.x.max": 7})
	require.Len(t, sites, 10)
	for i, site := range sites {
		require.Equal(t, []int64{7, int64(i)}, site)
	}
}

func TestLowerStageKnownExtent(t *testing.T) {
	f := schedule.NewFunction("f", "x")
	require.NoError(t, f.Bound("x", ir.Int(0), ir.Int(16)))
	require.NoError(t, f.Stages[0].Split("x", "xo", "xi", ir.Int(8), schedule.TailGuardWithIf))
	nest, err := LowerStage(f, 0)
	require.NoError(t, err)
	require.Equal(t, "2", nest.Alignment["xo"].String())
	require.Empty(t, nest.Results.Predicates())
	require.NotContains(t, nest.String(), "if ")

	sites := collectSites(t, nest, map[string]int64{"f.s0.x.min": 0, "f.s0.x.max": 15})
	require.Len(t, sites, 16)
}

func TestLowerStageFuseThenSplit(t *testing.T) {
	f := schedule.NewFunction("f", "x", "y")
	s := f.Stages[0]
	require.NoError(t, s.Fuse("x", "y", "xy"))
	require.NoError(t, s.Split("xy", "o", "i", ir.Int(5), schedule.TailGuardWithIf))
	nest, err := LowerStage(f, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"f.s0.__outermost", "f.s0.o", "f.s0.i"}, loopNames(nest))

	sites := collectSites(t, nest, map[string]int64{
		"f.s0.x.min": 1, "f.s0.x.max": 4, "f.s0.y.min": -1, "f.s0.y.max": 1})
	require.Len(t, sites, 12)
	seen := make(map[[2]int64]bool)
	for _, site := range sites {
		pair := [2]int64{site[0], site[1]}
		require.False(t, seen[pair], "%v computed twice", pair)
		seen[pair] = true
		require.True(t, pair[0] >= 1 && pair[0] <= 4 && pair[1] >= -1 && pair[1] <= 1, "%v out of bounds", pair)
	}
}

func TestLowerStagePurify(t *testing.T) {
	f := schedule.NewFunction("f", "x")
	update := f.AddUpdate(schedule.ReductionVariable{Var: "r", Min: ir.Int(0), Extent: ir.Int(5)})
	require.NoError(t, update.Purify("r", "u"))
	nest, err := LowerStage(f, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"f.s1.u.max", "f.s1.u.min", "f.s1.x.max", "f.s1.x.min"}, nest.Inputs())

	sites := collectSites(t, nest, map[string]int64{"f.s1.x.min": 0, "f.s1.x.max": 1, "f.s1.u.min": 2, "f.s1.u.max": 3})
	// The purified loop stays innermost.
	require.Equal(t, [][]int64{{0, 2}, {0, 3}, {1, 2}, {1, 3}}, sites)
	require.Equal(t, map[string]string{"f.s1.r": "f.s1.u"}, nest.PurifiedRVars())

	// Renames before the purify are followed; splits of other rvars are not purifies.
	g := schedule.NewFunction("g", "x")
	update = g.AddUpdate(
		schedule.ReductionVariable{Var: "r", Min: ir.Int(0), Extent: ir.Int(5)},
		schedule.ReductionVariable{Var: "s", Min: ir.Int(0), Extent: ir.Int(4)})
	require.NoError(t, update.Rename("r", "r2"))
	require.NoError(t, update.Purify("r2", "u"))
	require.NoError(t, update.Split("s", "so", "si", ir.Int(2), schedule.TailAuto))
	nest, err = LowerStage(g, 1)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"g.s1.r": "g.s1.u"}, nest.PurifiedRVars())
}

func TestLowerStageErrors(t *testing.T) {
	f := schedule.NewFunction("f", "x")
	update := f.AddUpdate(schedule.ReductionVariable{Var: "r", Min: ir.Int(0), Extent: ir.Int(10)})
	require.NoError(t, update.Split("x", "xo", "xi", ir.Int(4), schedule.TailShiftInwards))
	_, err := LowerStage(f, 1)
	require.Error(t, err)
	userErr := schedule.AsUserError(err)
	require.NotNil(t, userErr)
	require.Equal(t, "f", userErr.Func)
	require.Equal(t, "x", userErr.Var)

	_, err = LowerStage(f, 2)
	require.True(t, schedule.IsUserError(err))

	g := schedule.NewFunction("g", "x")
	g.AddUpdate(schedule.ReductionVariable{Var: "r"})
	_, err = LowerStage(g, 1)
	require.ErrorContains(t, err, "undefined bounds")

	h := schedule.NewFunction("h", "x")
	h.Stages[0].Splits = append(h.Stages[0].Splits, schedule.NewRename("x", "z"))
	_, err = LowerStage(h, 0)
	require.True(t, schedule.IsUserError(err))

	// Bounds of another integer type are schedule mistakes, not internal errors.
	k := schedule.NewFunction("k", "x")
	err = k.Bound("x", ir.Int(0), ir.IntOf(dtypes.Int64, 8))
	require.ErrorContains(t, err, "bounds must be defined int32 expressions")
	require.Equal(t, "x", schedule.AsUserError(err).Var)
	require.Empty(t, k.Schedule.Bounds)
	require.NoError(t, k.Stages[0].Split("x", "xo", "xi", ir.Int(4), schedule.TailAuto))
	require.NotPanics(t, func() { _, err = LowerStage(k, 0) })
	require.NoError(t, err)

	m := schedule.NewFunction("m", "x")
	m.AddUpdate(schedule.ReductionVariable{Var: "r", Min: ir.Int(0), Extent: ir.IntOf(dtypes.Int64, 10)})
	require.NoError(t, m.Stages[1].Split("r", "ro", "ri", ir.Int(4), schedule.TailAuto))
	require.NotPanics(t, func() { _, err = LowerStage(m, 1) })
	require.ErrorContains(t, err, "must have int32 bounds")
	userErr = schedule.AsUserError(err)
	require.NotNil(t, userErr)
	require.Equal(t, "m", userErr.Func)
	require.Equal(t, "r", userErr.Var)
}

func TestStageNestString(t *testing.T) {
	f := schedule.NewFunction("f", "x")
	require.NoError(t, f.Stages[0].Split("x", "xo", "xi", ir.Int(2), schedule.TailGuardWithIf))
	require.NoError(t, f.Stages[0].Parallel("xo"))
	nest, err := LowerStage(f, 0)
	require.NoError(t, err)
	got := nest.String()
	for _, want := range []string{
		"let f.s0.x.loop_min = f.s0.x.min\n",
		"let f.s0.xo.loop_extent = (((f.s0.x.loop_max - f.s0.x.loop_min) + 2)/2)\n",
		"for f.s0.__outermost in [f.s0.__outermost.loop_min, f.s0.__outermost.loop_max]: Serial\n",
		"\n  for f.s0.xo in [f.s0.xo.loop_min, f.s0.xo.loop_max]: Parallel\n",
		"\n      let f.s0.xi.base = ((f.s0.xo*2) + f.s0.x.loop_min)\n",
		"\n      if likely((f.s0.x.rebased < f.s0.x.loop_extent)):\n",
		"\n        f((f.s0.x.rebased + f.s0.x.loop_min))\n",
	} {
		require.Contains(t, got, want)
	}
}

func TestIterateErrors(t *testing.T) {
	f := schedule.NewFunction("f", "x")
	nest, err := LowerStage(f, 0)
	require.NoError(t, err)
	err = nest.Iterate(map[string]int64{"f.s0.x.min": 0}, func([]int64) error { return nil })
	require.ErrorContains(t, err, "f.s0.x.max")

	saved := MaxIterations
	defer func() { MaxIterations = saved }()
	MaxIterations = 10
	err = nest.Iterate(map[string]int64{"f.s0.x.min": 0, "f.s0.x.max": 99}, func([]int64) error { return nil })
	require.ErrorContains(t, err, "more than 10 iterations")
}
