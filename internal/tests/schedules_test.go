package tests

import (
	"fmt"
	"testing"

	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/gomlx/loopnest/pkg/lower"
	"github.com/gomlx/loopnest/pkg/schedule"
	"github.com/stretchr/testify/require"
)

// scheduleCase is a scheduled function whose loop nest must compute the required region of its
// pure variables (and the whole reduction domain, for updates).
type scheduleCase struct {
	name  string
	stage int

	// build creates the scheduled function for the given extent of the region.
	build func(t *testing.T, extent int64) *schedule.Function

	// minExtent is the smallest extent the schedule supports (ShiftInwards needs the extent to
	// be at least the factor).
	minExtent int64

	// fixedExtent, if set, is the only extent the schedule supports.
	fixedExtent int64

	// required lists the sites that must be visited.
	required func(extent int64) []site

	// exact: each required site is visited exactly once, and nothing else.
	exact bool

	// allowed, for non-exact schedules, tells whether a site may be visited.
	allowed func(extent int64, s site) bool
}

func inRegion(v, extent int64) bool {
	m := int64(*flagArgMin)
	return v >= m && v < m+extent
}

func grid1(extent int64) []site {
	m := int64(*flagArgMin)
	sites := make([]site, 0, extent)
	for x := m; x < m+extent; x++ {
		sites = append(sites, site{x})
	}
	return sites
}

func grid2(extent int64) []site {
	m := int64(*flagArgMin)
	sites := make([]site, 0, extent*extent)
	for y := m; y < m+extent; y++ {
		for x := m; x < m+extent; x++ {
			sites = append(sites, site{x, y})
		}
	}
	return sites
}

func inGrid2(extent int64, s site) bool {
	return inRegion(s[0], extent) && inRegion(s[1], extent)
}

// function2D creates f(x, y) and applies the directives to its pure stage.
func function2D(apply func(s *schedule.StageSchedule) error) func(t *testing.T, extent int64) *schedule.Function {
	return func(t *testing.T, extent int64) *schedule.Function {
		f := schedule.NewFunction("f", "x", "y")
		requireNoError(t, apply(f.Stages[0]), "scheduling f")
		return f
	}
}

var scheduleCases = []scheduleCase{
	{
		name: "split shift inwards",
		build: function2D(func(s *schedule.StageSchedule) error {
			return s.Split("x", "xo", "xi", ir.Int(4), schedule.TailAuto)
		}),
		minExtent: 4,
		required:  grid2,
		allowed:   inGrid2,
	},
	{
		name: "split guard with if",
		build: function2D(func(s *schedule.StageSchedule) error {
			return s.Split("x", "xo", "xi", ir.Int(3), schedule.TailGuardWithIf)
		}),
		required: grid2,
		exact:    true,
	},
	{
		name: "split predicate stores",
		build: function2D(func(s *schedule.StageSchedule) error {
			return s.Split("y", "yo", "yi", ir.Int(5), schedule.TailPredicateStores)
		}),
		required: grid2,
		exact:    true,
	},
	{
		name: "tile",
		build: function2D(func(s *schedule.StageSchedule) error {
			if err := s.Split("x", "xo", "xi", ir.Int(4), schedule.TailGuardWithIf); err != nil {
				return err
			}
			if err := s.Split("y", "yo", "yi", ir.Int(3), schedule.TailGuardWithIf); err != nil {
				return err
			}
			return s.Reorder("xi", "yi", "xo", "yo")
		}),
		required: grid2,
		exact:    true,
	},
	{
		name: "tile shift inwards",
		build: function2D(func(s *schedule.StageSchedule) error {
			if err := s.Split("x", "xo", "xi", ir.Int(2), schedule.TailAuto); err != nil {
				return err
			}
			if err := s.Split("y", "yo", "yi", ir.Int(3), schedule.TailAuto); err != nil {
				return err
			}
			return s.Reorder("xi", "yi", "xo", "yo")
		}),
		minExtent: 3,
		required:  grid2,
		allowed:   inGrid2,
	},
	{
		name: "fuse then split",
		build: function2D(func(s *schedule.StageSchedule) error {
			if err := s.Fuse("x", "y", "xy"); err != nil {
				return err
			}
			return s.Split("xy", "o", "i", ir.Int(5), schedule.TailGuardWithIf)
		}),
		required: grid2,
		exact:    true,
	},
	{
		name: "split then fuse",
		build: function2D(func(s *schedule.StageSchedule) error {
			if err := s.Split("x", "xo", "xi", ir.Int(2), schedule.TailGuardWithIf); err != nil {
				return err
			}
			return s.Fuse("xo", "y", "t")
		}),
		required: grid2,
		exact:    true,
	},
	{
		name: "nested split",
		build: function2D(func(s *schedule.StageSchedule) error {
			if err := s.Split("x", "xo", "xi", ir.Int(8), schedule.TailGuardWithIf); err != nil {
				return err
			}
			// The extent of xi is known to be 8: no shift needed.
			return s.Split("xi", "xio", "xii", ir.Int(2), schedule.TailAuto)
		}),
		required: grid2,
		exact:    true,
	},
	{
		name: "rename and parallelize",
		build: function2D(func(s *schedule.StageSchedule) error {
			if err := s.Rename("y", "row"); err != nil {
				return err
			}
			if err := s.Parallel("row"); err != nil {
				return err
			}
			return s.Split("row", "ro", "ri", ir.Int(4), schedule.TailGuardWithIf)
		}),
		required: grid2,
		exact:    true,
	},
	{
		name:  "update round up",
		stage: 1,
		build: func(t *testing.T, extent int64) *schedule.Function {
			f := schedule.NewFunction("f", "x")
			update := f.AddUpdate()
			requireNoError(t, update.Split("x", "xo", "xi", ir.Int(4), schedule.TailAuto))
			return f
		},
		required: grid1,
		allowed: func(extent int64, s site) bool {
			roundedUp := (extent + 3) / 4 * 4
			return inRegion(s[0], roundedUp)
		},
	},
	{
		name:  "update reduction domain",
		stage: 1,
		build: func(t *testing.T, extent int64) *schedule.Function {
			f := schedule.NewFunction("f", "x")
			update := f.AddUpdate(schedule.ReductionVariable{Var: "r", Min: ir.Int(0), Extent: ir.Int(extent)})
			requireNoError(t, update.Split("r", "ro", "ri", ir.Int(4), schedule.TailAuto))
			requireNoError(t, update.Reorder("x", "ro"))
			return f
		},
		required: func(extent int64) []site {
			var sites []site
			for _, x := range grid1(extent) {
				for r := range extent {
					sites = append(sites, site{x[0], r})
				}
			}
			return sites
		},
		exact: true,
	},
	{
		name: "bounded",
		build: func(t *testing.T, extent int64) *schedule.Function {
			f := schedule.NewFunction("f", "x")
			requireNoError(t, f.Bound("x", ir.Int(int64(*flagArgMin)), ir.Int(extent)))
			s := f.Stages[0]
			requireNoError(t, s.Split("x", "xo", "xi", ir.Int(8), schedule.TailGuardWithIf))
			requireNoError(t, s.Split("xi", "xio", "xii", ir.Int(4), schedule.TailGuardWithIf))
			return f
		},
		fixedExtent: 16,
		required:    grid1,
		exact:       true,
	},
}

func TestSchedules(t *testing.T) {
	for _, tc := range scheduleCases {
		t.Run(tc.name, func(t *testing.T) {
			first, last := max(tc.minExtent, 1), int64(*flagMaxExtent)
			if tc.fixedExtent > 0 {
				first, last = tc.fixedExtent, tc.fixedExtent
			}
			for extent := first; extent <= last; extent++ {
				t.Run(fmt.Sprintf("extent=%d", extent), func(t *testing.T) {
					fn := tc.build(t, extent)
					counts := coverage(t, fn, tc.stage, argRegion(fn, tc.stage, extent))
					required := tc.required(extent)
					for _, s := range required {
						if tc.exact {
							require.Equal(t, 1, counts[s], "site %v", s)
						} else {
							require.Positive(t, counts[s], "site %v not computed", s)
						}
					}
					if tc.exact {
						require.Len(t, counts, len(required), "sites computed outside of the region")
						return
					}
					for s := range counts {
						require.True(t, tc.allowed(extent, s), "site %v computed outside of the allowed region", s)
					}
				})
			}
		})
	}
}

// TestBoundedSplitsHaveNoGuards checks that splits by factors dividing an explicit bound don't
// need any predicate.
func TestBoundedSplitsHaveNoGuards(t *testing.T) {
	f := schedule.NewFunction("f", "x", "y")
	requireNoError(t, f.Bound("x", ir.Int(0), ir.Int(64)))
	s := f.Stages[0]
	requireNoError(t, s.Split("x", "xo", "xi", ir.Int(16), schedule.TailGuardWithIf))
	requireNoError(t, s.Split("xo", "xoo", "xoi", ir.Int(2), schedule.TailGuardWithIf))
	requireNoError(t, s.Split("xi", "xio", "xii", ir.Int(4), schedule.TailGuardWithIf))
	requireNoError(t, s.Split("y", "yo", "yi", ir.Int(4), schedule.TailGuardWithIf))
	nest, err := lower.LowerStage(f, 0)
	requireNoError(t, err)
	require.Equal(t, "2", nest.Alignment["xoo"].String())
	require.Equal(t, "4", nest.Alignment["xio"].String())
	// Only the split of y, whose extent is unknown, is guarded.
	require.Len(t, nest.Results.Predicates(), 1)
	require.Contains(t, nest.Guard().String(), "f.s0.y.rebased")
}

// TestComputeAtLoweredLoop checks that a compute site given by name is found among the loops of
// the lowered consumer.
func TestComputeAtLoweredLoop(t *testing.T) {
	producer := schedule.NewFunction("p", "x")
	consumer := schedule.NewFunction("c", "x", "y")
	requireNoError(t, consumer.Stages[0].Split("x", "xo", "xi", ir.Int(8), schedule.TailAuto))
	requireNoError(t, producer.StoreAt(schedule.At("c", "y", false, 0)))
	requireNoError(t, producer.ComputeAt(schedule.At("c", "xo", false, 0)))
	env := schedule.NewEnv(producer, consumer)
	requireNoError(t, env.Validate())

	nest, err := lower.LowerStage(consumer, 0)
	requireNoError(t, err)
	level := producer.Schedule.ComputeLevel
	var matches []string
	for _, loop := range nest.Loops {
		if level.Match(loop.Name) {
			matches = append(matches, loop.Name)
		}
	}
	require.Equal(t, []string{"c.s0.xo"}, matches)

	_, dimIdx, err := level.Resolve(env)
	requireNoError(t, err)
	require.Equal(t, "c.s0.xo", nest.Loops[len(nest.Loops)-1-dimIdx].Name)
}

func TestScheduleErrors(t *testing.T) {
	f := schedule.NewFunction("f", "x")
	requireNoError(t, f.Stages[0].Split("x", "xo", "xi", ir.Int(0), schedule.TailAuto))
	_, err := lower.LowerStage(f, 0)
	require.ErrorContains(t, err, "Split factors must be strictly positive")
	require.Equal(t, "f", schedule.AsUserError(err).Func)

	g := schedule.NewFunction("g", "x")
	update := g.AddUpdate()
	requireNoError(t, update.Split("x", "xo", "xi", ir.Int(4), schedule.TailShiftInwards))
	_, err = lower.LowerStage(g, 1)
	require.ErrorContains(t, err, "ShiftInwards")
	// The pure stage is fine.
	_, err = lower.LowerStage(g, 0)
	requireNoError(t, err)
}

// TestUpdateShiftInwardsAlwaysFails lowers updates split with ShiftInwards over a grid of factors
// and explicitly bounded extents: none can be realized.
func TestUpdateShiftInwardsAlwaysFails(t *testing.T) {
	for factor := int64(1); factor <= 8; factor++ {
		for extent := int64(1); extent <= int64(*flagMaxExtent); extent++ {
			f := schedule.NewFunction("f", "x")
			requireNoError(t, f.Bound("x", ir.Int(int64(*flagArgMin)), ir.Int(extent)))
			update := f.AddUpdate()
			requireNoError(t, update.Split("x", "xo", "xi", ir.Int(factor), schedule.TailShiftInwards))
			_, err := lower.LowerStage(f, 1)
			require.ErrorContains(t, err, "ShiftInwards", "factor=%d, extent=%d", factor, extent)
			userErr := schedule.AsUserError(err)
			require.NotNil(t, userErr, "factor=%d, extent=%d", factor, extent)
			require.Equal(t, "x", userErr.Var)
		}
	}
}
