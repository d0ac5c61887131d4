package schedule

import (
	"testing"

	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/gomlx/loopnest/pkg/types/dtypes"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFuncScheduleDefaults(t *testing.T) {
	s := NewFuncSchedule()
	require.True(t, s.StoreLevel.IsInlined())
	require.True(t, s.ComputeLevel.IsInlined())
	require.False(t, s.StoreLevel.SameHandle(s.ComputeLevel))
	require.NoError(t, s.Validate("f", NewEnv()))
}

func TestFuncScheduleClone(t *testing.T) {
	s := NewFuncSchedule()
	s.Bounds = append(s.Bounds, Bound{Var: "x", Min: ir.Int(0), Extent: ir.Int(8)})
	s.Wrappers["g"] = "f_in_g"
	clone := s.Clone()
	clone.Bounds[0].Extent = ir.Int(16)
	clone.Wrappers["h"] = "f_in_h"

	b, found := s.Bound("x")
	require.True(t, found)
	require.Equal(t, "8", b.Extent.String())
	require.Len(t, s.Wrappers, 1)
	_, found = s.Bound("y")
	require.False(t, found)

	// LoopLevel handles are shared: computing the clone somewhere moves the original too.
	require.NoError(t, clone.ComputeLevel.Set(Root()))
	require.True(t, s.ComputeLevel.IsRoot())
}

func TestFuncScheduleValidate(t *testing.T) {
	producer := NewFunction("p", "x")
	consumer := NewFunction("c", "x", "y")
	require.NoError(t, consumer.Stages[0].Split("x", "xo", "xi", ir.Int(8), TailAuto))
	env := NewEnv(producer, consumer)
	// Dims of c: [xi, xo, y, __outermost].

	testCases := []struct {
		name           string
		store, compute LoopLevel
		ok             bool
	}{
		{"inlined", Inlined(), Inlined(), true},
		{"root", Root(), Root(), true},
		{"store root", Root(), At("c", "xo", false, 0), true},
		{"store outside", At("c", "y", false, 0), At("c", "xi", false, 0), true},
		{"same loop", At("c", "xo", false, 0), At("c", "xo", false, 0), true},
		{"store inside", At("c", "xi", false, 0), At("c", "y", false, 0), false},
		{"compute root", At("c", "y", false, 0), Root(), false},
		{"store inlined", Inlined(), Root(), false},
		{"compute inlined", Root(), Inlined(), false},
		{"undefined", NewLoopLevel(), Root(), false},
		{"unknown loop", At("c", "z", false, 0), At("c", "xi", false, 0), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, producer.StoreAt(tc.store))
			require.NoError(t, producer.ComputeAt(tc.compute))
			err := producer.Schedule.Validate("p", env)
			if tc.ok {
				require.NoError(t, err)
				require.NoError(t, env.Validate())
			} else {
				require.Error(t, err)
				require.True(t, IsUserError(err))
			}
		})
	}

	require.NoError(t, producer.StoreAt(At("c", "xi", false, 0)))
	require.NoError(t, producer.ComputeAt(At("c", "y", false, 0)))
	err := env.Validate()
	require.Error(t, err)
	require.Equal(t, "p", AsUserError(err).Func)
	require.Equal(t, "xi", AsUserError(err).Var)
}

func TestFunction(t *testing.T) {
	f := NewFunction("f", "x", "y")
	require.NoError(t, f.Bound("x", ir.Int(0), ir.Int(64)))
	require.Error(t, f.Bound("z", ir.Int(0), ir.Int(64)))
	require.True(t, IsUserError(f.Bound("x", ir.Int(0), ir.IntOf(dtypes.Int64, 64))))
	require.True(t, IsUserError(f.Bound("x", nil, ir.Int(64))))
	f.AddUpdate(ReductionVariable{Var: "r", Min: ir.Int(0), Extent: ir.Int(3)})
	require.False(t, f.IsUpdate(0))
	require.True(t, f.IsUpdate(1))
	stage, err := f.Stage(1)
	require.NoError(t, err)
	require.Equal(t, "f", stage.Func)
	_, err = f.Stage(2)
	require.Error(t, err)

	require.NoError(t, f.ComputeRoot())
	require.True(t, f.Schedule.StoreLevel.IsRoot())
	f.Schedule.ComputeLevel.Lock()
	require.Error(t, f.ComputeInline())

	_, err = NewEnv(f).Lookup("g")
	require.True(t, IsUserError(err))
}

func TestEnumsText(t *testing.T) {
	tail, err := TailStrategyString("ShiftInwards")
	require.NoError(t, err)
	require.Equal(t, TailShiftInwards, tail)
	tail, err = TailStrategyString("guardwithif")
	require.NoError(t, err)
	require.Equal(t, TailGuardWithIf, tail)
	_, err = TailStrategyString("Blend")
	require.Error(t, err)

	require.True(t, TailPredicateLoads.IsPredicate())
	require.True(t, TailPredicateStores.IsGuard())
	require.True(t, TailGuardWithIf.IsGuard())
	require.False(t, TailGuardWithIf.IsPredicate())
	require.False(t, TailRoundUp.IsGuard())

	require.True(t, ForTypeGPULane.IsGPU())
	require.True(t, ForTypeGPULane.IsUnordered())
	require.False(t, ForTypeGPULane.IsParallel())
	require.False(t, ForTypeUnrolled.IsUnordered())

	// Enums decode from YAML through their text unmarshalling.
	var directive struct {
		Tail    TailStrategy `yaml:"tail"`
		ForType ForType      `yaml:"for_type"`
		Device  DeviceAPI    `yaml:"device"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("tail: RoundUp\nfor_type: vectorized\ndevice: CUDA\n"), &directive))
	require.Equal(t, TailRoundUp, directive.Tail)
	require.Equal(t, ForTypeVectorized, directive.ForType)
	require.Equal(t, DeviceAPICUDA, directive.Device)
	require.Error(t, yaml.Unmarshal([]byte("tail: Sideways\n"), &directive))

	out, err := yaml.Marshal(map[string]MemoryType{"memory": MemoryGPUShared})
	require.NoError(t, err)
	require.Equal(t, "memory: GPUShared\n", string(out))
}
