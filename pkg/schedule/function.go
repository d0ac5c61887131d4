package schedule

import (
	"slices"

	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/gomlx/loopnest/pkg/types/dtypes"
)

// Function is a scheduled function: its pure variables, the schedule shared by all its stages
// and the schedule of each stage. Stages[0] is the pure definition, the others are updates.
type Function struct {
	Name     string
	Args     []string
	Schedule *FuncSchedule
	Stages   []*StageSchedule
}

// NewFunction creates a function with a pure definition over args and a default schedule.
func NewFunction(name string, args ...string) *Function {
	pure := NewStageSchedule(args, nil)
	pure.Func = name
	return &Function{
		Name:     name,
		Args:     slices.Clone(args),
		Schedule: NewFuncSchedule(),
		Stages:   []*StageSchedule{pure},
	}
}

// AddUpdate adds an update stage iterating over the given reduction domain and returns its schedule.
func (f *Function) AddUpdate(rvars ...ReductionVariable) *StageSchedule {
	update := NewStageSchedule(f.Args, rvars)
	update.Func = f.Name
	f.Stages = append(f.Stages, update)
	return update
}

// Stage returns the schedule of stage stageIndex.
func (f *Function) Stage(stageIndex int) (*StageSchedule, error) {
	if stageIndex < 0 || stageIndex >= len(f.Stages) {
		return nil, UserErrorf(f.Name, "", "stage %d out of range, %s has %d stages", stageIndex, f.Name, len(f.Stages))
	}
	return f.Stages[stageIndex], nil
}

// IsUpdate returns whether stageIndex is an update stage.
func (f *Function) IsUpdate(stageIndex int) bool {
	return stageIndex > 0
}

// ComputeAt computes the function at the given site. The site handle is not shared: later
// changes to level are not seen.
func (f *Function) ComputeAt(level LoopLevel) error {
	return f.Schedule.ComputeLevel.Set(level)
}

// StoreAt stores the function at the given site.
func (f *Function) StoreAt(level LoopLevel) error {
	return f.Schedule.StoreLevel.Set(level)
}

// ComputeRoot stores and computes the function outside of all loops.
func (f *Function) ComputeRoot() error {
	if err := f.StoreAt(Root()); err != nil {
		return err
	}
	return f.ComputeAt(Root())
}

// ComputeInline inlines the function into its callers (the default).
func (f *Function) ComputeInline() error {
	if err := f.StoreAt(Inlined()); err != nil {
		return err
	}
	return f.ComputeAt(Inlined())
}

// Bound constrains the region of the function computed along varName to [start, start+extent).
func (f *Function) Bound(varName string, start, extent *ir.Expr) error {
	if !slices.Contains(f.Args, varName) {
		return UserErrorf(f.Name, varName, "can't bound %s, it is not a pure variable of %s", varName, f.Name)
	}
	for _, e := range []*ir.Expr{start, extent} {
		if e == nil || e.DType != dtypes.Int32 {
			return UserErrorf(f.Name, varName, "can't bound %s to [%s, %s): bounds must be defined int32 expressions",
				varName, start, extent)
		}
	}
	f.Schedule.Bounds = append(f.Schedule.Bounds, Bound{Var: varName, Min: start, Extent: extent})
	return nil
}

// Env is the table of the functions of one compile, indexed by name.
//
// LoopLevels refer to functions by name and are resolved through it. Each compile owns its own Env.
type Env map[string]*Function

// NewEnv creates a function table with the given functions.
func NewEnv(funcs ...*Function) Env {
	env := make(Env, len(funcs))
	for _, fn := range funcs {
		env[fn.Name] = fn
	}
	return env
}

// Lookup returns the function named name.
func (env Env) Lookup(name string) (*Function, error) {
	fn, found := env[name]
	if !found {
		return nil, UserErrorf(name, "", "function %q not found", name)
	}
	return fn, nil
}

// Validate checks the schedules of all functions in the table.
func (env Env) Validate() error {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fn := env[name]
		if err := fn.Schedule.Validate(fn.Name, env); err != nil {
			return err
		}
		for _, stage := range fn.Stages {
			if err := stage.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
