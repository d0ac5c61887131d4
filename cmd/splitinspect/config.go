package main

import (
	"os"
	"slices"
	"strings"

	"github.com/gomlx/loopnest/internal/utils"
	"github.com/gomlx/loopnest/pkg/ir"
	"github.com/gomlx/loopnest/pkg/lower"
	"github.com/gomlx/loopnest/pkg/schedule"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes a set of scheduled functions and the region required of each of them.
//
// Example:
//
//	functions:
//	  - name: blur
//	    args: [x, y]
//	    stages:
//	      - directives:
//	          - split: {var: x, outer: xo, inner: xi, factor: 4, tail: GuardWithIf}
//	          - parallel: y
//	region:
//	  x: [0, 9]
//	  y: [0, 3]
type Config struct {
	Functions []FunctionConfig `yaml:"functions"`

	// Region maps a pure variable name to the [min, max] interval required of it.
	// It applies to every function using the variable.
	Region map[string][2]int64 `yaml:"region"`
}

// FunctionConfig describes one function and the schedule of its stages.
type FunctionConfig struct {
	Name      string        `yaml:"name"`
	Args      []string      `yaml:"args"`
	Bounds    []BoundConfig `yaml:"bounds"`
	ComputeAt *LevelConfig  `yaml:"compute_at"`
	StoreAt   *LevelConfig  `yaml:"store_at"`

	// Stages: the first one is the pure definition, the following ones are updates.
	Stages []StageConfig `yaml:"stages"`
}

// BoundConfig is an explicit bound of a pure variable.
type BoundConfig struct {
	Var    string `yaml:"var"`
	Min    int64  `yaml:"min"`
	Extent int64  `yaml:"extent"`
}

// LevelConfig is a loop level: either root, inline, or a loop of a stage of another function.
type LevelConfig struct {
	Root   bool   `yaml:"root"`
	Inline bool   `yaml:"inline"`
	Func   string `yaml:"func"`
	Var    string `yaml:"var"`
	RVar   bool   `yaml:"rvar"`

	// Stage defaults to the last stage of Func.
	Stage *int `yaml:"stage"`
}

// StageConfig describes the reduction domain and the scheduling directives of a stage.
type StageConfig struct {
	RVars               []RVarConfig `yaml:"rvars"`
	Directives          []Directive  `yaml:"directives"`
	Atomic              bool         `yaml:"atomic"`
	AllowRaceConditions bool         `yaml:"allow_race_conditions"`
}

// RVarConfig is a reduction variable and its constant domain.
type RVarConfig struct {
	Var    string `yaml:"var"`
	Min    int64  `yaml:"min"`
	Extent int64  `yaml:"extent"`
}

// Directive is one scheduling directive: exactly one of its fields must be set.
type Directive struct {
	Split     *SplitConfig  `yaml:"split"`
	Fuse      *FuseConfig   `yaml:"fuse"`
	Rename    *RenameConfig `yaml:"rename"`
	Purify    *RenameConfig `yaml:"purify"`
	Reorder   []string      `yaml:"reorder"`
	Parallel  string        `yaml:"parallel"`
	Vectorize string        `yaml:"vectorize"`
	Unroll    string        `yaml:"unroll"`
}

type SplitConfig struct {
	Var    string                `yaml:"var"`
	Outer  string                `yaml:"outer"`
	Inner  string                `yaml:"inner"`
	Factor int64                 `yaml:"factor"`
	Tail   schedule.TailStrategy `yaml:"tail"`
}

type FuseConfig struct {
	Inner string `yaml:"inner"`
	Outer string `yaml:"outer"`
	Fused string `yaml:"fused"`
}

type RenameConfig struct {
	Var string `yaml:"var"`
	To  string `yaml:"to"`
}

// LoadConfig reads the YAML configuration in filePath.
func LoadConfig(filePath string) (*Config, error) {
	contents, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read configuration %q", filePath)
	}
	cfg, err := ParseConfig(contents)
	if err != nil {
		return nil, errors.WithMessagef(err, "in configuration %q", filePath)
	}
	return cfg, nil
}

// ParseConfig parses a YAML configuration.
func ParseConfig(contents []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse YAML")
	}
	if len(cfg.Functions) == 0 {
		return nil, errors.New("no functions defined")
	}
	return cfg, nil
}

func validateIdentifier(kind, name string) error {
	if name == "" {
		return errors.Errorf("missing %s name", kind)
	}
	if normalized := utils.NormalizeIdentifier(name); normalized != name {
		return errors.Errorf("invalid %s name %q, maybe use %q", kind, name, normalized)
	}
	return nil
}

// Build creates the scheduled functions, in the order they are configured, and their environment.
func (cfg *Config) Build() ([]*schedule.Function, schedule.Env, error) {
	funcs := make([]*schedule.Function, 0, len(cfg.Functions))
	for _, fc := range cfg.Functions {
		fn, err := fc.build()
		if err != nil {
			return nil, nil, errors.WithMessagef(err, "function %q", fc.Name)
		}
		funcs = append(funcs, fn)
	}
	env := schedule.NewEnv(funcs...)
	if len(env) != len(funcs) {
		return nil, nil, errors.New("function names must be unique")
	}
	return funcs, env, nil
}

func (fc *FunctionConfig) build() (*schedule.Function, error) {
	if err := validateIdentifier("function", fc.Name); err != nil {
		return nil, err
	}
	if len(fc.Args) == 0 {
		return nil, errors.New("a function needs at least one argument")
	}
	for _, arg := range fc.Args {
		if err := validateIdentifier("argument", arg); err != nil {
			return nil, err
		}
	}
	fn := schedule.NewFunction(fc.Name, fc.Args...)
	for _, b := range fc.Bounds {
		if err := fn.Bound(b.Var, ir.Int(b.Min), ir.Int(b.Extent)); err != nil {
			return nil, err
		}
	}
	if fc.StoreAt != nil {
		if err := fn.StoreAt(fc.StoreAt.level()); err != nil {
			return nil, err
		}
	}
	if fc.ComputeAt != nil {
		if err := fn.ComputeAt(fc.ComputeAt.level()); err != nil {
			return nil, err
		}
	}
	for stageIdx, sc := range fc.Stages {
		var stage *schedule.StageSchedule
		if stageIdx == 0 {
			if len(sc.RVars) > 0 {
				return nil, errors.New("the pure definition (first stage) can't have reduction variables")
			}
			stage = fn.Stages[0]
		} else {
			rvars := make([]schedule.ReductionVariable, len(sc.RVars))
			for i, rv := range sc.RVars {
				if err := validateIdentifier("reduction variable", rv.Var); err != nil {
					return nil, err
				}
				rvars[i] = schedule.ReductionVariable{Var: rv.Var, Min: ir.Int(rv.Min), Extent: ir.Int(rv.Extent)}
			}
			stage = fn.AddUpdate(rvars...)
		}
		stage.Atomic = sc.Atomic
		stage.AllowRaceConditions = sc.AllowRaceConditions
		for i, d := range sc.Directives {
			if err := d.apply(stage); err != nil {
				return nil, errors.WithMessagef(err, "stage %d, directive #%d", stageIdx, i)
			}
		}
	}
	return fn, nil
}

func (lc *LevelConfig) level() schedule.LoopLevel {
	switch {
	case lc.Root:
		return schedule.Root()
	case lc.Inline:
		return schedule.Inlined()
	case lc.Stage == nil:
		return schedule.At(lc.Func, lc.Var, lc.RVar, schedule.StageUnspecified)
	default:
		return schedule.At(lc.Func, lc.Var, lc.RVar, *lc.Stage)
	}
}

// apply the directive to the stage.
func (d *Directive) apply(s *schedule.StageSchedule) error {
	set := 0
	for _, isSet := range []bool{d.Split != nil, d.Fuse != nil, d.Rename != nil, d.Purify != nil,
		len(d.Reorder) > 0, d.Parallel != "", d.Vectorize != "", d.Unroll != ""} {
		if isSet {
			set++
		}
	}
	if set != 1 {
		return errors.Errorf("exactly one directive must be given per entry, got %d", set)
	}
	switch {
	case d.Split != nil:
		for _, name := range []string{d.Split.Outer, d.Split.Inner} {
			if err := validateIdentifier("loop", name); err != nil {
				return err
			}
		}
		return s.Split(d.Split.Var, d.Split.Outer, d.Split.Inner, ir.Int(d.Split.Factor), d.Split.Tail)
	case d.Fuse != nil:
		if err := validateIdentifier("loop", d.Fuse.Fused); err != nil {
			return err
		}
		return s.Fuse(d.Fuse.Inner, d.Fuse.Outer, d.Fuse.Fused)
	case d.Rename != nil:
		if err := validateIdentifier("loop", d.Rename.To); err != nil {
			return err
		}
		return s.Rename(d.Rename.Var, d.Rename.To)
	case d.Purify != nil:
		if err := validateIdentifier("loop", d.Purify.To); err != nil {
			return err
		}
		return s.Purify(d.Purify.Var, d.Purify.To)
	case len(d.Reorder) > 0:
		return s.Reorder(d.Reorder...)
	case d.Parallel != "":
		return s.Parallel(d.Parallel)
	case d.Vectorize != "":
		return s.Vectorize(d.Vectorize)
	default:
		return s.Unroll(d.Unroll)
	}
}

// Inputs returns the values of the free variables of the loop nest, taken from the region.
//
// The inputs of a nest are the ".min" and ".max" of its pure (or purified) variables.
func (cfg *Config) Inputs(nest *lower.StageNest) (map[string]int64, error) {
	inputs := make(map[string]int64)
	var missing []string
	for _, name := range nest.Inputs() {
		varName, isMax := strings.CutSuffix(strings.TrimPrefix(name, nest.Prefix), lower.MaxSuffix)
		if !isMax {
			var isMin bool
			varName, isMin = strings.CutSuffix(varName, lower.MinSuffix)
			if !isMin {
				missing = append(missing, name)
				continue
			}
		}
		interval, found := cfg.Region[varName]
		if !found {
			missing = append(missing, name)
			continue
		}
		if interval[1] < interval[0] {
			return nil, errors.Errorf("empty region [%d, %d] for variable %q", interval[0], interval[1], varName)
		}
		if isMax {
			inputs[name] = interval[1]
		} else {
			inputs[name] = interval[0]
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, errors.Errorf("region doesn't define the inputs %s of %s", strings.Join(missing, ", "), nest.Prefix)
	}
	return inputs, nil
}
