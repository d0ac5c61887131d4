// splitinspect lowers scheduled functions to their loop nests, prints them, and checks by running
// them that the required region is covered.
//
// The schedules are read from a YAML configuration (see Config), or a single split of a function
// is described with flags, asked interactively if missing.
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/loopnest/pkg/lower"
	"github.com/gomlx/loopnest/pkg/schedule"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagConfig = flag.String("config", "",
		"YAML file with the functions, their schedules and the required region. "+
			"If empty, a single split is described by the flags -args, -split, -factor, -tail and -extent.")
	flagFunc  = flag.String("func", "", "Only inspect this function. Defaults to all the configured functions.")
	flagRun   = flag.Bool("run", true, "Run the loop nests over the required region and report its coverage.")
	flagColor = flag.Bool("color", true, "Colorize the output, if it is a terminal.")

	flagArgs   = flag.String("args", "x,y", "Comma-separated pure variables of the function f.")
	flagSplit  = flag.String("split", "", "Variable of f to split into <var>o and <var>i.")
	flagFactor = flag.String("factor", "4", "Split factor: a strictly positive integer.")
	flagTail   = flag.String("tail", schedule.TailAuto.String(),
		"Tail strategy of the split. Valid values: "+strings.Join(schedule.TailStrategyStrings(), ", "))
	flagExtent = flag.String("extent", "10", "Extent of the region required of every variable of f, starting at 0.")
)

var tailDescriptions = map[schedule.TailStrategy]string{
	schedule.TailAuto:            "GuardWithIf for reductions, RoundUp for updates, ShiftInwards otherwise",
	schedule.TailGuardWithIf:     "skip the iterations past the end",
	schedule.TailPredicate:       "like GuardWithIf, loads and stores may be predicated",
	schedule.TailPredicateLoads:  "like GuardWithIf, only the loads are predicated",
	schedule.TailPredicateStores: "like GuardWithIf, only the stores are predicated",
	schedule.TailShiftInwards:    "shift the last tile inwards, recomputing values",
	schedule.TailRoundUp:         "round the extent up to a multiple of the factor",
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	var cfg *Config
	var err error
	if *flagConfig != "" {
		cfg, err = LoadConfig(*flagConfig)
	} else {
		if *flagSplit == "" {
			tails := schedule.TailStrategyValues()
			tailValues := make([]string, len(tails))
			tailDescs := make([]string, len(tails))
			for i, tail := range tails {
				tailValues[i] = tail.String()
				tailDescs[i] = tailDescriptions[tail]
			}
			questions := []Question{
				{Title: "Variables of f", Flag: flag.CommandLine.Lookup("args"), Values: []string{"x,y", "x", "x,y,c"},
					CustomValues: true, ValidateFn: ValidateArgs},
				{Title: "Variable to split", Flag: flag.CommandLine.Lookup("split"), Values: []string{"x", "y"},
					CustomValues: true, ValidateFn: ValidateSplit},
				{Title: "Split factor", Flag: flag.CommandLine.Lookup("factor"), Values: []string{"4", "8", "16"},
					CustomValues: true, ValidateFn: ValidateFactor},
				{Title: "Tail strategy", Flag: flag.CommandLine.Lookup("tail"),
					Values: tailValues, ValuesDescriptions: tailDescs, CustomValues: false},
				{Title: "Extent of the required region", Flag: flag.CommandLine.Lookup("extent"),
					Values: []string{"10", "16", "1"}, CustomValues: true, ValidateFn: ValidateExtent},
			}
			err = Interact(os.Args[0], questions)
			if err != nil {
				if err == ErrUserAborted {
					fmt.Println("Inspection aborted.")
					return
				}
				klog.Fatalf("Failed on error: %+v", err)
			}
		}
		cfg, err = QuickConfig()
	}
	if err != nil {
		klog.Fatalf("Failed on error: %+v", err)
	}

	r := NewRenderer(os.Stdout, *flagColor)
	ok, err := Inspect(cfg, *flagFunc, *flagRun, r)
	if err != nil {
		klog.Fatalf("Failed on error: %+v", err)
	}
	if !ok {
		os.Exit(1)
	}
}

// Inspect lowers every stage of the configured functions (or only of onlyFunc, if set) and prints
// them. If run is true, it also runs them over the configured region.
//
// It returns false if a schedule is invalid or a run didn't cover the required region.
// Errors are returned only for failures unrelated to the schedules.
func Inspect(cfg *Config, onlyFunc string, run bool, r *Renderer) (ok bool, err error) {
	funcs, env, err := cfg.Build()
	if err != nil {
		if schedule.IsUserError(err) {
			r.Error(err)
			return false, nil
		}
		return false, err
	}
	if err := env.Validate(); err != nil {
		if schedule.IsUserError(err) {
			r.Error(err)
			return false, nil
		}
		return false, err
	}
	if onlyFunc != "" {
		if _, err := env.Lookup(onlyFunc); err != nil {
			return false, err
		}
	}

	ok = true
	for _, fn := range funcs {
		if onlyFunc != "" && fn.Name != onlyFunc {
			continue
		}
		for stageIdx := range fn.Stages {
			var nest *lower.StageNest
			// Internal errors panic: report them with the stage that triggered them.
			if panicErr := exceptions.TryCatch[error](func() { nest, err = lower.LowerStage(fn, stageIdx) }); panicErr != nil {
				return false, errors.WithMessagef(panicErr, "lowering stage %d of %s", stageIdx, fn.Name)
			}
			if err != nil {
				if !schedule.IsUserError(err) {
					return false, err
				}
				r.Error(err)
				ok = false
				continue
			}
			klog.V(1).Infof("lowered %s: loops %v, inputs %v", nest.Prefix, nest.Loops, nest.Inputs())
			if err := r.Nest(nest); err != nil {
				return false, errors.Wrap(err, "failed to print loop nest")
			}
			if !run {
				continue
			}
			inputs, err := cfg.Inputs(nest)
			if err != nil {
				return false, err
			}
			report, err := Run(nest, inputs)
			if err != nil {
				return false, errors.WithMessagef(err, "running %s", nest.Prefix)
			}
			r.Report(report)
			if !report.Complete() {
				klog.Warningf("%s doesn't cover the required region: %s", nest.Prefix, report)
				ok = false
			}
		}
	}
	return ok, nil
}

// QuickConfig builds the configuration of a function "f" with a single split from the flags.
func QuickConfig() (*Config, error) {
	for _, validate := range []func() error{ValidateArgs, ValidateSplit, ValidateFactor, ValidateExtent} {
		if err := validate(); err != nil {
			return nil, err
		}
	}
	tail, err := schedule.TailStrategyString(*flagTail)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid -tail=%q", *flagTail)
	}
	factor, _ := strconv.ParseInt(*flagFactor, 10, 64)
	extent, _ := strconv.ParseInt(*flagExtent, 10, 64)
	args := parseArgs()
	cfg := &Config{
		Functions: []FunctionConfig{{
			Name: "f",
			Args: args,
			Stages: []StageConfig{{
				Directives: []Directive{{Split: &SplitConfig{
					Var: *flagSplit, Outer: *flagSplit + "o", Inner: *flagSplit + "i", Factor: factor, Tail: tail,
				}}},
			}},
		}},
		Region: make(map[string][2]int64, len(args)),
	}
	for _, arg := range args {
		cfg.Region[arg] = [2]int64{0, extent - 1}
	}
	return cfg, nil
}

func parseArgs() []string {
	var args []string
	for _, arg := range strings.Split(*flagArgs, ",") {
		if arg = strings.TrimSpace(arg); arg != "" {
			args = append(args, arg)
		}
	}
	return args
}

// ValidateArgs validates the -args flag.
func ValidateArgs() error {
	args := parseArgs()
	if len(args) == 0 {
		return errors.New("f needs at least one variable")
	}
	for i, arg := range args {
		if err := validateIdentifier("variable", arg); err != nil {
			return err
		}
		if slices.Contains(args[:i], arg) {
			return errors.Errorf("variable %q given twice", arg)
		}
	}
	return nil
}

// ValidateSplit validates the -split flag: it must be one of the variables of f.
func ValidateSplit() error {
	if !slices.Contains(parseArgs(), *flagSplit) {
		return errors.Errorf("%q is not one of the variables %q of f", *flagSplit, *flagArgs)
	}
	return nil
}

func validatePositive(name, value string) error {
	v, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid %s %q", name, value)
	}
	if v <= 0 {
		return errors.Errorf("%s must be strictly positive, got %d", name, v)
	}
	return nil
}

// ValidateFactor validates the -factor flag.
func ValidateFactor() error { return validatePositive("split factor", *flagFactor) }

// ValidateExtent validates the -extent flag.
func ValidateExtent() error { return validatePositive("extent", *flagExtent) }
