package tests

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/gomlx/loopnest/pkg/lower"
	"github.com/gomlx/loopnest/pkg/schedule"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagMaxExtent = flag.Int("max_extent", 17, "Largest loop extent exercised by the end-to-end schedule tests.")
	flagArgMin    = flag.Int("arg_min", -3, "Min of the region required of every pure variable.")
)

func init() {
	klog.InitFlags(nil)
}

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

// requireNoError fails the test immediately if err is not nil.
func requireNoError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		if len(msgAndArgs) > 0 {
			format, ok := msgAndArgs[0].(string)
			if ok && len(msgAndArgs) > 1 {
				t.Fatalf("%s: %+v", fmt.Sprintf(format, msgAndArgs[1:]...), err)
			} else {
				t.Fatalf("%v: %+v", msgAndArgs[0], err)
			}
		} else {
			t.Fatalf("unexpected error: %+v", err)
		}
	}
}

// argRegion returns the inputs of a nest requiring [*flagArgMin, *flagArgMin+extent) of every
// pure variable of the function.
func argRegion(fn *schedule.Function, stageIndex int, extent int64) map[string]int64 {
	prefix := lower.StagePrefix(fn.Name, stageIndex)
	inputs := make(map[string]int64, 2*len(fn.Args))
	for _, arg := range fn.Args {
		inputs[prefix+arg+lower.MinSuffix] = int64(*flagArgMin)
		inputs[prefix+arg+lower.MaxSuffix] = int64(*flagArgMin) + extent - 1
	}
	return inputs
}

// site is the key of a point of the iteration domain of a stage, up to 3 dimensions.
type site [3]int64

// coverage lowers stage stageIndex of fn, runs it, and counts the visits of each site.
func coverage(t *testing.T, fn *schedule.Function, stageIndex int, inputs map[string]int64) map[site]int {
	t.Helper()
	nest, err := lower.LowerStage(fn, stageIndex)
	requireNoError(t, err, "lowering %s stage %d", fn.Name, stageIndex)
	if klog.V(1).Enabled() {
		klog.Infof("loop nest:\n%s", nest)
	}
	counts := make(map[site]int)
	err = nest.Iterate(inputs, func(values []int64) error {
		if len(values) > len(site{}) {
			return errors.Errorf("site %v has more than %d dimensions", values, len(site{}))
		}
		var key site
		copy(key[:], values)
		counts[key]++
		return nil
	})
	requireNoError(t, err, "running %s stage %d", fn.Name, stageIndex)
	return counts
}
