package retry

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestDoProperty checks the backoff and logging schedule for any number of
// failures followed by a success.
func TestDoProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	run := func(k int, unit time.Duration, logEvery int) (string, *recordingSleeper, *recordingLogger, int, error) {
		var (
			logger  = &recordingLogger{}
			sleeper = &recordingSleeper{}
		)
		r, err := New(
			WithTimeFactor(unit),
			WithLogEvery(logEvery),
			WithLogger(logger),
			WithSleepFunc(sleeper.sleep),
		)
		if err != nil {
			return "", nil, nil, 0, err
		}
		op, calls := failingOp(k, "v")
		v, err := Do(context.Background(), r, op)
		return v, sleeper, logger, *calls, err
	}

	properties.Property("returns the success value after k+1 calls", prop.ForAll(
		func(k int) bool {
			v, _, _, calls, err := run(k, time.Second, DefaultLogEvery)
			return err == nil && v == "v" && calls == k+1
		},
		gen.IntRange(0, 60),
	))

	properties.Property("sleeps 0..k-1 time factors in order", prop.ForAll(
		func(k int, unitMs int) bool {
			unit := time.Duration(unitMs) * time.Millisecond
			_, sleeper, _, _, err := run(k, unit, DefaultLogEvery)
			return err == nil && reflect.DeepEqual(sleeper.sleeps, linearSleeps(k, unit))
		},
		gen.IntRange(0, 60),
		gen.IntRange(1, 5000),
	))

	properties.Property("logs once per logEvery failures with the running count", prop.ForAll(
		func(k int, logEvery int) bool {
			_, _, logger, _, err := run(k, time.Second, logEvery)
			if err != nil {
				return false
			}
			counts := logger.tryCounts()
			if len(counts) != k/logEvery {
				return false
			}
			for i, c := range counts {
				if c != (i+1)*logEvery {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 100),
		gen.IntRange(1, 15),
	))

	properties.TestingRun(t)
}
