package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

type Retrier struct {
	// timeFactor is the backoff unit. The n-th failure sleeps n * timeFactor.
	timeFactor time.Duration
	// logEvery is the number of failures between two log records.
	logEvery int
	logger   Logger
	sleep    SleepFunc
	// maxAttempts is an opt-in cap on attempts. Zero retries forever.
	maxAttempts int
	// maxInterval is an opt-in cap on a single delay. Zero leaves the delay unbounded.
	maxInterval time.Duration
}

// ErrMaxAttempts is returned by Do when a retrier configured WithMaxAttempts runs out of attempts.
var ErrMaxAttempts = errors.New("retry: maximum attempts reached")

// Validate checks the configuration for invalid values
func (r *Retrier) Validate() error {
	if r.timeFactor <= 0 {
		return errors.New("time factor must be greater than zero")
	}
	if r.logEvery < 1 {
		return errors.New("log period must be at least one")
	}
	if r.maxAttempts < 0 {
		return errors.New("maximum attempts cannot be negative")
	}
	if r.maxInterval < 0 {
		return errors.New("maximum interval cannot be negative")
	}
	if r.logger == nil {
		return errors.New("logger cannot be nil")
	}
	if r.sleep == nil {
		return errors.New("sleep function cannot be nil")
	}

	return nil
}

// Operation is a fallible unit of work. It should return promptly once ctx is done.
type Operation[T any] func(ctx context.Context) (T, error)

// SleepFunc waits for d or until ctx is done, whichever comes first. It returns
// ctx.Err() when the wait was cut short.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Result is delivered on the channel returned by DoAsync.
type Result[T any] struct {
	Value T
	Err   error
}

// Default configuration values
const (
	DefaultTimeFactor  = time.Second
	DefaultLogEvery    = 10
	DefaultMaxAttempts = 0
	DefaultMaxInterval = time.Duration(0)
)

var newTimer = func(d time.Duration) *time.Timer {
	return time.NewTimer(d)
}

// defaultRetrier backs UntilSuccess. Its logger resolves slog.Default when it logs.
var defaultRetrier = &Retrier{
	timeFactor:  DefaultTimeFactor,
	logEvery:    DefaultLogEvery,
	logger:      SlogLogger(nil),
	sleep:       Sleep,
	maxAttempts: DefaultMaxAttempts,
	maxInterval: DefaultMaxInterval,
}

// New creates a new retrier with the default configuration.
func New(options ...Option) (*Retrier, error) {
	r := &Retrier{
		timeFactor:  DefaultTimeFactor,
		logEvery:    DefaultLogEvery,
		logger:      SlogLogger(nil),
		sleep:       Sleep,
		maxAttempts: DefaultMaxAttempts,
		maxInterval: DefaultMaxInterval,
	}
	for _, o := range options {
		o(r)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// UntilSuccess runs op with the default retrier until it succeeds and returns its value.
//
// Operation errors never surface. The returned error is non-nil only when ctx is
// canceled, in which case it is ctx.Err().
func UntilSuccess[T any](ctx context.Context, op Operation[T]) (T, error) {
	return Do(ctx, defaultRetrier, op)
}

// Do runs op until it succeeds and returns its value. A nil retrier uses the defaults.
//
// After the n-th failure (counting from zero) Do sleeps r.Backoff(n). Every
// logEvery failures it logs the attempt count and the last error. Do returns
// early only when ctx is canceled or when the retrier was configured with
// WithMaxAttempts and the last allowed attempt failed.
func Do[T any](ctx context.Context, r *Retrier, op Operation[T]) (T, error) {
	var zero T

	if r == nil {
		r = defaultRetrier
	}

	tries := 0
	for {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}

		if r.maxAttempts > 0 && tries+1 >= r.maxAttempts {
			return zero, fmt.Errorf("%w after %d attempts: %w", ErrMaxAttempts, tries+1, err)
		}

		if serr := r.sleep(ctx, r.Backoff(tries)); serr != nil {
			return zero, serr
		}
		tries++

		if tries%r.logEvery == 0 {
			r.logger.Error(ctx, "operation failed, retrying",
				"try_count", tries,
				"error", fmt.Sprintf("%+v", err),
			)
		}
	}
}

// DoAsync runs Do on a new goroutine.
//
// Exactly one Result is sent on the returned channel, which is closed right after.
// The channel is buffered so the goroutine exits even if nobody receives.
func DoAsync[T any](ctx context.Context, r *Retrier, op Operation[T]) <-chan Result[T] {
	ch := make(chan Result[T], 1)

	go func() {
		defer close(ch)
		v, err := Do(ctx, r, op)
		ch <- Result[T]{Value: v, Err: err}
	}()

	return ch
}

// Run is Do for operations that produce no value.
func (r *Retrier) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := Do(ctx, r, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// Backoff returns the delay that follows the n-th failure, counting from zero.
// The product saturates instead of overflowing.
func (r *Retrier) Backoff(n int) time.Duration {
	if n <= 0 || r.timeFactor <= 0 {
		return 0
	}

	var backoff time.Duration
	if int64(n) > math.MaxInt64/int64(r.timeFactor) {
		backoff = math.MaxInt64
	} else {
		backoff = time.Duration(n) * r.timeFactor
	}

	if r.maxInterval > 0 && backoff > r.maxInterval {
		return r.maxInterval
	}

	return backoff
}

// Sleep is the default SleepFunc. A non-positive d only checks ctx.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := newTimer(d)
	defer stopAndDrainTimer(timer)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func stopAndDrainTimer(timer *time.Timer) {
	timer.Stop()

	select {
	case <-timer.C:
	default:
	}
}
