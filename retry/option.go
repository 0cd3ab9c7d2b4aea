package retry

import (
	"log/slog"
	"time"
)

type Option func(r *Retrier)

// WithTimeFactor sets the unit of the linear backoff. Default is one second.
func WithTimeFactor(d time.Duration) Option {
	return func(r *Retrier) {
		r.timeFactor = d
	}
}

// WithLogEvery sets how many failures pass between two log records. Default is ten.
func WithLogEvery(n int) Option {
	return func(r *Retrier) {
		r.logEvery = n
	}
}

// WithLogger sets the logger that receives the periodic failure records.
func WithLogger(l Logger) Option {
	return func(r *Retrier) {
		r.logger = l
	}
}

// WithSlog is a shorthand for WithLogger(SlogLogger(l)).
func WithSlog(l *slog.Logger) Option {
	return func(r *Retrier) {
		r.logger = SlogLogger(l)
	}
}

// WithSleepFunc sets the function used to wait between attempts.
func WithSleepFunc(f SleepFunc) Option {
	return func(r *Retrier) {
		r.sleep = f
	}
}

// WithMaxAttempts caps the number of attempts. Zero means retry forever.
func WithMaxAttempts(n int) Option {
	return func(r *Retrier) {
		r.maxAttempts = n
	}
}

// WithMaxInterval caps the delay between two attempts. Zero means the delay grows without bound.
func WithMaxInterval(d time.Duration) Option {
	return func(r *Retrier) {
		r.maxInterval = d
	}
}
