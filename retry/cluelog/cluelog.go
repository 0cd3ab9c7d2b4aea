// Package cluelog adapts goa.design/clue/log to the retry.Logger interface.
//
// Clue reads its output and format settings from the context, so the context
// given to retry.Do must be initialized with log.Context for records to appear.
package cluelog

import (
	"context"

	"goa.design/clue/log"

	"github.com/aniladanir/devutil/retry"
)

// Logger forwards retry failure records to clue.
type Logger struct{}

var _ retry.Logger = Logger{}

// New returns a retry.Logger backed by clue.
func New() retry.Logger {
	return Logger{}
}

// Error emits an error-level record with the message under "msg".
func (Logger) Error(ctx context.Context, msg string, keyvals ...any) {
	fielders := append([]log.Fielder{log.KV{K: "msg", V: msg}}, kvSliceToClue(keyvals)...)
	log.Error(ctx, nil, fielders...)
}

// kvSliceToClue pairs up keyvals, skipping entries whose key is not a string.
// A trailing key without a value is logged with a nil value.
func kvSliceToClue(keyvals []any) []log.Fielder {
	var fielders []log.Fielder
	for i := 0; i < len(keyvals); i += 2 {
		k, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		var v any
		if i+1 < len(keyvals) {
			v = keyvals[i+1]
		}
		fielders = append(fielders, log.KV{K: k, V: v})
	}
	return fielders
}
