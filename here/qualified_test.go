package here_test

import (
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aniladanir/devutil/here"
)

func TestQualifiedCall(t *testing.T) {
	_, file, _, _ := runtime.Caller(0)

	got, l := here.Msgf("retry %d", 3), callerLine()
	assert.Equal(t, file+":"+strconv.Itoa(l)+":12: retry 3", got)
}

func callerLine() int {
	_, _, l, _ := runtime.Caller(1)
	return l
}
