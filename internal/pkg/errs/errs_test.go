//go:build unit

package errs_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"dropdeck/internal/pkg/errs"
)

func TestIsSeesMarkedSentinels(t *testing.T) {
	sentinel := errs.New("product already has a pending drop")
	err := errs.Mark(errs.New("duplicate key"), sentinel)

	assert.True(t, errs.Is(err, sentinel))
	assert.True(t, errs.Is(errs.Wrap(err, "insert drop"), sentinel))

	// The mark sits outside the Unwrap chain, so the standard library cannot
	// match it.
	assert.False(t, stderrors.Is(err, sentinel))
}

func TestMarkWithNilCauseReturnsSentinel(t *testing.T) {
	sentinel := errs.New("invalid settings")
	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
}
