// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	err := New(KindNotFound, "repo %s missing", "octo/spoon")
	assert.Equal(t, "NOT_FOUND: repo octo/spoon missing", err.Error())

	wrapped := Wrap(KindTransient, stderrors.New("dial tcp: timeout"), "fetching tags")
	assert.Equal(t, "TRANSIENT: fetching tags: dial tcp: timeout", wrapped.Error())
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := New(KindUnauthorized, "bad token")
	outer := fmt.Errorf("generating document: %w", inner)

	assert.True(t, Is(outer, KindUnauthorized))
	assert.False(t, Is(outer, KindNotFound))
	assert.Equal(t, KindUnauthorized, KindOf(outer))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(stderrors.New("plain")))
	assert.False(t, Is(stderrors.New("plain"), KindTransient))
}

func TestUnwrapReachesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(KindTransient, cause, "upstream")
	assert.True(t, stderrors.Is(err, cause))
}

func TestRetryAfterOf(t *testing.T) {
	err := New(KindRateLimited, "quota exhausted")
	err.RetryAfter = 42 * time.Second

	outer := fmt.Errorf("client: %w", err)
	assert.Equal(t, 42*time.Second, RetryAfterOf(outer))
	assert.Equal(t, time.Duration(0), RetryAfterOf(stderrors.New("plain")))
}
