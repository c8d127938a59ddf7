package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("wrapped: %w", ErrFullCapacity))
	assert.True(t, ok)
	assert.Equal(t, KindFullCapacity, kind)

	_, ok = KindOf(errors.New("boom"))
	assert.False(t, ok)

	_, ok = KindOf(nil)
	assert.False(t, ok)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "not_eligible", KindNotEligible.String())
	assert.Equal(t, "full_capacity", KindFullCapacity.String())
	assert.Equal(t, "forbidden", KindForbidden.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}
