package lookup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFound(t *testing.T) {
	r := Found(42)

	v, ok := r.Get()
	assert.True(t, ok)
	assert.True(t, r.Ok())
	assert.Equal(t, 42, v)
	assert.NoError(t, r.Err)
	assert.Equal(t, "found", r.Status.String())
}

func TestAbsent(t *testing.T) {
	r := Absent[string]()

	v, ok := r.Get()
	assert.False(t, ok)
	assert.False(t, r.Ok())
	assert.Empty(t, v)
	assert.Equal(t, "absent", r.Status.String())
}

func TestFailed(t *testing.T) {
	cause := errors.New("boom")
	r := Failed[int](cause)

	_, ok := r.Get()
	assert.False(t, ok)
	assert.Equal(t, StatusFailed, r.Status)
	assert.ErrorIs(t, r.Err, cause)
	assert.Equal(t, "failed", r.Status.String())
}

func TestZeroValueIsAbsent(t *testing.T) {
	var r Result[float64]
	assert.Equal(t, StatusAbsent, r.Status)
	assert.False(t, r.Ok())
}
