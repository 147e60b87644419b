//go:build !assertions_disabled

package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrue(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		True(true)
	})

	assert.Panics(t, func() {
		True(false)
	})

	assert.PanicsWithValue(t, "bucket 3 out of range", func() {
		True(false, "bucket %d out of range", 3)
	})
}

func TestFalse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		False(false)
	})

	assert.Panics(t, func() {
		False(true)
	})
}

func TestNotNil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		NotNil("something")
	})

	assert.Panics(t, func() {
		NotNil(nil)
	})
}
