package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/csp/internal/lifecycle"
)

func TestInitFinishRoundTrip(t *testing.T) {
	require.True(t, lifecycle.Init())
	assert.True(t, lifecycle.Initialised())
	require.True(t, lifecycle.Finish())
}

func TestFinishWithoutInitReturnsFalse(t *testing.T) {
	for lifecycle.Initialised() {
		lifecycle.Finish()
	}
	assert.False(t, lifecycle.Finish())
	assert.False(t, lifecycle.Initialised())
}

func TestNestedInitRequiresMatchingFinishCount(t *testing.T) {
	for lifecycle.Initialised() {
		lifecycle.Finish()
	}

	lifecycle.Init()
	lifecycle.Init()
	assert.True(t, lifecycle.Initialised())

	lifecycle.Finish()
	assert.True(t, lifecycle.Initialised(), "one Finish must not undo two Inits")

	lifecycle.Finish()
	assert.False(t, lifecycle.Initialised())
}
