package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceLoops(t *testing.T) {
	a := NewAnimator(7)

	assert.False(t, a.Advance(0.5, 4, true))
	assert.Equal(t, 3, a.Frame(4))

	assert.True(t, a.Advance(0.25, 4, true))
	assert.InDelta(t, 1.25, a.Index(), 1e-9)
	assert.Equal(t, 1, a.Frame(4))
}

func TestAdvanceOneShotHoldsLastFrame(t *testing.T) {
	a := NewAnimator(7)

	assert.True(t, a.Advance(1, 4, false))
	assert.Equal(t, 3, a.Frame(4))

	a.Restart()
	assert.Equal(t, 0, a.Frame(4))
}

func TestAdvanceEmptySequence(t *testing.T) {
	a := NewAnimator(7)

	assert.False(t, a.Advance(1, 0, true))
	assert.Equal(t, 0, a.Frame(0))
}
