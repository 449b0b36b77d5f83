package systems

import (
	"testing"
	"time"

	"github.com/automoto/coffin-escape/components"
	cfg "github.com/automoto/coffin-escape/config"
	"github.com/stretchr/testify/assert"
)

func TestBlinking(t *testing.T) {
	period := cfg.Combat.BlinkPeriod
	hit := &components.HealthData{Vulnerable: false}

	assert.False(t, Blinking(period/4, &components.HealthData{Vulnerable: true}))
	assert.False(t, Blinking(period/4, nil))

	assert.True(t, Blinking(period/4, hit), "first half of the period is white")
	assert.False(t, Blinking(3*period/4, hit))
	assert.True(t, Blinking(period+period/4, hit))
	assert.True(t, Blinking(time.Duration(0), hit))
}
