package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueIsAuto(t *testing.T) {
	var m Mode
	assert.Equal(t, KindAuto, m.Kind())
}

func TestModeConstructors(t *testing.T) {
	assert.Equal(t, KindAuto, Auto().Kind())
	assert.Equal(t, KindNone, None().Kind())

	forced := Forced("get_commands")
	assert.Equal(t, KindForced, forced.Kind())

	name, ok := forced.CapabilityName()
	assert.True(t, ok)
	assert.Equal(t, "get_commands", name)
}

func TestCapabilityNameOnlyForForced(t *testing.T) {
	for _, m := range []Mode{Auto(), None()} {
		name, ok := m.CapabilityName()
		assert.False(t, ok)
		assert.Empty(t, name)
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "auto", Auto().String())
	assert.Equal(t, "none", None().String())
	assert.Equal(t, "forced(get_current_weather)", Forced("get_current_weather").String())
}
