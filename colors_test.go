package turbosign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorForRecipient_Deterministic(t *testing.T) {
	for _, index := range []int{0, 1, 2, 17, 359} {
		first := ColorForRecipient(index)
		second := ColorForRecipient(index)
		assert.Equal(t, first, second, "index %d", index)
	}
}

func TestColorForRecipient_KnownValues(t *testing.T) {
	c0 := ColorForRecipient(0)
	assert.Equal(t, "hsl(0, 75%, 50%)", c0.Color)
	assert.Equal(t, "hsl(0, 75%, 93%)", c0.LightColor)

	// index 1: 0.6180339887498949 * 360 = 222.49...
	c1 := ColorForRecipient(1)
	assert.Equal(t, "hsl(222, 75%, 50%)", c1.Color)
	assert.Equal(t, "hsl(222, 75%, 93%)", c1.LightColor)
}

func TestColorForRecipient_NoHueCollisions(t *testing.T) {
	// Hues stay distinct well past any realistic recipient count; the
	// first repeat happens around index 233.
	seen := make(map[string]int)
	for i := 0; i < 200; i++ {
		hue := ColorForRecipient(i).Color
		if prev, ok := seen[hue]; ok {
			t.Fatalf("hue collision: index %d and %d both map to %s", prev, i, hue)
		}
		seen[hue] = i
	}
}

func TestColorForRecipient_ConsecutiveIndicesWellSeparated(t *testing.T) {
	// Golden-ratio spacing keeps neighbors far apart on the wheel.
	a := ColorForRecipient(4)
	b := ColorForRecipient(5)
	assert.NotEqual(t, a.Color, b.Color)
	assert.NotEqual(t, a.LightColor, b.LightColor)
}
