package turbosign

import (
	"fmt"
	"math"
)

// goldenRatioConjugate spaces consecutive recipient hues nearly maximally
// apart around the color wheel without a lookup table.
const goldenRatioConjugate = 0.6180339887498949

// RecipientColors is the color pair assigned to a recipient for preview
// rendering: a primary color and a light background variant.
type RecipientColors struct {
	Color      string
	LightColor string
}

// ColorForRecipient returns the deterministic preview colors for the
// recipient at the given index. The same index always yields the same
// pair; the colors are client-side metadata only and never carry meaning
// the server depends on.
func ColorForRecipient(index int) RecipientColors {
	hue := int(math.Floor(math.Mod(float64(index)*goldenRatioConjugate*360, 360)))
	return RecipientColors{
		Color:      fmt.Sprintf("hsl(%d, 75%%, 50%%)", hue),
		LightColor: fmt.Sprintf("hsl(%d, 75%%, 93%%)", hue),
	}
}
