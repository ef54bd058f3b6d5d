package util

import (
	"fmt"
	"math"

	"github.com/kapu/pokedex-lookup-go/internal/constants"
)

// FeetAndInches formats a catalog height (decimeters) as "<feet> feet <inches> inches".
// Inches are rounded; a rounded value of 12 carries into feet.
func FeetAndInches(decimeters int) string {
	feet, inches := splitFeetInches(decimeters)
	return fmt.Sprintf("%d feet %d inches", feet, inches)
}

// Pounds formats a catalog weight (hectograms) as "<pounds> pounds", rounded to the nearest pound.
func Pounds(hectograms int) string {
	kg := float64(clampNonNegative(hectograms)) * constants.UnitConversion.KilogramsPerHectogram
	return fmt.Sprintf("%d pounds", int64(math.Round(kg*constants.UnitConversion.PoundsPerKilogram)))
}

func splitFeetInches(decimeters int) (int64, int64) {
	cm := float64(clampNonNegative(decimeters)) * constants.UnitConversion.CentimetersPerDecimeter
	totalInches := cm / constants.UnitConversion.CentimetersPerInch

	perFoot := constants.UnitConversion.InchesPerFoot
	feet := int64(math.Floor(totalInches / perFoot))
	inches := int64(math.Round(math.Mod(totalInches, perFoot)))
	if inches == int64(perFoot) {
		feet++
		inches = 0
	}
	return feet, inches
}

// negative measurements never come from the catalog; render them as zero
func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
