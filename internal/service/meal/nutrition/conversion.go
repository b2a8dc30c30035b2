// Package nutrition implements energy unit conversions and display rounding
// for nutrient aggregation. All functions are pure and total over finite
// non-negative inputs; NaN, infinite, and negative inputs are treated as 0.
package nutrition

import "math"

// KJPerKcal is the thermochemical calorie conversion factor.
const KJPerKcal = 4.184

// Atwater general factors: kcal per gram of macro-nutrient.
// Fiber and sodium carry no energy contribution here.
const (
	KcalPerGramProtein = 4.0
	KcalPerGramFat     = 9.0
	KcalPerGramCarb    = 4.0
)

// Unit selects the energy representation for display formatting.
type Unit string

const (
	UnitKcal Unit = "kcal"
	UnitKJ   Unit = "kj"
)

func (u Unit) IsValid() bool {
	return u == UnitKcal || u == UnitKJ
}

// KcalToKJ converts kilocalories to kilojoules.
//
//	kJ = kcal × 4.184
func KcalToKJ(kcal float64) float64 {
	return sanitize(kcal) * KJPerKcal
}

// KJToKcal converts kilojoules to kilocalories.
//
//	kcal = kJ / 4.184
func KJToKcal(kj float64) float64 {
	return sanitize(kj) / KJPerKcal
}

// MacrosToKcal estimates energy from macros using the Atwater factors.
//
//	kcal = 4·protein + 9·fat + 4·carb
func MacrosToKcal(proteinG, fatG, carbG float64) float64 {
	return KcalPerGramProtein*sanitize(proteinG) +
		KcalPerGramFat*sanitize(fatG) +
		KcalPerGramCarb*sanitize(carbG)
}

// FormatEnergy computes macro-derived energy in the requested unit with
// display rounding: kcal to the nearest integer, kJ to one decimal place.
// An unknown unit falls back to kcal.
func FormatEnergy(proteinG, fatG, carbG float64, unit Unit) float64 {
	kcal := MacrosToKcal(proteinG, fatG, carbG)
	if unit == UnitKJ {
		return Round1(KcalToKJ(kcal))
	}
	return math.Round(kcal)
}

// Round1 rounds to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// sanitize maps absent/invalid numeric input to 0 so conversions stay total.
func sanitize(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0
	}
	return x
}
