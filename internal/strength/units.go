package strength

// WeightUnit is the unit a weight value was logged in.
type WeightUnit string

const (
	UnitKg  WeightUnit = "kg"
	UnitLbs WeightUnit = "lbs"
)

const LbsToKg = 0.453592

// ToKg converts a weight in the given unit to kilograms.
// Unknown units are treated as kilograms.
func ToKg(weight float64, unit WeightUnit) float64 {
	if unit == UnitLbs {
		return weight * LbsToKg
	}
	return weight
}

// FromKg converts a weight in kilograms to the given unit.
func FromKg(weightKg float64, unit WeightUnit) float64 {
	if unit == UnitLbs {
		return weightKg / LbsToKg
	}
	return weightKg
}
