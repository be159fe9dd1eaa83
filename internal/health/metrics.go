package health

import (
	"fmt"
	"math"
)

type BMICategory string

const (
	Underweight BMICategory = "Underweight"
	Healthy     BMICategory = "Healthy"
	Overweight  BMICategory = "Overweight"
	Obese       BMICategory = "Obese"
)

// WeightRange is an inclusive kg range.
type WeightRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Metrics holds every indicator derived from a UserProfile.
type Metrics struct {
	BMI                float64     `json:"bmi"`
	BMICategory        BMICategory `json:"bmi_category"`
	HealthyWeightRange WeightRange `json:"healthy_weight_range"`
	IdealWeight        float64     `json:"ideal_weight"`
	DailyCalories      int         `json:"daily_calories"`
	HeightFeet         int         `json:"height_feet"`
	HeightInches       int         `json:"height_inches"`
}

// Goal-based daily calorie adjustment. Applied as a flat offset, not a
// percentage of TDEE.
const goalCalorieDelta = 500

// round1 rounds to one decimal, halves away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func heightM2(heightCM float64) float64 {
	m := heightCM / 100
	return m * m
}

// BMI returns weight / height² (metres), rounded to one decimal.
func BMI(weightKG, heightCM float64) float64 {
	return round1(weightKG / heightM2(heightCM))
}

// Category buckets a BMI into half-open intervals at 18.5, 25 and 30.
func Category(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Healthy
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// HealthyWeightRange returns the weights giving a BMI of 18.5 and 24.9 at
// the given height.
func HealthyWeightRange(heightCM float64) WeightRange {
	h2 := heightM2(heightCM)
	return WeightRange{Low: round1(18.5 * h2), High: round1(24.9 * h2)}
}

// IdealWeight is a simplified heuristic: 50kg + 0.9kg per cm over 152cm,
// reduced by 5% past age 40. Not rounded.
func IdealWeight(heightCM float64, age int) float64 {
	w := 50 + 0.9*(heightCM-152)
	if age > 40 {
		w *= 0.95
	}
	return w
}

// ActivityMultiplier maps an activity level to its TDEE multiplier.
func ActivityMultiplier(level ActivityLevel) (float64, error) {
	switch level {
	case Sedentary:
		return 1.2, nil
	case LightlyActive:
		return 1.375, nil
	case ModeratelyActive:
		return 1.55, nil
	case VeryActive:
		return 1.725, nil
	case ExtremelyActive:
		return 1.9, nil
	}
	return 0, fmt.Errorf("activity_level %q: %w", level, ErrUnknownOption)
}

// bmr is the Mifflin-St Jeor basal metabolic rate. Anything other than Male
// uses the female constant.
func bmr(age int, weightKG, heightCM float64, sex Sex) float64 {
	b := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if sex == Male {
		return b + 5
	}
	return b - 161
}

// CaloricNeeds estimates daily calories: BMR × activity multiplier, then
// ±500 kcal for weight-loss and muscle-gain goals.
func CaloricNeeds(age int, weightKG, heightCM float64, sex Sex, level ActivityLevel, goal FitnessGoal) (int, error) {
	if !sex.Valid() {
		return 0, fmt.Errorf("sex %q: %w", sex, ErrUnknownOption)
	}
	if !goal.Valid() {
		return 0, fmt.Errorf("fitness_goal %q: %w", goal, ErrUnknownOption)
	}
	mult, err := ActivityMultiplier(level)
	if err != nil {
		return 0, err
	}
	calories := bmr(age, weightKG, heightCM, sex) * mult
	switch goal {
	case LoseWeight:
		calories -= goalCalorieDelta
	case GainMuscle:
		calories += goalCalorieDelta
	}
	return int(math.Round(calories)), nil
}

// CMToFeetInches converts to whole feet and whole remaining inches.
// Both parts truncate, so 170cm (66.93in) is 5'6".
func CMToFeetInches(heightCM float64) (feet, inches int) {
	total := heightCM / 2.54
	feet = int(math.Floor(total / 12))
	inches = int(math.Floor(math.Mod(total, 12)))
	return feet, inches
}

// FeetInchesToCM is the inverse of CMToFeetInches, up to the truncated
// fraction of an inch.
func FeetInchesToCM(feet, inches int) float64 {
	return float64(feet*12+inches) * 2.54
}

// Compute validates the profile and derives its Metrics. It has no hidden
// state: identical profiles always give identical results.
func Compute(p UserProfile) (Metrics, error) {
	if err := p.Validate(); err != nil {
		return Metrics{}, err
	}
	calories, err := CaloricNeeds(p.Age, p.WeightKG, p.HeightCM, p.Sex, p.ActivityLevel, p.FitnessGoal)
	if err != nil {
		return Metrics{}, err
	}
	bmi := BMI(p.WeightKG, p.HeightCM)
	feet, inches := CMToFeetInches(p.HeightCM)
	return Metrics{
		BMI:                bmi,
		BMICategory:        Category(bmi),
		HealthyWeightRange: HealthyWeightRange(p.HeightCM),
		IdealWeight:        round1(IdealWeight(p.HeightCM, p.Age)),
		DailyCalories:      calories,
		HeightFeet:         feet,
		HeightInches:       inches,
	}, nil
}
