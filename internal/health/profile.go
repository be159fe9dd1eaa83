package health

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by RangeError for numeric inputs outside the
// accepted profile bounds.
var ErrOutOfRange = errors.New("input out of range")

// ErrUnknownOption is returned for enum values that are not part of the
// recognised set (sex, activity level, diet preference, fitness goal).
var ErrUnknownOption = errors.New("unknown option")

/* ─── Enums ──────────────────────────────────────────────────────────── */

type Sex string

const (
	Male   Sex = "Male"
	Female Sex = "Female"
	Other  Sex = "Other"
)

type ActivityLevel string

const (
	Sedentary        ActivityLevel = "Sedentary"
	LightlyActive    ActivityLevel = "Lightly Active"
	ModeratelyActive ActivityLevel = "Moderately Active"
	VeryActive       ActivityLevel = "Very Active"
	ExtremelyActive  ActivityLevel = "Extremely Active"
)

type DietaryPreference string

const (
	Vegetarian    DietaryPreference = "Vegetarian"
	Vegan         DietaryPreference = "Vegan"
	Keto          DietaryPreference = "Keto"
	LowCarb       DietaryPreference = "Low Carb"
	GlutenFree    DietaryPreference = "Gluten Free"
	DairyFree     DietaryPreference = "Dairy Free"
	Mediterranean DietaryPreference = "Mediterranean"
)

type FitnessGoal string

const (
	LoseWeight          FitnessGoal = "Lose Weight"
	MaintainWeight      FitnessGoal = "Maintain Weight"
	GainMuscle          FitnessGoal = "Gain Muscle"
	ImproveEndurance    FitnessGoal = "Improve Endurance"
	IncreaseFlexibility FitnessGoal = "Increase Flexibility"
)

// Ordered value lists. These drive Options and the Valid methods below.
var (
	sexes              = []Sex{Male, Female, Other}
	activityLevels     = []ActivityLevel{Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtremelyActive}
	dietaryPreferences = []DietaryPreference{Vegetarian, Vegan, Keto, LowCarb, GlutenFree, DairyFree, Mediterranean}
	fitnessGoals       = []FitnessGoal{LoseWeight, MaintainWeight, GainMuscle, ImproveEndurance, IncreaseFlexibility}
)

func (s Sex) Valid() bool               { return contains(sexes, s) }
func (a ActivityLevel) Valid() bool     { return contains(activityLevels, a) }
func (d DietaryPreference) Valid() bool { return contains(dietaryPreferences, d) }
func (g FitnessGoal) Valid() bool       { return contains(fitnessGoals, g) }

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// OptionSet lists every accepted enum value in display order.
type OptionSet struct {
	Sexes              []Sex               `json:"sexes"`
	ActivityLevels     []ActivityLevel     `json:"activity_levels"`
	DietaryPreferences []DietaryPreference `json:"dietary_preferences"`
	FitnessGoals       []FitnessGoal       `json:"fitness_goals"`
}

// Options returns fresh copies of the enum value lists.
func Options() OptionSet {
	return OptionSet{
		Sexes:              append([]Sex(nil), sexes...),
		ActivityLevels:     append([]ActivityLevel(nil), activityLevels...),
		DietaryPreferences: append([]DietaryPreference(nil), dietaryPreferences...),
		FitnessGoals:       append([]FitnessGoal(nil), fitnessGoals...),
	}
}

/* ─── Profile ────────────────────────────────────────────────────────── */

// Accepted input bounds, inclusive.
const (
	MinAge      = 10
	MaxAge      = 100
	MinWeightKG = 20.0
	MaxWeightKG = 300.0
	MinHeightCM = 100.0
	MaxHeightCM = 250.0
)

// UserProfile is the input to every calculation. It is built fresh per
// request and never stored beyond the owning session.
type UserProfile struct {
	Age               int               `json:"age"`
	WeightKG          float64           `json:"weight_kg"`
	HeightCM          float64           `json:"height_cm"`
	Sex               Sex               `json:"sex"`
	ActivityLevel     ActivityLevel     `json:"activity_level"`
	DietaryPreference DietaryPreference `json:"dietary_preference"`
	FitnessGoal       FitnessGoal       `json:"fitness_goal"`
}

// RangeError reports a numeric profile field outside its bounds.
type RangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g, got %g", e.Field, e.Min, e.Max, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// Validate rejects out-of-range numbers and unknown enum values. Inputs are
// never clamped.
func (p UserProfile) Validate() error {
	if p.Age < MinAge || p.Age > MaxAge {
		return &RangeError{Field: "age", Value: float64(p.Age), Min: MinAge, Max: MaxAge}
	}
	if p.WeightKG < MinWeightKG || p.WeightKG > MaxWeightKG {
		return &RangeError{Field: "weight_kg", Value: p.WeightKG, Min: MinWeightKG, Max: MaxWeightKG}
	}
	if p.HeightCM < MinHeightCM || p.HeightCM > MaxHeightCM {
		return &RangeError{Field: "height_cm", Value: p.HeightCM, Min: MinHeightCM, Max: MaxHeightCM}
	}
	if !p.Sex.Valid() {
		return fmt.Errorf("sex %q: %w", p.Sex, ErrUnknownOption)
	}
	if !p.ActivityLevel.Valid() {
		return fmt.Errorf("activity_level %q: %w", p.ActivityLevel, ErrUnknownOption)
	}
	if !p.DietaryPreference.Valid() {
		return fmt.Errorf("dietary_preference %q: %w", p.DietaryPreference, ErrUnknownOption)
	}
	if !p.FitnessGoal.Valid() {
		return fmt.Errorf("fitness_goal %q: %w", p.FitnessGoal, ErrUnknownOption)
	}
	return nil
}
