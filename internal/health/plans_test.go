package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDietPlan_EveryPreferenceHasAFullMenu(t *testing.T) {
	seen := map[string]DietaryPreference{}
	for _, pref := range Options().DietaryPreferences {
		meals, err := DietPlan(pref)
		require.NoError(t, err, pref)
		assert.NotEmpty(t, meals.Breakfast, pref)
		assert.NotEmpty(t, meals.Lunch, pref)
		assert.NotEmpty(t, meals.Dinner, pref)

		if other, dup := seen[meals.Breakfast]; dup {
			t.Errorf("%s and %s share a breakfast", pref, other)
		}
		seen[meals.Breakfast] = pref
	}
	assert.Len(t, seen, 7)
}

func TestDietPlan_Unknown(t *testing.T) {
	_, err := DietPlan("Carnivore")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestWorkoutPlan_EveryGoalHasASchedule(t *testing.T) {
	for _, goal := range Options().FitnessGoals {
		s, err := WorkoutPlan(goal)
		require.NoError(t, err, goal)
		assert.NotEmpty(t, s.Morning, goal)
		assert.NotEmpty(t, s.Afternoon, goal)
		assert.NotEmpty(t, s.Evening, goal)
	}
}

func TestWorkoutPlan_Unknown(t *testing.T) {
	_, err := WorkoutPlan("Fly")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestMeditationPlan_Constant(t *testing.T) {
	assert.Equal(t, MeditationPlan(), MeditationPlan())
	assert.Contains(t, MeditationPlan().Morning, "alternate nostril breathing")
}

func TestOptions_ReturnsCopies(t *testing.T) {
	o := Options()
	o.Sexes[0] = "Changed"
	assert.Equal(t, Male, Options().Sexes[0])
	assert.Len(t, o.ActivityLevels, 5)
	assert.Len(t, o.FitnessGoals, 5)
}

func TestBuildReport(t *testing.T) {
	p := baseProfile()
	p.WeightKG = 95 // BMI 32.9
	p.DietaryPreference = Keto
	p.FitnessGoal = LoseWeight

	r, err := BuildReport(p)
	require.NoError(t, err)

	assert.Equal(t, p, r.Profile)
	assert.Equal(t, Obese, r.Metrics.BMICategory)
	keto, _ := DietPlan(Keto)
	assert.Equal(t, keto, r.Diet)
	lose, _ := WorkoutPlan(LoseWeight)
	assert.Equal(t, lose, r.Workout)
	assert.Equal(t, MeditationPlan(), r.Meditation)
	assert.Equal(t, HealthRisk(Obese), r.HealthRisk)
	assert.Equal(t, Advice(Obese), r.Advice)
}

func TestBuildReport_InvalidProfile(t *testing.T) {
	p := baseProfile()
	p.Age = 5
	_, err := BuildReport(p)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestHealthRiskAndAdvice_DistinctPerCategory(t *testing.T) {
	cats := []BMICategory{Underweight, Healthy, Overweight, Obese}
	risks := map[string]bool{}
	advice := map[string]bool{}
	for _, c := range cats {
		risks[HealthRisk(c)] = true
		advice[Advice(c)] = true
	}
	assert.Len(t, risks, len(cats))
	assert.Len(t, advice, len(cats))
}
