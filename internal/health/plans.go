package health

import "fmt"

// Meals is one day's menu.
type Meals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// DailySchedule splits an activity plan into three parts of the day.
type DailySchedule struct {
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

/* ─── Diet ───────────────────────────────────────────────────────────── */

// DietPlan returns the canonical menu for a dietary preference.
func DietPlan(pref DietaryPreference) (Meals, error) {
	switch pref {
	case Vegetarian:
		return Meals{
			Breakfast: "A hearty bowl of oatmeal topped with nuts, berries, and a drizzle of honey. This meal is rich in fiber and antioxidants.",
			Lunch:     "A vibrant chickpea salad with mixed greens, tomatoes, cucumbers, and a lemon-tahini dressing. Provides protein and healthy fats.",
			Dinner:    "A warm lentil soup served with brown rice and steamed vegetables. A balanced meal for sustained energy.",
		}, nil
	case Vegan:
		return Meals{
			Breakfast: "A smoothie bowl with blended bananas, spinach, almond milk, and topped with chia seeds and fresh fruits.",
			Lunch:     "A quinoa salad mixed with black beans, corn, avocado, and a zesty lime dressing. Packed with plant protein and fiber.",
			Dinner:    "A tofu stir-fry with broccoli, bell peppers, and snap peas served over brown rice. Full of flavor and nutrients.",
		}, nil
	case Keto:
		return Meals{
			Breakfast: "Scrambled eggs with avocado slices and a side of spinach sautéed in olive oil.",
			Lunch:     "Grilled chicken salad with mixed greens, cheese, and a creamy avocado dressing, keeping carbs low.",
			Dinner:    "Salmon fillet with asparagus cooked in butter, ensuring high protein and omega-3 intake.",
		}, nil
	case LowCarb:
		return Meals{
			Breakfast: "Greek yogurt mixed with almonds and a few berries for natural sweetness.",
			Lunch:     "Grilled chicken served with a side of steamed broccoli and a green salad with olive oil dressing.",
			Dinner:    "A lean steak with sautéed spinach and a small portion of quinoa to keep carbs in check.",
		}, nil
	case GlutenFree:
		return Meals{
			Breakfast: "A bowl of fresh fruits with a handful of nuts and seeds.",
			Lunch:     "Grilled fish with rice and a side of mixed vegetables, ensuring gluten-free grains.",
			Dinner:    "Chicken roasted with sweet potatoes and green beans for a balanced gluten-free meal.",
		}, nil
	case DairyFree:
		return Meals{
			Breakfast: "An almond milk smoothie with banana, spinach, and flaxseeds.",
			Lunch:     "A quinoa and tofu bowl with mixed vegetables, drizzled with a tahini dressing.",
			Dinner:    "Grilled chicken with roasted vegetables and a side of sweet potatoes, completely dairy free.",
		}, nil
	case Mediterranean:
		return Meals{
			Breakfast: "Whole-grain toast with olive oil, sliced tomatoes, and a soft-boiled egg, plus a handful of olives.",
			Lunch:     "A Greek salad with cucumbers, tomatoes, red onion, feta, and chickpeas, dressed with lemon and olive oil.",
			Dinner:    "Baked white fish with herbs, roasted zucchini and peppers, and a small serving of whole-wheat couscous.",
		}, nil
	}
	return Meals{}, fmt.Errorf("dietary_preference %q: %w", pref, ErrUnknownOption)
}

/* ─── Workout ────────────────────────────────────────────────────────── */

// WorkoutPlan returns the daily workout schedule for a fitness goal.
func WorkoutPlan(goal FitnessGoal) (DailySchedule, error) {
	switch goal {
	case LoseWeight:
		return DailySchedule{
			Morning:   "30 minutes of brisk walking or jogging with a 5-minute warm-up and cool-down.",
			Afternoon: "Circuit training: 3 sets of 15 squats, 10 push-ups, 15 lunges, and 20 jumping jacks.",
			Evening:   "A 15-minute yoga flow focusing on stretching and core stabilization.",
		}, nil
	case MaintainWeight:
		return DailySchedule{
			Morning:   "A 45-minute brisk walk or light jog to keep the metabolism active.",
			Afternoon: "Bodyweight exercises: 3 sets of 15 squats, 10 push-ups, and 20 sit-ups.",
			Evening:   "Relaxation exercises and stretching for 15 minutes to wind down.",
		}, nil
	case GainMuscle:
		return DailySchedule{
			Morning:   "Strength training: 4 sets of 8-10 reps of bench press, squats, and deadlifts (adjust weights accordingly).",
			Afternoon: "Accessory work: 3 sets of 10 reps of bicep curls, tricep dips, and shoulder presses.",
			Evening:   "Light cardio (15 minutes of cycling or brisk walking) and stretching to aid recovery.",
		}, nil
	case ImproveEndurance:
		return DailySchedule{
			Morning:   "A 40-minute steady-state run or cycle at a conversational pace.",
			Afternoon: "Interval session: 6 rounds of 2 minutes hard effort followed by 2 minutes easy.",
			Evening:   "10 minutes of mobility work and light stretching for the legs and hips.",
		}, nil
	case IncreaseFlexibility:
		return DailySchedule{
			Morning:   "A 20-minute dynamic stretching routine with leg swings, arm circles, and hip openers.",
			Afternoon: "A 30-minute yoga session focusing on hamstrings, hips, and thoracic spine.",
			Evening:   "15 minutes of static stretching, holding each stretch for 30-45 seconds.",
		}, nil
	}
	return DailySchedule{}, fmt.Errorf("fitness_goal %q: %w", goal, ErrUnknownOption)
}

/* ─── Meditation ─────────────────────────────────────────────────────── */

// MeditationPlan is the same for every profile.
func MeditationPlan() DailySchedule {
	return DailySchedule{
		Morning:   "5 minutes of deep breathing exercises followed by 5 minutes of alternate nostril breathing to energize your day.",
		Afternoon: "5 minutes of mindful meditation focusing on body relaxation and stress reduction.",
		Evening:   "10 minutes of guided yoga or gentle stretching to promote relaxation and better sleep quality.",
	}
}
