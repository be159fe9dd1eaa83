package health

// Report bundles everything the planner page shows for one profile.
type Report struct {
	Profile    UserProfile   `json:"profile"`
	Metrics    Metrics       `json:"metrics"`
	Diet       Meals         `json:"diet"`
	Workout    DailySchedule `json:"workout"`
	Meditation DailySchedule `json:"meditation"`
	HealthRisk string        `json:"health_risk"`
	Advice     string        `json:"advice"`
}

// HealthRisk summarises the risks associated with a BMI category.
func HealthRisk(c BMICategory) string {
	switch c {
	case Underweight:
		return "Underweight Risks: Malnutrition, osteoporosis, and weakened immunity."
	case Healthy:
		return "Healthy Weight: Low risk of chronic diseases. Continue your balanced lifestyle!"
	case Overweight:
		return "Overweight Risks: Elevated risk of heart disease, high blood pressure, and type 2 diabetes."
	default:
		return "Obesity Risks: High risk of heart disease, stroke, type 2 diabetes, sleep apnea, and joint issues."
	}
}

// Advice returns general guidance for a BMI category.
func Advice(c BMICategory) string {
	switch c {
	case Underweight:
		return "It looks like you are underweight. Consider incorporating nutrient-dense foods and healthy snacks into your diet. " +
			"Ensure you're getting enough calories and proteins. Remember, gradual weight gain through balanced meals and strength exercises " +
			"is key. Always listen to your body and consider seeking advice from a nutritionist."
	case Healthy:
		return "Great job maintaining a healthy weight! Continue with your balanced diet and regular exercise. " +
			"Keep up with your active lifestyle and make sure to include variety in your workouts to challenge your body in new ways."
	case Overweight:
		return "Your BMI suggests that you're slightly overweight. A combination of cardiovascular exercises and strength training can help you " +
			"achieve a healthier weight. Focus on whole, unprocessed foods and consider small, sustainable changes to your diet. " +
			"Remember, every small step counts toward a healthier you."
	default:
		return "Your BMI indicates that you are in the obese range, which can increase the risk of several health issues. " +
			"It's important to approach weight loss gradually by incorporating regular physical activity and a balanced, low-calorie diet. " +
			"Consider speaking with a healthcare professional or a registered dietitian for personalized guidance. " +
			"You're taking the first step by being proactive about your health, and that's commendable."
	}
}

// BuildReport computes metrics and looks up every plan for the profile.
func BuildReport(p UserProfile) (Report, error) {
	m, err := Compute(p)
	if err != nil {
		return Report{}, err
	}
	diet, err := DietPlan(p.DietaryPreference)
	if err != nil {
		return Report{}, err
	}
	workout, err := WorkoutPlan(p.FitnessGoal)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Profile:    p,
		Metrics:    m,
		Diet:       diet,
		Workout:    workout,
		Meditation: MeditationPlan(),
		HealthRisk: HealthRisk(m.BMICategory),
		Advice:     Advice(m.BMICategory),
	}, nil
}
