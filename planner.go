package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aiprdesign/fitness-plan-ai/internal/health"
)

// getOptions lists the accepted enum values for the profile form.
// GET /api/options.
func (h *Handler) getOptions(c *gin.Context) {
	c.JSON(http.StatusOK, health.Options())
}

// postMetrics computes BMI, healthy range, ideal weight and daily calories.
// POST /api/metrics. Out-of-range inputs are rejected with 400, never clamped.
func (h *Handler) postMetrics(c *gin.Context) {
	p, ok := bindProfile(c)
	if !ok {
		return
	}
	m, err := health.Compute(p)
	if err != nil {
		profileError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// postReport returns metrics plus every plan for the profile.
// POST /api/report.
func (h *Handler) postReport(c *gin.Context) {
	p, ok := bindProfile(c)
	if !ok {
		return
	}
	r, err := health.BuildReport(p)
	if err != nil {
		profileError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// getDietPlan returns the menu for one preference.
// GET /api/plans/diet/:preference, e.g. /api/plans/diet/Low%20Carb.
func (h *Handler) getDietPlan(c *gin.Context) {
	meals, err := health.DietPlan(health.DietaryPreference(c.Param("preference")))
	if err != nil {
		apiError(c, http.StatusNotFound, "unknown dietary preference")
		return
	}
	c.JSON(http.StatusOK, meals)
}

// getWorkoutPlan returns the schedule for one fitness goal.
// GET /api/plans/workout/:goal.
func (h *Handler) getWorkoutPlan(c *gin.Context) {
	s, err := health.WorkoutPlan(health.FitnessGoal(c.Param("goal")))
	if err != nil {
		apiError(c, http.StatusNotFound, "unknown fitness goal")
		return
	}
	c.JSON(http.StatusOK, s)
}

// GET /api/plans/meditation.
func (h *Handler) getMeditationPlan(c *gin.Context) {
	c.JSON(http.StatusOK, health.MeditationPlan())
}
