package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aiprdesign/fitness-plan-ai/internal/health"
	"github.com/aiprdesign/fitness-plan-ai/internal/session"
)

// profileRequest is the request body for POST /api/metrics, POST /api/report
// and PUT /api/session/profile. Numeric fields are pointers so a missing
// field fails binding instead of reading as zero. Ranges and enum values are
// checked by health.UserProfile.Validate.
type profileRequest struct {
	Age               *int     `json:"age"                binding:"required"`
	WeightKG          *float64 `json:"weight_kg"          binding:"required"`
	HeightCM          *float64 `json:"height_cm"          binding:"required"`
	Sex               string   `json:"sex"                binding:"required"`
	ActivityLevel     string   `json:"activity_level"     binding:"required"`
	DietaryPreference string   `json:"dietary_preference" binding:"required"`
	FitnessGoal       string   `json:"fitness_goal"       binding:"required"`
}

func (r profileRequest) toProfile() health.UserProfile {
	return health.UserProfile{
		Age:               *r.Age,
		WeightKG:          *r.WeightKG,
		HeightCM:          *r.HeightCM,
		Sex:               health.Sex(r.Sex),
		ActivityLevel:     health.ActivityLevel(r.ActivityLevel),
		DietaryPreference: health.DietaryPreference(r.DietaryPreference),
		FitnessGoal:       health.FitnessGoal(r.FitnessGoal),
	}
}

// logWeightRequest is the request body for POST /api/weight-log.
// Date is optional (YYYY-MM-DD) and defaults to today.
type logWeightRequest struct {
	Date     *string  `json:"date"`
	WeightKG *float64 `json:"weight_kg" binding:"required"`
}

// createSessionResponse is returned by POST /api/sessions. Token is sent back
// as "Authorization: Bearer <token>" on session routes.
type createSessionResponse struct {
	Token   string          `json:"token"`
	Session session.Session `json:"session"`
}

// bindProfile binds and converts the profile body, writing a 400 on failure.
func bindProfile(c *gin.Context) (health.UserProfile, bool) {
	var body profileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return health.UserProfile{}, false
	}
	return body.toProfile(), true
}

// profileError maps calculator errors to a status code. Validation failures
// carry their own message; anything else is a 500.
func profileError(c *gin.Context, err error) {
	if errors.Is(err, health.ErrOutOfRange) || errors.Is(err, health.ErrUnknownOption) {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	apiError(c, http.StatusInternalServerError, "failed to compute metrics")
}
