package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aiprdesign/fitness-plan-ai/internal/weightlog"
)

// getWeightLog returns the session's weight entries in the order they were
// logged (not sorted by date). Returns an empty array (not null) when empty.
// GET /api/weight-log.
func (h *Handler) getWeightLog(c *gin.Context) {
	c.JSON(http.StatusOK, weightlog.Series(currentSession(c).WeightLog))
}

// logWeight appends an entry to the session's weight log and returns the
// whole series.
// POST /api/weight-log. Body: { "date"?: "YYYY-MM-DD", "weight_kg": 72.4 }.
// Logging the same date twice keeps both entries.
func (h *Handler) logWeight(c *gin.Context) {
	var body logWeightRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	date := weightlog.NewDate(h.now())
	if body.Date != nil {
		d, err := weightlog.ParseDate(*body.Date)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = d
	}

	log, err := h.store.LogWeight(c, currentSession(c).ID, date, *body.WeightKG)
	if err != nil {
		if errors.Is(err, weightlog.ErrInvalidWeight) {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		storeError(c, err, "failed to log weight")
		return
	}

	c.JSON(http.StatusCreated, weightlog.Series(log))
}
