package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aiprdesign/fitness-plan-ai/internal/health"
	"github.com/aiprdesign/fitness-plan-ai/internal/session"
)

const sessionKey = "session"

// sessionMiddleware resolves the Bearer token to a live session and stores a
// snapshot of it on the context.
func (h *Handler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}
		id, err := uuid.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apiError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		s, err := h.store.Get(c, id)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				apiError(c, http.StatusUnauthorized, "session not found or expired")
			} else {
				log.Error().Err(err).Msg("session lookup failed")
				apiError(c, http.StatusInternalServerError, "failed to load session")
			}
			c.Abort()
			return
		}

		c.Set(sessionKey, s)
		c.Next()
	}
}

func currentSession(c *gin.Context) session.Session {
	return c.MustGet(sessionKey).(session.Session)
}

// storeError writes the response for a failed store call on an existing
// session. A session that vanished mid-request (ended or expired) is a 401.
func storeError(c *gin.Context, err error, message string) {
	if errors.Is(err, session.ErrNotFound) {
		apiError(c, http.StatusUnauthorized, "session not found or expired")
		return
	}
	log.Error().Err(err).Msg(message)
	apiError(c, http.StatusInternalServerError, message)
}

// createSession starts a new session with an empty weight log.
// POST /api/sessions (public).
func (h *Handler) createSession(c *gin.Context) {
	s, err := h.store.Create(c)
	if err != nil {
		log.Error().Err(err).Msg("create session failed")
		apiError(c, http.StatusInternalServerError, "failed to create session")
		return
	}
	c.JSON(http.StatusCreated, createSessionResponse{Token: s.ID.String(), Session: s})
}

// getSession returns the session's stored profile and weight log.
// GET /api/session.
func (h *Handler) getSession(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c))
}

// endSession discards the session and everything logged in it.
// DELETE /api/session. Returns 204.
func (h *Handler) endSession(c *gin.Context) {
	if err := h.store.End(c, currentSession(c).ID); err != nil {
		storeError(c, err, "failed to end session")
		return
	}
	c.Status(http.StatusNoContent)
}

// putSessionProfile validates the profile, stores it on the session and
// returns the full report. Invalid profiles are not stored.
// PUT /api/session/profile.
func (h *Handler) putSessionProfile(c *gin.Context) {
	p, ok := bindProfile(c)
	if !ok {
		return
	}
	r, err := health.BuildReport(p)
	if err != nil {
		profileError(c, err)
		return
	}
	if err := h.store.SetProfile(c, currentSession(c).ID, p); err != nil {
		storeError(c, err, "failed to save profile")
		return
	}
	c.JSON(http.StatusOK, r)
}

// getSessionReport recomputes the report for the stored profile.
// GET /api/session/report. 404 until a profile has been submitted.
func (h *Handler) getSessionReport(c *gin.Context) {
	s := currentSession(c)
	if s.Profile == nil {
		apiError(c, http.StatusNotFound, "no profile submitted for this session")
		return
	}
	r, err := health.BuildReport(*s.Profile)
	if err != nil {
		profileError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
