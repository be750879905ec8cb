package api

import (
	"errors"
	"net/http"

	"interview-scheduler/internal/domain/booking"
	reqdto "interview-scheduler/internal/handler/dto/request"
	resdto "interview-scheduler/internal/handler/dto/response"
	"interview-scheduler/internal/handler/middleware"
	"interview-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InterviewHandler struct {
	scheduler usecase.Scheduler
}

func NewInterviewHandler(scheduler usecase.Scheduler) *InterviewHandler {
	return &InterviewHandler{
		scheduler: scheduler,
	}
}

// @Summary Book an interview
// @Description Run the conflict check and book the interview when the slot is clear or the override flag is set
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateInterviewRequest true "Booking request"
// @Success 201 {object} resdto.DecisionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} resdto.DecisionResponse
// @Failure 422 {object} map[string]string
// @Router /interviews [post]
func (h *InterviewHandler) CreateInterview(c *gin.Context) {
	actingUser, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateInterviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	domainReq, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time slot",
		})
		return
	}

	decision, err := h.scheduler.Decide(c.Request.Context(), domainReq, actingUser)
	if err != nil {
		h.writeDecisionError(c, err)
		return
	}

	// A rejection carries the full report so the caller can surface the
	// conflicts and re-submit with the override flag.
	if decision.Outcome == booking.OutcomeRejectedPendingConfirmation {
		c.JSON(http.StatusConflict, resdto.FromDecision(decision))
		return
	}

	c.JSON(http.StatusCreated, resdto.FromDecision(decision))
}

// @Summary Reschedule an interview
// @Description Move an existing interview to a new slot after re-checking conflicts
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Interview ID"
// @Param request body reqdto.RescheduleInterviewRequest true "Fields to change"
// @Success 200 {object} resdto.DecisionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.DecisionResponse
// @Router /interviews/{id} [patch]
func (h *InterviewHandler) RescheduleInterview(c *gin.Context) {
	actingUser, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid interview ID format",
		})
		return
	}

	var req reqdto.RescheduleInterviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	decision, err := h.scheduler.Reschedule(c.Request.Context(), id, req.ToPatch(), actingUser)
	if err != nil {
		h.writeDecisionError(c, err)
		return
	}

	if decision.Outcome == booking.OutcomeRejectedPendingConfirmation {
		c.JSON(http.StatusConflict, resdto.FromDecision(decision))
		return
	}

	c.JSON(http.StatusOK, resdto.FromDecision(decision))
}

// @Summary Cancel an interview
// @Description Cancel a scheduled interview and remove its synced calendar event
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Interview ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /interviews/{id} [delete]
func (h *InterviewHandler) CancelInterview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid interview ID format",
		})
		return
	}

	if err := h.scheduler.Cancel(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Interview not found",
			})
		case errors.Is(err, booking.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Interview is already cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get interview
// @Description Get interview by ID
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Interview ID"
// @Success 200 {object} resdto.InterviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /interviews/{id} [get]
func (h *InterviewHandler) GetInterview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid interview ID format",
		})
		return
	}

	iv, err := h.scheduler.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Interview not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromInterview(iv))
}

func (h *InterviewHandler) writeDecisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Interview not found",
		})
	case errors.Is(err, booking.ErrNoInterviewers),
		errors.Is(err, booking.ErrNoCandidate),
		errors.Is(err, booking.ErrInvalidProposed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	case errors.Is(err, booking.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Interview is already cancelled",
		})
	case errors.Is(err, usecase.ErrPersistenceFailed):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save the interview",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
