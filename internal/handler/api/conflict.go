package api

import (
	"errors"
	"net/http"

	reqdto "interview-scheduler/internal/handler/dto/request"
	resdto "interview-scheduler/internal/handler/dto/response"
	"interview-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ConflictHandler struct {
	checker usecase.ConflictChecker
}

func NewConflictHandler(checker usecase.ConflictChecker) *ConflictHandler {
	return &ConflictHandler{
		checker: checker,
	}
}

// @Summary Check scheduling conflicts
// @Description Check a proposed slot against all conflict sources for every participant
// @Tags conflicts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckConflictsRequest true "Proposed slot and participants"
// @Success 200 {object} resdto.ConflictReportResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /conflicts/check [post]
func (h *ConflictHandler) CheckConflicts(c *gin.Context) {
	var req reqdto.CheckConflictsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	proposed, err := req.Proposed()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time slot",
		})
		return
	}

	report, err := h.checker.CheckConflicts(c.Request.Context(), req.Participants, proposed, "")
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoParticipants):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "At least one participant is required",
			})
		case errors.Is(err, usecase.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time slot",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReport(report))
}
