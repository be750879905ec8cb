//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"interview-scheduler/internal/domain/booking"
	"interview-scheduler/internal/domain/conflict"
	"interview-scheduler/internal/domain/interval"
	"interview-scheduler/internal/handler/api"
	resdto "interview-scheduler/internal/handler/dto/response"
	"interview-scheduler/internal/usecase"
	"interview-scheduler/tests/common/httptest"
	usecasemock "interview-scheduler/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InterviewHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockScheduler *usecasemock.MockScheduler
	handler       *api.InterviewHandler
}

func (s *InterviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockScheduler = usecasemock.NewMockScheduler(s.mockCtrl)
	s.handler = api.NewInterviewHandler(s.mockScheduler)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("identity", "coordinator@example.com")
		c.Set("role", "admin")
		c.Next()
	}

	s.router.POST("/interviews", authMiddleware, s.handler.CreateInterview)
	s.router.PATCH("/interviews/:id", authMiddleware, s.handler.RescheduleInterview)
	s.router.DELETE("/interviews/:id", authMiddleware, s.handler.CancelInterview)
	s.router.GET("/interviews/:id", authMiddleware, s.handler.GetInterview)
}

func (s *InterviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInterviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(InterviewHandlerTestSuite))
}

func (s *InterviewHandlerTestSuite) validBody() map[string]any {
	return map[string]any{
		"interviewers":     []string{"interviewer@example.com"},
		"candidate":        "candidate@example.com",
		"start":            "2025-03-11T10:00:00Z",
		"duration_minutes": 60,
		"subject":          "Technical interview",
	}
}

func (s *InterviewHandlerTestSuite) sampleInterview() *booking.Interview {
	proposed, err := interval.New(
		time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC),
	)
	s.Require().NoError(err)

	iv, err := booking.NewInterview(booking.Request{
		Interviewers: []string{"interviewer@example.com"},
		Candidate:    "candidate@example.com",
		Proposed:     proposed,
		Subject:      "Technical interview",
	}, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	return iv
}

func (s *InterviewHandlerTestSuite) TestCreateInterview() {
	url := "/interviews"

	s.Run("success: returns 201 Created with the decision", func() {
		iv := s.sampleInterview()
		s.mockScheduler.EXPECT().
			Decide(gomock.Any(), gomock.Any(), "coordinator@example.com").
			Return(booking.Decision{Outcome: booking.OutcomeAccepted, Booking: iv}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validBody(), "bearer-token")

		var body resdto.DecisionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("accepted", body.Outcome)
		s.Require().NotNil(body.Interview)
		s.Equal(iv.ID(), body.Interview.ID)
	})

	s.Run("conflict: returns 409 with the full report on rejection", func() {
		slot, err := interval.New(
			time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 11, 11, 0, 0, 0, time.UTC),
		)
		s.Require().NoError(err)

		decision := booking.Decision{
			Outcome: booking.OutcomeRejectedPendingConfirmation,
			Report: conflict.Report{
				HasConflicts: true,
				Conflicts: []conflict.Conflict{{
					Source:       conflict.SourceInternalBooking,
					Title:        "Interview: System design",
					Interval:     slot,
					Participants: []string{"interviewer@example.com"},
					Severity:     conflict.SeverityHard,
				}},
				SuggestedSlots: []interval.Interval{slot.Shift(24 * 60)},
			},
		}
		s.mockScheduler.EXPECT().
			Decide(gomock.Any(), gomock.Any(), "coordinator@example.com").
			Return(decision, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validBody(), "bearer-token")

		s.Equal(http.StatusConflict, rec.Code)
		var body resdto.DecisionResponse
		s.Require().NoError(httptest.DecodeBody(rec, &body))
		s.Equal("rejected_pending_confirmation", body.Outcome)
		s.True(body.Report.HasConflicts)
		s.Len(body.Report.SuggestedSlots, 1)
		s.Nil(body.Interview)
	})

	s.Run("success: override outcome surfaces sync warnings", func() {
		iv := s.sampleInterview()
		decision := booking.Decision{
			Outcome:  booking.OutcomeAcceptedWithOverride,
			Booking:  iv,
			Warnings: []string{"calendar sync failed; the booking is saved but no event was created"},
		}
		s.mockScheduler.EXPECT().
			Decide(gomock.Any(), gomock.Any(), "coordinator@example.com").
			Return(decision, nil).Times(1)

		body := s.validBody()
		body["force_override"] = true

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var resp resdto.DecisionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("accepted_with_override", resp.Outcome)
		s.Len(resp.Warnings, 1)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing interviewers", mutate: func(m map[string]any) { delete(m, "interviewers") }},
			{name: "missing candidate", mutate: func(m map[string]any) { delete(m, "candidate") }},
			{name: "missing start", mutate: func(m map[string]any) { delete(m, "start") }},
			{name: "zero duration", mutate: func(m map[string]any) { m["duration_minutes"] = 0 }},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := s.validBody()
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			schedulerError error
			expectedStatus int
		}{
			{name: "domain validation", schedulerError: booking.ErrNoInterviewers, expectedStatus: http.StatusUnprocessableEntity},
			{name: "persistence failed", schedulerError: usecase.ErrPersistenceFailed, expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockScheduler.EXPECT().
					Decide(gomock.Any(), gomock.Any(), "coordinator@example.com").
					Return(booking.Decision{}, tc.schedulerError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validBody(), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *InterviewHandlerTestSuite) TestRescheduleInterview() {
	id := uuid.New()
	url := "/interviews/" + id.String()

	s.Run("success: returns 200 with the decision", func() {
		iv := s.sampleInterview()
		s.mockScheduler.EXPECT().
			Reschedule(gomock.Any(), id, gomock.Any(), "coordinator@example.com").
			Return(booking.Decision{Outcome: booking.OutcomeAccepted, Booking: iv}, nil).Times(1)

		body := map[string]any{"start": "2025-03-12T10:00:00Z"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")

		var resp resdto.DecisionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("accepted", resp.Outcome)
	})

	s.Run("conflict: returns 409 on rejection", func() {
		decision := booking.Decision{
			Outcome: booking.OutcomeRejectedPendingConfirmation,
			Report:  conflict.Report{HasConflicts: true},
		}
		s.mockScheduler.EXPECT().
			Reschedule(gomock.Any(), id, gomock.Any(), "coordinator@example.com").
			Return(decision, nil).Times(1)

		body := map[string]any{"start": "2025-03-12T10:00:00Z"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 404 when the interview does not exist", func() {
		s.mockScheduler.EXPECT().
			Reschedule(gomock.Any(), id, gomock.Any(), "coordinator@example.com").
			Return(booking.Decision{}, usecase.ErrBookingNotFound).Times(1)

		body := map[string]any{"start": "2025-03-12T10:00:00Z"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 on malformed id", func() {
		body := map[string]any{"start": "2025-03-12T10:00:00Z"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/interviews/not-a-uuid", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid interview ID")
	})
}

func (s *InterviewHandlerTestSuite) TestCancelInterview() {
	id := uuid.New()
	url := "/interviews/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockScheduler.EXPECT().
			Cancel(gomock.Any(), id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the interview does not exist", func() {
		s.mockScheduler.EXPECT().
			Cancel(gomock.Any(), id).
			Return(usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 409 when already cancelled", func() {
		s.mockScheduler.EXPECT().
			Cancel(gomock.Any(), id).
			Return(booking.ErrAlreadyCancelled).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled")
	})
}

func (s *InterviewHandlerTestSuite) TestGetInterview() {
	s.Run("success: returns 200 with the interview", func() {
		iv := s.sampleInterview()
		s.mockScheduler.EXPECT().
			Get(gomock.Any(), iv.ID()).
			Return(iv, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/interviews/"+iv.ID().String(), nil, "bearer-token")

		var body resdto.InterviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(iv.ID(), body.ID)
		s.Equal("scheduled", body.Status)
	})

	s.Run("error: 404 when the interview does not exist", func() {
		id := uuid.New()
		s.mockScheduler.EXPECT().
			Get(gomock.Any(), id).
			Return(nil, usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/interviews/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/interviews/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid interview ID")
	})
}
