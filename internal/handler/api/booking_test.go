//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/booking"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/user"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/handler/api"
	reqdto "github.com/ferdinandetchu/real-estate-cameroon/internal/handler/dto/request"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra/memstore"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/clock"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/commands"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/queries"
	"github.com/ferdinandetchu/real-estate-cameroon/tests/common/httptest"
	"github.com/ferdinandetchu/real-estate-cameroon/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var handlerNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

type BookingHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	handler   *api.BookingHandler
	commands  commands.BookingCommands
	actorID   uuid.UUID
	actorRole user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	properties := memstore.NewPropertyStore()
	s.Require().NoError(memstore.SeedCatalog(properties))
	bookings := memstore.NewBookingStore()
	rentals := memstore.NewRentalStore()

	clk := clock.NewMockClock(handlerNow)
	factory := booking.NewFactory(clk, booking.NewValidator(clk, nil))
	s.commands = commands.NewBookingCommands(properties, bookings, rentals, factory, clk)
	s.handler = api.NewBookingHandler(s.commands, queries.NewBookingQueries(bookings))

	s.actorID = uuid.New()
	s.actorRole = user.RoleViewer

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.SubmitBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/confirm", authMiddleware, s.handler.ConfirmBooking)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.POST("/bookings/:id/rental", authMiddleware, s.handler.ConvertToRental)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func submitBookingDTO(propertyID string) reqdto.SubmitBookingRequest {
	return reqdto.SubmitBookingRequest{
		PropertyID:      propertyID,
		AppointmentType: "phone-consultation",
		MeetingDate:     "2026-03-05",
		MeetingTime:     "10:00",
		UserName:        "Jane Doe",
		UserPhone:       "+237670000000",
		UserEmail:       "jane@example.com",
	}
}

func (s *BookingHandlerTestSuite) submit(propertyID string) *queries.BookingView {
	view, err := s.commands.SubmitBooking(context.Background(), s.actorID, submitBookingDTO(propertyID))
	s.Require().NoError(err)
	return view
}

func (s *BookingHandlerTestSuite) confirm(id string) {
	_, err := s.commands.ConfirmBooking(context.Background(), id)
	s.Require().NoError(err)
}

// ================================================================================
// TestSubmitBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestSubmitBooking() {
	url := "/bookings"

	s.Run("success: returns 201 Created with the pending booking", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, submitBookingDTO("1"), "bearer-token")

		var view queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &view)
		s.Equal("pending", view.Status)
		s.Equal(s.actorID, view.UserID)
		s.Equal("Spacious Villa in Buea", view.PropertyName)
	})

	s.Run("error: 400 Bad Request when propertyId is absent", func() {
		body := testutil.DtoMap(s.T(), submitBookingDTO("1"), testutil.Field("propertyId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 Not Found for unknown property", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, submitBookingDTO("999"), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Property not found")
	})

	s.Run("error: 422 with per-field details on validation failure", func() {
		body := testutil.DtoMap(s.T(), submitBookingDTO("1"),
			testutil.Field("meetingDate", "2026-03-07"), // Saturday
			testutil.Field("userEmail", "broken"),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var response struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"detail"`
		}
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Len(response.Detail, 2)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, submitBookingDTO("1"), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGetBooking / TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	created := s.submit("1")
	url := "/bookings/" + created.ID

	s.Run("success: owner reads their own booking", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var view queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal(created.ID, view.ID)
	})

	s.Run("error: 403 Forbidden for another viewer", func() {
		original := s.actorID
		s.actorID = uuid.New()
		defer func() { s.actorID = original }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("success: operator reads any booking", func() {
		s.actorID = uuid.New()
		s.actorRole = user.RoleOperator
		defer func() { s.actorRole = user.RoleViewer }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/booking_missing", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.submit("1")
	s.submit("3")

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

	var views []*queries.BookingView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &views)
	s.Len(views, 2)
}

// ================================================================================
// TestConfirmBooking / TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	s.Run("success: returns 200 OK with the confirmed booking", func() {
		created := s.submit("1")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+created.ID+"/confirm", nil, "bearer-token")

		var view queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal("confirmed", view.Status)
	})

	s.Run("error: 409 Conflict for a cancelled booking", func() {
		created := s.submit("1")
		_, err := s.commands.CancelBooking(context.Background(), created.ID)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+created.ID+"/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not in a state")
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/booking_missing/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("success: returns 200 OK with the cancelled booking", func() {
		created := s.submit("1")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+created.ID+"/cancel", nil, "bearer-token")

		var view queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &view)
		s.Equal("cancelled", view.Status)
	})

	s.Run("error: 409 Conflict for a confirmed booking", func() {
		created := s.submit("1")
		s.confirm(created.ID)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+created.ID+"/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not in a state")
	})
}

// ================================================================================
// TestConvertToRental
// ================================================================================

func (s *BookingHandlerTestSuite) TestConvertToRental() {
	body := reqdto.ConvertToRentalRequest{MonthsToRent: 6}

	s.Run("success: returns 201 Created with the rental", func() {
		created := s.submit("5")
		s.confirm(created.ID)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+created.ID+"/rental", body, "bearer-token")

		var view queries.RentalView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &view)
		s.Equal("5", view.PropertyID)
		s.Equal(int64(350_000), view.MonthlyPrice)
		s.Equal(6, view.MonthsPaid)
		s.Equal(created.ID, view.BookingID)
	})

	s.Run("error: 409 Conflict for a pending booking", func() {
		created := s.submit("5")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+created.ID+"/rental", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not in a state")
	})

	s.Run("error: 422 for a per-night property", func() {
		created := s.submit("4")
		s.confirm(created.ID)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+created.ID+"/rental", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "cannot be converted")
	})

	s.Run("error: 404 Not Found for another user's booking", func() {
		created := s.submit("5")
		s.confirm(created.ID)

		original := s.actorID
		s.actorID = uuid.New()
		defer func() { s.actorID = original }()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+created.ID+"/rental", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 Bad Request when monthsToRent is absent", func() {
		created := s.submit("5")
		s.confirm(created.ID)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+created.ID+"/rental", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
