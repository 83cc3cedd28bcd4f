package api

import (
	"errors"
	"net/http"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/booking"
	reqdto "github.com/ferdinandetchu/real-estate-cameroon/internal/handler/dto/request"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/handler/httperr"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/handler/middleware"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/commands"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Submit booking request
// @Description Submit an appointment booking for a property
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitBookingRequest true "Booking request"
// @Success 201 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.SubmitBooking(c.Request.Context(), userID, req)
	if err != nil {
		h.renderCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Get booking
// @Description Get a booking request by ID. Viewers only see their own.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, queries.ErrBookingAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary List own bookings
// @Description List the current user's booking requests
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.BookingView
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Confirm booking
// @Description Move a pending booking to confirmed (operator only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	view, err := h.bookingCommands.ConfirmBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Cancel booking
// @Description Move a pending booking to cancelled (operator only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	view, err := h.bookingCommands.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Convert booking to rental
// @Description Convert one of your confirmed bookings on a monthly-rentable property into a rental
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ConvertToRentalRequest true "Conversion request"
// @Success 201 {object} queries.RentalView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/rental [post]
func (h *BookingHandler) ConvertToRental(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ConvertToRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.ConvertToRental(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		h.renderCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// renderCommandError maps lifecycle errors onto the HTTP surface. Field
// validation failures carry the per-field details in the response body.
func (h *BookingHandler) renderCommandError(c *gin.Context, err error) {
	var vErr *booking.ValidationError
	if errors.As(err, &vErr) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", vErr.Fields)
		return
	}

	switch {
	case errors.Is(err, commands.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Property not found",
		})
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is not in a state that allows this operation",
		})
	case errors.Is(err, commands.ErrUnsupportedConversion):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "This property cannot be converted to a monthly rental",
		})
	case errors.Is(err, commands.ErrValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
