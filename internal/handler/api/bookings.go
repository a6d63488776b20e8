package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d3coo/car-rental-backend/internal/domain/booking"
	"github.com/d3coo/car-rental-backend/internal/domain/user"
	reqdto "github.com/d3coo/car-rental-backend/internal/handler/dto/request"
	resdto "github.com/d3coo/car-rental-backend/internal/handler/dto/response"
	"github.com/d3coo/car-rental-backend/internal/handler/httperr"
	"github.com/d3coo/car-rental-backend/internal/handler/middleware"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{bookingUseCase: bookingUseCase}
}

// @Summary Create a booking
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user not authenticated"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	in, err := req.ToInput(userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking unit", nil)
		return
	}

	b, err := h.bookingUseCase.Create(c.Request.Context(), in)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(b))
}

// @Summary List bookings
// @Description Customers see their own bookings; staff can filter by user.
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param user_id query string false "Filter by user (staff only)"
// @Param limit query int false "Max results"
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user not authenticated"), "Unauthorized", nil)
		return
	}

	filter := usecase.BookingFilter{UserID: userID}
	if role, _ := middleware.GetUserRole(c); role == user.RoleStaff || role == user.RoleAdmin {
		filter.UserID = c.Query("user_id")
	}
	filter.Status = booking.Status(c.Query("status"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))

	bookings, err := h.bookingUseCase.List(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}

// @Summary Get a booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.bookingUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Accept a pending booking
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/accept [post]
func (h *BookingHandler) Accept(c *gin.Context) {
	b, err := h.bookingUseCase.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Deny a pending booking
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.DenyBookingRequest true "Denial reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/deny [post]
func (h *BookingHandler) Deny(c *gin.Context) {
	var req reqdto.DenyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Denial reason is required", nil)
		return
	}

	b, err := h.bookingUseCase.Deny(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Cancel a booking
// @Description Paid bookings are refunded to the customer's wallet.
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	b, err := h.bookingUseCase.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}
