package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d3coo/car-rental-backend/internal/domain/car"
	reqdto "github.com/d3coo/car-rental-backend/internal/handler/dto/request"
	resdto "github.com/d3coo/car-rental-backend/internal/handler/dto/response"
	"github.com/d3coo/car-rental-backend/internal/handler/httperr"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type CarHandler struct {
	carUseCase usecase.CarUseCase
}

func NewCarHandler(carUseCase usecase.CarUseCase) *CarHandler {
	return &CarHandler{carUseCase: carUseCase}
}

// @Summary List cars
// @Tags cars
// @Produce json
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by category"
// @Param location query string false "Filter by location"
// @Param limit query int false "Max results"
// @Success 200 {array} resdto.CarResponse
// @Router /cars [get]
func (h *CarHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	filter := usecase.CarFilter{
		Status:   car.Status(c.Query("status")),
		Category: c.Query("category"),
		Location: c.Query("location"),
		Limit:    limit,
	}

	cars, err := h.carUseCase.List(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCars(cars))
}

// @Summary Get a car
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 404 {object} map[string]string
// @Router /cars/{id} [get]
func (h *CarHandler) Get(c *gin.Context) {
	entity, err := h.carUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCar(entity))
}

// @Summary Add a car to the fleet
// @Tags cars
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCarRequest true "Car details"
// @Success 201 {object} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Router /cars [post]
func (h *CarHandler) Create(c *gin.Context) {
	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.carUseCase.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCar(created))
}

// @Summary Update a car's rate plan
// @Tags cars
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Car ID"
// @Param request body reqdto.UpdateRatesRequest true "New rates"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id}/rates [patch]
func (h *CarHandler) UpdateRates(c *gin.Context) {
	var req reqdto.UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	updated, err := h.carUseCase.UpdateRates(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCar(updated))
}

// @Summary Send a car for maintenance
// @Tags cars
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cars/{id}/maintenance [post]
func (h *CarHandler) SendForMaintenance(c *gin.Context) {
	if err := h.carUseCase.SendForMaintenance(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Return a car to the available fleet
// @Tags cars
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cars/{id}/return [post]
func (h *CarHandler) ReturnToFleet(c *gin.Context) {
	if err := h.carUseCase.ReturnToFleet(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Retire a car from service
// @Tags cars
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /cars/{id}/retire [post]
func (h *CarHandler) Retire(c *gin.Context) {
	if err := h.carUseCase.Retire(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
