package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d3coo/car-rental-backend/internal/domain/contract"
	"github.com/d3coo/car-rental-backend/internal/domain/user"
	reqdto "github.com/d3coo/car-rental-backend/internal/handler/dto/request"
	resdto "github.com/d3coo/car-rental-backend/internal/handler/dto/response"
	"github.com/d3coo/car-rental-backend/internal/handler/httperr"
	"github.com/d3coo/car-rental-backend/internal/handler/middleware"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type ContractHandler struct {
	contractUseCase usecase.ContractUseCase
}

func NewContractHandler(contractUseCase usecase.ContractUseCase) *ContractHandler {
	return &ContractHandler{contractUseCase: contractUseCase}
}

// @Summary Issue a contract from an accepted booking
// @Tags contracts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateContractRequest true "Booking reference"
// @Success 201 {object} resdto.ContractResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	var req reqdto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.contractUseCase.CreateFromBooking(c.Request.Context(), req.BookingID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromContract(created))
}

// @Summary List contracts
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param user_id query string false "Filter by user (staff only)"
// @Param limit query int false "Max results"
// @Success 200 {array} resdto.ContractResponse
// @Router /contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user not authenticated"), "Unauthorized", nil)
		return
	}

	filter := usecase.ContractFilter{UserID: userID}
	if role, _ := middleware.GetUserRole(c); role == user.RoleStaff || role == user.RoleAdmin {
		filter.UserID = c.Query("user_id")
	}
	filter.Status = contract.Status(c.Query("status"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))

	contracts, err := h.contractUseCase.List(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContracts(contracts))
}

// @Summary Get a contract
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} resdto.ContractResponse
// @Failure 404 {object} map[string]string
// @Router /contracts/{id} [get]
func (h *ContractHandler) Get(c *gin.Context) {
	entity, err := h.contractUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContract(entity))
}

// @Summary Extend a contract
// @Description Extends the rental period. With count set the extension is
// @Description re-quoted at current rates; otherwise the cost is pro-rated
// @Description from the original booking cost.
// @Tags contracts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param request body reqdto.ExtendContractRequest true "Extension request"
// @Success 200 {object} resdto.ContractResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /contracts/{id}/extend [post]
func (h *ContractHandler) Extend(c *gin.Context) {
	var req reqdto.ExtendContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid extension unit", nil)
		return
	}

	extended, err := h.contractUseCase.Extend(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContract(extended))
}

// @Summary Complete a contract
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} resdto.ContractResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /contracts/{id}/complete [post]
func (h *ContractHandler) Complete(c *gin.Context) {
	completed, err := h.contractUseCase.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContract(completed))
}

// @Summary Cancel a contract
// @Tags contracts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param request body reqdto.CancelContractRequest true "Cancellation reason"
// @Success 200 {object} resdto.ContractResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /contracts/{id}/cancel [post]
func (h *ContractHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Cancellation reason is required", nil)
		return
	}

	cancelled, err := h.contractUseCase.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContract(cancelled))
}
