package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	reqdto "github.com/d3coo/car-rental-backend/internal/handler/dto/request"
	resdto "github.com/d3coo/car-rental-backend/internal/handler/dto/response"
	"github.com/d3coo/car-rental-backend/internal/handler/httperr"
	"github.com/d3coo/car-rental-backend/internal/handler/middleware"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type WalletHandler struct {
	walletUseCase usecase.WalletUseCase
}

func NewWalletHandler(walletUseCase usecase.WalletUseCase) *WalletHandler {
	return &WalletHandler{walletUseCase: walletUseCase}
}

// @Summary Get wallet balance
// @Tags wallet
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.BalanceResponse
// @Failure 404 {object} map[string]string
// @Router /wallet/balance [get]
func (h *WalletHandler) Balance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user not authenticated"), "Unauthorized", nil)
		return
	}

	balance, err := h.walletUseCase.Balance(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalance(balance))
}

// @Summary Get wallet history
// @Tags wallet
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max entries"
// @Success 200 {array} resdto.WalletEntryResponse
// @Router /wallet/history [get]
func (h *WalletHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user not authenticated"), "Unauthorized", nil)
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	entries, err := h.walletUseCase.History(c.Request.Context(), userID, limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWalletEntries(entries))
}

// @Summary Credit a customer's wallet
// @Description Staff operation: adds funds to the given user's wallet.
// @Tags wallet
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param request body reqdto.WalletMovementRequest true "Credit details"
// @Success 200 {object} resdto.WalletEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /wallet/{user_id}/credit [post]
func (h *WalletHandler) Credit(c *gin.Context) {
	h.move(c, h.walletUseCase.AddFunds)
}

// @Summary Debit a customer's wallet
// @Description Staff operation: deducts funds from the given user's wallet.
// @Tags wallet
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param request body reqdto.WalletMovementRequest true "Debit details"
// @Success 200 {object} resdto.WalletEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /wallet/{user_id}/debit [post]
func (h *WalletHandler) Debit(c *gin.Context) {
	h.move(c, h.walletUseCase.DeductFunds)
}

func (h *WalletHandler) move(
	c *gin.Context,
	apply func(ctx context.Context, mv usecase.WalletMovement) (*usecase.WalletEntry, error),
) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("user not authenticated"), "Unauthorized", nil)
		return
	}

	var req reqdto.WalletMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	entry, err := apply(c.Request.Context(), req.ToMovement(c.Param("user_id"), adminID))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWalletEntry(entry))
}
