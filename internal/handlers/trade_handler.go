package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/models"
	"tradelog/internal/pagination"
	"tradelog/internal/services"
)

// TradeHandler handles trade-record requests.
type TradeHandler struct {
	tradeService services.TradeServicer
	auditService services.AuditServicer
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeService services.TradeServicer, auditService services.AuditServicer) *TradeHandler {
	return &TradeHandler{tradeService: tradeService, auditService: auditService}
}

// TradeRequest represents the payload for creating or updating a trade.
// Quantity and Price are pointers so that zero values still satisfy the
// required binding; the schema leaves their sign unconstrained.
type TradeRequest struct {
	Symbol    string   `json:"symbol" binding:"required,max=20"`
	Quantity  *int     `json:"quantity" binding:"required"`
	Price     *float64 `json:"price" binding:"required"`
	TradeType string   `json:"trade_type" binding:"required,trade_type"`
}

// TradeResponse represents a trade in the response
type TradeResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Symbol    string    `json:"symbol"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	TradeType string    `json:"trade_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTrade handles the creation of a new trade record
// @Summary     Create a trade
// @Description Record a new buy or sell trade for the authenticated user
// @Tags        trades
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TradeRequest true "Trade details"
// @Success     201 {object} TradeResponse "Trade created"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     422 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trades [post]
func (h *TradeHandler) CreateTrade(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	trade, err := h.tradeService.CreateTrade(userID, req.Symbol, *req.Quantity, *req.Price, models.TradeType(req.TradeType))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRADE", "trade", trade.ID, c.ClientIP(),
		map[string]any{"symbol": req.Symbol, "quantity": *req.Quantity, "trade_type": req.TradeType})

	c.JSON(http.StatusCreated, gin.H{"trade": trade})
}

// GetUserTrades lists the authenticated user's trades
// @Summary     List trades
// @Description Get a paginated list of the authenticated user's trades in insertion order
// @Tags        trades
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Items per page" default(50)
// @Success     200 {object} pagination.PageResponse[TradeResponse] "Trades"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /trades [get]
func (h *TradeHandler) GetUserTrades(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	trades, err := h.tradeService.GetUserTrades(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, trades)
}

// GetTradeByID returns a single trade the user owns
// @Summary     Get a trade
// @Description Get a single trade by ID; the trade must belong to the authenticated user
// @Tags        trades
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Trade ID"
// @Success     200 {object} TradeResponse "Trade"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Trade owned by another user"
// @Failure     404 {object} ErrorResponse "Trade not found"
// @Router      /trades/{id} [get]
func (h *TradeHandler) GetTradeByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tradeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	trade, err := h.tradeService.GetTradeByID(userID, tradeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trade": trade})
}

// UpdateTrade replaces all fields of a trade the user owns
// @Summary     Update a trade
// @Description Replace all fields of an existing trade; the trade must belong to the authenticated user
// @Tags        trades
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Trade ID"
// @Param       request body TradeRequest true "New trade fields"
// @Success     200 {object} TradeResponse "Updated trade"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Trade owned by another user"
// @Failure     404 {object} ErrorResponse "Trade not found"
// @Failure     422 {object} ErrorResponse "Invalid input"
// @Router      /trades/{id} [put]
func (h *TradeHandler) UpdateTrade(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tradeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	trade, err := h.tradeService.UpdateTrade(userID, tradeID, req.Symbol, *req.Quantity, *req.Price, models.TradeType(req.TradeType))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_TRADE", "trade", trade.ID, c.ClientIP(),
		map[string]any{"symbol": req.Symbol, "quantity": *req.Quantity, "trade_type": req.TradeType})

	c.JSON(http.StatusOK, gin.H{"trade": trade})
}

// DeleteTrade removes a trade the user owns
// @Summary     Delete a trade
// @Description Delete an existing trade; the trade must belong to the authenticated user
// @Tags        trades
// @Security    BearerAuth
// @Param       id path int true "Trade ID"
// @Success     204 "Trade deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Trade owned by another user"
// @Failure     404 {object} ErrorResponse "Trade not found"
// @Router      /trades/{id} [delete]
func (h *TradeHandler) DeleteTrade(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tradeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.tradeService.DeleteTrade(userID, tradeID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TRADE", "trade", tradeID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
