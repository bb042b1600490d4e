package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "tradelog/internal/errors"
	"tradelog/internal/models"
	"tradelog/internal/pagination"
)

// tradeService handles trade-record business logic.
type tradeService struct {
	db          *gorm.DB
	userService UserServicer
}

// NewTradeService creates a new TradeServicer.
func NewTradeService(db *gorm.DB, userService UserServicer) TradeServicer {
	return &tradeService{
		db:          db,
		userService: userService,
	}
}

// CreateTrade records a new trade attributed to the given user.
func (s *tradeService) CreateTrade(userID uint, symbol string, quantity int, price float64, tradeType models.TradeType) (*models.Trade, error) {
	if symbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "symbol is required")
	}

	// The owning user must exist before a trade can reference it.
	if _, err := s.userService.GetUserByID(userID); err != nil {
		return nil, err
	}

	trade := &models.Trade{
		UserID:    userID,
		Symbol:    symbol,
		Quantity:  quantity,
		Price:     price,
		TradeType: tradeType,
	}

	if err := s.db.Create(trade).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return trade, nil
}

// GetUserTrades retrieves a paginated list of the user's trades in
// insertion order.
func (s *tradeService) GetUserTrades(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Trade], error) {
	page.Defaults()

	base := s.db.Model(&models.Trade{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var trades []models.Trade
	if err := base.Scopes(pagination.Paginate(page)).
		Order("id ASC").
		Find(&trades).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(trades, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTradeByID retrieves a trade and enforces ownership. A trade that
// belongs to another user yields ErrForbidden, a missing one ErrTradeNotFound.
func (s *tradeService) GetTradeByID(userID, tradeID uint) (*models.Trade, error) {
	var trade models.Trade
	if err := s.db.First(&trade, tradeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTradeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if trade.UserID != userID {
		return nil, apperrors.ErrForbidden
	}

	return &trade, nil
}

// UpdateTrade replaces all mutable fields of a trade the user owns.
// CreatedAt is left untouched; GORM refreshes UpdatedAt on save.
func (s *tradeService) UpdateTrade(userID, tradeID uint, symbol string, quantity int, price float64, tradeType models.TradeType) (*models.Trade, error) {
	if symbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "symbol is required")
	}

	trade, err := s.GetTradeByID(userID, tradeID)
	if err != nil {
		return nil, err
	}

	trade.Symbol = symbol
	trade.Quantity = quantity
	trade.Price = price
	trade.TradeType = tradeType

	if err := s.db.Save(trade).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return trade, nil
}

// DeleteTrade removes a trade the user owns.
func (s *tradeService) DeleteTrade(userID, tradeID uint) error {
	trade, err := s.GetTradeByID(userID, tradeID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(trade).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}
