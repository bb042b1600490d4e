package services

import (
	"tradelog/internal/models"
	"tradelog/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
}

// TradeServicer defines the contract for trade-record business logic.
type TradeServicer interface {
	CreateTrade(userID uint, symbol string, quantity int, price float64, tradeType models.TradeType) (*models.Trade, error)
	GetUserTrades(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Trade], error)
	GetTradeByID(userID, tradeID uint) (*models.Trade, error)
	UpdateTrade(userID, tradeID uint, symbol string, quantity int, price float64, tradeType models.TradeType) (*models.Trade, error)
	DeleteTrade(userID, tradeID uint) error
}

// AuditServicer defines the contract for audit log recording.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]any)
}
