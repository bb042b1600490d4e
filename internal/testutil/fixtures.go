package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"tradelog/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	username := fmt.Sprintf("user%d", nextID())
	return CreateTestUserWithUsername(t, db, username)
}

// CreateTestUserWithUsername creates a user with the given username.
// The password is always "password123" (MinCost keeps tests fast).
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTrade creates a buy trade for the given user.
func CreateTestTrade(t *testing.T, db *gorm.DB, userID uint) *models.Trade {
	t.Helper()
	return CreateTestTradeWithFields(t, db, userID, "AAPL", 10, 150.5, models.TradeTypeBuy)
}

// CreateTestTradeWithFields creates a trade with the given fields.
func CreateTestTradeWithFields(t *testing.T, db *gorm.DB, userID uint, symbol string, quantity int, price float64, tradeType models.TradeType) *models.Trade {
	t.Helper()

	trade := &models.Trade{
		UserID:    userID,
		Symbol:    symbol,
		Quantity:  quantity,
		Price:     price,
		TradeType: tradeType,
	}
	if err := db.Create(trade).Error; err != nil {
		t.Fatalf("failed to create test trade: %v", err)
	}
	return trade
}
