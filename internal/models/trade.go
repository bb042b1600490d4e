package models

// TradeType represents the direction of a trade record.
type TradeType string

const (
	TradeTypeBuy  TradeType = "buy"
	TradeTypeSell TradeType = "sell"
)

// Trade is a passive record of a buy or sell instruction attributed to a
// user. It is never executed against any market; this service only keeps
// the books.
type Trade struct {
	Base
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Symbol    string    `gorm:"not null" json:"symbol"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
	TradeType TradeType `gorm:"not null" json:"trade_type"`
}
