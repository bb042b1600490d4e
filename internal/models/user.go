package models

// User represents a registered account. Password holds a bcrypt hash and
// is never serialized into responses.
type User struct {
	Base
	Username string  `gorm:"uniqueIndex;not null" json:"username"`
	Password string  `gorm:"not null" json:"-"`
	Trades   []Trade `gorm:"foreignKey:UserID" json:"trades,omitempty"`
}
