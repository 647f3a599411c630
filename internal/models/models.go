package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Name         string    `gorm:"not null"                 json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Description string    `json:"description"`
	Price       int64     `gorm:"not null"                 json:"price"`
	StockQty    uint      `gorm:"default:0"                json:"stock_qty"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	IsFeatured  bool      `gorm:"default:false"            json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// CartItem rows are owned by their user: deleting the user (or the
// product) removes them at the schema level.
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"              json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_user_product;not null" json:"product_id"`
	Quantity  uint      `gorm:"default:1;check:quantity>0"            json:"quantity"`
	AddedAt   time.Time `gorm:"autoCreateTime"                        json:"added_at"`

	User    User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Product Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// ContactInquiry keeps its message after the user is gone; the user
// reference just goes null.
type ContactInquiry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uint     `gorm:"index"                    json:"user_id,omitempty"`
	Name      string    `gorm:"not null"                 json:"name"`
	Email     string    `gorm:"not null"                 json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `gorm:"not null"                 json:"message"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
