package models

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a rentable wedding item (dress, ao dai, suit, accessory)
type Product struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Code            string    `json:"code" db:"code"`
	Category        string    `json:"category" db:"category"`
	SubCategory     *string   `json:"sub_category" db:"sub_category"`
	Gender          *string   `json:"gender" db:"gender"`
	Description     *string   `json:"description" db:"description"`
	RentalPriceDay  float64   `json:"rental_price_day" db:"rental_price_day"`
	RentalPriceWeek float64   `json:"rental_price_week" db:"rental_price_week"`
	PurchasePrice   float64   `json:"purchase_price" db:"purchase_price"`
	ImageURL        string    `json:"image_url" db:"image_url"`
	IsNew           bool      `json:"is_new" db:"is_new"`
	IsHot           bool      `json:"is_hot" db:"is_hot"`
	FabricType      *string   `json:"fabric_type" db:"fabric_type"`
	Color           *string   `json:"color" db:"color"`
	Quantity        int       `json:"quantity" db:"quantity"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

func (Product) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		code VARCHAR(50) NOT NULL UNIQUE,
		category VARCHAR(50) NOT NULL,
		sub_category VARCHAR(50),
		gender VARCHAR(10),
		description TEXT,
		rental_price_day NUMERIC(12,2) NOT NULL DEFAULT 0,
		rental_price_week NUMERIC(12,2) NOT NULL DEFAULT 0,
		purchase_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		image_url TEXT NOT NULL,
		is_new BOOLEAN DEFAULT FALSE,
		is_hot BOOLEAN DEFAULT FALSE,
		fabric_type VARCHAR(100),
		color VARCHAR(50),
		quantity INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);`
}
