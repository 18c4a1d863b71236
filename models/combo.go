package models

import (
	"time"

	"github.com/google/uuid"
)

// Combo is a bundled service package (photography + dress + makeup)
type Combo struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	// Features is a JSON array of included items
	Features   string    `json:"features" db:"features"`
	Price      float64   `json:"price" db:"price"`
	ImageURL   *string   `json:"image_url" db:"image_url"`
	IsFeatured bool      `json:"is_featured" db:"is_featured"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	SortOrder  int       `json:"sort_order" db:"sort_order"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

func (Combo) TableName() string { return "combos" }

func (Combo) CreateTableSQL() string {
	return `CREATE TABLE IF NOT EXISTS combos (
        id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
        name VARCHAR(255) NOT NULL,
        description TEXT,
        features TEXT NOT NULL DEFAULT '[]',
        price NUMERIC(12,2) NOT NULL DEFAULT 0,
        image_url TEXT,
        is_featured BOOLEAN DEFAULT FALSE,
        is_active BOOLEAN DEFAULT TRUE,
        sort_order INTEGER DEFAULT 0,
        created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
        updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
    );`
}
