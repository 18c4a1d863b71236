package models

import (
	"time"

	"github.com/google/uuid"
)

// Expert is a studio specialist (makeup artist, photographer)
type Expert struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Title           string    `json:"title" db:"title"`
	Bio             *string   `json:"bio" db:"bio"`
	YearsExperience int       `json:"years_experience" db:"years_experience"`
	BridesCount     int       `json:"brides_count" db:"brides_count"`
	// Specialties is a JSON array of skill tags
	Specialties string    `json:"specialties" db:"specialties"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	Category    string    `json:"category" db:"category"`
	Level       string    `json:"level" db:"level"`
	IsTop       bool      `json:"is_top" db:"is_top"`
	Price       float64   `json:"price" db:"price"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (Expert) TableName() string { return "experts" }

func (Expert) CreateTableSQL() string {
	return `CREATE TABLE IF NOT EXISTS experts (
        id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
        name VARCHAR(255) NOT NULL,
        title VARCHAR(255) NOT NULL,
        bio TEXT,
        years_experience INTEGER DEFAULT 0,
        brides_count INTEGER DEFAULT 0,
        specialties TEXT NOT NULL DEFAULT '[]',
        image_url TEXT,
        category VARCHAR(50) NOT NULL,
        level VARCHAR(20) NOT NULL DEFAULT 'senior',
        is_top BOOLEAN DEFAULT FALSE,
        price NUMERIC(12,2) NOT NULL DEFAULT 0,
        created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
        updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
    );`
}
