package models

import (
	"time"

	"github.com/google/uuid"
)

type GalleryImage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	Category  *string   `json:"category" db:"category"`
	SortOrder int       `json:"sort_order" db:"sort_order"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (GalleryImage) TableName() string { return "gallery_images" }

func (GalleryImage) CreateTableSQL() string {
	return `CREATE TABLE IF NOT EXISTS gallery_images (
        id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
        title VARCHAR(255) NOT NULL,
        image_url TEXT NOT NULL,
        category VARCHAR(50),
        sort_order INTEGER DEFAULT 0,
        created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
    );`
}
