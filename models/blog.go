package models

import (
	"time"

	"github.com/google/uuid"
)

type BlogPost struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Summary     *string   `json:"summary" db:"summary"`
	Content     string    `json:"content" db:"content"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	Author      *string   `json:"author" db:"author"`
	IsPublished bool      `json:"is_published" db:"is_published"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func (BlogPost) TableName() string { return "blog_posts" }

func (BlogPost) CreateTableSQL() string {
	return `CREATE TABLE IF NOT EXISTS blog_posts (
        id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
        title VARCHAR(255) NOT NULL,
        summary TEXT,
        content TEXT NOT NULL,
        image_url TEXT,
        author VARCHAR(255),
        is_published BOOLEAN DEFAULT FALSE,
        created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
        updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
    );`
}
