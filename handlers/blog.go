package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/buidi2004/webbandocuoi/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetBlogPosts returns published posts, or all posts with ?all=true
func GetBlogPosts(c *gin.Context) {
	query := `SELECT id, title, summary, content, image_url, author, is_published, created_at, updated_at
	          FROM blog_posts`
	if c.Query("all") != "true" {
		query += ` WHERE is_published = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
		return
	}
	defer rows.Close()

	posts := []models.BlogPost{}
	for rows.Next() {
		var p models.BlogPost
		err := rows.Scan(&p.ID, &p.Title, &p.Summary, &p.Content, &p.ImageURL,
			&p.Author, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			continue
		}
		posts = append(posts, p)
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetBlogPost returns a single post by ID
func GetBlogPost(c *gin.Context) {
	postID := c.Param("id")
	if _, err := uuid.Parse(postID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var p models.BlogPost
	err := DB.QueryRow(`SELECT id, title, summary, content, image_url, author, is_published, created_at, updated_at
	                    FROM blog_posts WHERE id = $1`, postID).Scan(
		&p.ID, &p.Title, &p.Summary, &p.Content, &p.ImageURL,
		&p.Author, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": p})
}

type blogPostRequest struct {
	Title       string `json:"title" binding:"required"`
	Summary     string `json:"summary,omitempty"`
	Content     string `json:"content" binding:"required"`
	ImageURL    string `json:"image_url,omitempty"`
	Author      string `json:"author,omitempty"`
	IsPublished bool   `json:"is_published"`
}

// CreateBlogPost creates a new blog post
func CreateBlogPost(c *gin.Context) {
	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	postID := uuid.New()
	now := time.Now()

	_, err := DB.Exec(`INSERT INTO blog_posts (id, title, summary, content, image_url, author, is_published, created_at, updated_at)
	                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		postID, req.Title, nullable(req.Summary), req.Content, nullable(req.ImageURL),
		nullable(req.Author), req.IsPublished, now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      postID,
		"message": "Post created successfully",
	})
}

// UpdateBlogPost updates an existing blog post
func UpdateBlogPost(c *gin.Context) {
	postID := c.Param("id")
	if _, err := uuid.Parse(postID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exists bool
	err := DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM blog_posts WHERE id = $1)`, postID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	_, err = DB.Exec(`UPDATE blog_posts SET title = $1, summary = $2, content = $3, image_url = $4,
	                    author = $5, is_published = $6, updated_at = $7
	                  WHERE id = $8`,
		req.Title, nullable(req.Summary), req.Content, nullable(req.ImageURL),
		nullable(req.Author), req.IsPublished, time.Now(), postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully"})
}

// DeleteBlogPost deletes a blog post
func DeleteBlogPost(c *gin.Context) {
	postID := c.Param("id")
	if _, err := uuid.Parse(postID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	result, err := DB.Exec(`DELETE FROM blog_posts WHERE id = $1`, postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
