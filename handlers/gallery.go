package handlers

import (
	"net/http"
	"time"

	"github.com/buidi2004/webbandocuoi/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetGalleryImages returns gallery images with optional category filter
func GetGalleryImages(c *gin.Context) {
	category := c.Query("category")

	query := `SELECT id, title, image_url, category, sort_order, created_at
	          FROM gallery_images`
	var args []interface{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY sort_order, created_at DESC`

	rows, err := DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
		return
	}
	defer rows.Close()

	images := []models.GalleryImage{}
	for rows.Next() {
		var img models.GalleryImage
		err := rows.Scan(&img.ID, &img.Title, &img.ImageURL, &img.Category, &img.SortOrder, &img.CreatedAt)
		if err != nil {
			continue
		}
		images = append(images, img)
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

type galleryImageRequest struct {
	Title     string `json:"title" binding:"required"`
	ImageURL  string `json:"image_url" binding:"required"`
	Category  string `json:"category,omitempty"`
	SortOrder int    `json:"sort_order"`
}

// CreateGalleryImage adds an image to the gallery
func CreateGalleryImage(c *gin.Context) {
	var req galleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageID := uuid.New()

	_, err := DB.Exec(`INSERT INTO gallery_images (id, title, image_url, category, sort_order, created_at)
	                   VALUES ($1, $2, $3, $4, $5, $6)`,
		imageID, req.Title, req.ImageURL, nullable(req.Category), req.SortOrder, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add gallery image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      imageID,
		"message": "Gallery image added successfully",
	})
}

// UpdateGalleryImage updates an image's title, category or ordering
func UpdateGalleryImage(c *gin.Context) {
	imageID := c.Param("id")
	if _, err := uuid.Parse(imageID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}

	var req galleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := DB.Exec(`UPDATE gallery_images SET title = $1, image_url = $2, category = $3, sort_order = $4
	                        WHERE id = $5`,
		req.Title, req.ImageURL, nullable(req.Category), req.SortOrder, imageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gallery image"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery image updated successfully"})
}

// DeleteGalleryImage removes an image from the gallery
func DeleteGalleryImage(c *gin.Context) {
	imageID := c.Param("id")
	if _, err := uuid.Parse(imageID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}

	result, err := DB.Exec(`DELETE FROM gallery_images WHERE id = $1`, imageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete gallery image"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery image deleted successfully"})
}
