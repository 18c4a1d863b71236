package handlers

import (
	"net/http"
	"time"

	"github.com/buidi2004/webbandocuoi/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetBanners returns active banners ordered by sort_order
func GetBanners(c *gin.Context) {
	query := `SELECT id, title, subtitle, image_url, link, sort_order, is_active, created_at, updated_at
	          FROM banners`
	if c.Query("all") != "true" {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY sort_order, created_at`

	rows, err := DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch banners"})
		return
	}
	defer rows.Close()

	banners := []models.Banner{}
	for rows.Next() {
		var b models.Banner
		err := rows.Scan(&b.ID, &b.Title, &b.Subtitle, &b.ImageURL, &b.Link,
			&b.SortOrder, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			continue
		}
		banners = append(banners, b)
	}

	c.JSON(http.StatusOK, gin.H{"banners": banners})
}

type bannerRequest struct {
	Title     string `json:"title" binding:"required"`
	Subtitle  string `json:"subtitle,omitempty"`
	ImageURL  string `json:"image_url" binding:"required"`
	Link      string `json:"link,omitempty"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

// CreateBanner creates a new banner
func CreateBanner(c *gin.Context) {
	var req bannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	bannerID := uuid.New().String()
	now := time.Now()

	_, err := DB.Exec(`INSERT INTO banners (id, title, subtitle, image_url, link, sort_order, is_active, created_at, updated_at)
	                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		bannerID, req.Title, nullable(req.Subtitle), req.ImageURL, nullable(req.Link),
		req.SortOrder, isActive, now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create banner"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      bannerID,
		"message": "Banner created successfully",
	})
}

// UpdateBanner updates an existing banner
func UpdateBanner(c *gin.Context) {
	bannerID := c.Param("id")
	if _, err := uuid.Parse(bannerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid banner ID"})
		return
	}

	var req bannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exists bool
	err := DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM banners WHERE id = $1)`, bannerID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	_, err = DB.Exec(`UPDATE banners SET title = $1, subtitle = $2, image_url = $3, link = $4,
	                    sort_order = $5, is_active = $6, updated_at = $7
	                  WHERE id = $8`,
		req.Title, nullable(req.Subtitle), req.ImageURL, nullable(req.Link),
		req.SortOrder, isActive, time.Now(), bannerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner updated successfully"})
}

// DeleteBanner deletes a banner
func DeleteBanner(c *gin.Context) {
	bannerID := c.Param("id")
	if _, err := uuid.Parse(bannerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid banner ID"})
		return
	}

	result, err := DB.Exec(`DELETE FROM banners WHERE id = $1`, bannerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete banner"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted successfully"})
}
