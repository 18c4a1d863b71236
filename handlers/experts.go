package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/buidi2004/webbandocuoi/models"
	"github.com/buidi2004/webbandocuoi/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetExperts returns experts with optional category filter, top experts first
func GetExperts(c *gin.Context) {
	category := c.Query("category")

	query := `SELECT id, name, title, bio, years_experience, brides_count, specialties,
	                 image_url, category, level, is_top, price, created_at, updated_at
	          FROM experts`
	var args []interface{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY is_top DESC, brides_count DESC`

	rows, err := DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch experts"})
		return
	}
	defer rows.Close()

	experts := []models.Expert{}
	for rows.Next() {
		var e models.Expert
		err := rows.Scan(&e.ID, &e.Name, &e.Title, &e.Bio, &e.YearsExperience, &e.BridesCount,
			&e.Specialties, &e.ImageURL, &e.Category, &e.Level, &e.IsTop, &e.Price,
			&e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			continue
		}
		experts = append(experts, e)
	}

	c.JSON(http.StatusOK, gin.H{"experts": experts})
}

// GetExpert returns a single expert by ID
func GetExpert(c *gin.Context) {
	expertID := c.Param("id")
	if _, err := uuid.Parse(expertID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expert ID"})
		return
	}

	var e models.Expert
	err := DB.QueryRow(`SELECT id, name, title, bio, years_experience, brides_count, specialties,
	                           image_url, category, level, is_top, price, created_at, updated_at
	                    FROM experts WHERE id = $1`, expertID).Scan(
		&e.ID, &e.Name, &e.Title, &e.Bio, &e.YearsExperience, &e.BridesCount,
		&e.Specialties, &e.ImageURL, &e.Category, &e.Level, &e.IsTop, &e.Price,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expert not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expert"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"expert": e})
}

type expertRequest struct {
	Name            string  `json:"name" binding:"required"`
	Title           string  `json:"title" binding:"required"`
	Bio             string  `json:"bio,omitempty"`
	YearsExperience int     `json:"years_experience"`
	BridesCount     int     `json:"brides_count"`
	Specialties     string  `json:"specialties,omitempty"`
	ImageURL        string  `json:"image_url,omitempty"`
	Category        string  `json:"category" binding:"required"`
	Level           string  `json:"level,omitempty"`
	IsTop           bool    `json:"is_top"`
	Price           float64 `json:"price"`
}

// CreateExpert creates a new expert profile
func CreateExpert(c *gin.Context) {
	var req expertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	specialties := req.Specialties
	if specialties == "" {
		specialties = "[]"
	}
	level := req.Level
	if level == "" {
		level = "senior"
	}
	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = utils.PlaceholderAvatar(req.Name)
	}

	expertID := uuid.New()
	now := time.Now()

	_, err := DB.Exec(`INSERT INTO experts (id, name, title, bio, years_experience, brides_count,
	                     specialties, image_url, category, level, is_top, price, created_at, updated_at)
	                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		expertID, req.Name, req.Title, nullable(req.Bio), req.YearsExperience, req.BridesCount,
		specialties, &imageURL, req.Category, level, req.IsTop, req.Price, now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expert"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      expertID,
		"message": "Expert created successfully",
	})
}

// UpdateExpert updates an expert profile
func UpdateExpert(c *gin.Context) {
	expertID := c.Param("id")
	if _, err := uuid.Parse(expertID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expert ID"})
		return
	}

	var req expertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exists bool
	err := DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM experts WHERE id = $1)`, expertID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expert not found"})
		return
	}

	specialties := req.Specialties
	if specialties == "" {
		specialties = "[]"
	}
	level := req.Level
	if level == "" {
		level = "senior"
	}

	_, err = DB.Exec(`UPDATE experts SET name = $1, title = $2, bio = $3, years_experience = $4,
	                    brides_count = $5, specialties = $6, image_url = $7, category = $8,
	                    level = $9, is_top = $10, price = $11, updated_at = $12
	                  WHERE id = $13`,
		req.Name, req.Title, nullable(req.Bio), req.YearsExperience, req.BridesCount,
		specialties, nullable(req.ImageURL), req.Category, level, req.IsTop, req.Price,
		time.Now(), expertID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expert"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expert updated successfully"})
}

// DeleteExpert deletes an expert profile
func DeleteExpert(c *gin.Context) {
	expertID := c.Param("id")
	if _, err := uuid.Parse(expertID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expert ID"})
		return
	}

	result, err := DB.Exec(`DELETE FROM experts WHERE id = $1`, expertID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expert"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expert not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expert deleted successfully"})
}
