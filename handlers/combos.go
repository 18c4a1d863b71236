package handlers

import (
	"net/http"
	"time"

	"github.com/buidi2004/webbandocuoi/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCombos returns active combos ordered by sort_order
func GetCombos(c *gin.Context) {
	query := `SELECT id, name, description, features, price, image_url,
	                 is_featured, is_active, sort_order, created_at, updated_at
	          FROM combos`
	if c.Query("all") != "true" {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY sort_order, created_at`

	rows, err := DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch combos"})
		return
	}
	defer rows.Close()

	combos := []models.Combo{}
	for rows.Next() {
		var combo models.Combo
		err := rows.Scan(&combo.ID, &combo.Name, &combo.Description, &combo.Features,
			&combo.Price, &combo.ImageURL, &combo.IsFeatured, &combo.IsActive,
			&combo.SortOrder, &combo.CreatedAt, &combo.UpdatedAt)
		if err != nil {
			continue
		}
		combos = append(combos, combo)
	}

	c.JSON(http.StatusOK, gin.H{"combos": combos})
}

type comboRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description,omitempty"`
	Features    string  `json:"features,omitempty"`
	Price       float64 `json:"price" binding:"required"`
	ImageURL    string  `json:"image_url,omitempty"`
	IsFeatured  bool    `json:"is_featured"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   int     `json:"sort_order"`
}

// CreateCombo creates a new combo
func CreateCombo(c *gin.Context) {
	var req comboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	features := req.Features
	if features == "" {
		features = "[]"
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	comboID := uuid.New()
	now := time.Now()

	_, err := DB.Exec(`INSERT INTO combos (id, name, description, features, price, image_url,
	                     is_featured, is_active, sort_order, created_at, updated_at)
	                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		comboID, req.Name, nullable(req.Description), features, req.Price,
		nullable(req.ImageURL), req.IsFeatured, isActive, req.SortOrder, now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create combo"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      comboID,
		"message": "Combo created successfully",
	})
}

// UpdateCombo updates an existing combo
func UpdateCombo(c *gin.Context) {
	comboID := c.Param("id")
	if _, err := uuid.Parse(comboID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid combo ID"})
		return
	}

	var req comboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exists bool
	err := DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM combos WHERE id = $1)`, comboID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Combo not found"})
		return
	}

	features := req.Features
	if features == "" {
		features = "[]"
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	_, err = DB.Exec(`UPDATE combos SET name = $1, description = $2, features = $3, price = $4,
	                    image_url = $5, is_featured = $6, is_active = $7, sort_order = $8, updated_at = $9
	                  WHERE id = $10`,
		req.Name, nullable(req.Description), features, req.Price, nullable(req.ImageURL),
		req.IsFeatured, isActive, req.SortOrder, time.Now(), comboID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update combo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Combo updated successfully"})
}

// DeleteCombo deletes a combo
func DeleteCombo(c *gin.Context) {
	comboID := c.Param("id")
	if _, err := uuid.Parse(comboID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid combo ID"})
		return
	}

	result, err := DB.Exec(`DELETE FROM combos WHERE id = $1`, comboID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete combo"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Combo not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Combo deleted successfully"})
}
