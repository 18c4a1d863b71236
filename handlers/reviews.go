package handlers

import (
	"net/http"
	"time"

	"github.com/buidi2004/webbandocuoi/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetReviews returns reviews, optionally filtered by approval state
func GetReviews(c *gin.Context) {
	query := `SELECT id, product_id, user_name, rating, comment, is_approved, created_at
	          FROM reviews`
	switch c.Query("approved") {
	case "true":
		query += ` WHERE is_approved = true`
	case "false":
		query += ` WHERE is_approved = false`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		err := rows.Scan(&r.ID, &r.ProductID, &r.UserName, &r.Rating, &r.Comment, &r.IsApproved, &r.CreatedAt)
		if err != nil {
			continue
		}
		reviews = append(reviews, r)
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// GetProductReviews returns approved reviews for one product
func GetProductReviews(c *gin.Context) {
	productID := c.Param("id")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	rows, err := DB.Query(`SELECT id, product_id, user_name, rating, comment, is_approved, created_at
	                       FROM reviews WHERE product_id = $1 AND is_approved = true
	                       ORDER BY created_at DESC`, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		err := rows.Scan(&r.ID, &r.ProductID, &r.UserName, &r.Rating, &r.Comment, &r.IsApproved, &r.CreatedAt)
		if err != nil {
			continue
		}
		reviews = append(reviews, r)
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

type reviewRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment,omitempty"`
}

// CreateReview submits a review for a product, pending approval
func CreateReview(c *gin.Context) {
	productID := c.Param("id")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var exists bool
	err := DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	reviewID := uuid.New()

	_, err = DB.Exec(`INSERT INTO reviews (id, product_id, user_name, rating, comment, is_approved, created_at)
	                  VALUES ($1, $2, $3, $4, $5, false, $6)`,
		reviewID, productID, req.UserName, req.Rating, nullable(req.Comment), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      reviewID,
		"message": "Review submitted successfully",
	})
}

// ApproveReview marks a review as approved
func ApproveReview(c *gin.Context) {
	reviewID := c.Param("id")
	if _, err := uuid.Parse(reviewID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	result, err := DB.Exec(`UPDATE reviews SET is_approved = true WHERE id = $1`, reviewID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve review"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review approved successfully"})
}

// DeleteReview deletes a review
func DeleteReview(c *gin.Context) {
	reviewID := c.Param("id")
	if _, err := uuid.Parse(reviewID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	result, err := DB.Exec(`DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
