package handlers

import (
	"net/http"
	"time"

	"github.com/buidi2004/webbandocuoi/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetContacts returns inquiries, newest first, with optional status filter
func GetContacts(c *gin.Context) {
	status := c.Query("status")

	query := `SELECT id, name, phone, email, message, status, created_at, updated_at
	          FROM contacts`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var ct models.Contact
		err := rows.Scan(&ct.ID, &ct.Name, &ct.Phone, &ct.Email, &ct.Message,
			&ct.Status, &ct.CreatedAt, &ct.UpdatedAt)
		if err != nil {
			continue
		}
		contacts = append(contacts, ct)
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

// CreateContact records an inbound inquiry from the website form
func CreateContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contactID := uuid.New()
	now := time.Now()

	_, err := DB.Exec(`INSERT INTO contacts (id, name, phone, email, message, status, created_at, updated_at)
	                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		contactID, req.Name, req.Phone, nullable(req.Email), nullable(req.Message),
		models.ContactPending, now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save contact"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      contactID,
		"message": "Contact saved successfully",
	})
}

type contactStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateContactStatus marks an inquiry as processed or pending
func UpdateContactStatus(c *gin.Context) {
	contactID := c.Param("id")
	if _, err := uuid.Parse(contactID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}

	var req contactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Status != models.ContactPending && req.Status != models.ContactProcessed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact status"})
		return
	}

	result, err := DB.Exec(`UPDATE contacts SET status = $1, updated_at = $2 WHERE id = $3`,
		req.Status, time.Now(), contactID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact updated successfully"})
}

// DeleteContact deletes an inquiry
func DeleteContact(c *gin.Context) {
	contactID := c.Param("id")
	if _, err := uuid.Parse(contactID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}

	result, err := DB.Exec(`DELETE FROM contacts WHERE id = $1`, contactID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
