package handlers

import (
	"net/http"

	"github.com/buidi2004/webbandocuoi/services"

	"github.com/gin-gonic/gin"
)

var allowedUploadFolders = map[string]bool{
	"products": true,
	"banners":  true,
	"gallery":  true,
	"experts":  true,
	"blog":     true,
	"combos":   true,
}

// UploadImage accepts a multipart image and stores it in Cloudinary.
// Folder defaults to "products" and must be one of the known buckets.
func UploadImage(c *gin.Context) {
	if services.Cloudinary == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image upload is not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	folder := c.DefaultPostForm("folder", "products")
	if !allowedUploadFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload folder"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image file"})
		return
	}
	defer file.Close()

	result, err := services.Cloudinary.UploadImage(file, folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":       result.SecureURL,
		"public_id": result.PublicID,
		"message":   "Image uploaded successfully",
	})
}
