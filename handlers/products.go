package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/buidi2004/webbandocuoi/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetProducts returns products with optional category filter and pagination
func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	category := c.Query("category")

	var query string
	var args []interface{}
	if category != "" {
		query = `SELECT id, name, code, category, sub_category, gender, description,
		                rental_price_day, rental_price_week, purchase_price, image_url,
		                is_new, is_hot, fabric_type, color, quantity, created_at, updated_at
		         FROM products WHERE category = $1
		         ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = []interface{}{category, limit, offset}
	} else {
		query = `SELECT id, name, code, category, sub_category, gender, description,
		                rental_price_day, rental_price_week, purchase_price, image_url,
		                is_new, is_hot, fabric_type, color, quantity, created_at, updated_at
		         FROM products
		         ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = []interface{}{limit, offset}
	}

	rows, err := DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Code, &p.Category, &p.SubCategory, &p.Gender, &p.Description,
			&p.RentalPriceDay, &p.RentalPriceWeek, &p.PurchasePrice, &p.ImageURL,
			&p.IsNew, &p.IsHot, &p.FabricType, &p.Color, &p.Quantity, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			continue
		}
		products = append(products, p)
	}

	var total int
	if category != "" {
		DB.QueryRow(`SELECT COUNT(*) FROM products WHERE category = $1`, category).Scan(&total)
	} else {
		DB.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&total)
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// GetProduct returns a single product by ID
func GetProduct(c *gin.Context) {
	productID := c.Param("id")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var p models.Product
	query := `SELECT id, name, code, category, sub_category, gender, description,
	                 rental_price_day, rental_price_week, purchase_price, image_url,
	                 is_new, is_hot, fabric_type, color, quantity, created_at, updated_at
	          FROM products WHERE id = $1`

	err := DB.QueryRow(query, productID).Scan(
		&p.ID, &p.Name, &p.Code, &p.Category, &p.SubCategory, &p.Gender, &p.Description,
		&p.RentalPriceDay, &p.RentalPriceWeek, &p.PurchasePrice, &p.ImageURL,
		&p.IsNew, &p.IsHot, &p.FabricType, &p.Color, &p.Quantity, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": p})
}

type productRequest struct {
	Name            string  `json:"name" binding:"required"`
	Code            string  `json:"code" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	SubCategory     string  `json:"sub_category,omitempty"`
	Gender          string  `json:"gender,omitempty"`
	Description     string  `json:"description,omitempty"`
	RentalPriceDay  float64 `json:"rental_price_day"`
	RentalPriceWeek float64 `json:"rental_price_week"`
	PurchasePrice   float64 `json:"purchase_price"`
	ImageURL        string  `json:"image_url" binding:"required"`
	IsNew           bool    `json:"is_new"`
	IsHot           bool    `json:"is_hot"`
	FabricType      string  `json:"fabric_type,omitempty"`
	Color           string  `json:"color,omitempty"`
	Quantity        int     `json:"quantity"`
}

// CreateProduct creates a new product
func CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	productID := uuid.New()
	now := time.Now()

	query := `INSERT INTO products (id, name, code, category, sub_category, gender, description,
	            rental_price_day, rental_price_week, purchase_price, image_url,
	            is_new, is_hot, fabric_type, color, quantity, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := DB.Exec(query, productID, req.Name, req.Code, req.Category,
		nullable(req.SubCategory), nullable(req.Gender), nullable(req.Description),
		req.RentalPriceDay, req.RentalPriceWeek, req.PurchasePrice, req.ImageURL,
		req.IsNew, req.IsHot, nullable(req.FabricType), nullable(req.Color), req.Quantity, now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      productID,
		"message": "Product created successfully",
	})
}

// UpdateProduct updates an existing product
func UpdateProduct(c *gin.Context) {
	productID := c.Param("id")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req productRequest
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

	query := `UPDATE products SET name = $1, code = $2, category = $3, sub_category = $4,
	            gender = $5, description = $6, rental_price_day = $7, rental_price_week = $8,
	            purchase_price = $9, image_url = $10, is_new = $11, is_hot = $12,
	            fabric_type = $13, color = $14, quantity = $15, updated_at = $16
	          WHERE id = $17`

	_, err = DB.Exec(query, req.Name, req.Code, req.Category,
		nullable(req.SubCategory), nullable(req.Gender), nullable(req.Description),
		req.RentalPriceDay, req.RentalPriceWeek, req.PurchasePrice, req.ImageURL,
		req.IsNew, req.IsHot, nullable(req.FabricType), nullable(req.Color), req.Quantity,
		time.Now(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct deletes a product
func DeleteProduct(c *gin.Context) {
	productID := c.Param("id")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	result, err := DB.Exec(`DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// nullable converts an empty string to a NULL-able pointer for inserts
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
