package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/buidi2004/webbandocuoi/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type orderItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitPrice float64 `json:"unit_price" binding:"required"`
}

type createOrderRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required"`
	CustomerEmail string             `json:"customer_email" binding:"required,email"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	Note          string             `json:"note,omitempty"`
	OrderDate     string             `json:"order_date,omitempty"`
	Items         []orderItemRequest `json:"items" binding:"required,min=1"`
}

// GetOrders returns orders with optional status filter and pagination
func GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	status := c.Query("status")

	var query string
	var args []interface{}
	if status != "" {
		query = `SELECT id, order_number, customer_name, customer_email, customer_phone,
		                status, total_amount, note, order_date, created_at, updated_at
		         FROM orders WHERE status = $1
		         ORDER BY order_date DESC LIMIT $2 OFFSET $3`
		args = []interface{}{status, limit, offset}
	} else {
		query = `SELECT id, order_number, customer_name, customer_email, customer_phone,
		                status, total_amount, note, order_date, created_at, updated_at
		         FROM orders
		         ORDER BY order_date DESC LIMIT $1 OFFSET $2`
		args = []interface{}{limit, offset}
	}

	rows, err := DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
			&o.Status, &o.TotalAmount, &o.Note, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt,
		)
		if err != nil {
			continue
		}
		orders = append(orders, o)
	}

	var total int
	if status != "" {
		DB.QueryRow(`SELECT COUNT(*) FROM orders WHERE status = $1`, status).Scan(&total)
	} else {
		DB.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&total)
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  total,
		"page":   page,
		"limit":  limit,
	})
}

// GetOrder returns a single order with its items
func GetOrder(c *gin.Context) {
	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var o models.Order
	query := `SELECT id, order_number, customer_name, customer_email, customer_phone,
	                 status, total_amount, note, order_date, created_at, updated_at
	          FROM orders WHERE id = $1`

	err := DB.QueryRow(query, orderID).Scan(
		&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.Status, &o.TotalAmount, &o.Note, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		}
		return
	}

	itemsQuery := `SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price, oi.created_at,
	                      COALESCE(p.name, ''), COALESCE(p.image_url, '')
	               FROM order_items oi
	               LEFT JOIN products p ON p.id = oi.product_id
	               WHERE oi.order_id = $1
	               ORDER BY oi.created_at`

	rows, err := DB.Query(itemsQuery, orderID)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var item models.OrderItem
			err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
				&item.UnitPrice, &item.CreatedAt, &item.ProductName, &item.ProductImage)
			if err != nil {
				continue
			}
			o.Items = append(o.Items, item)
		}
	}

	c.JSON(http.StatusOK, gin.H{"order": o})
}

// CreateOrder creates a new order with its line items in a transaction
func CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderDate := time.Now()
	if req.OrderDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.OrderDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order_date, expected RFC3339"})
			return
		}
		orderDate = parsed
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	var totalAmount float64
	for _, it := range req.Items {
		productID, err := uuid.Parse(it.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID in items"})
			return
		}
		items = append(items, models.OrderItem{
			ID:        uuid.New(),
			ProductID: productID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
		totalAmount += it.UnitPrice * float64(it.Quantity)
	}

	orderID := uuid.New()
	orderNumber := fmt.Sprintf("ORD-%s", time.Now().Format("20060102-150405"))
	now := time.Now()

	tx, err := DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO orders (id, order_number, customer_name, customer_email,
	                    customer_phone, status, total_amount, note, order_date, created_at, updated_at)
	                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		orderID, orderNumber, req.CustomerName, req.CustomerEmail,
		nullable(req.CustomerPhone), models.StatusPending, totalAmount,
		nullable(req.Note), orderDate, now, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	for _, item := range items {
		_, err = tx.Exec(`INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, created_at)
		                  VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, orderID, item.ProductID, item.Quantity, item.UnitPrice, now)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order items"})
			return
		}
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           orderID,
		"order_number": orderNumber,
		"total_amount": totalAmount,
		"message":      "Order created successfully",
	})
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus changes an order's status
func UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		return
	}

	result, err := DB.Exec(`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		req.Status, time.Now(), orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}

// DeleteOrder deletes an order and its items
func DeleteOrder(c *gin.Context) {
	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	tx, err := DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	defer tx.Rollback()

	tx.Exec(`DELETE FROM order_items WHERE order_id = $1`, orderID)
	result, err := tx.Exec(`DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
