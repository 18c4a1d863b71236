package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/buidi2004/webbandocuoi/analytics"
	"github.com/buidi2004/webbandocuoi/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// loadOrders fetches all orders for in-memory analytics. The catalog is
// small enough that the admin dashboard recomputes from scratch each call.
func loadOrders() ([]models.Order, error) {
	rows, err := DB.Query(`SELECT id, order_number, customer_name, customer_email, customer_phone,
	                              status, total_amount, note, order_date, created_at, updated_at
	                       FROM orders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
			&o.Status, &o.TotalAmount, &o.Note, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			log.Printf("Warning: skipping unreadable order row: %v", err)
			continue
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// loadCountedOrderItems fetches line items belonging to orders whose status
// counts toward revenue. Cancelled and pending orders are excluded so they
// never influence recommendations.
func loadCountedOrderItems() ([]models.OrderItem, error) {
	rows, err := DB.Query(`SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price, oi.created_at
	                       FROM order_items oi
	                       JOIN orders o ON o.id = oi.order_id
	                       WHERE o.status IN ('processing', 'shipped', 'delivered')`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.CreatedAt)
		if err != nil {
			log.Printf("Warning: skipping unreadable order item row: %v", err)
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func loadReviews() ([]models.Review, error) {
	rows, err := DB.Query(`SELECT id, product_id, user_name, rating, comment, is_approved, created_at
	                       FROM reviews`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var r models.Review
		err := rows.Scan(&r.ID, &r.ProductID, &r.UserName, &r.Rating, &r.Comment, &r.IsApproved, &r.CreatedAt)
		if err != nil {
			log.Printf("Warning: skipping unreadable review row: %v", err)
			continue
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

func loadProducts() ([]models.Product, error) {
	rows, err := DB.Query(`SELECT id, name, code, category, sub_category, gender, description,
	                              rental_price_day, rental_price_week, purchase_price, image_url,
	                              is_new, is_hot, fabric_type, color, quantity, created_at, updated_at
	                       FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.Category, &p.SubCategory, &p.Gender, &p.Description,
			&p.RentalPriceDay, &p.RentalPriceWeek, &p.PurchasePrice, &p.ImageURL,
			&p.IsNew, &p.IsHot, &p.FabricType, &p.Color, &p.Quantity, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			log.Printf("Warning: skipping unreadable product row: %v", err)
			continue
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetStatsOverview returns the admin dashboard headline figures.
// Aggregates degrade to zero values rather than failing the whole call.
func GetStatsOverview(c *gin.Context) {
	var totalRevenue float64
	err := DB.QueryRow(`SELECT COALESCE(SUM(total_amount), 0) FROM orders
	                    WHERE status IN ('processing', 'shipped', 'delivered')`).Scan(&totalRevenue)
	if err != nil {
		log.Printf("Warning: failed to compute total revenue: %v", err)
	}

	var totalOrders, totalCustomers, totalProducts, pendingContacts, pendingReviews int
	if err := DB.QueryRow(`SELECT COUNT(*) FROM orders`).Scan(&totalOrders); err != nil {
		log.Printf("Warning: failed to count orders: %v", err)
	}
	if err := DB.QueryRow(`SELECT COUNT(DISTINCT customer_email) FROM orders`).Scan(&totalCustomers); err != nil {
		log.Printf("Warning: failed to count customers: %v", err)
	}
	if err := DB.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&totalProducts); err != nil {
		log.Printf("Warning: failed to count products: %v", err)
	}
	if err := DB.QueryRow(`SELECT COUNT(*) FROM contacts WHERE status = 'pending'`).Scan(&pendingContacts); err != nil {
		log.Printf("Warning: failed to count pending contacts: %v", err)
	}
	if err := DB.QueryRow(`SELECT COUNT(*) FROM reviews WHERE is_approved = false`).Scan(&pendingReviews); err != nil {
		log.Printf("Warning: failed to count pending reviews: %v", err)
	}

	orders, err := loadOrders()
	if err != nil {
		log.Printf("Warning: failed to load orders for overview: %v", err)
		orders = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"total_revenue":    totalRevenue,
		"total_orders":     totalOrders,
		"total_customers":  totalCustomers,
		"total_products":   totalProducts,
		"pending_contacts": pendingContacts,
		"pending_reviews":  pendingReviews,
		"status_breakdown": analytics.StatusBreakdown(orders),
		"daily_revenue":    analytics.DailyRevenue(orders, 7, time.Now()),
		"recent_orders":    analytics.RecentOrders(orders, 5),
	})
}

// GetRevenueStats returns the monthly revenue series with growth percentages
func GetRevenueStats(c *gin.Context) {
	orders, err := loadOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	series := analytics.MonthlyRevenue(orders)

	c.JSON(http.StatusOK, gin.H{
		"monthly": series,
		"growth":  analytics.Growth(series),
	})
}

// GetRevenueForecast projects future monthly revenue with a moving average.
// Query params: window (averaging window, default 3), months (horizon, default 3).
func GetRevenueForecast(c *gin.Context) {
	window := 3
	if raw := c.Query("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid window parameter"})
			return
		}
		window = parsed
	}

	horizon := 3
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid months parameter"})
			return
		}
		horizon = parsed
	}

	orders, err := loadOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	series := analytics.MonthlyRevenue(orders)
	points, err := analytics.Forecast(series, window, horizon)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window":   window,
		"months":   horizon,
		"forecast": points,
	})
}

// GetCustomerSegments returns per-customer RFM records and segment totals
func GetCustomerSegments(c *gin.Context) {
	orders, err := loadOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	records := analytics.AnalyzeRFM(orders, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"customers": records,
		"segments":  analytics.SegmentCounts(records),
	})
}

// GetRecommendations returns the full co-purchase graph keyed by product ID
func GetRecommendations(c *gin.Context) {
	items, err := loadCountedOrderItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order items"})
		return
	}

	recommendations := analytics.CoPurchase(items)

	// JSON object keys must be strings
	out := make(map[string][]analytics.Recommendation, len(recommendations))
	for id, recs := range recommendations {
		out[id.String()] = recs
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": out})
}

// GetProductRecommendations returns catalog-joined suggestions for one product
func GetProductRecommendations(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	items, err := loadCountedOrderItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order items"})
		return
	}

	products, err := loadProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	suggestions := analytics.Suggestions(productID, analytics.CoPurchase(items), products)

	c.JSON(http.StatusOK, gin.H{
		"product_id":  productID,
		"suggestions": suggestions,
	})
}

// GetSentimentStats returns tagged reviews, counts per label, and alerts
// for reviews that need staff attention.
func GetSentimentStats(c *gin.Context) {
	reviews, err := loadReviews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	tagged, alerts := analytics.TagReviews(reviews)

	c.JSON(http.StatusOK, gin.H{
		"reviews": tagged,
		"counts":  analytics.SentimentCounts(reviews),
		"alerts":  alerts,
	})
}

// GetStatusBreakdown returns order counts per status
func GetStatusBreakdown(c *gin.Context) {
	orders, err := loadOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": analytics.StatusBreakdown(orders)})
}

// GetDailyRevenue returns revenue per day over a recent window.
// Query param: days (default 7, max 90).
func GetDailyRevenue(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 90 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days parameter"})
			return
		}
		days = parsed
	}

	orders, err := loadOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":    days,
		"revenue": analytics.DailyRevenue(orders, days, time.Now()),
	})
}
