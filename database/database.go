package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/buidi2004/webbandocuoi/models"

	_ "github.com/lib/pq"
)

type DB struct {
	*sql.DB
}

var Database *DB

// Connect establishes a connection to the PostgreSQL database
func Connect(databaseURL string) (*DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	Database = &DB{db}
	return Database, nil
}

// InitializeTables creates all tables if they don't exist
func (db *DB) InitializeTables() error {
	// Enable pgcrypto extension for gen_random_uuid()
	if _, err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`); err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	// Order matters: order_items and reviews reference products and orders
	tables := []interface{}{
		models.Product{},
		models.Order{},
		models.OrderItem{},
		models.Review{},
		models.Banner{},
		models.Combo{},
		models.BlogPost{},
		models.Contact{},
		models.GalleryImage{},
		models.Expert{},
	}

	for _, model := range tables {
		if tableModel, ok := model.(interface {
			TableName() string
			CreateTableSQL() string
		}); ok {
			tableName := tableModel.TableName()

			log.Printf("Creating table: %s", tableName)
			if _, err := db.Exec(tableModel.CreateTableSQL()); err != nil {
				return fmt.Errorf("failed to create table %s: %w", tableName, err)
			}
		}
	}

	if err := db.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("All tables created successfully!")
	return nil
}

// runMigrations handles schema updates for existing tables
func (db *DB) runMigrations() error {
	migrations := []string{
		// Indexes used by the analytics loaders
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_order_date ON orders(order_date);`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer_email ON orders(customer_email);`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_product_id ON order_items(product_id);`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_product_id ON reviews(product_id);`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_is_approved ON reviews(is_approved);`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_status ON contacts(status);`,

		// Older deployments created banners without the subtitle column
		`ALTER TABLE banners ADD COLUMN IF NOT EXISTS subtitle TEXT;`,
		`ALTER TABLE banners ADD COLUMN IF NOT EXISTS link TEXT;`,

		// Combos gained featuring and ordering after launch
		`ALTER TABLE combos ADD COLUMN IF NOT EXISTS is_featured BOOLEAN DEFAULT FALSE;`,
		`ALTER TABLE combos ADD COLUMN IF NOT EXISTS sort_order INTEGER DEFAULT 0;`,

		// Gallery categories (dresses, venues, couples)
		`ALTER TABLE gallery_images ADD COLUMN IF NOT EXISTS category VARCHAR(50);`,

		// Review moderation flag for reviews created before approval existed
		`UPDATE reviews SET is_approved = FALSE WHERE is_approved IS NULL;`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			log.Printf("Warning: Migration %d failed: %v", i+1, err)
			// Continue with other migrations even if one fails
		}
	}

	log.Println("Migrations completed!")
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
