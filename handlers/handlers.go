package handlers

import (
	"github.com/buidi2004/webbandocuoi/database"
)

// DB is the shared database handle used by all handlers
var DB *database.DB

// InitializeHandlers sets up the handlers with the database connection
func InitializeHandlers(db *database.DB) {
	DB = db
}
