// context.go defines the Context handed to extensions. Extensions receive it
// in Init rather than at construction because they register before the
// catalog is opened.

package extension

import (
	"database/sql"

	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/config"
	"github.com/NorthropGrumman/seaside-gradle-plugins-sub001/internal/service"
)

// Context provides extensions controlled access to shared resources.
type Context interface {
	// Service returns the catalog service.
	Service() service.Service

	// DB returns the database connection for extensions with their own tables.
	DB() *sql.DB

	// Config returns the loaded configuration.
	Config() *config.Config
}

type extContext struct {
	svc service.Service
	db  *sql.DB
	cfg *config.Config
}

// NewContext creates a Context. Called once by the CLI after the catalog is
// opened, and by the MCP server for extension tools.
func NewContext(svc service.Service, db *sql.DB, cfg *config.Config) Context {
	return &extContext{svc: svc, db: db, cfg: cfg}
}

func (c *extContext) Service() service.Service { return c.svc }

func (c *extContext) DB() *sql.DB { return c.db }

func (c *extContext) Config() *config.Config { return c.cfg }
