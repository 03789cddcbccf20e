package backend

import (
	"fmt"

	"github.com/matthieukhl/schemapilot/internal/clock"
	"github.com/matthieukhl/schemapilot/internal/config"
	"github.com/matthieukhl/schemapilot/internal/database"
	"github.com/matthieukhl/schemapilot/internal/documents"
	"github.com/matthieukhl/schemapilot/internal/simdata"
)

// New creates a backend based on configuration. db is only required for
// hybrid mode and may be nil otherwise.
func New(cfg *config.Config, engine *simdata.Engine, db *database.DB, clk clock.Clock) (Backend, error) {
	switch cfg.Backend.Mode {
	case "simulated", "":
		return NewSimulated(engine, documents.NewMemoryStore(), clk), nil
	case "webhook":
		return NewWebhook(&cfg.Webhook)
	case "hybrid":
		if db == nil {
			return nil, fmt.Errorf("hybrid mode requires a database connection")
		}
		store, err := documents.NewSQLStore(db)
		if err != nil {
			return nil, err
		}
		return NewHybrid(&cfg.Webhook, store, clk)
	default:
		return nil, fmt.Errorf("unsupported backend mode: %s", cfg.Backend.Mode)
	}
}
