package cmd

import (
	"fmt"
	"os"

	"github.com/matthieukhl/schemapilot/internal/backend"
	"github.com/matthieukhl/schemapilot/internal/clock"
	"github.com/matthieukhl/schemapilot/internal/config"
	"github.com/matthieukhl/schemapilot/internal/database"
	"github.com/matthieukhl/schemapilot/internal/metrics"
	"github.com/matthieukhl/schemapilot/internal/server"
	"github.com/matthieukhl/schemapilot/internal/simdata"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the SchemaPilot server",
	Long: `Start the SchemaPilot server which provides:
- REST API for schema upload, schema queries and NL2SQL translation
- Simulated SQL execution over the in-memory ERP dataset
- Dashboard analytics with seed-controlled variance`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 SchemaPilot Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	fmt.Printf("📦 Building simulated dataset (seed %d)...\n", cfg.Sim.Seed)
	clk := clock.NewRealClock()
	dataset := simdata.BuildDataset(cfg.Sim.Seed, clk.Now())
	engine := simdata.NewEngine(dataset, clk)

	// Hybrid mode persists documents in MySQL; the other modes do not
	// touch a database at all.
	var db *database.DB
	if cfg.Backend.Mode == "hybrid" {
		fmt.Println("🔌 Connecting to database...")
		db, err = database.NewConnection(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		fmt.Println("✅ Database connected successfully")
	}

	b, err := backend.New(cfg, engine, db, clk)
	if err != nil {
		return fmt.Errorf("failed to create backend: %w", err)
	}

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(b, metrics.NewRegistry(), cfg.Upload.MaxBytes)

	fmt.Printf("🌐 Starting server on %s (backend: %s)...\n", cfg.Server.Addr, b.Mode())
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
