package cmd

import (
	"fmt"
	"sort"

	"github.com/matthieukhl/schemapilot/internal/clock"
	"github.com/matthieukhl/schemapilot/internal/simdata"
	"github.com/spf13/cobra"
)

var datasetSeed int64

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Print a summary of the simulated dataset",
	Long: `Build the simulated ERP dataset and print entity counts and sales
aggregates. Useful for inspecting what a given seed produces.`,
	RunE: runDataset,
}

func init() {
	rootCmd.AddCommand(datasetCmd)

	datasetCmd.Flags().Int64Var(&datasetSeed, "seed", simdata.DefaultSeed, "Generation seed")
}

func runDataset(cmd *cobra.Command, args []string) error {
	clk := clock.NewRealClock()
	ds := simdata.BuildDataset(datasetSeed, clk.Now())

	fmt.Printf("📦 Dataset (seed %d)\n", datasetSeed)
	fmt.Printf("   Customers:   %d\n", len(ds.Customers))
	fmt.Printf("   Products:    %d\n", len(ds.Products))
	fmt.Printf("   Orders:      %d\n", len(ds.Orders))
	fmt.Printf("   Order items: %d\n", len(ds.OrderItems))
	fmt.Printf("   Sales:       %d\n", len(ds.Sales))
	fmt.Printf("   Inventory:   %d\n", len(ds.Inventory))
	fmt.Printf("   Total sales: %.2f\n", ds.TotalSales())

	byRegion := ds.SalesByRegion()
	regions := make([]string, 0, len(byRegion))
	for r := range byRegion {
		regions = append(regions, r)
	}
	sort.Strings(regions)

	fmt.Println("📊 Sales by region:")
	for _, r := range regions {
		fmt.Printf("   %-8s %.2f\n", r, byRegion[r])
	}
	return nil
}
