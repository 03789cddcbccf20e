package simdata

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/matthieukhl/schemapilot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestBuildDataset_Determinism(t *testing.T) {
	a := BuildDataset(42, testNow)
	b := BuildDataset(42, testNow)

	assert.Equal(t, a.Customers, b.Customers)
	assert.Equal(t, a.Products, b.Products)
	assert.Equal(t, a.Orders, b.Orders)
	assert.Equal(t, a.OrderItems, b.OrderItems)
	assert.Equal(t, a.Sales, b.Sales)
	assert.Equal(t, a.Inventory, b.Inventory)
}

func TestBuildDataset_SeedChangesData(t *testing.T) {
	a := BuildDataset(1, testNow)
	b := BuildDataset(2, testNow)

	assert.NotEqual(t, a.OrderItems, b.OrderItems)
}

func TestBuildDataset_Counts(t *testing.T) {
	ds := BuildDataset(42, testNow)

	assert.Len(t, ds.Customers, 30)
	assert.Len(t, ds.Products, 20)
	assert.Len(t, ds.Orders, 80)
	assert.Len(t, ds.Inventory, 20)

	// 1-4 items per order
	assert.GreaterOrEqual(t, len(ds.OrderItems), 80)
	assert.LessOrEqual(t, len(ds.OrderItems), 320)

	// sales derive from at most the first 120 order items
	wantSales := len(ds.OrderItems)
	if wantSales > 120 {
		wantSales = 120
	}
	assert.Len(t, ds.Sales, wantSales)
}

func TestBuildDataset_ReferentialIntegrity(t *testing.T) {
	ds := BuildDataset(42, testNow)

	customerIDs := make(map[int]bool)
	for _, c := range ds.Customers {
		customerIDs[c.ID] = true
	}
	productIDs := make(map[int]bool)
	for _, p := range ds.Products {
		productIDs[p.ID] = true
	}
	orderIDs := make(map[int]bool)
	for _, o := range ds.Orders {
		orderIDs[o.ID] = true
		assert.True(t, customerIDs[o.CustomerID], "order %d references unknown customer %d", o.ID, o.CustomerID)
	}

	for _, oi := range ds.OrderItems {
		assert.True(t, orderIDs[oi.OrderID], "order item %d references unknown order %d", oi.ID, oi.OrderID)
		assert.True(t, productIDs[oi.ProductID], "order item %d references unknown product %d", oi.ID, oi.ProductID)
	}
	for _, s := range ds.Sales {
		assert.True(t, orderIDs[s.OrderID], "sale %d references unknown order %d", s.ID, s.OrderID)
		assert.True(t, productIDs[s.ProductID], "sale %d references unknown product %d", s.ID, s.ProductID)
	}

	// one inventory record per product, bijective
	seen := make(map[int]bool)
	for _, inv := range ds.Inventory {
		assert.True(t, productIDs[inv.ProductID], "inventory %d references unknown product %d", inv.ID, inv.ProductID)
		assert.False(t, seen[inv.ProductID], "product %d has more than one inventory record", inv.ProductID)
		seen[inv.ProductID] = true
	}
	assert.Len(t, seen, len(ds.Products))
}

func TestBuildDataset_MonetaryRounding(t *testing.T) {
	ds := BuildDataset(42, testNow)

	assertTwoDecimals := func(v float64, label string, id int) {
		t.Helper()
		scaled := v * 100
		assert.InDelta(t, math.Round(scaled), scaled, 1e-6, "%s of record %d not rounded to 2dp: %v", label, id, v)
	}

	for _, p := range ds.Products {
		assertTwoDecimals(p.UnitPrice, "unit_price", p.ID)
	}
	for _, oi := range ds.OrderItems {
		assertTwoDecimals(oi.Amount, "amount", oi.ID)
	}
	for _, s := range ds.Sales {
		assertTwoDecimals(s.Amount, "amount", s.ID)
	}
}

func TestBuildDataset_AmountsConsistent(t *testing.T) {
	ds := BuildDataset(42, testNow)

	for _, oi := range ds.OrderItems {
		require.Positive(t, oi.Quantity)
		assert.InDelta(t, round2(oi.UnitPrice*float64(oi.Quantity)), oi.Amount, 1e-9)
	}
}

func TestBuildDataset_SalesInheritOrderDateAndRegion(t *testing.T) {
	ds := BuildDataset(42, testNow)

	orders := make(map[int]string)
	for _, o := range ds.Orders {
		orders[o.ID] = o.OrderDate
	}
	regions := make(map[int]string)
	for _, c := range ds.Customers {
		regions[c.ID] = c.Region
	}
	customerOf := make(map[int]int)
	for _, o := range ds.Orders {
		customerOf[o.ID] = o.CustomerID
	}

	for _, s := range ds.Sales {
		assert.Equal(t, orders[s.OrderID], s.SaleDate)
		assert.Equal(t, regions[customerOf[s.OrderID]], s.Region)
	}
}

func TestBuildDataset_SaleDerivationConsumesNoDraws(t *testing.T) {
	ds := BuildDataset(42, testNow)

	// Replay the draw sequence for customers, products, orders and order
	// items. Every sale resolves its parent order and customer, so the very
	// next draws must be the inventory ones.
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < len(ds.Customers); i++ {
		rng.Intn(len(models.Regions))
		rng.Intn(401)
	}
	for i := 0; i < len(ds.Products); i++ {
		rng.Intn(len(models.Categories))
		rng.Float64()
	}
	for i := 0; i < len(ds.Orders); i++ {
		rng.Intn(len(ds.Customers))
		rng.Intn(181)
		rng.Intn(len(models.Statuses))
	}
	for i := 0; i < len(ds.Orders); i++ {
		nItems := rng.Intn(4) + 1
		for j := 0; j < nItems; j++ {
			rng.Intn(len(ds.Products))
			rng.Intn(5)
		}
	}

	for _, inv := range ds.Inventory {
		assert.Equal(t, rng.Intn(201), inv.Quantity)
		assert.Equal(t, models.Warehouses[rng.Intn(len(models.Warehouses))], inv.Warehouse)
		assert.Equal(t, testNow.AddDate(0, 0, -rng.Intn(31)).Format(DateLayout), inv.UpdatedAt)
	}
}

func TestDataset_Rows(t *testing.T) {
	ds := BuildDataset(42, testNow)

	tests := []struct {
		table string
		count int
	}{
		{TableCustomers, 30},
		{TableProducts, 20},
		{TableOrders, 80},
		{TableOrderItems, len(ds.OrderItems)},
		{TableSales, len(ds.Sales)},
		{TableInventory, 20},
	}
	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			rows := ds.Rows(tt.table)
			require.Len(t, rows, tt.count)
			assert.Equal(t, 1, rows[0]["id"])
		})
	}

	assert.Nil(t, ds.Rows("no_such_table"))
}
