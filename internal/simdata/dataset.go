package simdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/matthieukhl/schemapilot/internal/models"
)

// DateLayout is the ISO date format used by every date field in the dataset.
const DateLayout = "2006-01-02"

// DefaultSeed is the generation seed used by the server for reproducible demo data.
const DefaultSeed int64 = 42

// Entity counts fixed by the dataset contract.
const (
	customerCount = 30
	productCount  = 20
	orderCount    = 80
	maxSaleItems  = 120
)

// Dataset holds the full simulated ERP dataset. It is built once per process
// and treated as read-only afterwards, so it is safe to share across handlers
// without locking.
type Dataset struct {
	Customers  []models.Customer
	Products   []models.Product
	Orders     []models.Order
	OrderItems []models.OrderItem
	Sales      []models.Sale
	Inventory  []models.InventoryRecord
}

// BuildDataset generates the simulated dataset from a single seeded source.
// Entities are generated in a fixed order (customers, products, orders,
// order items, sales, inventory) because later entities sample ids from
// earlier ones. The same seed and reference time always reproduce the
// exact same dataset.
func BuildDataset(seed int64, now time.Time) *Dataset {
	rng := rand.New(rand.NewSource(seed))
	ds := &Dataset{}

	for i := 1; i <= customerCount; i++ {
		ds.Customers = append(ds.Customers, models.Customer{
			ID:        i,
			Name:      fmt.Sprintf("Customer %d", i),
			Region:    pick(rng, models.Regions),
			CreatedAt: randDate(rng, now, 400),
		})
	}

	for i := 1; i <= productCount; i++ {
		ds.Products = append(ds.Products, models.Product{
			ID:        i,
			Name:      fmt.Sprintf("Product %d", i),
			Category:  pick(rng, models.Categories),
			UnitPrice: round2(10 + rng.Float64()*490),
		})
	}

	for i := 1; i <= orderCount; i++ {
		ds.Orders = append(ds.Orders, models.Order{
			ID:         i,
			CustomerID: rng.Intn(customerCount) + 1,
			OrderDate:  randDate(rng, now, 180),
			Status:     pick(rng, models.Statuses),
		})
	}

	idx := 1
	for _, o := range ds.Orders {
		nItems := rng.Intn(4) + 1
		for j := 0; j < nItems; j++ {
			p := ds.Products[rng.Intn(len(ds.Products))]
			qty := rng.Intn(5) + 1
			ds.OrderItems = append(ds.OrderItems, models.OrderItem{
				ID:        idx,
				OrderID:   o.ID,
				ProductID: p.ID,
				Quantity:  qty,
				UnitPrice: p.UnitPrice,
				Amount:    round2(p.UnitPrice * float64(qty)),
			})
			idx++
		}
	}

	orderByID := make(map[int]models.Order, len(ds.Orders))
	for _, o := range ds.Orders {
		orderByID[o.ID] = o
	}
	customerByID := make(map[int]models.Customer, len(ds.Customers))
	for _, c := range ds.Customers {
		customerByID[c.ID] = c
	}

	saleItems := ds.OrderItems
	if len(saleItems) > maxSaleItems {
		saleItems = saleItems[:maxSaleItems]
	}
	for i, oi := range saleItems {
		// Fallback draws happen only when a lookup misses, so a fully linked
		// dataset consumes no randomness here and the inventory draws below
		// stay aligned with the generation order.
		var saleDate, region string
		if o, ok := orderByID[oi.OrderID]; ok {
			saleDate = o.OrderDate
			if c, ok := customerByID[o.CustomerID]; ok {
				region = c.Region
			} else {
				region = pick(rng, models.Regions)
			}
		} else {
			saleDate = randDate(rng, now, 90)
			region = pick(rng, models.Regions)
		}
		ds.Sales = append(ds.Sales, models.Sale{
			ID:        i + 1,
			OrderID:   oi.OrderID,
			ProductID: oi.ProductID,
			Amount:    oi.Amount,
			SaleDate:  saleDate,
			Region:    region,
		})
	}

	for i, p := range ds.Products {
		ds.Inventory = append(ds.Inventory, models.InventoryRecord{
			ID:        i + 1,
			ProductID: p.ID,
			Quantity:  rng.Intn(201),
			Warehouse: pick(rng, models.Warehouses),
			UpdatedAt: randDate(rng, now, 30),
		})
	}

	return ds
}

// TotalSales returns the unrounded sum of all sale amounts.
func (ds *Dataset) TotalSales() float64 {
	var total float64
	for _, s := range ds.Sales {
		total += s.Amount
	}
	return total
}

// SalesByRegion sums sale amounts per region.
func (ds *Dataset) SalesByRegion() map[string]float64 {
	byRegion := make(map[string]float64)
	for _, s := range ds.Sales {
		byRegion[s.Region] += s.Amount
	}
	return byRegion
}

// ProductByID returns a lookup map over the generated products.
func (ds *Dataset) ProductByID() map[int]models.Product {
	byID := make(map[int]models.Product, len(ds.Products))
	for _, p := range ds.Products {
		byID[p.ID] = p
	}
	return byID
}

// Rows returns the raw records of a table as generic rows in generation
// order. Unknown table names return nil.
func (ds *Dataset) Rows(table string) []Row {
	switch table {
	case TableCustomers:
		rows := make([]Row, 0, len(ds.Customers))
		for _, c := range ds.Customers {
			rows = append(rows, Row{"id": c.ID, "name": c.Name, "region": c.Region, "created_at": c.CreatedAt})
		}
		return rows
	case TableProducts:
		rows := make([]Row, 0, len(ds.Products))
		for _, p := range ds.Products {
			rows = append(rows, Row{"id": p.ID, "name": p.Name, "category": p.Category, "unit_price": p.UnitPrice})
		}
		return rows
	case TableOrders:
		rows := make([]Row, 0, len(ds.Orders))
		for _, o := range ds.Orders {
			rows = append(rows, Row{"id": o.ID, "customer_id": o.CustomerID, "order_date": o.OrderDate, "status": o.Status})
		}
		return rows
	case TableOrderItems:
		rows := make([]Row, 0, len(ds.OrderItems))
		for _, oi := range ds.OrderItems {
			rows = append(rows, Row{"id": oi.ID, "order_id": oi.OrderID, "product_id": oi.ProductID, "quantity": oi.Quantity, "unit_price": oi.UnitPrice, "amount": oi.Amount})
		}
		return rows
	case TableSales:
		rows := make([]Row, 0, len(ds.Sales))
		for _, s := range ds.Sales {
			rows = append(rows, Row{"id": s.ID, "order_id": s.OrderID, "product_id": s.ProductID, "amount": s.Amount, "sale_date": s.SaleDate, "region": s.Region})
		}
		return rows
	case TableInventory:
		rows := make([]Row, 0, len(ds.Inventory))
		for _, r := range ds.Inventory {
			rows = append(rows, Row{"id": r.ID, "product_id": r.ProductID, "quantity": r.Quantity, "warehouse": r.Warehouse, "updated_at": r.UpdatedAt})
		}
		return rows
	}
	return nil
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func randDate(rng *rand.Rand, now time.Time, maxDaysAgo int) string {
	return now.AddDate(0, 0, -rng.Intn(maxDaysAgo+1)).Format(DateLayout)
}
