package simdata

import (
	"sort"
	"strings"

	"github.com/matthieukhl/schemapilot/internal/clock"
)

// Row is a single result row keyed by column name.
type Row map[string]any

// Engine answers simplified query and analytics requests against an
// immutable dataset. The dataset is never mutated, so a single Engine can
// serve any number of concurrent callers.
type Engine struct {
	ds    *Dataset
	clock clock.Clock
	rules []queryRule
}

// queryRule pairs a predicate with a handler. Rules are evaluated in
// declaration order and the first match wins, which keeps the priority
// contract explicit and testable.
type queryRule struct {
	name    string
	match   func(q string) bool
	resolve func(q string, seed int) []Row
}

// NewEngine creates a query engine over a pre-built dataset.
func NewEngine(ds *Dataset, clk clock.Clock) *Engine {
	e := &Engine{ds: ds, clock: clk}
	e.rules = []queryRule{
		{
			// An explicit SELECT * over a known table is always a scan,
			// even when the table name collides with an aggregate keyword
			// ("select * from sales").
			name: "table-scan-explicit",
			match: func(q string) bool {
				return strings.Contains(q, "SELECT *") && matchTable(q) != ""
			},
			resolve: e.resolveTableScan,
		},
		{
			name: "total",
			match: func(q string) bool {
				return containsAny(q, "TOTAL", "SUM", "REVENUE", "SALES")
			},
			resolve: e.resolveTotal,
		},
		{
			name: "order-count",
			match: func(q string) bool {
				return strings.Contains(q, "COUNT") && strings.Contains(q, "ORDER")
			},
			resolve: e.resolveOrderCount,
		},
		{
			name:    "by-region",
			match:   func(q string) bool { return strings.Contains(q, "REGION") },
			resolve: e.resolveByRegion,
		},
		{
			name:    "by-category",
			match:   func(q string) bool { return strings.Contains(q, "CATEGORY") },
			resolve: e.resolveByCategory,
		},
		{
			name:    "table-scan",
			match:   func(q string) bool { return matchTable(q) != "" },
			resolve: e.resolveTableScan,
		},
	}
	return e
}

// Dataset returns the engine's underlying dataset.
func (e *Engine) Dataset() *Dataset {
	return e.ds
}

// Resolve runs a simplified query over the simulated data. The input can be
// an uppercase-folded SQL fragment or free-form intent text; an empty string
// falls through to the default total. The seed perturbs numeric output
// deterministically.
func (e *Engine) Resolve(text string, seed int64) []Row {
	q := strings.ToUpper(strings.TrimSpace(text))
	s := normSeed(seed, 1000)

	for _, rule := range e.rules {
		if rule.match(q) {
			return rule.resolve(q, s)
		}
	}

	// Default: total revenue inflated by 0-14%
	total := e.ds.TotalSales()
	return []Row{{"total": round2(total * (1 + float64(s%15)/100))}}
}

func (e *Engine) resolveTotal(q string, seed int) []Row {
	variance := 1 + float64(seed%21-10)/100 // 0.90 to 1.10
	return []Row{{"total": round2(e.ds.TotalSales() * variance)}}
}

func (e *Engine) resolveOrderCount(q string, seed int) []Row {
	return []Row{{"count": len(e.ds.Orders) + seed%7}}
}

func (e *Engine) resolveByRegion(q string, seed int) []Row {
	byRegion := e.ds.SalesByRegion()
	regions := sortedKeys(byRegion)

	rows := make([]Row, 0, len(regions))
	for _, r := range regions {
		variance := 1 + float64(Hash(r)%11-5)/100 // 0.95 to 1.05
		rows = append(rows, Row{"region": r, "total": round2(byRegion[r] * variance)})
	}
	return rows
}

func (e *Engine) resolveByCategory(q string, seed int) []Row {
	products := e.ds.ProductByID()
	byCategory := make(map[string]float64)
	for _, s := range e.ds.Sales {
		if p, ok := products[s.ProductID]; ok {
			byCategory[p.Category] += s.Amount
		}
	}

	rows := make([]Row, 0, len(byCategory))
	for _, c := range sortedKeys(byCategory) {
		rows = append(rows, Row{"category": c, "total": round2(byCategory[c])})
	}
	return rows
}

func (e *Engine) resolveTableScan(q string, seed int) []Row {
	rows := e.ds.Rows(matchTable(q))
	limit := 10 + seed%5
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// matchTable returns the first known table whose name appears in the folded
// text, in declaration order.
func matchTable(q string) string {
	for _, t := range TableNames {
		if strings.Contains(q, strings.ToUpper(t)) {
			return t
		}
	}
	return ""
}

func containsAny(q string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
