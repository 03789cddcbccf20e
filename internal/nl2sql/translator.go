// Package nl2sql turns natural-language questions into templated SQL.
// Selection follows the same keyword priority as the query resolver: the
// first matching rule wins.
package nl2sql

import (
	"fmt"
	"strings"

	"github.com/matthieukhl/schemapilot/internal/simdata"
)

type rule struct {
	match func(q string) bool
	sql   func(q string) string
}

var rules = []rule{
	{
		match: func(q string) bool { return containsAny(q, "total", "revenue", "sales", "sum") },
		sql: func(q string) string {
			return "SELECT SUM(amount) AS total FROM sales WHERE sale_date >= CURRENT_DATE - INTERVAL '30 days';"
		},
	},
	{
		match: func(q string) bool { return strings.Contains(q, "count") && strings.Contains(q, "order") },
		sql: func(q string) string {
			return "SELECT COUNT(*) AS order_count FROM orders WHERE status != 'cancelled';"
		},
	},
	{
		match: func(q string) bool { return strings.Contains(q, "region") },
		sql: func(q string) string {
			return "SELECT region, SUM(amount) AS total FROM sales GROUP BY region ORDER BY total DESC;"
		},
	},
	{
		match: func(q string) bool { return strings.Contains(q, "category") },
		sql: func(q string) string {
			return "SELECT p.category, SUM(oi.amount) AS total FROM order_items oi JOIN products p ON oi.product_id = p.id GROUP BY p.category;"
		},
	},
	{
		match: func(q string) bool { return strings.Contains(q, "customer") },
		sql: func(q string) string {
			return "SELECT c.name, c.region, COUNT(o.id) AS orders FROM customers c LEFT JOIN orders o ON c.id = o.customer_id GROUP BY c.id, c.name, c.region;"
		},
	},
	{
		match: func(q string) bool { return containsAny(q, "inventory", "stock") },
		sql: func(q string) string {
			return "SELECT p.name, i.quantity, i.warehouse FROM inventory i JOIN products p ON i.product_id = p.id WHERE i.quantity > 0;"
		},
	},
}

// Translate returns a simulated SQL statement for a natural-language
// question. The default statement varies its LIMIT by a stable hash of the
// question so repeated calls stay deterministic.
func Translate(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))

	for _, r := range rules {
		if r.match(q) {
			return r.sql(q)
		}
	}

	h := simdata.Hash(q) % 1000
	return fmt.Sprintf("SELECT * FROM sales ORDER BY sale_date DESC LIMIT %d;", 10+h%5)
}

func containsAny(q string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
