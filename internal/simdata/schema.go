package simdata

import (
	"fmt"
	"strings"
)

// Known table names in declaration order. Order matters for the resolver's
// table scan rule.
const (
	TableCustomers  = "customers"
	TableProducts   = "products"
	TableOrders     = "orders"
	TableOrderItems = "order_items"
	TableSales      = "sales"
	TableInventory  = "inventory"
)

// TableNames lists the known tables in declaration order.
var TableNames = []string{TableCustomers, TableProducts, TableOrders, TableOrderItems, TableSales, TableInventory}

// TableColumns maps each table to its one-line column summary.
var TableColumns = map[string]string{
	TableCustomers:  "customers(id, name, region, created_at)",
	TableProducts:   "products(id, name, category, unit_price)",
	TableOrders:     "orders(id, customer_id, order_date, status)",
	TableOrderItems: "order_items(id, order_id, product_id, quantity, unit_price, amount)",
	TableSales:      "sales(id, order_id, product_id, amount, sale_date, region)",
	TableInventory:  "inventory(id, product_id, quantity, warehouse, updated_at)",
}

const schemaDDL = `
-- ERP Schema (simulated)

CREATE TABLE customers (
  id INTEGER PRIMARY KEY,
  name VARCHAR(100),
  region VARCHAR(50),
  created_at DATE
);

CREATE TABLE products (
  id INTEGER PRIMARY KEY,
  name VARCHAR(100),
  category VARCHAR(50),
  unit_price DECIMAL(10,2)
);

CREATE TABLE orders (
  id INTEGER PRIMARY KEY,
  customer_id INTEGER REFERENCES customers(id),
  order_date DATE,
  status VARCHAR(20)
);

CREATE TABLE order_items (
  id INTEGER PRIMARY KEY,
  order_id INTEGER REFERENCES orders(id),
  product_id INTEGER REFERENCES products(id),
  quantity INTEGER,
  unit_price DECIMAL(10,2),
  amount DECIMAL(12,2)
);

CREATE TABLE sales (
  id INTEGER PRIMARY KEY,
  order_id INTEGER,
  product_id INTEGER,
  amount DECIMAL(12,2),
  sale_date DATE,
  region VARCHAR(50)
);

CREATE TABLE inventory (
  id INTEGER PRIMARY KEY,
  product_id INTEGER,
  quantity INTEGER,
  warehouse VARCHAR(50),
  updated_at DATE
);
`

// SchemaText returns the full DDL description of the simulated schema.
func SchemaText() string {
	return strings.TrimSpace(schemaDDL)
}

// SchemaSnippet returns a one-line column summary for a known table,
// falling back to the full schema text otherwise. Matching is exact and
// case-sensitive.
func SchemaSnippet(table string) string {
	if cols, ok := TableColumns[table]; ok {
		return fmt.Sprintf("Table: %s", cols)
	}
	return SchemaText()
}
