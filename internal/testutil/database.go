package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the MySQL test database. Tests using it are skipped
// when no MySQL instance is reachable at localhost:3306.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/sapbridge_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB removes all rows written by a test and closes the handle.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"SalesOrderItems", "SalesOrders"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the sales-order tables used by the MySQL repository.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS SalesOrders (
		salesOrderNumber VARCHAR(10) NOT NULL PRIMARY KEY,
		orderDate DATETIME(6) NOT NULL,
		customerCode VARCHAR(50) NOT NULL,
		customerName VARCHAR(150) NOT NULL,
		totalAmount DECIMAL(15,2) NOT NULL DEFAULT 0.00,
		currency VARCHAR(5) NOT NULL,
		status VARCHAR(20) NOT NULL
	)`

	createItemsTable := `
	CREATE TABLE IF NOT EXISTS SalesOrderItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		salesOrderNumber VARCHAR(10) NOT NULL,
		itemNumber INT NOT NULL,
		materialCode VARCHAR(50) NOT NULL,
		materialDescription VARCHAR(255),
		quantity INT NOT NULL,
		unitPrice DECIMAL(15,2) NOT NULL,
		totalPrice DECIMAL(15,2) NOT NULL,
		unit VARCHAR(10) NOT NULL DEFAULT 'UN',
		FOREIGN KEY (salesOrderNumber) REFERENCES SalesOrders(salesOrderNumber) ON DELETE CASCADE,
		INDEX idx_order (salesOrderNumber)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"SalesOrders", createOrdersTable},
		{"SalesOrderItems", createItemsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
