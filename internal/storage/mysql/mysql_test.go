package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
)

var (
	testDB      *sql.DB
	testStorage *Storage
)

// TestMain connects to the database named by TEST_MYSQL_DSN, for example
// root:@tcp(localhost:3306)/paint_quote_test?parseTime=true. Without it the
// storage tests are skipped.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		os.Exit(m.Run())
	}

	var err error
	testDB, err = sql.Open("mysql", dsn)
	if err != nil {
		panic(fmt.Errorf("open test db: %w", err))
	}

	if err := testDB.Ping(); err != nil {
		panic(fmt.Errorf("ping failed: %w", err))
	}

	testStorage = NewWithDB(testDB)
	if err := testStorage.Migrate(context.Background()); err != nil {
		panic(err)
	}

	code := m.Run()

	testDB.Close()
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_MYSQL_DSN not set")
	}

	for _, table := range []string{
		"custom_products", "custom_categories", "product_prices", "product_coverage",
		"area_configs", "project_rooms", "projects",
	} {
		if _, err := testDB.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("clean %s: %v", table, err)
		}
	}
}

func TestPlaceholders(t *testing.T) {
	cases := map[int]string{0: "", 1: "?", 3: "?,?,?"}
	for n, want := range cases {
		if got := placeholders(n); got != want {
			t.Errorf("placeholders(%d) = %q, want %q", n, got, want)
		}
	}
}
