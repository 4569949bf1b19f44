package postgres

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// newMockDB creates a sqlmock database with automatic cleanup and
// expectation checking.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unfulfilled expectations: %v", err)
		}
		db.Close()
	})
	return db, mock
}

// paramColumns is the column list of the backing table.
var paramColumns = []string{"id", "name", "description", "type_id", "value", "debugmode"}

func TestSelectWithConditionsNoFilter(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows(paramColumns).
		AddRow("app-one", "timeout", "", int64(2), "30", false).
		AddRow("app-two", "verbose", "", int64(4), "yes", true)
	mock.ExpectQuery(`SELECT \* FROM "public"\."nkinitvalues"`).WillReturnRows(rows)

	got, err := selectWithConditions(context.Background(), db, schemaName, tableName, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0]["id"] != "app-one" || got[1]["name"] != "verbose" {
		t.Fatalf("unexpected rows: %v", got)
	}
}

func TestSelectWithConditionsSortedClauses(t *testing.T) {
	db, mock := newMockDB(t)
	// Condition columns are sorted, so debugmode always binds before id.
	mock.ExpectQuery(`SELECT \* FROM "public"\."nkinitvalues" WHERE "debugmode" = \$1 AND "id" = \$2`).
		WithArgs(false, "nk-edoc-geocoding").
		WillReturnRows(sqlmock.NewRows(paramColumns))

	got, err := selectWithConditions(context.Background(), db, schemaName, tableName, map[string]any{
		"id":        "nk-edoc-geocoding",
		"debugmode": false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %d", len(got))
	}
}

func TestSelectWithConditionsDriverErrorUnchanged(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("relation does not exist")
	mock.ExpectQuery(`SELECT \* FROM "public"\."nkinitvalues"`).WillReturnError(boom)

	_, err := selectWithConditions(context.Background(), db, schemaName, tableName, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected driver error to pass through, got %v", err)
	}
}

func TestSelectWithConditionsByteValuesNormalized(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows(paramColumns).
		AddRow([]byte("app-one"), []byte("timeout"), []byte(""), int64(2), []byte("30"), false)
	mock.ExpectQuery(`SELECT \* FROM "public"\."nkinitvalues"`).WillReturnRows(rows)

	got, err := selectWithConditions(context.Background(), db, schemaName, tableName, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0]["value"] != "30" || got[0]["id"] != "app-one" {
		t.Fatalf("byte columns not normalized: %#v", got[0])
	}
}

func TestQueryAppNames(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows(paramColumns).
		AddRow("zulu-app", "a", "", int64(1), "x", false).
		AddRow("alpha-app", "b", "", int64(1), "y", false).
		AddRow("zulu-app", "c", "", int64(1), "z", true)
	mock.ExpectQuery(`SELECT \* FROM "public"\."nkinitvalues"`).WillReturnRows(rows)

	names, err := queryAppNames(context.Background(), db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"alpha-app", "zulu-app"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
}

func TestQueryAppRows(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows(paramColumns).
		AddRow("nk-edoc-geocoding", "timeout", "request timeout", int64(2), "30", true)
	mock.ExpectQuery(`SELECT \* FROM "public"\."nkinitvalues" WHERE "debugmode" = \$1 AND "id" = \$2`).
		WithArgs(true, "nk-edoc-geocoding").
		WillReturnRows(rows)

	got, err := queryAppRows(context.Background(), db, "nk-edoc-geocoding", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0]["name"] != "timeout" || got[0]["type_id"] != int64(2) {
		t.Fatalf("unexpected row: %#v", got[0])
	}
}

func TestStoreMethods(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewWithDB(db)

	mock.ExpectQuery(`SELECT \* FROM "public"\."nkinitvalues"`).
		WillReturnRows(sqlmock.NewRows(paramColumns).
			AddRow("alpha-app", "a", "", int64(1), "x", false))
	names, err := s.AppNames(context.Background())
	if err != nil {
		t.Fatalf("AppNames: %v", err)
	}
	if len(names) != 1 || names[0] != "alpha-app" {
		t.Fatalf("names = %v", names)
	}

	mock.ExpectQuery(`SELECT \* FROM "public"\."nkinitvalues" WHERE "debugmode" = \$1 AND "id" = \$2`).
		WithArgs(false, "alpha-app").
		WillReturnRows(sqlmock.NewRows(paramColumns).
			AddRow("alpha-app", "a", "", int64(1), "x", false))
	rows, err := s.Rows(context.Background(), "alpha-app", false)
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	mock.ExpectClose()
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
