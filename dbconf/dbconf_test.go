package dbconf

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeINI(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.ini")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write ini: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeINI(t, `[postgresql]
host = localhost
port = 5432
dbname = initvals
user = reader
password = hunter2
`)

	params, err := Load(path, "postgresql")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]string{
		"host": "localhost", "port": "5432", "dbname": "initvals",
		"user": "reader", "password": "hunter2",
	}
	for k, v := range want {
		if params[k] != v {
			t.Errorf("params[%q] = %q, want %q", k, params[k], v)
		}
	}
	if len(params) != len(want) {
		t.Errorf("got %d params, want %d: %v", len(params), len(want), params)
	}
}

func TestLoadMissingSection(t *testing.T) {
	path := writeINI(t, "[postgresql]\nhost = localhost\n")

	_, err := Load(path, "staging")
	var secErr *SectionError
	if !errors.As(err, &secErr) {
		t.Fatalf("expected *SectionError, got %v", err)
	}
	if secErr.Section != "staging" || secErr.File != path {
		t.Errorf("error = %+v", secErr)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ini"), "postgresql")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestDSN(t *testing.T) {
	got := DSN(map[string]string{
		"user":     "reader",
		"host":     "localhost",
		"password": "p w'd",
		"dbname":   "initvals",
	})
	want := `dbname=initvals host=localhost password='p w\'d' user=reader`
	if got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}

func TestDSNEmptyValue(t *testing.T) {
	if got := DSN(map[string]string{"password": ""}); got != "password=''" {
		t.Errorf("DSN = %q, want password=''", got)
	}
}
