package migrations

import (
	"io"
	"strings"
	"testing"
)

func TestEmbeddedMigrations(t *testing.T) {
	d, err := Source()
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	defer d.Close()

	version, err := d.First()
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if version != 1 {
		t.Errorf("first version = %d, want 1", version)
	}

	r, _, err := d.ReadUp(version)
	if err != nil {
		t.Fatalf("read up: %v", err)
	}
	defer r.Close()
	body, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS sales",
		"CREATE TABLE IF NOT EXISTS countries",
		`CREATE UNIQUE INDEX IF NOT EXISTS sales_id_order_key ON sales ("ID_ORDER")`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("up migration missing %q", want)
		}
	}

	down, _, err := d.ReadDown(version)
	if err != nil {
		t.Fatalf("read down: %v", err)
	}
	down.Close()
}
