package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOpenDailyLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	now := time.Date(2025, 2, 3, 15, 0, 0, 0, time.UTC)

	f, err := OpenDailyLogFile(dir, now)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.WriteString("first\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	// mở lại phải ghi nối chứ không ghi đè
	f, err = OpenDailyLogFile(dir, now)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	f.WriteString("second\n")
	f.Close()

	data, err := os.ReadFile(filepath.Join(dir, "app-2025-02-03.log"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("content = %q", data)
	}
}
