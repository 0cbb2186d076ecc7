package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseOrderIDs(t *testing.T) {
	ids, err := parseOrderIDs("10001, 10002")
	if err != nil {
		t.Fatalf("Failed to parse valid order IDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != 10001 || ids[1] != 10002 {
		t.Errorf("Expected [10001 10002], got %v", ids)
	}

	ids, err = parseOrderIDs("")
	if err != nil {
		t.Fatalf("Empty input should not error: %v", err)
	}
	if ids != nil {
		t.Errorf("Expected nil for empty input, got %v", ids)
	}

	if _, err := parseOrderIDs("10001,abc"); err == nil {
		t.Error("Expected error for non-numeric order ID, got none")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	content := "solve_time_limit: 30s\nhorizon_days: 7\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	fc, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("Failed to load config file: %v", err)
	}
	if fc.SolveTimeLimit != "30s" {
		t.Errorf("Expected solve_time_limit 30s, got %q", fc.SolveTimeLimit)
	}
	if fc.HorizonDays != 7 {
		t.Errorf("Expected horizon_days 7, got %d", fc.HorizonDays)
	}

	if _, err := loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for a missing config file, got none")
	}
}
