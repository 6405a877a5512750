package migrate

import "testing"

func TestRunEmptyDSN(t *testing.T) {
	if err := Run("", "up"); err == nil {
		t.Fatal("Run with empty DSN succeeded")
	}
}

func TestRunInvalidDirection(t *testing.T) {
	for _, dir := range []string{"", "sideways", "UP", "Down"} {
		if err := Run("postgres://localhost:5432/orders", dir); err == nil {
			t.Errorf("Run(%q) succeeded, want direction error", dir)
		}
	}
}
