package reservation_test

import (
	"os"
	"testing"

	"github.com/m04kA/SMC-GarageService/testutil"
)

// TestMain applies migrations once for the package when a test database is configured.
func TestMain(m *testing.M) {
	os.Exit(testutil.RunMain(m))
}
