package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// IsolateEnv points HOME at a fresh directory, clears STRGUARD_LOG_LEVEL,
// and changes into an empty working directory so no user or project config
// is picked up. It returns the working directory.
func IsolateEnv(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("STRGUARD_LOG_LEVEL", "")
	t.Chdir(base)
	return base
}
