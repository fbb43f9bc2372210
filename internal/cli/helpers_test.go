package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir  string // HOME: holds .cogmd/config.yaml
	CogmdDir string // COGMD_HOME: anchors .cogmd/extensions
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so every command is sandboxed. Global command state is reset as well.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:  t.TempDir(),
		CogmdDir: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("USERPROFILE", env.HomeDir)
	t.Setenv("COGMD_HOME", env.CogmdDir)
	t.Setenv("COGMD_LOG_LEVEL", "")
	t.Setenv("COGMD_EXTENSIONS_DIR", "")

	viper.Reset()
	resetFlags()
	t.Cleanup(func() {
		viper.Reset()
		resetFlags()
	})

	return env
}

// resetFlags restores every package-level flag variable to its default.
// Cobra keeps parsed values between Execute calls on the same command tree.
func resetFlags() {
	logLevel = ""
	logger = log.New(io.Discard)
	installSHA256 = ""
	installOutput = outputText
	inspectValidate = false
	inspectOutput = outputText
	listOutput = outputText
	versionShort = false
	versionOutput = outputText
	configListOutput = outputText
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertContains fails if s doesn't contain substr.
func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("output does not contain %q.\nOutput:\n%s", substr, s)
	}
}
