package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yml")}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default, since cobra binds them to
// package variables that outlive a single Execute.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "zodiac ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestDailyJSON(t *testing.T) {
	out, err := run(t, "daily", "leo", "--date", "2026-10-14", "--locale", "de", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("not JSON: %v\n%s", err, out)
	}
	if got["sign_name"] != "Löwe" || got["key"] != "2026-10-14" {
		t.Errorf("unexpected reading %v", got)
	}
}

func TestFlagsDoNotCarryOver(t *testing.T) {
	if _, err := run(t, "daily", "leo", "--date", "2026-10-14", "--json"); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "daily", "leo", "--date", "2026-10-14")
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if json.Unmarshal([]byte(out), &got) == nil {
		t.Errorf("expected text output, got JSON %q", out)
	}
}

func TestDailyRejectsUnknownSign(t *testing.T) {
	if _, err := run(t, "daily", "ophiuchus", "--json"); err == nil {
		t.Error("expected error for unknown sign")
	}
}

func TestCompat(t *testing.T) {
	out, err := run(t, "compat", "leo", "sagittarius", "--locale", "en")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Overall 90") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestExportWritesFiles(t *testing.T) {
	out := t.TempDir()
	if _, err := run(t, "export", "--out", out, "--from", "2026-10-14", "--days", "1", "--locales", "en"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(out, "en", "2026-10-14", "pisces.json")); err != nil {
		t.Errorf("expected exported reading: %v", err)
	}
}
