package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("COMMANDHANDLERS_LOG_NOCOLOR", "true")
	t.Setenv("COMMANDHANDLERS_LOG_TIMESTAMP", "false")

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunDispatchesSampleCommands(t *testing.T) {
	out, err := execute(t, "run")
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}

	for _, want := range []string{
		"add5(15)=20",
		"deactivate",
		"product_id=999",
		"seed=123",
		"reactivate",
		"id=212121",
		"username=Flerin",
		"dispatch summary",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDeactivateUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commandhandlers.toml")
	if err := os.WriteFile(path, []byte("[handlers]\ndeactivate_seed = 77\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := execute(t, "--config", path, "deactivate", "--product-id", "5", "--reason", "recall")
	if err != nil {
		t.Fatalf("deactivate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "seed=77") || !strings.Contains(out, "product_id=5") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "username=") {
		t.Fatalf("reactivate handler fired:\n%s", out)
	}
}

func TestReactivateUsesEnvOverride(t *testing.T) {
	t.Setenv("COMMANDHANDLERS_HANDLERS_REACTIVATE_USER", "ops")

	out, err := execute(t, "reactivate", "--id", "8")
	if err != nil {
		t.Fatalf("reactivate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "username=ops") || !strings.Contains(out, "id=8") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestDeactivateRequiresProductID(t *testing.T) {
	if _, err := execute(t, "deactivate"); err == nil {
		t.Fatalf("expected missing flag error")
	}
}

func TestVariants(t *testing.T) {
	out, err := execute(t, "variants")
	if err != nil {
		t.Fatalf("variants: %v", err)
	}
	want := "commands.DeactivateCommand\ncommands.ReactivateCommand\n"
	if out != want {
		t.Fatalf("variants output = %q, want %q", out, want)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if out != "commandhandlers version: dev\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestInvalidConfigFails(t *testing.T) {
	t.Setenv("COMMANDHANDLERS_TELEMETRY_ENABLED", "true")
	if _, err := execute(t, "run"); err == nil {
		t.Fatalf("expected validation error without telemetry endpoint")
	}
}
