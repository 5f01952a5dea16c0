package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aalvaropc/gradebook/internal/domain"
)

// --- requireInput ---

func TestRequireInput(t *testing.T) {
	cases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"marks.csv", "marks.csv", false},
		{"  marks.csv  ", "marks.csv", false},
		{"", "", true},
		{"   ", "", true},
	}
	for _, c := range cases {
		got, err := requireInput(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("requireInput(%q): expected error", c.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("requireInput(%q): unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("requireInput(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

// --- printReport ---

func analysisFixture(t *testing.T) domain.Analysis {
	t.Helper()
	roster := domain.Roster{
		{Name: "Alice", Mark: 78},
		{Name: "Bob", Mark: 92},
	}
	a, err := domain.Analyze(roster, domain.DefaultScale())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return a
}

func TestPrintReport_JSON_ValidOutput(t *testing.T) {
	a := analysisFixture(t)

	var buf bytes.Buffer
	if err := printReport(&buf, a, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	rows, ok := payload["Rows"].([]any)
	if !ok || len(rows) != 2 {
		t.Errorf("expected 2 rows in JSON output, got %v", payload["Rows"])
	}
	if payload["Summary"] == nil {
		t.Error("expected 'Summary' key in JSON output")
	}
	if payload["Distribution"] == nil {
		t.Error("expected 'Distribution' key in JSON output")
	}
}

func TestPrintReport_Pretty_ContainsTable(t *testing.T) {
	a := analysisFixture(t)

	var buf bytes.Buffer
	if err := printReport(&buf, a, "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Alice") {
		t.Errorf("expected student name in pretty output, got:\n%s", out)
	}
	if !strings.Contains(out, "Students: 2") {
		t.Errorf("expected stats block in pretty output, got:\n%s", out)
	}
}

func TestPrintReport_EmptyFormat_IsPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, analysisFixture(t), ""); err != nil {
		t.Fatalf("empty format should behave like pretty, got error: %v", err)
	}
}

func TestPrintReport_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := printReport(&buf, domain.Analysis{}, "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Use] = true
	}
	for _, expected := range []string{"report", "export", "validate", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestReportCmd_Flags(t *testing.T) {
	cmd := reportCmd()
	if cmd.Use != "report" {
		t.Errorf("expected Use=report, got %q", cmd.Use)
	}
	for _, flag := range []string{"input", "format"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on report command", flag)
		}
	}
}

func TestExportCmd_Flags(t *testing.T) {
	cmd := exportCmd()
	if cmd.Use != "export" {
		t.Errorf("expected Use=export, got %q", cmd.Use)
	}
	for _, flag := range []string{"input", "out"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on export command", flag)
		}
	}
}

func TestValidateCmd_Flags(t *testing.T) {
	cmd := validateCmd()
	if cmd.Use != "validate" {
		t.Errorf("expected Use=validate, got %q", cmd.Use)
	}
	if cmd.Flags().Lookup("input") == nil {
		t.Error("expected --input flag on validate command")
	}
}

func TestRootCmd_DebugFlag(t *testing.T) {
	cmd := newRootCmd()
	if cmd.PersistentFlags().Lookup("debug") == nil {
		t.Error("expected --debug persistent flag on root command")
	}
}

// --- services wiring ---

func TestNewServices_Wired(t *testing.T) {
	svc := newServices()
	if svc.importer == nil || svc.validator == nil || svc.exporter == nil {
		t.Error("expected all use cases to be wired")
	}
}
