package csvroster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/gradebook/internal/domain"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "marks.csv")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadRoster_Valid(t *testing.T) {
	p := writeCSV(t, "name,mark\nAlice,78\nBob,92.5\n")

	roster, warnings, err := NewLoader().LoadRoster(p)
	if err != nil {
		t.Fatalf("LoadRoster error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}

	want := domain.Roster{
		{Name: "Alice", Mark: 78},
		{Name: "Bob", Mark: 92.5},
	}
	if diff := cmp.Diff(want, roster); diff != "" {
		t.Fatalf("roster mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRoster_MissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "absent.csv")

	_, _, err := NewLoader().LoadRoster(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindFile) {
		t.Fatalf("expected KindFile, got %v", err)
	}
}

func TestLoadRoster_FirstRowAlwaysSkipped(t *testing.T) {
	// Even a data-looking first row is treated as the header.
	p := writeCSV(t, "Zoe,99\nAlice,78\n")

	roster, _, err := NewLoader().LoadRoster(p)
	if err != nil {
		t.Fatalf("LoadRoster error: %v", err)
	}
	if len(roster) != 1 || roster[0].Name != "Alice" {
		t.Fatalf("expected only Alice, got %v", roster)
	}
}

func TestLoadRoster_SkipsMalformedRows(t *testing.T) {
	p := writeCSV(t, strings.Join([]string{
		"name,mark",
		"Alice,78",
		"NoMark",
		"Bob,abc",
		"Cara,120",
		"  ,50",
		"Dan,61",
	}, "\n")+"\n")

	roster, warnings, err := NewLoader().LoadRoster(p)
	if err != nil {
		t.Fatalf("LoadRoster error: %v", err)
	}

	want := domain.Roster{
		{Name: "Alice", Mark: 78},
		{Name: "Dan", Mark: 61},
	}
	if diff := cmp.Diff(want, roster); diff != "" {
		t.Fatalf("roster mismatch (-want +got):\n%s", diff)
	}

	if len(warnings) != 4 {
		t.Fatalf("expected 4 warnings, got %v", warnings)
	}
	wantLines := []int{3, 4, 5, 6}
	for i, w := range warnings {
		if w.Line != wantLines[i] {
			t.Fatalf("warning %d: expected line %d, got %d (%s)", i, wantLines[i], w.Line, w)
		}
		if w.Reason == "" {
			t.Fatalf("warning %d: expected a reason", i)
		}
	}
}

func TestLoadRoster_EmptyFile(t *testing.T) {
	p := writeCSV(t, "")

	_, _, err := NewLoader().LoadRoster(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindParse) {
		t.Fatalf("expected KindParse, got %v", err)
	}
}

func TestLoadRoster_HeaderOnly(t *testing.T) {
	p := writeCSV(t, "name,mark\n")

	_, warnings, err := NewLoader().LoadRoster(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindParse) {
		t.Fatalf("expected KindParse, got %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
}

func TestLoadRoster_AllRowsMalformed(t *testing.T) {
	p := writeCSV(t, "name,mark\nAlice,abc\nBob,\n")

	_, warnings, err := NewLoader().LoadRoster(p)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindParse) {
		t.Fatalf("expected KindParse, got %v", err)
	}
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", warnings)
	}
}

func TestLoadRoster_ExtraColumnsIgnored(t *testing.T) {
	// A previously exported name,mark,grade file imports cleanly.
	p := writeCSV(t, "name,mark,grade\nAlice,78,C\nBob,92,A\n")

	roster, warnings, err := NewLoader().LoadRoster(p)
	if err != nil {
		t.Fatalf("LoadRoster error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}

	want := domain.Roster{
		{Name: "Alice", Mark: 78},
		{Name: "Bob", Mark: 92},
	}
	if diff := cmp.Diff(want, roster); diff != "" {
		t.Fatalf("roster mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRoster_QuotedNames(t *testing.T) {
	p := writeCSV(t, "name,mark\n\"Smith, Jo\",88\n")

	roster, _, err := NewLoader().LoadRoster(p)
	if err != nil {
		t.Fatalf("LoadRoster error: %v", err)
	}
	if len(roster) != 1 || roster[0].Name != "Smith, Jo" {
		t.Fatalf("expected quoted name to survive, got %v", roster)
	}
}
