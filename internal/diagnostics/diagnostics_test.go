package diagnostics

import (
	"bytes"
	"testing"
)

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{"full", Diagnostic{Line: 4, TagName: "mj-text", Message: "Attribute colr is illegal"}, "line 4, mj-text: Attribute colr is illegal"},
		{"no line", Diagnostic{TagName: "mj-body", Message: "empty"}, "mj-body: empty"},
		{"no tag", Diagnostic{Line: 2, Message: "bad"}, "line 2: bad"},
		{"message only", Diagnostic{Message: "bad"}, "bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	diags := []Diagnostic{
		{Severity: SeverityError, Line: 3, TagName: "mj-text", Message: "Attribute colr is illegal"},
		{Severity: SeverityWarning, Message: "unknown"},
	}

	if err := Report(&buf, diags); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	want := "MJML Errors:\n  1. line 3, mj-text: Attribute colr is illegal\n  2. unknown\n"
	if buf.String() != want {
		t.Errorf("Report() wrote %q, want %q", buf.String(), want)
	}
}

func TestReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Report(&buf, nil); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Report(nil) wrote %q, want nothing", buf.String())
	}
	if Format(nil) != "" {
		t.Errorf("Format(nil) = %q, want empty", Format(nil))
	}
}
