// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text and logfmt formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Sorted fields, coded error details

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/ippcode/foundation/core/error"
)

func testEntry() *Entry {
	entry := NewEntry(LevelWarn, "analysis rejected")
	entry.Timestamp = time.Date(2026, 10, 16, 12, 30, 0, 0, time.UTC)
	entry.Logger = "parser"
	entry.CorrelationID = "run-1"
	entry.Fields["line"] = 7
	entry.Fields["opcode"] = "MOVE"
	return entry
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "json"},
		{FormatText, "text"},
		{FormatLogfmt, "logfmt"},
		{Format(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("String() = %v, want %v", got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"logfmt", FormatLogfmt, false},
		{"console", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	out, err := NewJSONFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("Format() produced invalid JSON: %v", err)
	}

	want := map[string]interface{}{
		"level":          "warn",
		"message":        "analysis rejected",
		"logger":         "parser",
		"correlation_id": "run-1",
		"opcode":         "MOVE",
		"line":           float64(7),
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %v", k, data[k], v)
		}
	}
}

func TestJSONFormatter_CodedError(t *testing.T) {
	entry := testEntry()
	entry.Error = mdwerror.NewWithCode(mdwerror.CodeHeader, "missing header")

	out, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	details, ok := data["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing in %s", out)
	}
	if details["code"] != "HEADER" {
		t.Errorf("error_details.code = %v, want HEADER", details["code"])
	}
	if _, ok := details["stack_trace"]; ok {
		t.Error("error_details should not include the stack trace")
	}
}

func TestTextFormatter_Format(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "12:30:00 [WRN] {parser} (run=run-1) analysis rejected [line=7 opcode=MOVE]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestTextFormatter_DisableTimestamp(t *testing.T) {
	formatter := NewTextFormatter()
	formatter.DisableTimestamp = true

	entry := NewEntry(LevelInfo, "plain")
	entry.Error = errors.New("cause")

	out, _ := formatter.Format(entry)
	if string(out) != "[INF] plain error=\"cause\"\n" {
		t.Errorf("Format() = %q", out)
	}
}

func TestLogfmtFormatter_Format(t *testing.T) {
	out, err := NewLogfmtFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `timestamp=2026-10-16T12:30:00Z level=warn message="analysis rejected" logger=parser correlation_id=run-1 line=7 opcode="MOVE"` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "*log.JSONFormatter"},
		{FormatText, "*log.TextFormatter"},
		{FormatLogfmt, "*log.LogfmtFormatter"},
		{Format(9), "*log.TextFormatter"},
	}

	for _, tt := range tests {
		got := GetFormatter(tt.format)
		var name string
		switch got.(type) {
		case *JSONFormatter:
			name = "*log.JSONFormatter"
		case *TextFormatter:
			name = "*log.TextFormatter"
		case *LogfmtFormatter:
			name = "*log.LogfmtFormatter"
		}
		if name != tt.want {
			t.Errorf("GetFormatter(%v) = %s, want %s", tt.format, name, tt.want)
		}
	}
}

func BenchmarkTextFormatter_Format(b *testing.B) {
	formatter := NewTextFormatter()
	entry := testEntry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		formatter.Format(entry)
	}
}
