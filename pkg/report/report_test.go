package report

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestReportAppend(t *testing.T) {
	r := New("meets/wrpf/bob3/meet.csv")
	r.Error("first")
	r.RowWarning(3, "Date", "second")
	r.RowError(4, "MeetState", "third")

	messages := r.Messages()
	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}
	if messages[0].Text != "first" || messages[1].Text != "second" || messages[2].Text != "third" {
		t.Error("Messages must preserve append order")
	}

	for _, m := range messages {
		if m.Location.File != "meets/wrpf/bob3/meet.csv" {
			t.Errorf("Message not stamped with owning path: %q", m.Location.File)
		}
	}
	if messages[0].Location.Row != 0 {
		t.Error("File-level message should have no row")
	}
	if messages[1].Location.Row != 3 || messages[1].Location.Col != "Date" {
		t.Errorf("Unexpected location %+v", messages[1].Location)
	}
}

func TestCountMessages(t *testing.T) {
	r := New("meet.csv")
	if errs, warns := r.CountMessages(); errs != 0 || warns != 0 {
		t.Errorf("Fresh report should count (0, 0), got (%d, %d)", errs, warns)
	}

	r.Error("a")
	r.Warning("b")
	r.RowError(2, "", "c")

	errs, warns := r.CountMessages()
	if errs != 2 || warns != 1 {
		t.Errorf("Expected (2, 1), got (%d, %d)", errs, warns)
	}

	// Counting is a pure fold; the log is untouched.
	if len(r.Messages()) != 3 {
		t.Error("CountMessages must not clear the log")
	}
}

func TestHasErrors(t *testing.T) {
	r := New("meet.csv")
	r.Warning("advisory")
	if r.HasErrors() {
		t.Error("Warnings alone must not count as errors")
	}
	r.Error("violation")
	if !r.HasErrors() {
		t.Error("Expected HasErrors after an error")
	}
}

func TestFormatText(t *testing.T) {
	r := New("meet.csv")
	r.RowError(2, "MeetCountry", "invalid MeetCountry \"XXX\"")
	r.Warning("old date")

	out := FormatText(r)
	if !strings.Contains(out, "[ERROR] meet.csv:2 (MeetCountry)") {
		t.Errorf("Missing error line in output:\n%s", out)
	}
	if !strings.Contains(out, "[WARNING]") {
		t.Errorf("Missing warning line in output:\n%s", out)
	}
	if !strings.Contains(out, "1 errors, 1 warnings") {
		t.Errorf("Missing summary line in output:\n%s", out)
	}
}

func TestFormatJSON(t *testing.T) {
	r := New("meet.csv")
	r.RowError(2, "Date", "invalid Date")

	data, err := FormatJSON(r)
	if err != nil {
		t.Fatalf("FormatJSON failed: %v", err)
	}

	var decoded struct {
		File     string `json:"file"`
		Errors   int    `json:"errors"`
		Warnings int    `json:"warnings"`
		Messages []struct {
			Severity string `json:"severity"`
			Row      int    `json:"row"`
			Col      string `json:"col"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.File != "meet.csv" || decoded.Errors != 1 || decoded.Warnings != 0 {
		t.Errorf("Unexpected summary: %+v", decoded)
	}
	if len(decoded.Messages) != 1 || decoded.Messages[0].Severity != "error" || decoded.Messages[0].Row != 2 {
		t.Errorf("Unexpected messages: %+v", decoded.Messages)
	}
}
