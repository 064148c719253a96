package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// jsonMessage is the JSON view of a Message, with the severity spelled out.
type jsonMessage struct {
	Severity string `json:"severity"`
	File     string `json:"file"`
	Row      int    `json:"row,omitempty"`
	Col      string `json:"col,omitempty"`
	Text     string `json:"text"`
}

// jsonReport is the JSON view of a Report.
type jsonReport struct {
	File     string        `json:"file"`
	Errors   int           `json:"errors"`
	Warnings int           `json:"warnings"`
	Messages []jsonMessage `json:"messages"`
}

// FormatText renders a report for terminal output: one line per message,
// prefixed with severity and location.
func FormatText(r *Report) string {
	var builder strings.Builder

	for _, m := range r.Messages() {
		builder.WriteString(fmt.Sprintf("  [%s] %s", strings.ToUpper(m.Severity.String()), m.Location.File))
		if m.Location.Row > 0 {
			builder.WriteString(fmt.Sprintf(":%d", m.Location.Row))
		}
		if m.Location.Col != "" {
			builder.WriteString(fmt.Sprintf(" (%s)", m.Location.Col))
		}
		builder.WriteString(": " + m.Text + "\n")
	}

	errs, warns := r.CountMessages()
	builder.WriteString(fmt.Sprintf("  %d errors, %d warnings\n", errs, warns))

	return builder.String()
}

// FormatJSON renders a report as indented JSON for CI consumption.
func FormatJSON(r *Report) ([]byte, error) {
	errs, warns := r.CountMessages()
	out := jsonReport{
		File:     r.Path(),
		Errors:   errs,
		Warnings: warns,
		Messages: make([]jsonMessage, 0, len(r.Messages())),
	}
	for _, m := range r.Messages() {
		out.Messages = append(out.Messages, jsonMessage{
			Severity: m.Severity.String(),
			File:     m.Location.File,
			Row:      m.Location.Row,
			Col:      m.Location.Col,
			Text:     m.Text,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
