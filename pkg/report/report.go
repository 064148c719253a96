// Package report collects validation diagnostics for one validation unit
// (one file or one record set). A Report is an append-only log: messages
// are never dropped, edited, or reordered, and the validator that owns the
// Report is the only writer during a run. Callers read the log and the
// error/warning counts after validation completes.
package report

// Severity classifies a message. Errors make a file non-conforming;
// warnings are advisory and never change the pass/fail outcome.
type Severity int

const (
	// SeverityError marks a schema or grammar violation.
	SeverityError Severity = iota

	// SeverityWarning marks something suspicious but not disqualifying.
	SeverityWarning
)

// String returns "error" or "warning".
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Location identifies where a message originates. File is always set from
// the Report's owning path. Row is 1-based with the header as row 1; zero
// means the message applies to the whole file. Col names the offending
// column when known.
type Location struct {
	File string
	Row  int
	Col  string
}

// Message is a single immutable diagnostic entry.
type Message struct {
	Severity Severity
	Location Location
	Text     string
}

// Report is the append-only diagnostic log for one validation unit.
type Report struct {
	path     string
	messages []Message
}

// New creates an empty Report owning the given file path. The path stamps
// every message's location.
func New(path string) *Report {
	return &Report{path: path}
}

// Path returns the originating file path.
func (r *Report) Path() string {
	return r.path
}

// Error appends a file-level error.
func (r *Report) Error(text string) {
	r.push(SeverityError, 0, "", text)
}

// Warning appends a file-level warning.
func (r *Report) Warning(text string) {
	r.push(SeverityWarning, 0, "", text)
}

// RowError appends an error attributed to a row and, optionally, a column.
func (r *Report) RowError(row int, col, text string) {
	r.push(SeverityError, row, col, text)
}

// RowWarning appends a warning attributed to a row and, optionally, a column.
func (r *Report) RowWarning(row int, col, text string) {
	r.push(SeverityWarning, row, col, text)
}

func (r *Report) push(severity Severity, row int, col, text string) {
	r.messages = append(r.messages, Message{
		Severity: severity,
		Location: Location{File: r.path, Row: row, Col: col},
		Text:     text,
	})
}

// Messages returns the log in append order. The returned slice must not be
// modified.
func (r *Report) Messages() []Message {
	return r.messages
}

// CountMessages folds the log into (errors, warnings). It does not clear
// the log.
func (r *Report) CountMessages() (errors, warnings int) {
	for _, m := range r.messages {
		switch m.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// HasErrors reports whether at least one error has been recorded.
func (r *Report) HasErrors() bool {
	for _, m := range r.messages {
		if m.Severity == SeverityError {
			return true
		}
	}
	return false
}
