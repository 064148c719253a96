package check

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/coolbeans/meetcheck/pkg/geo"
	"github.com/coolbeans/meetcheck/pkg/report"
)

// meetHeaders is the exact header contract for meet.csv: these columns, in
// this order, with this spelling. Unlike the entries schema, meet.csv does
// not tolerate reordering: the column set is closed and positional.
var meetHeaders = []string{"Federation", "Date", "MeetCountry", "MeetState", "MeetTown", "MeetName"}

// CheckMeet validates one meet.csv against the schema, recording every
// finding in r. Validation never aborts on the first defect: a file with N
// independent problems yields at least N messages from a single pass, and
// row checks proceed best-effort against whatever recognized columns the
// header declared even when the header itself is in error.
func CheckMeet(rows RowReader, r *report.Report, rules *Rules) {
	header, err := rows.Read()
	if err == io.EOF {
		r.Error("empty file: missing header row")
		return
	}
	if err != nil {
		r.Error(fmt.Sprintf("unreadable header row: %v", err))
		return
	}

	columns := checkMeetHeader(header, r)

	row := 1
	for {
		fields, err := rows.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			// A stream that cannot yield rows is the row source's
			// failure; record it and stop consuming.
			r.RowError(row, "", fmt.Sprintf("unreadable row: %v", err))
			break
		}
		checkMeetRow(fields, row, len(header), columns, r, rules)
	}
}

// checkMeetHeader enforces the positional header contract and returns the
// positions of every recognized column so row validation can continue
// best-effort after a header error.
func checkMeetHeader(header []string, r *report.Report) map[string]int {
	if len(header) != len(meetHeaders) {
		r.RowError(1, "", fmt.Sprintf("expected %d columns, found %d", len(meetHeaders), len(header)))
	}

	limit := len(header)
	if limit > len(meetHeaders) {
		limit = len(meetHeaders)
	}
	for i := 0; i < limit; i++ {
		if header[i] != meetHeaders[i] {
			r.RowError(1, "", fmt.Sprintf("column %d is %q, expected %q", i+1, header[i], meetHeaders[i]))
		}
	}

	columns := make(map[string]int, len(meetHeaders))
	for i, cell := range header {
		for _, name := range meetHeaders {
			if cell == name {
				if _, seen := columns[name]; !seen {
					columns[name] = i
				}
				break
			}
		}
	}
	return columns
}

// checkMeetRow validates one data row field by field.
func checkMeetRow(fields []string, row, headerLen int, columns map[string]int, r *report.Report, rules *Rules) {
	if len(fields) != headerLen {
		r.RowError(row, "", fmt.Sprintf("row has %d fields, expected %d", len(fields), headerLen))
	}

	fieldAt := func(name string) (string, bool) {
		idx, ok := columns[name]
		if !ok || idx >= len(fields) {
			return "", false
		}
		return fields[idx], true
	}

	if federation, ok := fieldAt("Federation"); ok {
		checkFederation(federation, row, r, rules)
	}
	if date, ok := fieldAt("Date"); ok {
		checkDate(date, row, r, rules)
	}

	country, countryOK := geo.Country(0), false
	if value, ok := fieldAt("MeetCountry"); ok {
		country, countryOK = checkCountry(value, row, r)
	}
	if value, ok := fieldAt("MeetState"); ok && value != "" {
		// State is keyed by the row's country; with an unparseable
		// country the state cannot be interpreted, and the country
		// error already covers the row.
		if countryOK {
			checkState(value, country, row, r)
		}
	}

	if town, ok := fieldAt("MeetTown"); ok && town != "" {
		checkText("MeetTown", town, row, r)
	}
	if name, ok := fieldAt("MeetName"); ok {
		if name == "" {
			r.RowError(row, "MeetName", "MeetName is empty")
		} else {
			checkText("MeetName", name, row, r)
		}
	}
}

// checkFederation validates a federation code: required, restricted
// charset, and a member of the configured federation list when one exists.
func checkFederation(value string, row int, r *report.Report, rules *Rules) {
	if value == "" {
		r.RowError(row, "Federation", "Federation is empty")
		return
	}
	for i := 0; i < len(value); i++ {
		b := value[i]
		switch {
		case b >= 'a' && b <= 'z':
		case b >= 'A' && b <= 'Z':
		case b >= '0' && b <= '9':
		case b == '-':
		default:
			r.RowError(row, "Federation", fmt.Sprintf("invalid Federation %q", value))
			return
		}
	}
	if !rules.KnownFederation(value) {
		r.RowError(row, "Federation", fmt.Sprintf("unknown federation %q", value))
	}
}

// checkDate validates the exact YYYY-MM-DD date grammar. Implausible but
// well-formed dates draw warnings, not errors.
func checkDate(value string, row int, r *report.Report, rules *Rules) {
	if value == "" {
		r.RowError(row, "Date", "Date is empty")
		return
	}
	if len(value) != 10 || value[4] != '-' || value[7] != '-' {
		r.RowError(row, "Date", fmt.Sprintf("Date %q must have format YYYY-MM-DD", value))
		return
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		r.RowError(row, "Date", fmt.Sprintf("invalid Date %q", value))
		return
	}
	if date.Year() < rules.MinYear {
		r.RowWarning(row, "Date", fmt.Sprintf("Date %q is before %d", value, rules.MinYear))
	}
	if date.After(time.Now().AddDate(1, 0, 0)) {
		r.RowWarning(row, "Date", fmt.Sprintf("Date %q is more than a year in the future", value))
	}
}

// checkCountry parses the MeetCountry field against the closed Country
// enumeration.
func checkCountry(value string, row int, r *report.Report) (geo.Country, bool) {
	if value == "" {
		r.RowError(row, "MeetCountry", "MeetCountry is empty")
		return 0, false
	}
	country, err := geo.ParseCountry(value)
	if err != nil {
		r.RowError(row, "MeetCountry", fmt.Sprintf("invalid MeetCountry %q", value))
		return 0, false
	}
	return country, true
}

// checkState parses the MeetState field against the subdivision enumeration
// of the row's already-parsed country.
func checkState(value string, country geo.Country, row int, r *report.Report) {
	if _, err := geo.FromStrAndCountry(value, country); err != nil {
		r.RowError(row, "MeetState", fmt.Sprintf("invalid MeetState %q for MeetCountry %s", value, country))
	}
}

// checkText validates free-text fields: clean surrounding whitespace, no
// doubled interior spaces, no control bytes.
func checkText(col, value string, row int, r *report.Report) {
	if strings.TrimSpace(value) != value {
		r.RowError(row, col, fmt.Sprintf("%s %q has surrounding whitespace", col, value))
		return
	}
	if strings.Contains(value, "  ") {
		r.RowError(row, col, fmt.Sprintf("%s %q has doubled whitespace", col, value))
		return
	}
	for _, c := range value {
		if c < 0x20 || c == 0x7f {
			r.RowError(row, col, fmt.Sprintf("%s contains a control character", col))
			return
		}
	}
}
