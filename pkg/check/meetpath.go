package check

import (
	"fmt"
	"path/filepath"

	"github.com/coolbeans/meetcheck/pkg/report"
)

// MeetPathFromFile derives the meet path (the record-set identifier) from
// the path to its meet.csv file: the base name of the parent directory.
func MeetPathFromFile(file string) string {
	return filepath.Base(filepath.Dir(file))
}

// CheckMeetPath validates the meet path derived from the report's owning
// file against the naming convention: non-empty, ASCII letters, digits,
// and hyphens only. Anything else, including whitespace and any non-ASCII
// byte, is a violation. The check is byte-wise, so multi-byte text fails
// even when it renders as ordinary letters. At most one error is recorded
// per call.
func CheckMeetPath(r *report.Report) {
	meetPath := MeetPathFromFile(r.Path())
	if meetPath == "" || meetPath == "." || meetPath == string(filepath.Separator) {
		r.Error("meet path is empty")
		return
	}

	for i := 0; i < len(meetPath); i++ {
		b := meetPath[i]
		switch {
		case b >= 'a' && b <= 'z':
		case b >= 'A' && b <= 'Z':
		case b >= '0' && b <= '9':
		case b == '-':
		default:
			r.Error(fmt.Sprintf("meet path %q may only contain ASCII letters, digits, and '-'", meetPath))
			return
		}
	}
}
