package check

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/coolbeans/meetcheck/pkg/report"
)

// CheckMeetFile validates a single meet.csv on disk: the meet-path naming
// convention plus the header/row schema, all findings in one Report. An
// unreadable file is an I/O failure of the row-source collaborator and is
// returned as an error rather than recorded as a finding.
func CheckMeetFile(path string, rules *Rules) (*report.Report, error) {
	r := report.New(path)
	CheckMeetPath(r)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	CheckMeet(NewCSVRowSource(f), r, rules)
	return r, nil
}

// TreeResult aggregates the per-file reports of one tree run. Reports are
// ordered by file path regardless of completion order, so identical input
// always renders identically.
type TreeResult struct {
	Reports  []*report.Report
	Errors   int
	Warnings int
}

// FindMeetFiles walks root and returns every meet.csv beneath it, sorted.
func FindMeetFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && entry.Name() == "meet.csv" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// CheckTree validates every meet.csv under root. Each file is independent,
// so validation fans out across workers; every worker owns the Reports it
// produces and results are merged only after all workers finish. workers
// below 1 means one worker per CPU.
func CheckTree(root string, workers int, rules *Rules) (*TreeResult, error) {
	files, err := FindMeetFiles(root)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan string)
	var (
		mu       sync.Mutex
		reports  []*report.Report
		firstErr error
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				r, err := CheckMeetFile(path, rules)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					reports = append(reports, r)
				}
				mu.Unlock()
			}
		}()
	}

	for _, path := range files {
		jobs <- path
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Path() < reports[j].Path() })

	result := &TreeResult{Reports: reports}
	for _, r := range reports {
		errs, warns := r.CountMessages()
		result.Errors += errs
		result.Warnings += warns
	}
	return result, nil
}
