package catalog

import (
	"fmt"
	"io"

	"github.com/yigit/coursecatalog/internal/app/models"
)

// DefaultPageSize is the number of courses written before the reporter pauses.
const DefaultPageSize = 10

// Paginate splits courses into consecutive pages of at most pageSize
// entries. A pageSize below 1 yields a single page.
func Paginate(courses []models.Course, pageSize int) [][]models.Course {
	if len(courses) == 0 {
		return nil
	}
	if pageSize < 1 {
		pageSize = len(courses)
	}

	pages := make([][]models.Course, 0, (len(courses)+pageSize-1)/pageSize)
	for start := 0; start < len(courses); start += pageSize {
		end := start + pageSize
		if end > len(courses) {
			end = len(courses)
		}
		pages = append(pages, courses[start:end])
	}
	return pages
}

// PauseFunc is called between pages. Returning an error stops the report.
type PauseFunc func(page, totalPages int) error

// Reporter writes a sorted course listing in pages.
type Reporter struct {
	out      io.Writer
	pageSize int
	pause    PauseFunc
}

// NewReporter creates a Reporter. A nil pause never blocks.
func NewReporter(out io.Writer, pageSize int, pause PauseFunc) *Reporter {
	return &Reporter{out: out, pageSize: pageSize, pause: pause}
}

// Report sorts the table contents and writes them with Write.
func (r *Reporter) Report(t *Table) error {
	return r.Write(ListAllSorted(t))
}

// Write prints courses in the given order, one line each, pausing after
// every full page except the last.
func (r *Reporter) Write(courses []models.Course) error {
	pages := Paginate(courses, r.pageSize)
	for i, page := range pages {
		for _, c := range page {
			if _, err := fmt.Fprintln(r.out, FormatCourse(c)); err != nil {
				return err
			}
		}
		if r.pause != nil && i < len(pages)-1 {
			if err := r.pause(i+1, len(pages)); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatCourse renders a course as "ID, Title".
func FormatCourse(c models.Course) string {
	return c.ID + ", " + c.Title
}
