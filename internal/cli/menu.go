// Package cli implements the interactive course planner menu and the
// command-line tree around it.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
	"github.com/yigit/coursecatalog/internal/source"
)

// Menu choices.
const (
	choiceLoad   = "1"
	choiceList   = "2"
	choiceCourse = "3"
	choiceExit   = "9"
)

// Menu drives the interactive planner over a line-oriented input.
type Menu struct {
	in       *bufio.Reader
	out      io.Writer
	svc      services.CatalogService
	pageSize int
}

// NewMenu creates a Menu reading answers from in and writing to out.
func NewMenu(in io.Reader, out io.Writer, svc services.CatalogService, pageSize int) *Menu {
	return &Menu{
		in:       bufio.NewReader(in),
		out:      out,
		svc:      svc,
		pageSize: pageSize,
	}
}

// Run shows the menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	m.printf("Welcome to the course planner.\n")
	m.printf("==============================\n")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printf("\n  %s. Load Data Structure.\n", choiceLoad)
		m.printf("  %s. Print Course List.\n", choiceList)
		m.printf("  %s. Print Course.\n", choiceCourse)
		m.printf("  %s. Exit\n\n", choiceExit)
		m.printf("What would you like to do? ")

		choice, err := m.readLine()
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case choiceLoad:
			err = m.load(ctx)
		case choiceList:
			err = m.list(ctx)
		case choiceCourse:
			err = m.course(ctx)
		case choiceExit:
			m.printf("Thank you for using the course planner!\n")
			return nil
		default:
			m.printf("%s is not a valid option.\n", choice)
		}
		if err != nil {
			return ignoreEOF(err)
		}
	}
}

// promptFilename asks until the answer names a file that can be opened.
func (m *Menu) promptFilename() (string, error) {
	for {
		m.printf("Enter filename: ")
		name, err := m.readLine()
		if err != nil {
			return "", err
		}

		if name == "" {
			m.printf("Error: Filename cannot be empty\n")
			continue
		}
		if !source.Exists(name) {
			m.printf("Error: Cannot open file '%s'\n", name)
			continue
		}

		m.printf("File '%s' found successfully!\n", name)
		return name, nil
	}
}

func (m *Menu) load(ctx context.Context) error {
	name, err := m.promptFilename()
	if err != nil {
		return err
	}

	summary, err := m.svc.LoadFromFile(ctx, name)
	if err != nil {
		m.printf("Error: %v\n", err)
		m.printf("The previous catalog was kept.\n")
		return nil
	}

	m.printf("Loaded %d courses.\n", summary.Courses)
	return nil
}

func (m *Menu) list(ctx context.Context) error {
	courses, err := m.svc.ListAll(ctx)
	if errors.Is(err, apperrors.ErrCatalogNotLoaded) {
		m.printf("Please load the course data first.\n")
		return nil
	}
	if err != nil {
		return err
	}

	m.printf("Here is a sample schedule:\n\n")
	reporter := catalog.NewReporter(m.out, m.pageSize, func(page, total int) error {
		m.printf("-- page %d of %d -- Press Enter to continue...", page, total)
		_, err := m.readLine()
		return err
	})
	return reporter.Write(courses)
}

func (m *Menu) course(ctx context.Context) error {
	m.printf("What course do you want to know about? ")
	id, err := m.readLine()
	if err != nil {
		return err
	}

	detail, err := m.svc.GetCourse(ctx, id)
	switch {
	case errors.Is(err, apperrors.ErrCatalogNotLoaded):
		m.printf("Please load the course data first.\n")
		return nil
	case errors.Is(err, apperrors.ErrCourseNotFound):
		m.printf("Course %s not found.\n", strings.ToUpper(id))
		return nil
	case err != nil:
		m.printf("Error: %v\n", err)
		return nil
	}

	m.printf("%s", FormatCourseDetail(detail))
	return nil
}

// FormatCourseDetail renders a course and its resolved prerequisites.
func FormatCourseDetail(d *dto.CourseDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s\n", d.ID, d.Title)
	if len(d.Prerequisites) == 0 {
		b.WriteString("Prerequisites: None\n")
		return b.String()
	}

	b.WriteString("Prerequisites:\n")
	for _, p := range d.Prerequisites {
		fmt.Fprintf(&b, "  %s, %s\n", p.ID, p.Title)
	}
	return b.String()
}

// readLine returns the next trimmed input line. A final line without a
// newline is still returned; io.EOF is reported only when nothing was read.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
