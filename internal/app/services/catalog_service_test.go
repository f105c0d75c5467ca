package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

var sampleLines = []string{
	"MATH201,Discrete Mathematics",
	"CSCI300,Introduction to Algorithms,CSCI200,MATH201",
	"CSCI350,Operating Systems,CSCI300",
	"CSCI101,Introduction to Programming in C++,CSCI100",
	"CSCI100,Introduction to Computer Science",
	"CSCI301,Advanced Programming in C++,CSCI101",
	"CSCI400,Large Software Development,CSCI301,CSCI350",
	"CSCI200,Data Structures,CSCI101",
}

func newTestService(t *testing.T) *catalogServiceImpl {
	t.Helper()
	svc := NewCatalogService(zerolog.Nop()).(*catalogServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc
}

func writeCourseFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func TestQueriesBeforeLoad(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetCourse(ctx, "CSCI100")
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotLoaded)

	_, _, err = svc.ListCourses(ctx, 1, 10)
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotLoaded)

	_, err = svc.Stats(ctx)
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotLoaded)

	_, err = svc.ListAll(ctx)
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotLoaded)
}

func TestLoadFromFile(t *testing.T) {
	svc := newTestService(t)
	path := writeCourseFile(t, sampleLines...)

	summary, err := svc.LoadFromFile(context.Background(), "  "+path+"  ")
	require.NoError(t, err)
	assert.Equal(t, path, summary.Source)
	assert.Equal(t, len(sampleLines), summary.Courses)
	assert.Equal(t, catalog.DefaultCapacity, summary.Capacity)
	assert.NotEmpty(t, summary.LoadID)
	assert.Equal(t, svc.now(), summary.LoadedAt)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, len(sampleLines))
}

func TestGetCourseResolvesPrerequisites(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.LoadLines(context.Background(), "test", sampleLines)
	require.NoError(t, err)

	detail, err := svc.GetCourse(context.Background(), "  csci300 ")
	require.NoError(t, err)
	assert.Equal(t, &dto.CourseDetail{
		ID:    "CSCI300",
		Title: "Introduction to Algorithms",
		Prerequisites: []dto.PrerequisiteRef{
			{ID: "CSCI200", Title: "Data Structures"},
			{ID: "MATH201", Title: "Discrete Mathematics"},
		},
	}, detail)

	detail, err = svc.GetCourse(context.Background(), "CSCI100")
	require.NoError(t, err)
	assert.Empty(t, detail.Prerequisites)
	assert.NotNil(t, detail.Prerequisites, "no prerequisites encodes as an empty list")
}

func TestGetCourseErrors(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.LoadLines(context.Background(), "test", sampleLines)
	require.NoError(t, err)

	_, err = svc.GetCourse(context.Background(), "CSCI999")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.GetCourse(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListCoursesIsSortedAndPaged(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.LoadLines(context.Background(), "test", sampleLines)
	require.NoError(t, err)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, len(sampleLines))
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].ID, all[i].ID)
	}

	page, info, err := svc.ListCourses(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.Equal(t, dto.PaginationInfo{CurrentPage: 2, TotalPages: 3, PageSize: 3, TotalItems: 8}, info)
	assert.Equal(t, all[3:6], page)

	last, info, err := svc.ListCourses(context.Background(), 99, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, info.CurrentPage)
	assert.Equal(t, all[6:], last)
}

func TestFailedLoadKeepsPreviousCatalog(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	first, err := svc.LoadLines(ctx, "first", sampleLines)
	require.NoError(t, err)

	_, err = svc.LoadLines(ctx, "bad", []string{"CS100,Intro,CS999"})
	assert.ErrorIs(t, err, apperrors.ErrDanglingPrerequisite)

	_, err = svc.LoadLines(ctx, "bad", []string{"CS100"})
	assert.ErrorIs(t, err, apperrors.ErrMalformedRecord)

	_, err = svc.LoadFromFile(ctx, filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, apperrors.ErrSourceUnavailable)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.LoadID, stats.LoadID)
	assert.Equal(t, len(sampleLines), stats.Courses)
}

func TestFailedFirstLoadLeavesCatalogEmpty(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.LoadLines(context.Background(), "bad", []string{"CS100,Intro,CS999"})
	require.Error(t, err)

	_, err = svc.ListAll(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotLoaded)
}

func TestReloadReplacesCatalog(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.LoadLines(ctx, "first", sampleLines)
	require.NoError(t, err)

	_, err = svc.LoadLines(ctx, "second", []string{"CS100,Intro,", "CS200,DataStructures,CS100"})
	require.NoError(t, err)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.GetCourse(ctx, "CSCI100")
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.LoadLines(ctx, "test", sampleLines)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = svc.ListAll(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotLoaded)
}

func TestStatsReportsOccupancy(t *testing.T) {
	svc := NewCatalogService(zerolog.Nop(), catalog.WithInitialCapacity(4))
	_, err := svc.LoadLines(context.Background(), "test", sampleLines)
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, stats.Courses)
	assert.Equal(t, 16, stats.Capacity)
	assert.Equal(t, 2, stats.Resizes)
	assert.Equal(t, catalog.MaxLoadFactor, stats.MaxLoadFactor)
	assert.InDelta(t, 0.5, stats.LoadFactor, 1e-9)
	assert.GreaterOrEqual(t, stats.UsedBuckets, 1)
}

func TestListedCoursesAreCopies(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	_, err := svc.LoadLines(ctx, "test", sampleLines)
	require.NoError(t, err)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	for i := range all {
		all[i].Title = "changed"
		if len(all[i].Prerequisites) > 0 {
			all[i].Prerequisites[0] = "CHANGED"
		}
	}

	detail, err := svc.GetCourse(ctx, "CSCI300")
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Algorithms", detail.Title)
	assert.Equal(t, "CSCI200", detail.Prerequisites[0].ID)
}
