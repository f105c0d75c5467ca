package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/models/dto"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
	"github.com/yigit/coursecatalog/internal/pkg/helpers"
	"github.com/yigit/coursecatalog/internal/source"
)

// CatalogService defines the interface for catalog operations
type CatalogService interface {
	LoadFromFile(ctx context.Context, path string) (*dto.LoadSummary, error)
	LoadLines(ctx context.Context, origin string, lines []string) (*dto.LoadSummary, error)
	GetCourse(ctx context.Context, id string) (*dto.CourseDetail, error)
	ListCourses(ctx context.Context, page, size int) ([]models.Course, dto.PaginationInfo, error)
	ListAll(ctx context.Context) ([]models.Course, error)
	Stats(ctx context.Context) (*dto.CatalogStats, error)
}

// snapshot is a fully built table together with its load metadata. The table
// never leaves the service, so nothing can insert into it after publication.
type snapshot struct {
	table   *catalog.Table
	summary dto.LoadSummary
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	mu      sync.RWMutex
	current *snapshot
	opts    []catalog.Option
	logger  zerolog.Logger
	now     func() time.Time
}

// NewCatalogService creates a new catalog service with no catalog loaded
func NewCatalogService(logger zerolog.Logger, opts ...catalog.Option) CatalogService {
	return &catalogServiceImpl{
		opts:   opts,
		logger: logger.With().Str("component", "catalog").Logger(),
		now:    time.Now,
	}
}

// LoadFromFile reads, validates and publishes the course file at path.
// On any failure the previously loaded catalog stays in place.
func (s *catalogServiceImpl) LoadFromFile(ctx context.Context, path string) (*dto.LoadSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path = strings.TrimSpace(path)
	lines, err := source.ReadLines(path)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("Course file unavailable")
		return nil, err
	}

	return s.LoadLines(ctx, path, lines)
}

// LoadLines validates and publishes an already read batch of lines.
func (s *catalogServiceImpl) LoadLines(ctx context.Context, src string, lines []string) (*dto.LoadSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, err := catalog.Load(lines, s.opts...)
	if err != nil {
		s.logger.Warn().Err(err).Str("source", src).Int("lines", len(lines)).Msg("Course batch rejected")
		return nil, err
	}

	snap := &snapshot{
		table: table,
		summary: dto.LoadSummary{
			LoadID:   uuid.New().String(),
			Source:   src,
			Courses:  table.Len(),
			Capacity: table.Capacity(),
			Resizes:  table.Resizes(),
			LoadedAt: s.now(),
		},
	}

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	s.logger.Info().
		Str("loadId", snap.summary.LoadID).
		Str("source", src).
		Int("courses", snap.summary.Courses).
		Int("capacity", snap.summary.Capacity).
		Int("resizes", snap.summary.Resizes).
		Msg("Catalog loaded")

	summary := snap.summary
	return &summary, nil
}

func (s *catalogServiceImpl) currentSnapshot() (*snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, apperrors.ErrCatalogNotLoaded
	}
	return s.current, nil
}

// GetCourse looks a course up by number and resolves its prerequisite titles.
// The number is trimmed and uppercased before lookup.
func (s *catalogServiceImpl) GetCourse(ctx context.Context, id string) (*dto.CourseDetail, error) {
	snap, err := s.currentSnapshot()
	if err != nil {
		return nil, err
	}

	key := strings.ToUpper(strings.TrimSpace(id))
	if key == "" {
		return nil, fmt.Errorf("%w: course number cannot be empty", apperrors.ErrValidationFailed)
	}

	course, ok := snap.table.Lookup(key)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrCourseNotFound,
			fmt.Sprintf("course %s not found", key))
	}

	detail := &dto.CourseDetail{
		ID:            course.ID,
		Title:         course.Title,
		Prerequisites: make([]dto.PrerequisiteRef, 0, len(course.Prerequisites)),
	}
	for _, prereq := range course.Prerequisites {
		ref := dto.PrerequisiteRef{ID: prereq}
		if p, ok := snap.table.Lookup(prereq); ok {
			ref.Title = p.Title
		}
		detail.Prerequisites = append(detail.Prerequisites, ref)
	}
	return detail, nil
}

// ListAll returns every course ordered by course number.
func (s *catalogServiceImpl) ListAll(ctx context.Context) ([]models.Course, error) {
	snap, err := s.currentSnapshot()
	if err != nil {
		return nil, err
	}
	return catalog.ListAllSorted(snap.table), nil
}

// ListCourses returns one page of the sorted listing.
func (s *catalogServiceImpl) ListCourses(ctx context.Context, page, size int) ([]models.Course, dto.PaginationInfo, error) {
	courses, err := s.ListAll(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	info := helpers.NewPaginationInfo(len(courses), page, size)
	start, end := helpers.CalculateSliceIndices(info.CurrentPage, info.PageSize, len(courses))
	return courses[start:end], info, nil
}

// Stats reports the current catalog's load metadata and bucket occupancy.
func (s *catalogServiceImpl) Stats(ctx context.Context) (*dto.CatalogStats, error) {
	snap, err := s.currentSnapshot()
	if err != nil {
		return nil, err
	}

	st := snap.table.Stats()
	return &dto.CatalogStats{
		LoadSummary:   snap.summary,
		UsedBuckets:   st.UsedBuckets,
		LongestChain:  st.LongestChain,
		LoadFactor:    st.LoadFactor,
		MaxLoadFactor: st.MaxLoadFactor,
	}, nil
}
