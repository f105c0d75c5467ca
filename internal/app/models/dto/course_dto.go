package dto

import (
	"time"

	"github.com/yigit/coursecatalog/internal/app/models"
)

// PrerequisiteRef is a prerequisite resolved to its title
type PrerequisiteRef struct {
	ID    string `json:"id" example:"CSCI100"`
	Title string `json:"title" example:"Introduction to Computer Science"`
}

// CourseDetail is a course with its prerequisites resolved
type CourseDetail struct {
	ID            string            `json:"id" example:"CSCI200"`
	Title         string            `json:"title" example:"Data Structures"`
	Prerequisites []PrerequisiteRef `json:"prerequisites"`
}

// CourseListResponse is a page of the sorted course listing
type CourseListResponse struct {
	Courses    []models.Course `json:"courses"`
	Pagination PaginationInfo  `json:"pagination"`
}

// LoadCatalogRequest asks the server to (re)load a course file
type LoadCatalogRequest struct {
	Path string `json:"path" validate:"required,max=4096"`
}

// LoadSummary describes a successfully published catalog
type LoadSummary struct {
	LoadID   string    `json:"loadId"`
	Source   string    `json:"source"`
	Courses  int       `json:"courses"`
	Capacity int       `json:"capacity"`
	Resizes  int       `json:"resizes"`
	LoadedAt time.Time `json:"loadedAt"`
}

// CatalogStats reports the state of the current catalog
type CatalogStats struct {
	LoadSummary
	UsedBuckets   int     `json:"usedBuckets"`
	LongestChain  int     `json:"longestChain"`
	LoadFactor    float64 `json:"loadFactor"`
	MaxLoadFactor float64 `json:"maxLoadFactor"`
}
