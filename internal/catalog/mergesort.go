package catalog

import "github.com/yigit/coursecatalog/internal/app/models"

// SortByIdentifier returns the courses ordered by course number using a
// top-down merge sort. Comparison is byte-wise on the identifier and ties
// keep the left element first, so the sort is stable. The input is not
// modified.
func SortByIdentifier(courses []models.Course) []models.Course {
	out := make([]models.Course, len(courses))
	copy(out, courses)
	if len(out) < 2 {
		return out
	}

	scratch := make([]models.Course, len(out))
	mergeSort(out, scratch)
	return out
}

func mergeSort(a, scratch []models.Course) {
	if len(a) < 2 {
		return
	}
	mid := len(a) / 2
	mergeSort(a[:mid], scratch[:mid])
	mergeSort(a[mid:], scratch[mid:])
	merge(a, mid, scratch)
}

func merge(a []models.Course, mid int, scratch []models.Course) {
	copy(scratch, a)
	left, right := scratch[:mid], scratch[mid:len(a)]

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i].ID <= right[j].ID {
			a[k] = left[i]
			i++
		} else {
			a[k] = right[j]
			j++
		}
		k++
	}
	k += copy(a[k:], left[i:])
	copy(a[k:], right[j:])
}

// ListAllSorted returns every course in the table ordered by course number.
// It has no side effects and may be called repeatedly.
func ListAllSorted(t *Table) []models.Course {
	return SortByIdentifier(t.All())
}
