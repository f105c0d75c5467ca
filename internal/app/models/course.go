package models

// Course represents a single catalog entry loaded from a course file.
type Course struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Prerequisites []string `json:"prerequisites"`
}

// Clone returns a deep copy so callers cannot mutate catalog state through it.
func (c Course) Clone() Course {
	out := Course{ID: c.ID, Title: c.Title}
	if c.Prerequisites != nil {
		out.Prerequisites = make([]string, len(c.Prerequisites))
		copy(out.Prerequisites, c.Prerequisites)
	}
	return out
}
