package workflow

import (
	"time"

	"aistudio/internal/models"
)

// FilterAll is the identity value for either filter dimension.
const FilterAll = "all"

// Filter returns the posts matching both the status and platform filters.
// Either filter may be FilterAll (or empty) to match everything.
func (e *Engine) Filter(status, platform string) []models.Post {
	var out []models.Post
	for _, p := range e.catalog.List() {
		if status != "" && status != FilterAll && string(p.Status) != status {
			continue
		}
		if platform != "" && platform != FilterAll && string(p.Platform) != platform {
			continue
		}
		out = append(out, p)
	}
	return out
}

// PostsOn returns the posts scheduled on the same calendar day as date,
// in date's location.
func (e *Engine) PostsOn(date time.Time) []models.Post {
	loc := date.Location()
	y, m, d := date.Date()
	var out []models.Post
	for _, p := range e.catalog.List() {
		py, pm, pd := p.ScheduledFor.In(loc).Date()
		if py == y && pm == m && pd == d {
			out = append(out, p)
		}
	}
	return out
}
