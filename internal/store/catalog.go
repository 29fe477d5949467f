package store

import (
	"errors"
	"sync"
	"time"

	"aistudio/internal/models"
)

// ErrNotFound is returned when a post id is not in the catalog.
var ErrNotFound = errors.New("post not found")

// Catalog is the in-memory post store. It is seeded with demo posts at
// construction and lives for the process lifetime; a real backend would slot
// in behind the same methods.
type Catalog struct {
	mu    sync.Mutex
	posts []models.Post
}

// NewCatalog returns a catalog seeded with the demo posts, dated relative to
// now.
func NewCatalog(now time.Time) *Catalog {
	return &Catalog{posts: seedPosts(now)}
}

// NewEmptyCatalog returns a catalog with no posts.
func NewEmptyCatalog() *Catalog {
	return &Catalog{}
}

// List returns a snapshot of all posts.
func (c *Catalog) List() []models.Post {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Post, len(c.posts))
	copy(out, c.posts)
	return out
}

// Get returns the post with the given id.
func (c *Catalog) Get(id string) (models.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Post{}, ErrNotFound
}

// Add appends a post to the catalog.
func (c *Catalog) Add(p models.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = append(c.posts, p)
}

// Update replaces the stored post with the same id.
func (c *Catalog) Update(p models.Post) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.posts {
		if c.posts[i].ID == p.ID {
			c.posts[i] = p
			return nil
		}
	}
	return ErrNotFound
}

// Remove deletes the post with the given id.
func (c *Catalog) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.posts {
		if c.posts[i].ID == id {
			c.posts = append(c.posts[:i], c.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Len returns the number of posts in the catalog.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.posts)
}

func seedPosts(now time.Time) []models.Post {
	day := 24 * time.Hour
	return []models.Post{
		{
			ID:           "1",
			Title:        "New Product Launch",
			Content:      "Excited to announce our new product line! Coming soon to stores near you.",
			Image:        "https://images.unsplash.com/photo-1511556532299-8f662fc26c06",
			Platform:     models.Instagram,
			ScheduledFor: now.Add(day),
			Status:       models.StatusScheduled,
			Stats:        &models.PostStats{Likes: 125, Comments: 23, Shares: 12, Views: 1200},
		},
		{
			ID:           "2",
			Title:        "Customer Testimonial",
			Content:      "Our customers love our services! Check out this testimonial from Jane D.",
			Platform:     models.Facebook,
			ScheduledFor: now.Add(2 * day),
			Status:       models.StatusDraft,
		},
		{
			ID:           "3",
			Title:        "Weekly Tips",
			Content:      "Here are 5 tips to improve your productivity this week!",
			Image:        "https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b",
			Platform:     models.Twitter,
			ScheduledFor: now.Add(3 * day),
			Status:       models.StatusPending,
		},
		{
			ID:           "4",
			Title:        "Tutorial Video",
			Content:      "Watch our new tutorial on how to use our product effectively.",
			Platform:     models.Youtube,
			ScheduledFor: now,
			Status:       models.StatusPublished,
			Stats:        &models.PostStats{Likes: 85, Comments: 12, Shares: 5, Views: 750},
		},
		{
			ID:           "5",
			Title:        "Inspirational Design",
			Content:      "Get inspired by these beautiful designs for your next project.",
			Image:        "https://images.unsplash.com/photo-1517245386807-bb43f82c33c4",
			Platform:     models.Pinterest,
			ScheduledFor: now.Add(-day),
			Status:       models.StatusPublished,
			Stats:        &models.PostStats{Likes: 210, Comments: 15, Shares: 45, Views: 2300},
		},
	}
}
