// Package workflow manages the post lifecycle: creation, approval,
// scheduling, immediate publishing, and deletion, plus the mocked content
// generation step that feeds new compositions.
package workflow

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"aistudio/internal/generate"
	"aistudio/internal/models"
	"aistudio/internal/notify"
	"aistudio/internal/store"
)

var (
	ErrContentRequired    = errors.New("post content is required")
	ErrPlatformRequired   = errors.New("no platform selected")
	ErrPromptRequired     = errors.New("prompt is required")
	ErrTopicRequired      = errors.New("topic is required")
	ErrTimeRequired       = errors.New("schedule time is required")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrGenerationInFlight = errors.New("generation already in progress")
	ErrSubmitInFlight     = errors.New("submission already in progress")
)

// Engine owns the post catalog and the state machine over it. All mutations
// go through the engine; validation failures leave the catalog untouched and
// surface as notifications.
type Engine struct {
	catalog  *store.Catalog
	gen      generate.Generator
	pub      generate.Publisher
	notifier notify.Notifier
	now      func() time.Time

	mu         sync.Mutex
	generating map[string]struct{}
	submitting bool
}

func NewEngine(catalog *store.Catalog, gen generate.Generator, pub generate.Publisher, notifier notify.Notifier) *Engine {
	return &Engine{
		catalog:    catalog,
		gen:        gen,
		pub:        pub,
		notifier:   notifier,
		now:        time.Now,
		generating: make(map[string]struct{}),
	}
}

// SetClock overrides the time source for default scheduling timestamps.
func (e *Engine) SetClock(now func() time.Time) { e.now = now }

// Posts returns a snapshot of the catalog.
func (e *Engine) Posts() []models.Post { return e.catalog.List() }

// Get returns a post by id.
func (e *Engine) Get(id string) (models.Post, error) { return e.catalog.Get(id) }

// CreateDraft adds draft posts for the given platforms, one per platform.
// Drafts need content but not a platform; a platformless draft picks its
// platform up when it is scheduled.
func (e *Engine) CreateDraft(title, content string, platforms []models.Platform) ([]models.Post, error) {
	if content == "" {
		e.notifier.Notify(notify.Error, "Please enter content for your post")
		return nil, ErrContentRequired
	}
	posts := e.fanOut(title, content, platforms, models.StatusDraft, time.Time{})
	e.notifier.Notify(notify.Success, "Content saved to your drafts!")
	return posts, nil
}

// CreatePending adds posts awaiting approval, one per selected platform.
func (e *Engine) CreatePending(title, content string, platforms []models.Platform) ([]models.Post, error) {
	if content == "" {
		e.notifier.Notify(notify.Error, "Please enter content for your post")
		return nil, ErrContentRequired
	}
	if len(platforms) == 0 {
		e.notifier.Notify(notify.Error, "Please select at least one platform")
		return nil, ErrPlatformRequired
	}
	posts := e.fanOut(title, content, platforms, models.StatusPending, time.Time{})
	e.notifier.Notify(notify.Success, "Post submitted for approval")
	return posts, nil
}

// Approve moves a pending post to scheduled. A pending post without a
// schedule time defaults to tomorrow.
func (e *Engine) Approve(id string) error {
	post, err := e.catalog.Get(id)
	if err != nil {
		return err
	}
	if post.Status != models.StatusPending {
		return fmt.Errorf("approve %s: %w (status %s)", id, ErrInvalidTransition, post.Status)
	}
	post.Status = models.StatusScheduled
	if post.ScheduledFor.IsZero() {
		post.ScheduledFor = e.now().Add(24 * time.Hour)
	}
	if err := e.catalog.Update(post); err != nil {
		return err
	}
	e.notifier.Notify(notify.Success, "Post approved successfully!")
	return nil
}

// Reject returns a pending post to draft.
func (e *Engine) Reject(id string) error {
	post, err := e.catalog.Get(id)
	if err != nil {
		return err
	}
	if post.Status != models.StatusPending {
		return fmt.Errorf("reject %s: %w (status %s)", id, ErrInvalidTransition, post.Status)
	}
	post.Status = models.StatusDraft
	if err := e.catalog.Update(post); err != nil {
		return err
	}
	e.notifier.Notify(notify.Error, "Post rejected")
	return nil
}

// Schedule moves a draft or pending post to scheduled at the given time.
func (e *Engine) Schedule(id string, at time.Time) error {
	post, err := e.catalog.Get(id)
	if err != nil {
		return err
	}
	if post.Status != models.StatusDraft && post.Status != models.StatusPending {
		return fmt.Errorf("schedule %s: %w (status %s)", id, ErrInvalidTransition, post.Status)
	}
	if post.Content == "" {
		e.notifier.Notify(notify.Error, "Please enter content for your post")
		return ErrContentRequired
	}
	if !post.Platform.Valid() {
		e.notifier.Notify(notify.Error, "Please select at least one platform")
		return ErrPlatformRequired
	}
	if at.IsZero() {
		e.notifier.Notify(notify.Error, "Please choose a time to schedule the post")
		return ErrTimeRequired
	}
	if err := e.pub.Publish(post); err != nil {
		e.notifier.Notify(notify.Error, "Failed to schedule post")
		return err
	}
	post.Status = models.StatusScheduled
	post.ScheduledFor = at
	if err := e.catalog.Update(post); err != nil {
		return err
	}
	e.notifier.Notify(notify.Success, "Post scheduled successfully!")
	return nil
}

// PublishNow moves a draft or pending post directly to published, skipping
// scheduled. Published is terminal.
func (e *Engine) PublishNow(id string) error {
	post, err := e.catalog.Get(id)
	if err != nil {
		return err
	}
	if post.Status != models.StatusDraft && post.Status != models.StatusPending {
		return fmt.Errorf("publish %s: %w (status %s)", id, ErrInvalidTransition, post.Status)
	}
	if post.Content == "" {
		e.notifier.Notify(notify.Error, "Please enter content for your post")
		return ErrContentRequired
	}
	if !post.Platform.Valid() {
		e.notifier.Notify(notify.Error, "Please select at least one platform")
		return ErrPlatformRequired
	}
	if err := e.pub.Publish(post); err != nil {
		e.notifier.Notify(notify.Error, "Failed to publish post")
		return err
	}
	post.Status = models.StatusPublished
	post.ScheduledFor = e.now()
	if err := e.catalog.Update(post); err != nil {
		return err
	}
	e.notifier.Notify(notify.Success, "Post published successfully!")
	return nil
}

// Delete removes a post from the catalog regardless of status.
func (e *Engine) Delete(id string) error {
	if err := e.catalog.Remove(id); err != nil {
		return err
	}
	e.notifier.Notify(notify.Success, "Post deleted successfully!")
	return nil
}

// SubmitNow publishes new content immediately to every selected platform.
// At most one submission is in flight at a time; a re-entrant trigger is
// rejected without creating anything.
func (e *Engine) SubmitNow(title, content string, platforms []models.Platform) ([]models.Post, error) {
	if err := e.validateSubmission(content, platforms); err != nil {
		return nil, err
	}
	release, err := e.acquireSubmit()
	if err != nil {
		return nil, err
	}
	defer release()

	if err := e.pub.Publish(models.Post{Title: title, Content: content}); err != nil {
		e.notifier.Notify(notify.Error, "Failed to publish post")
		return nil, err
	}
	posts := e.fanOut(title, content, platforms, models.StatusPublished, e.now())
	e.notifier.Notify(notify.Success, fmt.Sprintf("Post published immediately to %d platforms!", len(platforms)))
	return posts, nil
}

// SubmitSchedule schedules new content for every selected platform at the
// given time.
func (e *Engine) SubmitSchedule(title, content string, platforms []models.Platform, at time.Time) ([]models.Post, error) {
	if err := e.validateSubmission(content, platforms); err != nil {
		return nil, err
	}
	if at.IsZero() {
		e.notifier.Notify(notify.Error, "Please choose a time to schedule the post")
		return nil, ErrTimeRequired
	}
	release, err := e.acquireSubmit()
	if err != nil {
		return nil, err
	}
	defer release()

	if err := e.pub.Publish(models.Post{Title: title, Content: content}); err != nil {
		e.notifier.Notify(notify.Error, "Failed to schedule post")
		return nil, err
	}
	posts := e.fanOut(title, content, platforms, models.StatusScheduled, at)
	e.notifier.Notify(notify.Success, "Post scheduled successfully!")
	return posts, nil
}

func (e *Engine) validateSubmission(content string, platforms []models.Platform) error {
	if content == "" {
		e.notifier.Notify(notify.Error, "Please enter content for your post")
		return ErrContentRequired
	}
	if len(platforms) == 0 {
		e.notifier.Notify(notify.Error, "Please select at least one platform")
		return ErrPlatformRequired
	}
	return nil
}

func (e *Engine) acquireSubmit() (func(), error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.submitting {
		return nil, ErrSubmitInFlight
	}
	e.submitting = true
	return func() {
		e.mu.Lock()
		e.submitting = false
		e.mu.Unlock()
	}, nil
}

func (e *Engine) fanOut(title, content string, platforms []models.Platform, status models.PostStatus, at time.Time) []models.Post {
	if len(platforms) == 0 {
		platforms = []models.Platform{""}
	}
	posts := make([]models.Post, 0, len(platforms))
	for _, p := range platforms {
		post := models.Post{
			ID:           uuid.NewString(),
			Title:        title,
			Content:      content,
			Platform:     p,
			Status:       status,
			ScheduledFor: at,
		}
		e.catalog.Add(post)
		posts = append(posts, post)
	}
	return posts
}
