package workflow

import (
	"errors"
	"strings"
	"testing"
	"time"

	"aistudio/internal/generate"
	"aistudio/internal/models"
	"aistudio/internal/notify"
	"aistudio/internal/store"
)

var testNow = time.Date(2026, time.August, 28, 10, 0, 0, 0, time.Local)

func newTestEngine(t *testing.T) (*Engine, *notify.Recorder) {
	t.Helper()
	rec := &notify.Recorder{}
	mock := &generate.Mock{} // zero delay
	e := NewEngine(store.NewEmptyCatalog(), mock, mock, rec)
	e.SetClock(func() time.Time { return testNow })
	return e, rec
}

func addPost(e *Engine, id string, status models.PostStatus, platform models.Platform, at time.Time) {
	e.catalog.Add(models.Post{
		ID:           id,
		Title:        "t",
		Content:      "c",
		Platform:     platform,
		Status:       status,
		ScheduledFor: at,
	})
}

func TestCreateValidation(t *testing.T) {
	e, rec := newTestEngine(t)

	if _, err := e.CreateDraft("t", "", nil); !errors.Is(err, ErrContentRequired) {
		t.Fatalf("empty content = %v, want ErrContentRequired", err)
	}
	if last, _ := rec.Last(); last.Message != "Please enter content for your post" {
		t.Fatalf("unexpected notification %+v", last)
	}
	if _, err := e.CreatePending("t", "body", nil); !errors.Is(err, ErrPlatformRequired) {
		t.Fatalf("no platform = %v, want ErrPlatformRequired", err)
	}
	if e.catalog.Len() != 0 {
		t.Fatalf("rejected creates must not touch the catalog, have %d posts", e.catalog.Len())
	}

	drafts, err := e.CreateDraft("t", "body", []models.Platform{models.Twitter})
	if err != nil || len(drafts) != 1 || drafts[0].Status != models.StatusDraft {
		t.Fatalf("draft create: %v %+v", err, drafts)
	}
	pending, err := e.CreatePending("t", "body", []models.Platform{models.Twitter, models.Facebook})
	if err != nil || len(pending) != 2 {
		t.Fatalf("pending create: %v %+v", err, pending)
	}
	for _, p := range pending {
		if p.Status != models.StatusPending {
			t.Fatalf("want pending, got %s", p.Status)
		}
	}
}

func TestApproveAndReject(t *testing.T) {
	e, _ := newTestEngine(t)
	addPost(e, "p1", models.StatusPending, models.Instagram, time.Time{})
	addPost(e, "p2", models.StatusPending, models.Instagram, time.Time{})

	if err := e.Approve("p1"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	post, _ := e.Get("p1")
	if post.Status != models.StatusScheduled {
		t.Fatalf("approved post status %s", post.Status)
	}
	if post.ScheduledFor.IsZero() {
		t.Fatal("approval must default a schedule time")
	}

	if err := e.Reject("p2"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if post, _ := e.Get("p2"); post.Status != models.StatusDraft {
		t.Fatalf("rejected post status %s", post.Status)
	}

	// Only pending posts can be approved or rejected.
	if err := e.Approve("p2"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("approve draft = %v, want ErrInvalidTransition", err)
	}
	if err := e.Reject("p1"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("reject scheduled = %v, want ErrInvalidTransition", err)
	}
}

func TestPublishNowSkipsScheduled(t *testing.T) {
	e, _ := newTestEngine(t)
	addPost(e, "d1", models.StatusDraft, models.Twitter, time.Time{})
	addPost(e, "p1", models.StatusPending, models.Twitter, time.Time{})

	for _, id := range []string{"d1", "p1"} {
		if err := e.PublishNow(id); err != nil {
			t.Fatalf("publish %s: %v", id, err)
		}
		post, _ := e.Get(id)
		if post.Status != models.StatusPublished {
			t.Fatalf("post %s status %s", id, post.Status)
		}
		if !post.ScheduledFor.Equal(testNow) {
			t.Fatalf("post %s publish time %v", id, post.ScheduledFor)
		}
	}
}

func TestPublishedIsTerminal(t *testing.T) {
	e, _ := newTestEngine(t)
	addPost(e, "pub", models.StatusPublished, models.Youtube, testNow)

	if err := e.Approve("pub"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("approve published = %v", err)
	}
	if err := e.Reject("pub"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("reject published = %v", err)
	}
	if err := e.Schedule("pub", testNow.Add(time.Hour)); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("schedule published = %v", err)
	}
	if err := e.PublishNow("pub"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("publish published = %v", err)
	}
	if post, _ := e.Get("pub"); post.Status != models.StatusPublished {
		t.Fatalf("terminal post mutated to %s", post.Status)
	}
}

func TestScheduleValidation(t *testing.T) {
	e, _ := newTestEngine(t)
	addPost(e, "d1", models.StatusDraft, models.Twitter, time.Time{})
	e.catalog.Add(models.Post{ID: "d2", Title: "t", Content: "c", Status: models.StatusDraft})

	if err := e.Schedule("d1", time.Time{}); !errors.Is(err, ErrTimeRequired) {
		t.Fatalf("no time = %v, want ErrTimeRequired", err)
	}
	// A platformless draft cannot be scheduled.
	if err := e.Schedule("d2", testNow.Add(time.Hour)); !errors.Is(err, ErrPlatformRequired) {
		t.Fatalf("no platform = %v, want ErrPlatformRequired", err)
	}

	at := testNow.Add(48 * time.Hour)
	if err := e.Schedule("d1", at); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	post, _ := e.Get("d1")
	if post.Status != models.StatusScheduled || !post.ScheduledFor.Equal(at) {
		t.Fatalf("scheduled post %+v", post)
	}
}

func TestDeleteRemovesFromCatalog(t *testing.T) {
	e, rec := newTestEngine(t)
	addPost(e, "d1", models.StatusDraft, models.Twitter, time.Time{})
	addPost(e, "pub", models.StatusPublished, models.Youtube, testNow)

	for _, id := range []string{"d1", "pub"} {
		if err := e.Delete(id); err != nil {
			t.Fatalf("delete %s: %v", id, err)
		}
		if _, err := e.Get(id); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("post %s still present after delete", id)
		}
	}
	if err := e.Delete("d1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("double delete = %v, want ErrNotFound", err)
	}
	if last, _ := rec.Last(); last.Message != "Post deleted successfully!" {
		t.Fatalf("failed delete must not notify, last = %+v", last)
	}
}

func TestSubmitNow(t *testing.T) {
	e, rec := newTestEngine(t)
	posts, err := e.SubmitNow("launch", "big news", []models.Platform{models.Twitter, models.Facebook, models.Linkedin})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("want one post per platform, got %d", len(posts))
	}
	for _, p := range posts {
		if p.Status != models.StatusPublished || !p.ScheduledFor.Equal(testNow) {
			t.Fatalf("submitted post %+v", p)
		}
	}
	if last, _ := rec.Last(); last.Message != "Post published immediately to 3 platforms!" {
		t.Fatalf("unexpected notification %+v", last)
	}
}

func TestFilterIsConjunctive(t *testing.T) {
	e, _ := newTestEngine(t)
	addPost(e, "1", models.StatusScheduled, models.Instagram, testNow)
	addPost(e, "2", models.StatusScheduled, models.Twitter, testNow)
	addPost(e, "3", models.StatusDraft, models.Instagram, testNow)
	addPost(e, "4", models.StatusPublished, models.Instagram, testNow)

	got := e.Filter("scheduled", "instagram")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("conjunctive filter returned %+v", got)
	}
	if got := e.Filter(FilterAll, FilterAll); len(got) != 4 {
		t.Fatalf("identity filter returned %d posts", len(got))
	}
	if got := e.Filter("", ""); len(got) != 4 {
		t.Fatalf("empty filter returned %d posts", len(got))
	}
	if got := e.Filter(FilterAll, "twitter"); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("platform-only filter returned %+v", got)
	}
}

func TestPostsOnMatchesCalendarDay(t *testing.T) {
	e, _ := newTestEngine(t)
	day := time.Date(2026, time.September, 1, 23, 30, 0, 0, time.Local)
	addPost(e, "late", models.StatusScheduled, models.Twitter, day)
	addPost(e, "early", models.StatusScheduled, models.Twitter, day.Add(-23*time.Hour))
	addPost(e, "next", models.StatusScheduled, models.Twitter, day.Add(time.Hour))

	got := e.PostsOn(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local))
	if len(got) != 2 {
		t.Fatalf("want the two September 1 posts, got %+v", got)
	}
	for _, p := range got {
		if p.ID == "next" {
			t.Fatal("September 2 post matched September 1 lookup")
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	e, rec := newTestEngine(t)
	if _, err := e.Generate(models.Composition{ContentType: models.ContentText, Platforms: []models.Platform{models.Twitter}}); !errors.Is(err, ErrPromptRequired) {
		t.Fatalf("no prompt = %v", err)
	}
	if last, _ := rec.Last(); last.Message != "Please enter a prompt for the AI" {
		t.Fatalf("unexpected notification %+v", last)
	}
	if _, err := e.Generate(models.Composition{ContentType: models.ContentText, Prompt: "x"}); !errors.Is(err, ErrPlatformRequired) {
		t.Fatalf("no platform = %v", err)
	}
	if _, err := e.ViralIdeas(""); !errors.Is(err, ErrTopicRequired) {
		t.Fatalf("no topic = %v", err)
	}
}

// blockingService parks Generate until released, to hold a generation in
// flight from a test.
type blockingService struct {
	started  chan struct{}
	release  chan struct{}
	fallback generate.Mock
}

func (b *blockingService) Generate(comp models.Composition) (string, error) {
	b.started <- struct{}{}
	<-b.release
	return "generated result", nil
}

func (b *blockingService) ViralIdeas(topic string) (string, error) {
	return b.fallback.ViralIdeas(topic)
}

func (b *blockingService) Publish(post models.Post) error { return nil }

func TestGenerateSingleFlight(t *testing.T) {
	svc := &blockingService{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	rec := &notify.Recorder{}
	e := NewEngine(store.NewEmptyCatalog(), svc, svc, rec)
	e.SetClock(func() time.Time { return testNow })

	comp := models.Composition{
		ContentType: models.ContentText,
		Prompt:      "New feature launch",
		Platforms:   []models.Platform{models.Twitter},
	}

	results := make(chan string, 1)
	go func() {
		r, err := e.Generate(comp)
		if err != nil {
			t.Errorf("first generate: %v", err)
		}
		results <- r
	}()

	<-svc.started
	// Second trigger for the same composition while the first is in flight.
	if _, err := e.Generate(comp); !errors.Is(err, ErrGenerationInFlight) {
		t.Fatalf("concurrent generate = %v, want ErrGenerationInFlight", err)
	}
	close(svc.release)

	if r := <-results; r != "generated result" {
		t.Fatalf("unexpected result %q", r)
	}

	// Exactly one success commit.
	var successes int
	for _, n := range rec.All() {
		if n.Message == "Content generated successfully!" {
			successes++
		}
	}
	if successes != 1 {
		t.Fatalf("want exactly one committed result, got %d", successes)
	}

	// The composition is usable again once the first call resolves.
	go func() { <-svc.started; close(svc.release) }()
	svc.release = make(chan struct{})
	if _, err := e.Generate(comp); err != nil {
		t.Fatalf("generate after completion: %v", err)
	}
}

func TestScenarioGenerateThenSchedule(t *testing.T) {
	e, _ := newTestEngine(t)
	comp := models.Composition{
		ContentType: models.ContentText,
		Prompt:      "New feature launch",
		Platforms:   []models.Platform{models.Twitter},
	}
	result, err := e.Generate(comp)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(result, "New feature launch") {
		t.Fatalf("result must embed the prompt, got %q", result)
	}

	at := testNow.Add(72 * time.Hour)
	posts, err := e.SubmitSchedule("Feature launch", result, comp.Platforms, at)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(posts) != 1 || posts[0].Status != models.StatusScheduled {
		t.Fatalf("scheduled posts %+v", posts)
	}

	if got := e.PostsOn(at); len(got) != 1 || got[0].ID != posts[0].ID {
		t.Fatalf("calendar lookup on schedule date returned %+v", got)
	}
	if got := e.PostsOn(at.Add(24 * time.Hour)); len(got) != 0 {
		t.Fatalf("calendar lookup on other date returned %+v", got)
	}
}
