package models

import "time"

// User is the account record persisted across restarts. Exactly one user is
// current at a time; this is a single-user product.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// PostStatus tracks a post through the authoring lifecycle.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPending   PostStatus = "pending"
	StatusScheduled PostStatus = "scheduled"
	StatusPublished PostStatus = "published"
)

// Statuses lists every post status in lifecycle order.
var Statuses = []PostStatus{StatusDraft, StatusPending, StatusScheduled, StatusPublished}

func (s PostStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusScheduled, StatusPublished:
		return true
	}
	return false
}

// PostStats holds engagement counters for a published post.
type PostStats struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
	Views    int `json:"views"`
}

// Post is a unit of content targeted at a platform. ScheduledFor is
// meaningful only for scheduled and published posts.
type Post struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Image        string     `json:"image,omitempty"`
	Platform     Platform   `json:"platform"`
	ScheduledFor time.Time  `json:"scheduledFor"`
	Status       PostStatus `json:"status"`
	Stats        *PostStats `json:"stats,omitempty"`
}

// ContentType selects what the generator produces from a composition.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentVideo ContentType = "video"
)

func (c ContentType) Valid() bool {
	switch c {
	case ContentText, ContentImage, ContentVideo:
		return true
	}
	return false
}

// PostType is the shape of a post in the creation dialog and preview. It is
// broader than ContentType: threads and YouTube uploads get their own layout.
type PostType string

const (
	PostText    PostType = "text"
	PostImage   PostType = "image"
	PostVideo   PostType = "video"
	PostThread  PostType = "thread"
	PostYoutube PostType = "youtube"
)

func (p PostType) Valid() bool {
	switch p {
	case PostText, PostImage, PostVideo, PostThread, PostYoutube:
		return true
	}
	return false
}

// ImageMode selects between a generated image and a templated prompt for an
// external image tool.
type ImageMode string

const (
	ImageAI         ImageMode = "aiImage"
	ImageCanva      ImageMode = "canva"
	ImageMidjourney ImageMode = "midjourney"
	ImageFreepik    ImageMode = "freepik"
)

// Composition is the ephemeral authoring state before a post exists. It is
// never persisted; it lives only while the creation form is open.
type Composition struct {
	ContentType ContentType `json:"contentType"`
	Prompt      string      `json:"prompt"`
	Platforms   []Platform  `json:"platforms"`
	Format      string      `json:"format"`
	ImageMode   ImageMode   `json:"imageMode,omitempty"`
	Creativity  int         `json:"creativity"`
}

// AnalyticsPoint is one day of mock channel metrics.
type AnalyticsPoint struct {
	Date      string `json:"date"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
	Shares    int    `json:"shares"`
	Followers int    `json:"followers"`
}

// AIModel describes a selectable generation model in settings.
type AIModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDefault   bool   `json:"isDefault"`
}

// AIModels lists the models offered in the settings page.
var AIModels = []AIModel{
	{ID: "gpt4o", Name: "GPT-4o", Description: "Most powerful model for diverse content creation", IsDefault: true},
	{ID: "claude", Name: "Claude 3.5 Sonnet", Description: "Excellent for nuanced, creative, and factual content"},
}
