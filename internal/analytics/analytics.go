// Package analytics holds the mock channel metrics and the derived numbers
// the dashboard and analytics pages display. The dataset is generated once
// at process start; real analytics computation is out of scope.
package analytics

import (
	"math/rand"
	"time"

	"aistudio/internal/models"
)

// Metric names a per-day counter in the dataset.
type Metric string

const (
	MetricLikes     Metric = "likes"
	MetricComments  Metric = "comments"
	MetricShares    Metric = "shares"
	MetricFollowers Metric = "followers"
)

// PlatformShare is one slice of the platform distribution chart.
type PlatformShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PlatformDistribution is the mock share of content per platform.
var PlatformDistribution = []PlatformShare{
	{Name: "Facebook", Value: 38},
	{Name: "Instagram", Value: 45},
	{Name: "Twitter", Value: 27},
	{Name: "YouTube", Value: 18},
	{Name: "Pinterest", Value: 12},
}

// Store holds the generated 30-day dataset.
type Store struct {
	data []models.AnalyticsPoint
}

// NewStore generates 30 days of rising mock metrics ending today. The seed
// makes the dataset reproducible in tests.
func NewStore(now time.Time, seed int64) *Store {
	rng := rand.New(rand.NewSource(seed))
	data := make([]models.AnalyticsPoint, 0, 30)
	for i := 0; i < 30; i++ {
		date := now.AddDate(0, 0, -29+i)
		data = append(data, models.AnalyticsPoint{
			Date:      date.Format("2006-01-02"),
			Likes:     50 + int(rng.Float64()*100*(1+float64(i)/20)),
			Comments:  10 + int(rng.Float64()*40*(1+float64(i)/30)),
			Shares:    5 + int(rng.Float64()*20*(1+float64(i)/40)),
			Followers: 500 + i*3 + int(rng.Float64()*float64(i)*5),
		})
	}
	return &Store{data: data}
}

// Data returns the full dataset.
func (s *Store) Data() []models.AnalyticsPoint {
	out := make([]models.AnalyticsPoint, len(s.data))
	copy(out, s.data)
	return out
}

// LastN returns the most recent n days, fewer if the dataset is shorter.
func (s *Store) LastN(n int) []models.AnalyticsPoint {
	if n >= len(s.data) {
		return s.Data()
	}
	out := make([]models.AnalyticsPoint, n)
	copy(out, s.data[len(s.data)-n:])
	return out
}

// ChangePercent compares the later half of the window against the earlier
// half and returns the rounded percentage change. An empty earlier half
// reads as a 100% increase.
func ChangePercent(points []models.AnalyticsPoint, metric Metric) int {
	if len(points) < 2 {
		return 0
	}
	mid := len(points) / 2
	previous := sum(points[:mid], metric)
	current := sum(points[mid:], metric)
	if previous == 0 {
		return 100
	}
	ratio := float64(current-previous) / float64(previous) * 100
	if ratio >= 0 {
		return int(ratio + 0.5)
	}
	return int(ratio - 0.5)
}

// Summary is the dashboard stat block derived from the last seven days.
type Summary struct {
	TotalEngagement int `json:"totalEngagement"`
	FollowerGrowth  int `json:"followerGrowth"`
	Followers       int `json:"followers"`
}

// Summarize derives the dashboard stats from the last seven days of data.
func (s *Store) Summarize() Summary {
	latest := s.LastN(7)
	if len(latest) == 0 {
		return Summary{}
	}
	var engagement int
	for _, day := range latest {
		engagement += day.Likes + day.Comments + day.Shares
	}
	return Summary{
		TotalEngagement: engagement,
		FollowerGrowth:  latest[len(latest)-1].Followers - latest[0].Followers,
		Followers:       latest[len(latest)-1].Followers,
	}
}

func sum(points []models.AnalyticsPoint, metric Metric) int {
	var total int
	for _, p := range points {
		switch metric {
		case MetricLikes:
			total += p.Likes
		case MetricComments:
			total += p.Comments
		case MetricShares:
			total += p.Shares
		case MetricFollowers:
			total += p.Followers
		}
	}
	return total
}
