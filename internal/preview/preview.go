// Package preview projects composed content into per-platform preview
// cards. Rendering is pure: it never mutates the composition or the catalog
// and identical inputs always produce identical output.
package preview

import (
	"strconv"
	"strings"

	"aistudio/internal/models"
)

// CardKind selects the layout of a preview card.
type CardKind string

const (
	KindFeed  CardKind = "feed"
	KindTweet CardKind = "tweet"
	KindVideo CardKind = "video"
)

// Card is one rendered preview element for a platform.
type Card struct {
	Platform models.Platform `json:"platform"`
	Kind     CardKind        `json:"kind"`
	Content  string          `json:"content"`
	Caption  string          `json:"caption,omitempty"`
	Media    string          `json:"media,omitempty"`
	Index    int             `json:"index"`
	Total    int             `json:"total"`
}

// Render produces the preview cards for each selected platform. Threads on
// Twitter render one card per blank-line-delimited segment; YouTube uploads
// render a single video card; everything else renders a generic feed card.
func Render(platforms []models.Platform, content string, typ models.PostType) []Card {
	var cards []Card
	for _, p := range platforms {
		cards = append(cards, renderPlatform(p, content, typ)...)
	}
	return cards
}

func renderPlatform(p models.Platform, content string, typ models.PostType) []Card {
	switch {
	case typ == models.PostThread && p == models.Twitter:
		segments := splitThread(content)
		cards := make([]Card, 0, len(segments))
		for i, seg := range segments {
			cards = append(cards, Card{
				Platform: p,
				Kind:     KindTweet,
				Content:  seg,
				Caption:  tweetCaption(i+1, len(segments)),
				Index:    i + 1,
				Total:    len(segments),
			})
		}
		return cards
	case typ == models.PostYoutube && p == models.Youtube:
		return []Card{{Platform: p, Kind: KindVideo, Content: content, Media: "video", Index: 1, Total: 1}}
	default:
		card := Card{Platform: p, Kind: KindFeed, Content: content, Index: 1, Total: 1}
		switch typ {
		case models.PostImage:
			card.Media = "image"
		case models.PostVideo:
			card.Media = "video"
		}
		return []Card{card}
	}
}

// splitThread breaks thread content into tweets on blank lines.
func splitThread(content string) []string {
	return strings.Split(content, "\n\n")
}

func tweetCaption(i, n int) string {
	return "Tweet " + strconv.Itoa(i) + " of " + strconv.Itoa(n)
}
