package preview

import (
	"reflect"
	"testing"

	"aistudio/internal/models"
)

func TestRenderThreadSplitsOnBlankLines(t *testing.T) {
	content := "First tweet\n\nSecond tweet\n\nThird tweet"
	cards := Render([]models.Platform{models.Twitter}, content, models.PostThread)
	if len(cards) != 3 {
		t.Fatalf("want 3 tweet cards, got %d", len(cards))
	}
	for i, c := range cards {
		if c.Kind != KindTweet {
			t.Fatalf("card %d kind %s", i, c.Kind)
		}
		if c.Total != 3 || c.Index != i+1 {
			t.Fatalf("card %d numbering %d of %d", i, c.Index, c.Total)
		}
	}
	if cards[1].Content != "Second tweet" || cards[1].Caption != "Tweet 2 of 3" {
		t.Fatalf("middle card %+v", cards[1])
	}
}

func TestRenderThreadOnlyThreadsOnTwitter(t *testing.T) {
	// A thread previewed for another platform falls back to a feed card.
	cards := Render([]models.Platform{models.Facebook}, "a\n\nb", models.PostThread)
	if len(cards) != 1 || cards[0].Kind != KindFeed {
		t.Fatalf("cards %+v", cards)
	}
}

func TestRenderYoutubeVideoCard(t *testing.T) {
	cards := Render([]models.Platform{models.Youtube}, "description", models.PostYoutube)
	if len(cards) != 1 || cards[0].Kind != KindVideo || cards[0].Media != "video" {
		t.Fatalf("cards %+v", cards)
	}
}

func TestRenderFeedCardMedia(t *testing.T) {
	cases := []struct {
		typ   models.PostType
		media string
	}{
		{models.PostText, ""},
		{models.PostImage, "image"},
		{models.PostVideo, "video"},
	}
	for _, tc := range cases {
		cards := Render([]models.Platform{models.Instagram}, "hello", tc.typ)
		if len(cards) != 1 || cards[0].Kind != KindFeed || cards[0].Media != tc.media {
			t.Fatalf("type %s: cards %+v", tc.typ, cards)
		}
	}
}

func TestRenderOneCardSetPerPlatform(t *testing.T) {
	platforms := []models.Platform{models.Facebook, models.Instagram, models.Linkedin}
	cards := Render(platforms, "hello", models.PostText)
	if len(cards) != len(platforms) {
		t.Fatalf("want one card per platform, got %d", len(cards))
	}
	for i, c := range cards {
		if c.Platform != platforms[i] {
			t.Fatalf("card %d platform %s", i, c.Platform)
		}
	}
}

func TestRenderIsPure(t *testing.T) {
	platforms := []models.Platform{models.Twitter, models.Youtube}
	first := Render(platforms, "one\n\ntwo", models.PostThread)
	second := Render(platforms, "one\n\ntwo", models.PostThread)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different output:\n%+v\n%+v", first, second)
	}
	// Input slice must not be mutated.
	if platforms[0] != models.Twitter || platforms[1] != models.Youtube {
		t.Fatalf("input platforms mutated: %+v", platforms)
	}
}
