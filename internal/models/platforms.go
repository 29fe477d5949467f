package models

import (
	"fmt"
	"strings"
)

// Platform is the closed set of social networks a post can target.
type Platform string

const (
	Facebook  Platform = "facebook"
	Instagram Platform = "instagram"
	Twitter   Platform = "twitter"
	Youtube   Platform = "youtube"
	Pinterest Platform = "pinterest"
	Linkedin  Platform = "linkedin"
)

// Platforms lists every supported platform.
var Platforms = []Platform{Facebook, Instagram, Twitter, Youtube, Pinterest, Linkedin}

func (p Platform) Valid() bool {
	switch p {
	case Facebook, Instagram, Twitter, Youtube, Pinterest, Linkedin:
		return true
	}
	return false
}

// ParsePlatform maps a lowercase platform id to its Platform value.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown platform %q", s)
	}
	return p, nil
}

// DisplayName returns the capitalized platform name shown in the UI.
func (p Platform) DisplayName() string {
	if p == Linkedin {
		return "LinkedIn"
	}
	if len(p) == 0 {
		return ""
	}
	return strings.ToUpper(string(p[0])) + string(p[1:])
}

// Brand colors and icon names keyed by platform. Every platform must appear
// in every table; CheckPlatformTables enforces that at startup.
var (
	platformColors = map[Platform]string{
		Facebook:  "#1877F2",
		Instagram: "#E1306C",
		Twitter:   "#1DA1F2",
		Youtube:   "#FF0000",
		Pinterest: "#E60023",
		Linkedin:  "#0077B5",
	}

	platformIcons = map[Platform]string{
		Facebook:  "Facebook",
		Instagram: "Instagram",
		Twitter:   "Twitter",
		Youtube:   "Youtube",
		Pinterest: "PinIcon",
		Linkedin:  "Linkedin",
	}

	// textFormats lists the text formats each platform accepts. Platforms
	// without text authoring (pinterest) are absent here but still covered
	// by the color/icon tables.
	textFormats = map[Platform][]string{
		Facebook:  {"post", "article"},
		Instagram: {"post"},
		Twitter:   {"tweet", "thread"},
		Youtube:   {"description", "thumbnail", "heading"},
		Linkedin:  {"post", "article"},
	}
)

// Color returns the platform brand color as a hex string.
func (p Platform) Color() string {
	return platformColors[p]
}

// IconName returns the icon identifier the view layer renders for p.
func (p Platform) IconName() string {
	return platformIcons[p]
}

// TextFormats returns the text formats p accepts, nil if p has none.
func (p Platform) TextFormats() []string {
	return textFormats[p]
}

// PlatformsFor returns the platforms selectable for a content type.
func PlatformsFor(c ContentType) []Platform {
	switch c {
	case ContentImage:
		return []Platform{Facebook, Instagram, Twitter, Pinterest}
	case ContentVideo:
		return []Platform{Facebook, Instagram, Youtube}
	default:
		return []Platform{Facebook, Instagram, Twitter, Youtube, Linkedin}
	}
}

// CreationPlatforms returns the platforms offered in the creation dialog for
// a post type. Threads are Twitter-only and YouTube uploads YouTube-only.
func CreationPlatforms(t PostType) []Platform {
	switch t {
	case PostThread:
		return []Platform{Twitter}
	case PostYoutube:
		return []Platform{Youtube}
	default:
		return Platforms
	}
}

// AvailableFormats returns the text formats offered for a platform
// selection. With multiple platforms selected the first selection wins.
func AvailableFormats(selected []Platform) []string {
	if len(selected) == 0 {
		return nil
	}
	return selected[0].TextFormats()
}

// CheckPlatformTables verifies every platform appears in the color and icon
// tables. Called once at startup so a newly added platform cannot fall
// through to a missing entry at runtime.
func CheckPlatformTables() error {
	for _, p := range Platforms {
		if _, ok := platformColors[p]; !ok {
			return fmt.Errorf("platform %s missing from color table", p)
		}
		if _, ok := platformIcons[p]; !ok {
			return fmt.Errorf("platform %s missing from icon table", p)
		}
	}
	return nil
}
