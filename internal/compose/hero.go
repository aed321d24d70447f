package compose

import (
	"strings"
	"time"
	"unicode/utf8"
)

// HeroConfig configures the hero banner. A nil field takes the default; a
// supplied field is used as is, even when empty.
type HeroConfig struct {
	Name      *string `yaml:"name,omitempty"`
	Title     *string `yaml:"title,omitempty"`
	Summary   *string `yaml:"summary,omitempty"`
	AvatarURL *string `yaml:"avatarUrl,omitempty"`
}

// HeroSection is the composed hero banner.
type HeroSection struct {
	Name    string
	Title   string
	Summary string
	// Initials stand in for the avatar while it loads or when it fails.
	Initials string
	Avatar   *Image

	AvatarReveal  Reveal
	NameReveal    Reveal
	TitleReveal   Reveal
	SummaryReveal Reveal
}

// Hero composes the hero banner.
func (c *Composer) Hero(cfg HeroConfig) HeroSection {
	def := c.defaults.Hero
	name := stringOr(cfg.Name, def.Name)
	section := HeroSection{
		Name:     name,
		Title:    stringOr(cfg.Title, def.Title),
		Summary:  stringOr(cfg.Summary, def.Summary),
		Initials: Initials(name),

		AvatarReveal:  Reveal{Trigger: OnLoad, Duration: revealDuration, Scale: 0.9},
		NameReveal:    riseOnLoad(200 * time.Millisecond),
		TitleReveal:   riseOnLoad(400 * time.Millisecond),
		SummaryReveal: riseOnLoad(600 * time.Millisecond),
	}
	if img, ok := ImageFor(stringOr(cfg.AvatarURL, def.AvatarURL), name); ok {
		section.Avatar = img
	}
	return section
}

// Initials returns the first character of every space separated word of
// name.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, " ") {
		if r, _ := utf8.DecodeRuneInString(part); r != utf8.RuneError {
			b.WriteRune(r)
		}
	}
	return b.String()
}
