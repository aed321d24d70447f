package compose

import (
	"strconv"
	"time"

	"github.com/Zachkp/portfolio/internal/portfolio"
)

const (
	contactHeading = "Get In Touch"
	contactBlurb   = "Feel free to reach out for collaborations, opportunities, or just to say hello!"
)

// ContactSection is the composed contact panel.
type ContactSection struct {
	Heading       string
	Blurb         string
	HeadingReveal Reveal
	PanelReveal   Reveal
	Links         []LinkAffordance
}

// Contact composes the contact panel. Links appear as email, GitHub,
// LinkedIn, then the extra links in the order given. Supplied social links
// replace the defaults entirely.
func (c *Composer) Contact(cfg portfolio.ContactConfig) ContactSection {
	def := c.defaults.Contact
	email := stringOr(cfg.Email, def.Email)
	social := def.SocialLinks
	if cfg.SocialLinks != nil {
		social = *cfg.SocialLinks
	}

	section := ContactSection{
		Heading:       contactHeading,
		Blurb:         contactBlurb,
		HeadingReveal: riseInView(0, 20),
		PanelReveal:   riseInView(200*time.Millisecond, 30),
	}
	if l, ok := MailtoFor(email); ok {
		section.Links = append(section.Links, *l)
	}
	if l, ok := LinkFor("GitHub", social.GitHub, IconGitHub); ok {
		section.Links = append(section.Links, *l)
	}
	if l, ok := LinkFor("LinkedIn", social.LinkedIn, IconLinkedIn); ok {
		section.Links = append(section.Links, *l)
	}
	for i, other := range social.Other {
		l, ok := LinkFor(other.Name, other.URL, IconExternal)
		if !ok {
			continue
		}
		l.Key = "other-" + strconv.Itoa(i)
		section.Links = append(section.Links, *l)
	}
	return section
}
