package compose

import (
	"errors"
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/portfolio"
)

// BlockKind names a page section.
type BlockKind string

const (
	BlockHero       BlockKind = "hero"
	BlockExperience BlockKind = "experience"
	BlockProjects   BlockKind = "projects"
	BlockFeatures   BlockKind = "features"
	BlockContact    BlockKind = "contact"
)

// Block is one section of the page together with its wrapper: an optional
// heading above it and the entrance animation of the whole block.
type Block struct {
	Kind    BlockKind
	Heading string
	Reveal  Reveal
	// Section holds the composed section: HeroSection, TimelineSection,
	// GridSection, FeaturesSection or ContactSection according to Kind.
	Section any
}

// Page is the whole composed page, blocks in document order.
type Page struct {
	Title  string
	Blocks []Block
}

// PageConfig carries the configuration of every section. The zero value
// renders the default page.
type PageConfig struct {
	Hero     HeroConfig              `yaml:"hero"`
	Timeline TimelineConfig          `yaml:",inline"`
	Grid     GridConfig              `yaml:",inline"`
	Features FeaturesConfig          `yaml:",inline"`
	Contact  portfolio.ContactConfig `yaml:"contact"`
}

// Validate checks every supplied record.
func (p PageConfig) Validate() error {
	errs := []error{
		portfolio.ValidateExperiences(p.Timeline.Experiences),
		portfolio.ValidateProjects(p.Grid.Projects),
		portfolio.ValidateFeatures(p.Features.Features),
	}
	if err := p.Contact.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("contact: %w", err))
	}
	return errors.Join(errs...)
}

// Page composes every section once, in the order hero, experience,
// projects, features, contact.
func (c *Composer) Page(cfg PageConfig) Page {
	hero := c.Hero(cfg.Hero)
	return Page{
		Title: hero.Name,
		Blocks: []Block{
			{Kind: BlockHero, Reveal: fadeIn(0), Section: hero},
			{
				Kind:    BlockExperience,
				Heading: "Professional Experience",
				Reveal:  riseOnLoad(200 * time.Millisecond),
				Section: c.Timeline(cfg.Timeline),
			},
			{
				Kind:    BlockProjects,
				Heading: "Projects",
				Reveal:  riseOnLoad(400 * time.Millisecond),
				Section: c.Grid(cfg.Grid),
			},
			{Kind: BlockFeatures, Reveal: riseOnLoad(600 * time.Millisecond), Section: c.Features(cfg.Features)},
			{Kind: BlockContact, Reveal: riseOnLoad(800 * time.Millisecond), Section: c.Contact(cfg.Contact)},
		},
	}
}
