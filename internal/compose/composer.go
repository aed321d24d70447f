// Package compose turns portfolio content into section descriptions. Each
// composer is a pure function of its configuration and the default table
// injected into the Composer; nothing here performs I/O.
package compose

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Zachkp/portfolio/internal/portfolio"
)

// HeroContent is the resolved hero banner content.
type HeroContent struct {
	Name      string
	Title     string
	Summary   string
	AvatarURL string
}

// ContactContent is the resolved contact panel content.
type ContactContent struct {
	Email       string
	SocialLinks portfolio.SocialLinks
}

// Defaults is the content each composer falls back to when its
// configuration leaves a field out.
type Defaults struct {
	Hero        HeroContent
	Experiences []portfolio.ExperienceRecord
	Projects    []portfolio.ProjectRecord
	Features    []portfolio.FeatureRecord
	Contact     ContactContent
}

// Validate checks every default record.
func (d Defaults) Validate() error {
	var errs []error
	if d.Hero.Name == "" {
		errs = append(errs, fmt.Errorf("hero: %w: name", portfolio.ErrMissingField))
	}
	errs = append(errs,
		portfolio.ValidateExperiences(d.Experiences),
		portfolio.ValidateProjects(d.Projects),
		portfolio.ValidateFeatures(d.Features),
	)
	if err := d.Contact.SocialLinks.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("contact: socialLinks: %w", err))
	}
	return errors.Join(errs...)
}

func (d Defaults) clone() Defaults {
	d.Experiences = slices.Clone(d.Experiences)
	d.Projects = slices.Clone(d.Projects)
	d.Features = slices.Clone(d.Features)
	d.Contact.SocialLinks.Other = slices.Clone(d.Contact.SocialLinks.Other)
	return d
}

// Composer builds the page sections from a fixed default table.
type Composer struct {
	defaults Defaults
}

// New validates defaults and returns a Composer holding its own copy of
// them.
func New(defaults Defaults) (*Composer, error) {
	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid default content: %w", err)
	}
	return &Composer{defaults: defaults.clone()}, nil
}

// Defaults returns a copy of the default table.
func (c *Composer) Defaults() Defaults {
	return c.defaults.clone()
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
