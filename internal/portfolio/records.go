// Package portfolio holds the content records shown on the portfolio page
// and the small amount of logic that operates on them: relevance ranking
// and emphasis markup parsing.
package portfolio

import (
	"errors"
	"fmt"
)

// ErrMissingField is wrapped by every validation error for a required
// field that was left empty.
var ErrMissingField = errors.New("missing required field")

// ExperienceRecord is one entry of the professional experience timeline.
type ExperienceRecord struct {
	ID          string   `yaml:"id" json:"id"`
	Company     string   `yaml:"company" json:"company"`
	Role        string   `yaml:"role" json:"role"`
	Period      string   `yaml:"period" json:"period"`
	Description string   `yaml:"description" json:"description"`
	Logo        string   `yaml:"logo,omitempty" json:"logo,omitempty"`
	Skills      []string `yaml:"skills,omitempty" json:"skills,omitempty"`
	// Relevance is nil when the record carries no score.
	Relevance *float64 `yaml:"relevance,omitempty" json:"relevance,omitempty"`
}

// EffectiveRelevance returns the relevance used for ordering: the stored
// score, or 0 when none is set.
func (e ExperienceRecord) EffectiveRelevance() float64 {
	if e.Relevance == nil {
		return 0
	}
	return *e.Relevance
}

// Validate checks that the required fields are present.
func (e ExperienceRecord) Validate() error {
	return requireFields(
		field{"id", e.ID},
		field{"company", e.Company},
		field{"role", e.Role},
		field{"period", e.Period},
		field{"description", e.Description},
	)
}

// ProjectRecord is one card of the projects grid.
type ProjectRecord struct {
	ID           string   `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	LiveURL      string   `yaml:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	RepoURL      string   `yaml:"repoUrl,omitempty" json:"repoUrl,omitempty"`
	ImageURL     string   `yaml:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// Validate checks that the required fields are present.
func (p ProjectRecord) Validate() error {
	return requireFields(
		field{"id", p.ID},
		field{"title", p.Title},
		field{"description", p.Description},
	)
}

// FeatureRecord is a press mention or feature story. Description may wrap
// substrings in double asterisks to emphasize them.
type FeatureRecord struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Link        string `yaml:"link,omitempty" json:"link,omitempty"`
}

// Validate checks that the required fields are present.
func (f FeatureRecord) Validate() error {
	return requireFields(
		field{"id", f.ID},
		field{"title", f.Title},
		field{"description", f.Description},
	)
}

// Link is a named outbound link.
type Link struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Validate checks that the required fields are present.
func (l Link) Validate() error {
	return requireFields(field{"name", l.Name}, field{"url", l.URL})
}

// SocialLinks are the profile links shown in the contact panel.
type SocialLinks struct {
	GitHub   string `yaml:"github,omitempty" json:"github,omitempty"`
	LinkedIn string `yaml:"linkedin,omitempty" json:"linkedin,omitempty"`
	Other    []Link `yaml:"other,omitempty" json:"other,omitempty"`
}

// Validate checks every extra link.
func (s SocialLinks) Validate() error {
	var errs []error
	for i, l := range s.Other {
		if err := l.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("other[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// ContactConfig configures the contact panel. A nil field means the field
// was not supplied and the panel's default applies. A supplied SocialLinks
// replaces the default links as a whole.
type ContactConfig struct {
	Email       *string      `yaml:"email,omitempty" json:"email,omitempty"`
	SocialLinks *SocialLinks `yaml:"socialLinks,omitempty" json:"socialLinks,omitempty"`
}

// Validate checks the supplied social links, if any.
func (c ContactConfig) Validate() error {
	if c.SocialLinks == nil {
		return nil
	}
	if err := c.SocialLinks.Validate(); err != nil {
		return fmt.Errorf("socialLinks: %w", err)
	}
	return nil
}

// ValidateExperiences validates every record and reports all failures,
// each prefixed with its position.
func ValidateExperiences(records []ExperienceRecord) error {
	var errs []error
	for i, r := range records {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("experiences[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// ValidateProjects validates every record and reports all failures.
func ValidateProjects(records []ProjectRecord) error {
	var errs []error
	for i, r := range records {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("projects[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// ValidateFeatures validates every record and reports all failures.
func ValidateFeatures(records []FeatureRecord) error {
	var errs []error
	for i, r := range records {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("features[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

type field struct {
	name  string
	value string
}

func requireFields(fields ...field) error {
	var errs []error
	for _, f := range fields {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingField, f.name))
		}
	}
	return errors.Join(errs...)
}

// Float returns a pointer to v, for filling optional relevance scores.
func Float(v float64) *float64 {
	return &v
}

// String returns a pointer to s, for filling optional configuration fields.
func String(s string) *string {
	return &s
}
