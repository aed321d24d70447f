package compose

import (
	"time"

	"github.com/Zachkp/portfolio/internal/portfolio"
)

const featuresHeading = "Features"

// FeaturesConfig configures the features list. A nil Features takes the
// defaults.
type FeaturesConfig struct {
	Features []portfolio.FeatureRecord `yaml:"features"`
}

// FeatureCard is one press mention.
type FeatureCard struct {
	Key         string
	Title       string
	Description []portfolio.Segment
	Story       *LinkAffordance
	Reveal      Reveal
}

// FeaturesSection is the composed features list.
type FeaturesSection struct {
	Heading       string
	HeadingReveal Reveal
	Cards         []FeatureCard
}

// Features composes the features list in input order.
func (c *Composer) Features(cfg FeaturesConfig) FeaturesSection {
	records := cfg.Features
	if records == nil {
		records = c.defaults.Features
	}

	section := FeaturesSection{
		Heading:       featuresHeading,
		HeadingReveal: riseInView(0, 20),
		Cards:         make([]FeatureCard, 0, len(records)),
	}
	for i, f := range records {
		card := FeatureCard{
			Key:         f.ID,
			Title:       f.Title,
			Description: portfolio.ParseEmphasis(f.Description),
			Reveal:      riseInView(stagger(i, 200*time.Millisecond), 30),
		}
		if story, ok := LinkFor("View Story", f.Link, IconExternal); ok {
			card.Story = story
		}
		section.Cards = append(section.Cards, card)
	}
	return section
}
