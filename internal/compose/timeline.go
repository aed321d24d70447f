package compose

import (
	"time"

	"github.com/Zachkp/portfolio/internal/portfolio"
)

// TimelineConfig configures the experience timeline. A nil Experiences
// takes the defaults; an empty non-nil slice renders no entries.
type TimelineConfig struct {
	Experiences []portfolio.ExperienceRecord `yaml:"experiences"`
}

// TimelineEntry is one experience card.
type TimelineEntry struct {
	Key         string
	Role        string
	Company     string
	Period      string
	Description string
	Logo        *Image
	Skills      []string
	Reveal      Reveal
}

// TimelineSection is the composed experience timeline.
type TimelineSection struct {
	Entries []TimelineEntry
}

// Timeline composes the experience timeline, most relevant first.
func (c *Composer) Timeline(cfg TimelineConfig) TimelineSection {
	records := cfg.Experiences
	if records == nil {
		records = c.defaults.Experiences
	}

	ranked := portfolio.RankExperiences(records)
	section := TimelineSection{Entries: make([]TimelineEntry, 0, len(ranked))}
	for i, r := range ranked {
		entry := TimelineEntry{
			Key:         r.ID,
			Role:        r.Role,
			Company:     r.Company,
			Period:      r.Period,
			Description: r.Description,
			Reveal:      riseInView(stagger(i, 100*time.Millisecond), 30),
		}
		if img, ok := ImageFor(r.Logo, r.Company+" logo"); ok {
			entry.Logo = img
		}
		if skills, ok := BadgesFor(r.Skills); ok {
			entry.Skills = skills
		}
		section.Entries = append(section.Entries, entry)
	}
	return section
}
