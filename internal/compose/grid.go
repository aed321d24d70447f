package compose

import (
	"time"

	"github.com/Zachkp/portfolio/internal/portfolio"
)

// GridConfig configures the projects grid. A nil Projects takes the
// defaults.
type GridConfig struct {
	Projects []portfolio.ProjectRecord `yaml:"projects"`
}

// ProjectCard is one project in the grid.
type ProjectCard struct {
	Key          string
	Title        string
	Description  string
	Image        *Image
	Technologies []string
	Live         *LinkAffordance
	Repo         *LinkAffordance
	Reveal       Reveal
}

// GridSection is the composed projects grid.
type GridSection struct {
	Cards []ProjectCard
}

// Grid composes the projects grid in input order.
func (c *Composer) Grid(cfg GridConfig) GridSection {
	records := cfg.Projects
	if records == nil {
		records = c.defaults.Projects
	}

	section := GridSection{Cards: make([]ProjectCard, 0, len(records))}
	for i, p := range records {
		card := ProjectCard{
			Key:         p.ID,
			Title:       p.Title,
			Description: p.Description,
			Reveal:      riseInView(stagger(i, 100*time.Millisecond), 30),
		}
		if img, ok := ImageFor(p.ImageURL, p.Title); ok {
			card.Image = img
		}
		if techs, ok := BadgesFor(p.Technologies); ok {
			card.Technologies = techs
		}
		if live, ok := LinkFor("Live Demo", p.LiveURL, IconExternal); ok {
			card.Live = live
		}
		if repo, ok := LinkFor("Code", p.RepoURL, IconGitHub); ok {
			card.Repo = repo
		}
		section.Cards = append(section.Cards, card)
	}
	return section
}

// HasLinks reports whether the card shows any link.
func (p ProjectCard) HasLinks() bool {
	return p.Live != nil || p.Repo != nil
}
