package compose

import "time"

// Trigger says when an entrance animation starts.
type Trigger string

const (
	// OnLoad starts the animation as soon as the page loads.
	OnLoad Trigger = "load"
	// InView starts the animation when the element scrolls into view.
	InView Trigger = "view"
)

const revealDuration = 800 * time.Millisecond

// Reveal describes an entrance animation. It is presentation only; content
// is complete whether or not the animation ever runs.
type Reveal struct {
	Trigger  Trigger
	Delay    time.Duration
	Duration time.Duration
	// Once stops the animation from replaying when the element re-enters
	// the viewport.
	Once bool
	// OffsetY is the starting vertical offset in pixels.
	OffsetY int
	// Scale is the starting scale; 0 means no scaling.
	Scale float64
}

func fadeIn(delay time.Duration) Reveal {
	return Reveal{Trigger: OnLoad, Delay: delay, Duration: revealDuration}
}

func riseOnLoad(delay time.Duration) Reveal {
	return Reveal{Trigger: OnLoad, Delay: delay, Duration: revealDuration, OffsetY: 30}
}

func riseInView(delay time.Duration, offset int) Reveal {
	return Reveal{Trigger: InView, Delay: delay, Duration: revealDuration, Once: true, OffsetY: offset}
}

// stagger delays the i-th card of a list.
func stagger(i int, step time.Duration) time.Duration {
	return time.Duration(i) * step
}
