package compose

// Image is an image affordance. The URL is not guaranteed to resolve; the
// view leaves the box blank when loading fails.
type Image struct {
	URL string
	Alt string
}

// Icon names a Lucide icon shown next to a link.
type Icon string

const (
	IconExternal Icon = "external-link"
	IconGitHub   Icon = "github"
	IconLinkedIn Icon = "linkedin"
	IconMail     Icon = "mail"
)

// LinkAffordance is an outbound link. External links open in a new
// browsing context without an opener or referrer.
type LinkAffordance struct {
	Label    string
	URL      string
	Icon     Icon
	External bool
	// Key identifies the link among its siblings.
	Key string
}

// ImageFor returns an image affordance when url is present.
func ImageFor(url, alt string) (*Image, bool) {
	if url == "" {
		return nil, false
	}
	return &Image{URL: url, Alt: alt}, true
}

// BadgesFor returns the badge labels when there is at least one. The
// result never aliases the input.
func BadgesFor(labels []string) ([]string, bool) {
	if len(labels) == 0 {
		return nil, false
	}
	out := make([]string, len(labels))
	copy(out, labels)
	return out, true
}

// LinkFor returns an external link affordance when url is present.
func LinkFor(label, url string, icon Icon) (*LinkAffordance, bool) {
	if url == "" {
		return nil, false
	}
	return &LinkAffordance{Label: label, URL: url, Icon: icon, External: true, Key: label}, true
}

// MailtoFor returns a mail link affordance when email is present.
func MailtoFor(email string) (*LinkAffordance, bool) {
	if email == "" {
		return nil, false
	}
	return &LinkAffordance{Label: "Email", URL: "mailto:" + email, Icon: IconMail, Key: "email"}, true
}
