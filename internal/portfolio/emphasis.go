package portfolio

import "strings"

const emphasisMarker = "**"

// Segment is a run of description text, either plain or emphasized.
type Segment struct {
	Text       string
	Emphasized bool
}

// ParseEmphasis splits s into plain and emphasized segments. Text between a
// "**" opener and the next "**" closer on the same line is emphasized and
// the markers are dropped. Emphasis does not nest. An opener without a
// closer is kept as plain text, markers included.
func ParseEmphasis(s string) []Segment {
	var segments []Segment
	plainStart, i := 0, 0
	for {
		open := strings.Index(s[i:], emphasisMarker)
		if open < 0 {
			break
		}
		open += i
		body := s[open+len(emphasisMarker):]
		end := strings.Index(body, emphasisMarker)
		if end < 0 {
			break
		}
		if strings.IndexByte(body[:end], '\n') >= 0 {
			// spans stop at line ends; retry one byte further on
			i = open + 1
			continue
		}
		if open > plainStart {
			segments = append(segments, Segment{Text: s[plainStart:open]})
		}
		segments = append(segments, Segment{Text: body[:end], Emphasized: true})
		i = open + 2*len(emphasisMarker) + end
		plainStart = i
	}
	if plainStart < len(s) {
		segments = append(segments, Segment{Text: s[plainStart:]})
	}
	return segments
}

// PlainText joins segments back into text without markers.
func PlainText(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}
