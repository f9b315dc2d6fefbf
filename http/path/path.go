package path

import "strings"

// Path is a request target broken into its non-empty '/' separated segments.
// Segments are kept verbatim: no decoding, no case folding, no query stripping.
type Path struct {
	raw      string
	segments []string
}

func NewPath(raw string) Path {
	return Path{
		raw:      raw,
		segments: splitSegments(raw),
	}
}

func (p Path) Raw() string    { return p.raw }
func (p Path) String() string { return p.raw }

func (p Path) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

func splitSegments(raw string) []string {
	parts := strings.Split(raw, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
