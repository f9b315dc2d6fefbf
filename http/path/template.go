package path

import (
	"strings"

	"github.com/rs/zerolog/log"
)

type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentVariable
)

type Segment struct {
	Kind SegmentKind
	// Value is the literal text or the variable name.
	Value string
}

// Template is a route pattern such as /echo/{text}.
type Template struct {
	raw      string
	segments []Segment
}

func NewTemplate(raw string) Template {
	parts := splitSegments(raw)
	segments := make([]Segment, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		if !isVariable(part) {
			segments = append(segments, Segment{Kind: SegmentLiteral, Value: part})
			continue
		}

		name := part[1 : len(part)-1]
		if name == "" {
			log.Warn().Str("template", raw).Msg("route template has a variable without a name")
		}
		if _, dup := seen[name]; dup {
			log.Error().Str("template", raw).Str("variable", name).Msg("route template declares a variable twice, the last binding wins")
		}
		seen[name] = struct{}{}
		segments = append(segments, Segment{Kind: SegmentVariable, Value: name})
	}

	return Template{raw: raw, segments: segments}
}

func isVariable(segment string) bool {
	return len(segment) >= 2 && strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

func (t Template) Raw() string    { return t.raw }
func (t Template) String() string { return t.raw }

func (t Template) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Variables lists variable names in declaration order, duplicates included.
func (t Template) Variables() []string {
	var names []string
	for _, s := range t.segments {
		if s.Kind == SegmentVariable {
			names = append(names, s.Value)
		}
	}
	return names
}

func (t Template) Matches(p Path) Match {
	if len(t.segments) != len(p.segments) {
		return Match{}
	}

	var bindings map[string]string
	for i, s := range t.segments {
		switch s.Kind {
		case SegmentLiteral:
			if s.Value != p.segments[i] {
				return Match{}
			}
		case SegmentVariable:
			if bindings == nil {
				bindings = make(map[string]string)
			}
			bindings[s.Value] = p.segments[i]
		}
	}

	if bindings == nil {
		return Match{kind: Matching}
	}
	return Match{kind: MatchingWithVariables, variables: bindings}
}
