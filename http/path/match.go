package path

type MatchKind int

const (
	NotMatching MatchKind = iota
	Matching
	MatchingWithVariables
)

func (k MatchKind) String() string {
	switch k {
	case Matching:
		return "Matching"
	case MatchingWithVariables:
		return "MatchingWithVariables"
	default:
		return "NotMatching"
	}
}

// Match is the result of Template.Matches. The zero value is NotMatching.
type Match struct {
	kind      MatchKind
	variables map[string]string
}

func (m Match) Kind() MatchKind { return m.kind }

func (m Match) Ok() bool { return m.kind != NotMatching }

// Variables returns the bindings of a successful match. It is empty, not nil,
// for Matching and nil for NotMatching.
func (m Match) Variables() map[string]string {
	switch m.kind {
	case Matching:
		return map[string]string{}
	case MatchingWithVariables:
		return m.variables
	default:
		return nil
	}
}
