package types

import "fmt"

// Version is the protocol triple carried on request and status lines. The zero
// value renders as HTTP/1.1.
type Version struct {
	Name  string
	Major string
	Minor string
}

func DefaultVersion() Version {
	return Version{Name: "HTTP", Major: "1", Minor: "1"}
}

func (v Version) IsZero() bool {
	return v == Version{}
}

func (v Version) String() string {
	if v.IsZero() {
		v = DefaultVersion()
	}
	return fmt.Sprintf("%s/%s.%s", v.Name, v.Major, v.Minor)
}
