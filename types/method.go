package types

type Method int

const (
	MethodGET Method = iota
	MethodPOST
	MethodPUT
	MethodDELETE
	MethodOPTION
	MethodHEAD
)

var methodNames = [...]string{
	MethodGET:    "GET",
	MethodPOST:   "POST",
	MethodPUT:    "PUT",
	MethodDELETE: "DELETE",
	MethodOPTION: "OPTION",
	MethodHEAD:   "HEAD",
}

// ParseMethod matches the canonical, case-sensitive method token.
func ParseMethod(b []byte) (Method, bool) {
	for m, name := range methodNames {
		if string(b) == name {
			return Method(m), true
		}
	}
	return 0, false
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "UNKNOWN"
	}
	return methodNames[m]
}
