package types

type StatusCode int

const (
	StatusOK StatusCode = iota
	StatusCreated
	StatusAccepted
	StatusNoContent
	StatusMovedPermanently
	StatusFound
	StatusSeeOther
	StatusNotModified
	StatusTemporaryRedirect
	StatusPermanentRedirect
	StatusBadRequest
	StatusUnauthorized
	StatusForbidden
	StatusNotFound
	StatusMethodNotAllowed
	StatusRequestTimeout
	StatusConflict
	StatusGone
	StatusPayloadTooLarge
	StatusURITooLong
	StatusUnsupportedMediaType
	StatusRangeNotSatisfiable
	StatusInternalServerError
	StatusNotImplemented
	StatusBadGateway
	StatusServiceUnavailable
	StatusGatewayTimeout
	StatusHTTPVersionNotSupported
)

type statusInfo struct {
	name   string
	code   int
	reason string
}

var statusTable = [...]statusInfo{
	StatusOK:                      {"Ok", 200, "OK"},
	StatusCreated:                 {"Created", 201, "Created"},
	StatusAccepted:                {"Accepted", 202, "Accepted"},
	StatusNoContent:               {"NoContent", 204, "No Content"},
	StatusMovedPermanently:        {"MovedPermanently", 301, "Moved Permanently"},
	StatusFound:                   {"Found", 302, "Found"},
	StatusSeeOther:                {"SeeOther", 303, "See Other"},
	StatusNotModified:             {"NotModified", 304, "Not Modified"},
	StatusTemporaryRedirect:       {"TemporaryRedirect", 307, "Temporary Redirect"},
	StatusPermanentRedirect:       {"PermanentRedirect", 308, "Permanent Redirect"},
	StatusBadRequest:              {"BadRequest", 400, "Bad Request"},
	StatusUnauthorized:            {"Unauthorized", 401, "Unauthorized"},
	StatusForbidden:               {"Forbidden", 403, "Forbidden"},
	StatusNotFound:                {"NotFound", 404, "Not Found"},
	StatusMethodNotAllowed:        {"MethodNotAllowed", 405, "Method Not Allowed"},
	StatusRequestTimeout:          {"RequestTimeout", 408, "Request Timeout"},
	StatusConflict:                {"Conflict", 409, "Conflict"},
	StatusGone:                    {"Gone", 410, "Gone"},
	StatusPayloadTooLarge:         {"PayloadTooLarge", 413, "Payload Too Large"},
	StatusURITooLong:              {"UriTooLong", 414, "URI Too Long"},
	StatusUnsupportedMediaType:    {"UnsupportedMediaType", 415, "Unsupported Media Type"},
	StatusRangeNotSatisfiable:     {"RangeNotSatisfiable", 416, "Range Not Satisfiable"},
	StatusInternalServerError:     {"InternalServerError", 500, "Internal Server Error"},
	StatusNotImplemented:          {"NotImplemented", 501, "Not Implemented"},
	StatusBadGateway:              {"BadGateway", 502, "Bad Gateway"},
	StatusServiceUnavailable:      {"ServiceUnavailable", 503, "Service Unavailable"},
	StatusGatewayTimeout:          {"GatewayTimeout", 504, "Gateway Timeout"},
	StatusHTTPVersionNotSupported: {"HttpVersionNotSupported", 505, "HTTP Version Not Supported"},
}

// StatusFromName looks a status up by its enumerator name, e.g. "NotFound".
func StatusFromName(b []byte) (StatusCode, bool) {
	for s, info := range statusTable {
		if string(b) == info.name {
			return StatusCode(s), true
		}
	}
	return 0, false
}

func StatusFromInt(code int) (StatusCode, bool) {
	for s, info := range statusTable {
		if code == info.code {
			return StatusCode(s), true
		}
	}
	return 0, false
}

func (s StatusCode) info() statusInfo {
	if s < 0 || int(s) >= len(statusTable) {
		return statusTable[StatusInternalServerError]
	}
	return statusTable[s]
}

func (s StatusCode) Name() string   { return s.info().name }
func (s StatusCode) Code() int      { return s.info().code }
func (s StatusCode) Reason() string { return s.info().reason }
func (s StatusCode) String() string { return s.info().reason }
