package bytesplit

import "bytes"

// ByByte splits b around every occurrence of sep. Empty segments are kept and
// the tail after the last separator is always emitted.
func ByByte(b []byte, sep byte) [][]byte {
	parts := make([][]byte, 0, bytes.Count(b, []byte{sep})+1)
	for {
		idx := bytes.IndexByte(b, sep)
		if idx == -1 {
			return append(parts, b)
		}
		parts = append(parts, b[:idx:idx])
		b = b[idx+1:]
	}
}

// BySequence returns the segments of b terminated by sep. Whatever follows the
// last occurrence of sep is dropped, so a trailing CRLFCRLF leaves no residue.
func BySequence(b, sep []byte) [][]byte {
	if len(sep) == 0 {
		return nil
	}

	var parts [][]byte
	for {
		idx := bytes.Index(b, sep)
		if idx == -1 {
			return parts
		}
		parts = append(parts, b[:idx:idx])
		b = b[idx+len(sep):]
	}
}
