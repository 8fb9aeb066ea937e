package domain

import "strings"

// FindSection locates the section delimited by startMarker and the first
// occurrence of endMarker after it. The end-marker search begins past the
// start marker itself so the start marker can never terminate its own
// section. When the end marker never occurs again, the section extends to
// the end of the document.
//
// The offsets returned are byte offsets into content; the section spans
// [start, end).
func FindSection(content, startMarker, endMarker string) (start, end int, found bool) {
	start = strings.Index(content, startMarker)
	if start == -1 {
		return 0, 0, false
	}

	searchFrom := start + len(startMarker)
	rel := strings.Index(content[searchFrom:], endMarker)
	if rel == -1 {
		return start, len(content), true
	}

	return start, searchFrom + rel, true
}

// Splice keeps a generated section in sync inside a larger hand-edited
// document. When the start marker is absent the replacement is appended to
// the document, separated by a blank line. Otherwise the section located by
// FindSection is replaced with the replacement followed by a blank line;
// everything before and after the section is left untouched.
//
// The end marker is deliberately broader than the start marker (a bare
// heading token matches any heading of equal or higher level). A heading
// token occurring inside the replacement body would therefore truncate the
// section early on the next pass. Known limitation, kept as-is.
func Splice(content, startMarker, endMarker, replacement string) string {
	start, end, found := FindSection(content, startMarker, endMarker)
	if !found {
		return content + "\n\n" + replacement
	}

	return content[:start] + replacement + "\n\n" + content[end:]
}
