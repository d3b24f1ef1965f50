package sfv

// isSP reports whether b is the single space character used as the only
// whitespace the grammar itself produces (HTAB is accepted in OWS between
// top-level list/dictionary members but never emitted).
func isSP(b byte) bool { return b == ' ' }

func isOWS(b byte) bool { return b == ' ' || b == '\t' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLCAlpha(b byte) bool { return b >= 'a' && b <= 'z' }

func isUCAlpha(b byte) bool { return b >= 'A' && b <= 'Z' }

func isAlpha(b byte) bool { return isLCAlpha(b) || isUCAlpha(b) }

// isStringChar reports whether b may appear inside a String's body
// (printable ASCII, 0x20-0x7E inclusive).
func isStringChar(b byte) bool { return b >= 0x20 && b <= 0x7E }

// isTokenStart reports whether b may begin a Token.
func isTokenStart(b byte) bool { return isAlpha(b) || b == '*' }

// tokenTrailingDisallowed is the VCHAR subset excluded from token
// continuation characters per the grammar in spec.md §3.
var tokenTrailingDisallowed = [256]bool{
	'"': true, '(': true, ')': true, ',': true, ';': true,
	'<': true, '=': true, '>': true, '?': true, '@': true,
	'[': true, '\\': true, ']': true, '{': true, '}': true,
}

// isVCHAR reports whether b is a visible (non-space, non-control) ASCII
// character, 0x21-0x7E.
func isVCHAR(b byte) bool { return b >= 0x21 && b <= 0x7E }

// isTokenChar reports whether b may continue a Token once started.
func isTokenChar(b byte) bool {
	if !isVCHAR(b) {
		return false
	}
	return !tokenTrailingDisallowed[b]
}

// isKeyStart reports whether b may begin a dictionary/parameter key.
func isKeyStart(b byte) bool { return isLCAlpha(b) || b == '*' }

// isKeyChar reports whether b may continue a dictionary/parameter key.
func isKeyChar(b byte) bool {
	return isLCAlpha(b) || isDigit(b) || b == '_' || b == '-' || b == '.' || b == '*'
}

func isBase64Char(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '+' || b == '/' || b == '=':
		return true
	}
	return false
}
