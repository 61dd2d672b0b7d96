package generator

import "strings"

const fence = "```"

// StripCodeFences removes a markdown code fence wrapped around model output.
//
//   - "```html<p>hi</p>```" and "```html\n<p>hi</p>\n```" become "<p>hi</p>";
//   - a bare opening fence and any single-word language tag line are removed;
//   - an opening fence without a closing one loses only the opener;
//   - text without a leading or trailing fence is only trimmed;
//   - backticks inside the body are left untouched.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, fence) {
		s = s[len(fence):]
		s = stripLanguageTag(s)
	}

	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, fence) {
		s = s[:len(s)-len(fence)]
	}

	return strings.TrimSpace(s)
}

// stripLanguageTag drops "html" right after the fence, or a first line that
// consists of a single tag token such as "xml" or "text/html".
func stripLanguageTag(s string) string {
	if len(s) >= 4 && strings.EqualFold(s[:4], "html") {
		return s[4:]
	}
	line, rest, found := strings.Cut(s, "\n")
	if !found {
		return s
	}
	if line = strings.TrimSpace(line); line == "" || isTagToken(line) {
		return rest
	}
	return s
}

func isTagToken(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '+', r == '_', r == '.', r == '/':
		default:
			return false
		}
	}
	return true
}
