package spec

import "regexp"

// tokenPattern matches one field: a double-quoted run or a maximal run of
// non-whitespace, plus any trailing whitespace so the scan position lands on
// the next token.
var tokenPattern = regexp.MustCompile(`(".+?"|\S+)\s*`)

// Fields splits a raw spec line into at most maxTokens tokens. A token is a
// whitespace-delimited word or a double-quoted string (quotes removed, the
// value may contain interior whitespace). Once maxTokens tokens have been
// collected, the remainder of the line past the current scan position is
// appended unsplit as one final element, so descriptions need no escaping in
// the source text. Lines with fewer than maxTokens tokens produce no
// remainder element.
func Fields(line string, maxTokens int) []string {
	var out []string
	pos := 0
	for pos < len(line) && len(out) < maxTokens {
		loc := tokenPattern.FindStringSubmatchIndex(line[pos:])
		if loc == nil {
			break
		}
		tok := line[pos+loc[2] : pos+loc[3]]
		if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
			tok = tok[1 : len(tok)-1]
		}
		out = append(out, tok)
		pos += loc[1]
		if len(out) == maxTokens {
			return append(out, line[pos:])
		}
	}
	return out
}
