package configuration

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultExtractPattern matches any input in full and captures it as group 1.
const DefaultExtractPattern = `/^(.*)$/su`

var closingDelimiters = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// CompilePattern compiles a delimited pattern such as `/^\[NEW\] (.*)$/i`.
//
// The first non-blank character is the delimiter. The body ends at the first
// unescaped closing delimiter; bracket delimiters close with their counterpart
// and may nest. Everything after the closing delimiter is read as modifiers:
// i, m, s and U map to the RE2 flags of the same name, A anchors the match at the
// start of the subject, u and D are accepted and change nothing.
func CompilePattern(src string) (*regexp.Regexp, error) {
	trimmed := strings.TrimLeftFunc(src, unicode.IsSpace)
	if trimmed == "" {
		return nil, &RegexError{Pattern: src, Reason: "empty pattern"}
	}

	open, size := utf8.DecodeRuneInString(trimmed)
	if open == '\\' || unicode.IsLetter(open) || unicode.IsDigit(open) || unicode.IsSpace(open) {
		return nil, &RegexError{Pattern: src, Reason: "delimiter must not be alphanumeric, backslash or whitespace"}
	}

	closing := open
	if c, ok := closingDelimiters[open]; ok {
		closing = c
	}

	rest := trimmed[size:]
	end := closingIndex(rest, open, closing)
	if end < 0 {
		return nil, &RegexError{Pattern: src, Reason: "no ending delimiter '" + string(closing) + "' found"}
	}

	body := rest[:end]
	modifiers := rest[end+utf8.RuneLen(closing):]

	var flags strings.Builder
	anchored := false
	for _, m := range modifiers {
		switch m {
		case 'i', 'm', 's', 'U':
			if !strings.ContainsRune(flags.String(), m) {
				flags.WriteRune(m)
			}
		case 'A':
			anchored = true
		case 'u', 'D':
		case ' ', '\n', '\r', '\t':
		default:
			return nil, &RegexError{Pattern: src, Reason: "unknown modifier '" + string(m) + "'"}
		}
	}

	expr := body
	if anchored {
		expr = `\A(?:` + expr + `)`
	}
	if flags.Len() > 0 {
		expr = "(?" + flags.String() + ")" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &RegexError{Pattern: src, Reason: "compilation failed", Err: err}
	}

	return re, nil
}

// closingIndex returns the byte offset of the delimiter that ends the body, or
// -1. Escaped characters are skipped; bracket delimiters may nest.
func closingIndex(rest string, open, closing rune) int {
	depth := 1
	for i := 0; i < len(rest); {
		r, size := utf8.DecodeRuneInString(rest[i:])
		switch {
		case r == '\\':
			_, next := utf8.DecodeRuneInString(rest[i+size:])
			i += size + next
			continue
		case r == closing:
			depth--
			if depth == 0 {
				return i
			}
		case r == open && open != closing:
			depth++
		}
		i += size
	}
	return -1
}

// submatch returns capture group 1 of the first match, or the whole match when
// the pattern has no groups.
func submatch(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if len(m) > 1 {
		return m[1], true
	}
	return m[0], true
}
