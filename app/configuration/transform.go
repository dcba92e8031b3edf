package configuration

import (
	"regexp"
	"strings"
)

// TransformRule rewrites an extracted link: the first match of Pattern is
// replaced by Replacement. Replacement may reference groups as $1, ${1} or \1.
type TransformRule struct {
	Pattern     string
	Replacement string
}

// rewrite applies the rule using re, the compiled form of r.Pattern.
func (r *TransformRule) rewrite(re *regexp.Regexp, link string) string {
	return replaceFirst(re, link, expandTemplate(r.Replacement))
}

func replaceFirst(re *regexp.Regexp, src, template string) string {
	loc := re.FindStringSubmatchIndex(src)
	if loc == nil {
		return src
	}

	dst := re.ExpandString(nil, template, src, loc)
	return src[:loc[0]] + string(dst) + src[loc[1]:]
}

// expandTemplate converts a replacement using $n, ${n} or \n group references
// (n up to 99) into regexp.Expand syntax. Any other '$' is kept literally.
func expandTemplate(repl string) string {
	var b strings.Builder
	b.Grow(len(repl) + 8)

	for i := 0; i < len(repl); i++ {
		c := repl[i]

		switch {
		case (c == '$' || c == '\\') && i+1 < len(repl) && isDigit(repl[i+1]):
			n := 1
			if i+2 < len(repl) && isDigit(repl[i+2]) {
				n = 2
			}
			b.WriteString("${" + repl[i+1:i+1+n] + "}")
			i += n

		case c == '$' && i+1 < len(repl) && repl[i+1] == '{':
			end := strings.IndexByte(repl[i+2:], '}')
			if end > 0 && end <= 2 && allDigits(repl[i+2:i+2+end]) {
				b.WriteString(repl[i : i+3+end])
				i += 2 + end
				continue
			}
			b.WriteString("$$")

		case c == '$':
			b.WriteString("$$")

		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}
