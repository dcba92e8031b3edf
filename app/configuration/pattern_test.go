package configuration

import (
	"errors"
	"testing"
)

func TestCompilePatternModifiers(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		match   bool
	}{
		{"case sensitive", `/abc/`, "ABC", false},
		{"case insensitive", `/abc/i`, "ABC", true},
		{"multiline", `/^b$/m`, "a\nb\nc", true},
		{"no multiline", `/^b$/`, "a\nb\nc", false},
		{"dot all", `/a.c/s`, "a\nc", true},
		{"no dot all", `/a.c/`, "a\nc", false},
		{"anchored", `/b/A`, "ab", false},
		{"anchored at start", `/b/A`, "ba", true},
		{"utf8 modifier", `/ü/u`, "über", true},
		{"dollar end only", `/c$/D`, "abc", true},
		{"hash delimiter", `#a/b#`, "xa/by", true},
		{"tilde delimiter", `~^x~i`, "Xy", true},
		{"bracket delimiter", `(a+)`, "caat", true},
		{"brace delimiter", `{^\d+$}`, "123", true},
		{"angle delimiter", `<^t>i`, "Test", true},
		{"leading whitespace", "  /x/", "x", true},
		{"escaped delimiter", `/a\/b/`, "a/b", true},
		{"empty body", `//`, "anything", true},
		{"nested brackets", `((a)+)`, "xaay", true},
		{"escaped bracket", `{a\}}`, "a}", true},
		{"escaped backslash", `/a\\/`, `a\`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := CompilePattern(tt.pattern)
			if err != nil {
				t.Fatalf("Expected %s to compile, got: %v", tt.pattern, err)
			}
			if got := re.MatchString(tt.input); got != tt.match {
				t.Errorf("Expected %s on %q to match=%v, got %v", tt.pattern, tt.input, tt.match, got)
			}
		})
	}
}

func TestCompilePatternUngreedy(t *testing.T) {
	re, err := CompilePattern(`/a+/U`)
	if err != nil {
		t.Fatal(err)
	}
	if got := re.FindString("aaa"); got != "a" {
		t.Errorf("Expected ungreedy match 'a', got '%s'", got)
	}

	re, err = CompilePattern(`/a+?/U`)
	if err != nil {
		t.Fatal(err)
	}
	if got := re.FindString("aaa"); got != "aaa" {
		t.Errorf("Expected greedy match 'aaa', got '%s'", got)
	}
}

func TestCompilePatternRejectsInvalidPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"alphanumeric delimiter", "grump grump"},
		{"digit delimiter", "1abc1"},
		{"backslash delimiter", `\abc\`},
		{"missing end delimiter", "/abc"},
		{"delimiter only", "/"},
		{"missing bracket end", "(abc"},
		{"unknown modifier", "/abc/x"},
		{"delimiter inside body", "/a/b/"},
		{"unbalanced brackets", "((a)"},
		{"unbalanced group", "/(/"},
		{"unsupported lookahead", "/a(?=b)/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := CompilePattern(tt.pattern)
			if err == nil {
				t.Fatalf("Expected error for %q, got pattern %v", tt.pattern, re)
			}
			if !IsRegexError(err) {
				t.Errorf("Expected RegexError, got %T: %v", err, err)
			}
		})
	}
}

func TestCompilePatternEndsAtFirstDelimiter(t *testing.T) {
	_, err := CompilePattern("/a/b/")

	var regexErr *RegexError
	if !errors.As(err, &regexErr) {
		t.Fatalf("Expected RegexError, got: %v", err)
	}
	if regexErr.Reason != "unknown modifier 'b'" {
		t.Errorf("Expected unknown modifier 'b', got '%s'", regexErr.Reason)
	}
}

func TestCompilePatternWrapsCompileError(t *testing.T) {
	_, err := CompilePattern("/(/")

	var regexErr *RegexError
	if !errors.As(err, &regexErr) {
		t.Fatalf("Expected RegexError, got: %v", err)
	}
	if regexErr.Pattern != "/(/" {
		t.Errorf("Expected pattern '/(/', got '%s'", regexErr.Pattern)
	}
	if errors.Unwrap(err) == nil {
		t.Error("Expected underlying regexp error to be wrapped")
	}
}
