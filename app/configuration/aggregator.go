package configuration

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/lysyi3m/feed-ghost/app/cookies"
)

var _ NameAware = (*AggregatorConfiguration)(nil)

// compiledPattern keeps the pattern source as supplied next to its compiled form.
type compiledPattern struct {
	source string
	re     *regexp.Regexp
}

func mustCompile(src string) compiledPattern {
	re, err := CompilePattern(src)
	if err != nil {
		panic(err)
	}
	return compiledPattern{source: src, re: re}
}

// AggregatorConfiguration is the extraction setup shared by every aggregator kind:
// how a name and a link are pulled out of feed entries, how the link is rewritten
// and which cookies go with it. Every setter validates its input and leaves the
// previous value in place when it fails.
//
// An AggregatorConfiguration is not safe for concurrent mutation.
type AggregatorConfiguration struct {
	Named

	nameExtract   compiledPattern
	linkExtract   compiledPattern
	linkTransform *TransformRule
	transformRe   *regexp.Regexp
	linkCookies   cookies.Bag
	valid         bool
}

func NewAggregatorConfiguration() *AggregatorConfiguration {
	return &AggregatorConfiguration{
		nameExtract: mustCompile(DefaultExtractPattern),
		linkExtract: mustCompile(DefaultExtractPattern),
		valid:       true,
	}
}

func (c *AggregatorConfiguration) GetNameExtractPattern() string {
	return c.nameExtract.source
}

func (c *AggregatorConfiguration) SetNameExtractPattern(pattern string) error {
	re, err := CompilePattern(pattern)
	if err != nil {
		return err
	}
	c.nameExtract = compiledPattern{source: pattern, re: re}
	return nil
}

func (c *AggregatorConfiguration) GetLinkExtractPattern() string {
	return c.linkExtract.source
}

func (c *AggregatorConfiguration) SetLinkExtractPattern(pattern string) error {
	re, err := CompilePattern(pattern)
	if err != nil {
		return err
	}
	c.linkExtract = compiledPattern{source: pattern, re: re}
	return nil
}

// GetLinkTransformPattern returns a copy of the transform rule, or nil when links
// are used as extracted.
func (c *AggregatorConfiguration) GetLinkTransformPattern() *TransformRule {
	if c.linkTransform == nil {
		return nil
	}
	rule := *c.linkTransform
	return &rule
}

// SetLinkTransformPattern sets the transform rule. nil clears it.
func (c *AggregatorConfiguration) SetLinkTransformPattern(rule *TransformRule) error {
	if rule == nil {
		c.linkTransform = nil
		c.transformRe = nil
		return nil
	}

	re, err := CompilePattern(rule.Pattern)
	if err != nil {
		return err
	}

	stored := *rule
	c.linkTransform = &stored
	c.transformRe = re
	return nil
}

// SetLinkTransformValue sets the transform rule from a loosely typed value, as
// produced by decoding configuration files. Only nil and ordered two-element
// string sequences (and TransformRule itself) are accepted; everything else fails
// with ErrInvalidTransformShape before the pattern is looked at.
func (c *AggregatorConfiguration) SetLinkTransformValue(value any) error {
	if value == nil {
		return c.SetLinkTransformPattern(nil)
	}

	rule, err := transformRuleFromValue(value)
	if err != nil {
		return err
	}
	return c.SetLinkTransformPattern(rule)
}

func transformRuleFromValue(value any) (*TransformRule, error) {
	var pair []any

	switch v := value.(type) {
	case TransformRule:
		return &v, nil
	case *TransformRule:
		return v, nil
	case [2]string:
		return &TransformRule{Pattern: v[0], Replacement: v[1]}, nil
	case []string:
		for _, s := range v {
			pair = append(pair, s)
		}
	case []any:
		pair = v
	default:
		return nil, ErrInvalidTransformShape
	}

	if len(pair) != 2 {
		return nil, ErrInvalidTransformShape
	}

	pattern, ok := pair[0].(string)
	if !ok {
		return nil, ErrInvalidTransformShape
	}
	replacement, ok := pair[1].(string)
	if !ok {
		return nil, ErrInvalidTransformShape
	}

	return &TransformRule{Pattern: pattern, Replacement: replacement}, nil
}

func (c *AggregatorConfiguration) GetLinkCookies() cookies.Bag {
	return c.linkCookies
}

// SetLinkCookies stores a shared reference to a cookies.Bag. nil, including a
// nil pointer to a bag, clears it; any other type fails with a CookiesTypeError.
func (c *AggregatorConfiguration) SetLinkCookies(value any) error {
	if value == nil {
		c.linkCookies = nil
		return nil
	}

	bag, ok := value.(cookies.Bag)
	if !ok {
		return &CookiesTypeError{Type: fmt.Sprintf("%T", value)}
	}

	if isNilPointer(bag) {
		c.linkCookies = nil
		return nil
	}

	c.linkCookies = bag
	return nil
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (c *AggregatorConfiguration) IsValid() bool {
	return c.valid
}

// SetValid marks the configuration usable or not. No other state is touched.
func (c *AggregatorConfiguration) SetValid(valid bool) {
	c.valid = valid
}

// ExtractName applies the name pattern to text.
func (c *AggregatorConfiguration) ExtractName(text string) (string, bool) {
	return submatch(c.nameExtract.re, text)
}

// ExtractLink applies the link pattern to text.
func (c *AggregatorConfiguration) ExtractLink(text string) (string, bool) {
	return submatch(c.linkExtract.re, text)
}

// TransformLink rewrites link with the transform rule, if one is set.
func (c *AggregatorConfiguration) TransformLink(link string) string {
	if c.linkTransform == nil {
		return link
	}
	return c.linkTransform.rewrite(c.transformRe, link)
}
