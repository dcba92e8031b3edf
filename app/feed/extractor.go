package feed

import (
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Extractor applies an aggregator's name and link patterns to parsed items.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Run extracts entries from items. Items whose title or link does not match
// the aggregator patterns are skipped.
func (e *Extractor) Run(items []Item, aggregator *Aggregator) []Entry {
	if aggregator.MaxItems > 0 && len(items) > aggregator.MaxItems {
		items = items[:aggregator.MaxItems]
	}

	entries := make([]Entry, 0, len(items))
	skipped := 0

	for _, item := range items {
		entry, ok := e.extract(item, aggregator)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}

	slog.Debug("Entries extracted",
		"aggregator", aggregator.GetName(),
		"total", len(items),
		"extracted", len(entries),
		"skipped", skipped)

	return entries
}

func (e *Extractor) extract(item Item, aggregator *Aggregator) (Entry, bool) {
	name, ok := aggregator.ExtractName(item.Title)
	if !ok {
		slog.Debug("Name pattern did not match", "aggregator", aggregator.GetName(), "title", item.Title)
		return Entry{}, false
	}

	name = strings.TrimSpace(norm.NFC.String(name))
	if name == "" {
		slog.Debug("Extracted name is empty", "aggregator", aggregator.GetName(), "title", item.Title)
		return Entry{}, false
	}

	rawLink := item.Link
	if rawLink == "" {
		rawLink = item.EnclosureURL
	}

	link, ok := aggregator.ExtractLink(rawLink)
	if !ok || link == "" {
		slog.Debug("Link pattern did not match", "aggregator", aggregator.GetName(), "link", rawLink)
		return Entry{}, false
	}

	return Entry{
		GUID:        item.GUID,
		Name:        name,
		Link:        aggregator.TransformLink(link),
		PublishedAt: item.PublishedAt,
		Categories:  item.Categories,
		Cookies:     aggregator.GetLinkCookies(),
	}, true
}
