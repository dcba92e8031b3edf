package cookies

import (
	"fmt"
	"net/http"
)

// Bag is a set of HTTP cookies attached to requests for an aggregator's links.
type Bag interface {
	Cookies() []*http.Cookie
	AddToRequest(req *http.Request)
}

var _ Bag = (*StaticBag)(nil)

// Definition describes a single cookie as declared in aggregator configuration
type Definition struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Domain string `yaml:"domain"`
	Path   string `yaml:"path"`
}

// StaticBag is an immutable cookie set built once from configuration.
type StaticBag struct {
	cookies []*http.Cookie
}

func NewStaticBag(defs []Definition) (*StaticBag, error) {
	bag := &StaticBag{cookies: make([]*http.Cookie, 0, len(defs))}

	for i, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("cookie at index %d has no name", i)
		}

		cookie := &http.Cookie{
			Name:   def.Name,
			Value:  def.Value,
			Domain: def.Domain,
			Path:   def.Path,
		}
		if err := cookie.Valid(); err != nil {
			return nil, fmt.Errorf("invalid cookie at index %d: %w", i, err)
		}

		bag.cookies = append(bag.cookies, cookie)
	}

	return bag, nil
}

// Cookies returns copies so callers cannot mutate the bag.
func (b *StaticBag) Cookies() []*http.Cookie {
	out := make([]*http.Cookie, len(b.cookies))
	for i, c := range b.cookies {
		copied := *c
		out[i] = &copied
	}
	return out
}

func (b *StaticBag) AddToRequest(req *http.Request) {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
}
