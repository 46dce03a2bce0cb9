// Package fortune implements the selection and presentation algorithm behind
// the scry command: probabilistic branching between ASCII art and text
// fortunes, seasonal augmentation around Valentine's Day, and terminal color
// decoration.
package fortune

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"
)

// artChance is the probability that a render shows an art block instead of a
// decorated text fortune.
const artChance = 0.01

// Rand is the subset of math/rand the Selector draws from. *rand.Rand
// satisfies it; tests supply scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Clock returns the current wall-clock time. Injectable so tests can pin the
// seasonal window.
type Clock func() time.Time

// Category selects which listing a render draws from.
type Category string

const (
	CategoryAll        Category = "all"
	CategoryFun        Category = "fun"
	CategoryFacts      Category = "facts"
	CategoryValentines Category = "valentines"
	CategoryArt        Category = "art"
)

// Categories lists the valid category values in display order.
var Categories = []Category{CategoryAll, CategoryFun, CategoryFacts, CategoryValentines, CategoryArt}

// ValidCategory reports whether s names a known category.
func ValidCategory(s string) bool {
	return slices.Contains(Categories, Category(s))
}

// Content holds the static tables a Selector draws from. Every slice must be
// non-empty. The Selector never mutates them: seasonal augmentation is
// computed on a fresh slice per render, so repeated renders cannot
// accumulate duplicate entries.
type Content struct {
	Fun        []string // year-round fortunes
	Facts      []string // year-round tips and tidbits
	Valentines []string // eligible only inside the valentines window
	Art        []string // pre-rendered blocks, color codes included
	Palette    []string // decoration templates taking symbol, text, symbol
	Symbols    []string // decorating glyphs
}

// Selector renders exactly one block per call: either one art block or one
// decorated fortune line.
type Selector struct {
	content Content
	rng     Rand
	now     Clock
}

// Option configures a Selector.
type Option func(*Selector)

// WithRand overrides the default auto-seeded process-wide random source.
func WithRand(r Rand) Option {
	return func(s *Selector) { s.rng = r }
}

// WithClock overrides the wall clock used for the seasonal window check.
func WithClock(c Clock) Option {
	return func(s *Selector) { s.now = c }
}

// NewSelector validates the content tables and builds a Selector. An empty
// table is a programming error in the caller, reported at construction so a
// built Selector can never fail to render.
func NewSelector(content Content, opts ...Option) (*Selector, error) {
	tables := []struct {
		name    string
		entries []string
	}{
		{"fun", content.Fun},
		{"facts", content.Facts},
		{"valentines", content.Valentines},
		{"art", content.Art},
		{"palette", content.Palette},
		{"symbols", content.Symbols},
	}
	for _, table := range tables {
		if len(table.entries) == 0 {
			return nil, fmt.Errorf("content table %q is empty", table.name)
		}
	}

	s := &Selector{
		content: content,
		rng:     globalRand{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SelectAndRender writes one block to w. With probability artChance it is a
// random art block, written verbatim with no decoration and no seasonal
// check. Otherwise it is one decorated fortune line drawn from the
// year-round listings, extended with the valentines listing when the
// seasonal window is active.
func (s *Selector) SelectAndRender(w io.Writer) {
	if s.rng.Float64() <= artChance {
		s.RenderArt(w)
		return
	}

	// slices.Concat always allocates, so the append below can never reach
	// into the base tables.
	listing := slices.Concat(s.content.Fun, s.content.Facts)
	if valentinesSoon(s.now()) {
		listing = append(listing, s.content.Valentines...)
	}
	s.renderFortune(w, listing)
}

// Render dispatches on category: "all" runs the full SelectAndRender
// algorithm, "art" prints a random art block, and the text categories draw a
// decorated line from their single listing.
func (s *Selector) Render(w io.Writer, category Category) error {
	switch category {
	case CategoryAll:
		s.SelectAndRender(w)
	case CategoryFun:
		s.renderFortune(w, s.content.Fun)
	case CategoryFacts:
		s.renderFortune(w, s.content.Facts)
	case CategoryValentines:
		s.renderFortune(w, s.content.Valentines)
	case CategoryArt:
		s.RenderArt(w)
	default:
		return fmt.Errorf("unknown category %q", category)
	}
	return nil
}

// RenderArt writes one random art block, undecorated.
func (s *Selector) RenderArt(w io.Writer) {
	fmt.Fprintln(w, s.content.Art[s.rng.Intn(len(s.content.Art))])
}

// renderFortune picks a fortune, a decoration template, and one symbol, then
// writes the decorated line. The symbol is drawn once and fills both the
// left and right slots.
func (s *Selector) renderFortune(w io.Writer, listing []string) {
	text := listing[s.rng.Intn(len(listing))]
	template := s.content.Palette[s.rng.Intn(len(s.content.Palette))]
	symbol := s.content.Symbols[s.rng.Intn(len(s.content.Symbols))]
	fmt.Fprintf(w, template+"\n", symbol, text, symbol)
}

// globalRand delegates to the auto-seeded process-wide math/rand source, so
// independent invocations do not share or reproduce draws.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) Intn(n int) int   { return rand.Intn(n) }
