// Package tzdb resolves IANA zone identifiers into transition tables the
// calendar core can query. Zones are loaded once and cached; lookups after
// that are lock-free on the zone itself.
package tzdb

import (
	"fmt"
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // embedded zone data so lookups work without a system tzdb

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"chrono/internal/core/civil"
)

// Provider loads and caches named zones
type Provider struct {
	mu    sync.RWMutex
	zones map[string]*Zone
}

// NewProvider returns an empty provider
func NewProvider() *Provider {
	return &Provider{zones: make(map[string]*Zone)}
}

var fold = cases.Fold()

// Load resolves a zone identifier, case-insensitively, returning the cached
// zone when it has been seen before
func (p *Provider) Load(name string) (*Zone, error) {
	key := fold.String(name)

	p.mu.RLock()
	z, ok := p.zones[key]
	p.mu.RUnlock()
	if ok {
		return z, nil
	}

	loc, err := loadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tzdb: unknown zone %q: %w", name, err)
	}

	z = &Zone{name: loc.String(), loc: loc}

	p.mu.Lock()
	p.zones[key] = z
	p.mu.Unlock()
	return z, nil
}

// Has reports whether name resolves to a known zone
func (p *Provider) Has(name string) bool {
	_, err := p.Load(name)
	return err == nil
}

// loadLocation tries the identifier as given, then a canonicalized guess so
// "america/new_york" still resolves
func loadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc, nil
	}
	if guess := canonicalGuess(name); guess != name {
		if loc, gerr := time.LoadLocation(guess); gerr == nil {
			return loc, nil
		}
	}
	return nil, err
}

var title = cases.Title(language.Und)

// canonicalGuess title-cases each word of each path segment, matching the
// tz database naming convention (America/Port-au-Prince stays imperfect but
// the common identifiers round-trip)
func canonicalGuess(name string) string {
	segs := strings.Split(name, "/")
	for i, seg := range segs {
		words := strings.Split(seg, "_")
		for j, w := range words {
			words[j] = title.String(w)
		}
		segs[i] = strings.Join(words, "_")
	}
	return strings.Join(segs, "/")
}

// Zone is a named zone backed by the runtime's transition data.
// It implements the calendar core's offset-table contract.
type Zone struct {
	name string
	loc  *time.Location
}

// Name returns the canonical zone identifier
func (z *Zone) Name() string { return z.name }

// Location exposes the underlying runtime location
func (z *Zone) Location() *time.Location { return z.loc }

// Lookup returns the offset period containing the epoch second sse.
// ok is false when the instant predates the zone's recorded transitions;
// the offset and DST flag are still usable then, only the boundary is not.
func (z *Zone) Lookup(sse int64) (civil.OffsetInfo, bool) {
	t := time.Unix(sse, 0).In(z.loc)
	_, off := t.Zone()
	info := civil.OffsetInfo{
		Offset:     int64(off),
		Transition: civil.NoTransition,
		DST:        t.IsDST(),
	}
	start, _ := t.ZoneBounds()
	if start.IsZero() {
		return info, false
	}
	info.Transition = start.Unix()
	return info, true
}
