// Package viewstate keeps what each browser session's page currently shows,
// so a reload or a failed history load renders the previous content.
package viewstate

import (
	"context"
	"sync"
	"time"

	datastructures "github.com/bbernhard/winequality-playground/src/datastructures"
	"github.com/bbernhard/winequality-playground/src/render"
)

type Page struct {
	Values  map[datastructures.Field]string `json:"values,omitempty"`
	Busy    bool                            `json:"busy"`
	Alert   string                          `json:"alert,omitempty"`
	Result  *render.ResultPanel             `json:"result,omitempty"`
	History *render.HistoryTable            `json:"history,omitempty"`
}

type Store interface {
	// Load returns the page for session, or an empty page if none is stored.
	Load(ctx context.Context, session string) (Page, error)
	Save(ctx context.Context, session string, page Page) error
}

type memoryEntry struct {
	page    Page
	expires time.Time
}

// MemoryStore keeps pages in process. Used when no redis is configured.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	pages map[string]memoryEntry
	now   func() time.Time

	nextSweep time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, pages: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryStore) Load(ctx context.Context, session string) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.pages[session]
	if !ok {
		return Page{}, nil
	}
	if s.ttl > 0 && s.now().After(e.expires) {
		delete(s.pages, session)
		return Page{}, nil
	}
	return e.page, nil
}

func (s *MemoryStore) Save(ctx context.Context, session string, page Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)
	s.pages[session] = memoryEntry{page: page, expires: now.Add(s.ttl)}
	return nil
}

// sweep drops expired pages, at most once per ttl. Sessions that never come
// back (e.g. API clients without cookies) would otherwise stay forever.
func (s *MemoryStore) sweep(now time.Time) {
	if s.ttl <= 0 || now.Before(s.nextSweep) {
		return
	}
	for session, e := range s.pages {
		if now.After(e.expires) {
			delete(s.pages, session)
		}
	}
	s.nextSweep = now.Add(s.ttl)
}
