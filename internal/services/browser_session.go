package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"placedex/internal/models/db_models"
	"placedex/pkg/memcache"
	"placedex/pkg/utils"
)

// BrowserState is the server-side filter state of one browsing session.
// The setters carry the reset rules of the card grid: narrowing any filter
// rewinds pagination, and switching category also drops the active tag,
// since tags are scoped to a category.
//
// The session store hands the same pointer to every request carrying the
// session id, and the server handles requests concurrently, so all access
// goes through the mutex.
type BrowserState struct {
	mu       sync.Mutex
	category string
	search   string
	tag      string
	origin   *utils.LatLng
	page     int
}

func NewBrowserState() *BrowserState {
	return &BrowserState{
		category: db_models.CategoryAll,
		page:     1,
	}
}

func (s *BrowserState) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
	s.tag = ""
	s.page = 1
}

func (s *BrowserState) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
	s.page = 1
}

func (s *BrowserState) SetTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tag = tag
	s.page = 1
}

func (s *BrowserState) SetOrigin(origin *utils.LatLng) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.origin = origin
}

func (s *BrowserState) LoadMore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page++
}

// Query takes a consistent snapshot of the state for one pipeline pass.
func (s *BrowserState) Query(pageSize int) DirectoryQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DirectoryQuery{
		Category: s.category,
		Search:   s.search,
		Tag:      s.tag,
		Origin:   s.origin,
		Page:     s.page,
		PageSize: pageSize,
	}
}

type SessionManagerInterface interface {
	Get(id string) (*BrowserState, bool)
	NewSession() (string, *BrowserState)
	Touch(id string, state *BrowserState)
}

// SessionManager keeps browser states in a TTL store so abandoned sessions
// age out on their own.
type SessionManager struct {
	store *mem.Store[*BrowserState]
	ttl   time.Duration
}

func NewSessionManager(ttl time.Duration) SessionManagerInterface {
	return &SessionManager{
		store: mem.NewStore[*BrowserState](),
		ttl:   ttl,
	}
}

func (m *SessionManager) Get(id string) (*BrowserState, bool) {
	return m.store.Get(id)
}

func (m *SessionManager) NewSession() (string, *BrowserState) {
	id := uuid.New().String()
	state := NewBrowserState()
	m.store.Set(id, state, m.ttl)
	return id, state
}

// Touch re-arms the TTL after a request touched the session.
func (m *SessionManager) Touch(id string, state *BrowserState) {
	m.store.Set(id, state, m.ttl)
}
