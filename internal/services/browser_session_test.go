package services

import (
	"sync"
	"testing"
	"time"

	"placedex/internal/models/db_models"
	"placedex/pkg/utils"
)

func TestBrowserStateResets(t *testing.T) {
	s := NewBrowserState()
	if q := s.Query(30); q.Category != db_models.CategoryAll || q.Page != 1 {
		t.Fatalf("fresh state = %+v", q)
	}

	s.SetTag("ramen")
	s.LoadMore()
	s.LoadMore()
	if q := s.Query(30); q.Page != 3 {
		t.Fatalf("LoadMore broken, page = %d", q.Page)
	}

	// Switching category rewinds pagination and drops the tag, which is
	// scoped to the previous category.
	s.SetCategory(db_models.CategoryFood)
	if q := s.Query(30); q.Page != 1 || q.Tag != "" {
		t.Errorf("SetCategory should reset page and tag, got page=%d tag=%q", q.Page, q.Tag)
	}

	s.LoadMore()
	s.SetSearch("noodle")
	if q := s.Query(30); q.Page != 1 {
		t.Errorf("SetSearch should reset page, got %d", q.Page)
	}
	if q := s.Query(30); q.Category != db_models.CategoryFood {
		t.Errorf("SetSearch must not touch category, got %q", q.Category)
	}

	s.LoadMore()
	s.SetTag("sushi")
	if q := s.Query(30); q.Page != 1 || q.Search != "noodle" {
		t.Errorf("SetTag should reset only the page, got page=%d search=%q", q.Page, q.Search)
	}
}

func TestBrowserStateQuery(t *testing.T) {
	s := NewBrowserState()
	s.SetCategory(db_models.CategoryDive)
	s.SetTag("wreck")
	s.SetOrigin(&utils.LatLng{Lat: 22.6, Lng: 120.3})
	s.LoadMore()

	q := s.Query(30)
	if q.Category != db_models.CategoryDive || q.Tag != "wreck" || q.Page != 2 || q.PageSize != 30 {
		t.Errorf("query = %+v", q)
	}
	if q.Origin == nil || q.Origin.Lat != 22.6 {
		t.Errorf("origin not carried, got %+v", q.Origin)
	}
}

// Requests for the same session id share one *BrowserState, so mutations
// from parallel requests (a double-clicked "load more", a search raced with
// a category switch) must be safe under the race detector.
func TestBrowserStateConcurrentRequests(t *testing.T) {
	m := NewSessionManager(time.Minute)
	id, _ := m.NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				state, ok := m.Get(id)
				if !ok {
					t.Error("session disappeared")
					return
				}
				switch n {
				case 0:
					state.SetSearch("temple")
				case 1:
					state.SetCategory(db_models.CategoryFood)
				case 2:
					state.LoadMore()
				default:
					state.SetOrigin(&utils.LatLng{Lat: 22.6, Lng: 120.3})
				}
				_ = state.Query(30)
				m.Touch(id, state)
			}
		}(i)
	}
	wg.Wait()

	state, ok := m.Get(id)
	if !ok {
		t.Fatal("session missing after concurrent access")
	}
	if q := state.Query(30); q.Page < 1 {
		t.Errorf("page = %d after concurrent mutations", q.Page)
	}
}

func TestSessionManager(t *testing.T) {
	m := NewSessionManager(time.Minute)

	id, state := m.NewSession()
	if id == "" || state == nil {
		t.Fatal("NewSession returned zero values")
	}

	got, ok := m.Get(id)
	if !ok || got != state {
		t.Fatal("stored state not returned")
	}

	if _, ok := m.Get("unknown"); ok {
		t.Error("unknown session id should miss")
	}
}

func TestSessionManagerExpiry(t *testing.T) {
	m := NewSessionManager(-time.Second)
	id, _ := m.NewSession()
	if _, ok := m.Get(id); ok {
		t.Error("expired session should miss")
	}
}
