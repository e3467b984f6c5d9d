package utils

import "testing"

func TestMapLink(t *testing.T) {
	if got := MapLink("Temple View Cafe", "https://maps.example.com/abc"); got != "https://maps.example.com/abc" {
		t.Errorf("stored link should win, got %q", got)
	}

	got := MapLink("Fisherman's Wharf & Pier", "")
	want := "https://www.google.com/maps/search/?api=1&query=Fisherman%27s+Wharf+%26+Pier"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
