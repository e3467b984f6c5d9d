package utils

import "net/url"

const mapSearchBase = "https://www.google.com/maps/search/?api=1&query="

// MapLink resolves the outbound map URL for a place: an explicitly stored
// link wins, otherwise a text-search URL is built from the place name.
func MapLink(name, storedURL string) string {
	if storedURL != "" {
		return storedURL
	}
	return mapSearchBase + url.QueryEscape(name)
}
