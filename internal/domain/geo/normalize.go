// Package geo normalizes raw geographic labels into display form.
//
// The pulse datasets key states as lowercase hyphenated slugs
// ("west-bengal", "andaman-&-nicobar-islands"). Display consumers, in
// particular the India state GeoJSON used by map views, expect title-cased
// names with "&" joining compound names. NormalizeState is the single place
// that conversion happens; every label leaving the repository goes through it.
package geo

import "strings"

// IndiaGeoJSONURL is the polygon source map consumers key by state name.
// NormalizeState output must match this reference's naming convention.
const IndiaGeoJSONURL = "https://gist.githubusercontent.com/jbrobst/56c13bbbf9d97d187fea01ca62ea5112/raw/e388c4cae20aa53cb5090210a42ebb9b765c0a36/india_states.geojson"

// NormalizeState converts a raw state slug to display form: hyphens become
// spaces, each word is title-cased, and the literal word "And" between
// spaces collapses to "&". The function is idempotent: normalizing an
// already-normalized name returns it unchanged.
func NormalizeState(label string) string {
	s := strings.ReplaceAll(label, "-", " ")
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = titleWord(w)
	}
	s = strings.Join(words, " ")
	return strings.ReplaceAll(s, " And ", " & ")
}

// titleWord uppercases the first rune and lowercases the rest. Unlike
// strings.ToTitle this leaves non-letters ("&", digits) alone.
func titleWord(w string) string {
	if w == "" {
		return w
	}
	r := []rune(w)
	head := strings.ToUpper(string(r[0]))
	if len(r) == 1 {
		return head
	}
	return head + strings.ToLower(string(r[1:]))
}
