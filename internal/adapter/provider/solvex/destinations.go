package solvex

import "strings"

// cityKeys maps lowercase destination keywords to Solvex city keys.
// Keywords include Serbian transliterations because the agency frontends
// feeding this service send destinations in either form.
var cityKeys = []struct {
	keywords []string
	key      int
}{
	{[]string{"bansko"}, 9},
	{[]string{"borovets", "borovec"}, 6},
	{[]string{"pamporovo"}, 10},
	{[]string{"sofia", "sofija"}, 41},
	{[]string{"varna"}, 42},
	{[]string{"burgas"}, 43},
	{[]string{"golden sands", "zlatni pjasci", "zlatni piasaci"}, 33},
	{[]string{"sunny beach", "sunčev breg", "suncev breg"}, 68},
	{[]string{"nessebar", "nesebar"}, 1},
}

// resolveCityKey matches a free-text destination against the Solvex city
// table. Returns 0 when the destination is not in the catalogue.
func resolveCityKey(destination string) int {
	dest := strings.ToLower(strings.TrimSpace(destination))
	if dest == "" {
		return 0
	}
	for _, entry := range cityKeys {
		for _, kw := range entry.keywords {
			if strings.Contains(dest, kw) {
				return entry.key
			}
		}
	}
	return 0
}
