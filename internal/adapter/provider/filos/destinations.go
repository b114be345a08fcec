package filos

import "strings"

// geoCodes maps lowercase destination keywords to Filos geo codes.
// Filos mostly sells Greek coastal resorts.
var geoCodes = []struct {
	keywords []string
	code     string
}{
	{[]string{"paralia", "olympic beach", "olimpik bic"}, "GEO-PAR"},
	{[]string{"leptokaria", "leptokarija"}, "GEO-LEP"},
	{[]string{"nei pori", "nei-pori"}, "GEO-NEI"},
	{[]string{"halkidiki", "chalkidiki", "hanioti", "pefkohori"}, "GEO-HAL"},
	{[]string{"thassos", "tasos"}, "GEO-THA"},
	{[]string{"parga"}, "GEO-PRG"},
	{[]string{"lefkada", "lefkas"}, "GEO-LEF"},
	{[]string{"corfu", "krf", "kerkyra"}, "GEO-CFU"},
	{[]string{"evia", "euboea"}, "GEO-EVI"},
	{[]string{"sarti"}, "GEO-SAR"},
}

// resolveGeoCode matches a free-text destination against the Filos geo
// table. Returns "" when the destination is not in the catalogue.
func resolveGeoCode(destination string) string {
	dest := strings.ToLower(strings.TrimSpace(destination))
	if dest == "" {
		return ""
	}
	for _, entry := range geoCodes {
		for _, kw := range entry.keywords {
			if strings.Contains(dest, kw) {
				return entry.code
			}
		}
	}
	return ""
}
