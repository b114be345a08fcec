package opengreece

import "strings"

// locationCodes maps lowercase destination keywords to OpenGreece
// location codes. Coverage is Greek destinations only.
var locationCodes = []struct {
	keywords []string
	code     string
}{
	{[]string{"athens", "atina"}, "ATH"},
	{[]string{"thessaloniki", "solun"}, "SKG"},
	{[]string{"halkidiki", "chalkidiki"}, "HKD"},
	{[]string{"crete", "krit", "heraklion"}, "HER"},
	{[]string{"rhodes", "rodos"}, "RHO"},
	{[]string{"corfu", "krf", "kerkyra"}, "CFU"},
	{[]string{"kos"}, "KGS"},
	{[]string{"zakynthos", "zakintos"}, "ZTH"},
	{[]string{"santorini"}, "JTR"},
	{[]string{"lefkada", "lefkas"}, "LFK"},
	{[]string{"parga"}, "PRG"},
	{[]string{"thassos", "tasos"}, "THS"},
}

// resolveLocationCode matches a free-text destination against the
// OpenGreece coverage table. Returns "" for destinations outside Greece.
func resolveLocationCode(destination string) string {
	dest := strings.ToLower(strings.TrimSpace(destination))
	if dest == "" {
		return ""
	}
	for _, entry := range locationCodes {
		for _, kw := range entry.keywords {
			if strings.Contains(dest, kw) {
				return entry.code
			}
		}
	}
	return ""
}
