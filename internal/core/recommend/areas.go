package recommend

// countryAreas maps ISO country codes to recipe provider areas, in
// priority order (first entry is the closest match). Countries without a
// provider cuisine of their own map to neighbouring ones.
var countryAreas = map[string][]string{
	// Exact matches
	"US": {"American"},
	"AR": {"Argentinian"},
	"AU": {"Australian"},
	"GB": {"British"},
	"CA": {"Canadian"},
	"CN": {"Chinese"},
	"HR": {"Croatian"},
	"NL": {"Dutch"},
	"EG": {"Egyptian"},
	"PH": {"Filipino"},
	"FR": {"French"},
	"GR": {"Greek"},
	"IN": {"Indian"},
	"IE": {"Irish"},
	"IT": {"Italian"},
	"JM": {"Jamaican"},
	"JP": {"Japanese"},
	"KE": {"Kenyan"},
	"MY": {"Malaysian"},
	"MX": {"Mexican"},
	"MA": {"Moroccan"},
	"NO": {"Norwegian"},
	"PL": {"Polish"},
	"PT": {"Portuguese"},
	"RU": {"Russian"},
	"SA": {"Saudi Arabian"},
	"SK": {"Slovakian"},
	"ES": {"Spanish"},
	"SY": {"Syrian"},
	"TH": {"Thai"},
	"TN": {"Tunisian"},
	"TR": {"Turkish"},
	"UA": {"Ukrainian"},
	"UY": {"Uruguayan"},
	"VE": {"Venezulan"}, // provider-side typo, keep as-is
	"VN": {"Vietnamese"},

	// Balkans
	"RS": {"Croatian", "Turkish", "Greek"},
	"BA": {"Croatian", "Turkish"},
	"ME": {"Croatian", "Greek"},
	"MK": {"Croatian", "Turkish", "Greek"},
	"SI": {"Croatian"},
	"AL": {"Croatian", "Greek", "Turkish"},
	"XK": {"Croatian", "Turkish"},

	// DACH
	"DE": {"Dutch", "French", "Polish"},
	"AT": {"Dutch", "Croatian", "Polish"},
	"CH": {"French", "Italian", "Dutch"},

	// Nordics
	"SE": {"Norwegian", "British"},
	"DK": {"Norwegian", "Dutch"},
	"FI": {"Norwegian", "Russian"},
	"IS": {"Norwegian", "British"},

	// Other European
	"BE": {"Dutch", "French"},
	"LU": {"French", "Dutch"},
	"CZ": {"Slovakian", "Polish"},
	"HU": {"Croatian", "Polish"},
	"RO": {"Croatian", "Turkish", "Greek"},
	"BG": {"Turkish", "Greek", "Croatian"},
	"LT": {"Polish", "Russian"},
	"LV": {"Polish", "Russian"},
	"EE": {"Russian", "Norwegian"},

	// Middle East
	"LB": {"Syrian", "Turkish"},
	"JO": {"Syrian", "Egyptian"},
	"IQ": {"Turkish", "Syrian"},
	"IR": {"Turkish", "Indian"},
	"AE": {"Saudi Arabian", "Indian"},
	"QA": {"Saudi Arabian", "Indian"},
	"KW": {"Saudi Arabian", "Syrian"},
	"BH": {"Saudi Arabian"},
	"OM": {"Saudi Arabian", "Indian"},
	"YE": {"Saudi Arabian", "Egyptian"},
	"PS": {"Syrian", "Egyptian"},

	// Africa
	"NG": {"Kenyan", "Moroccan"},
	"GH": {"Kenyan"},
	"ZA": {"Kenyan", "Indian", "British"},
	"ET": {"Kenyan"},
	"TZ": {"Kenyan", "Indian"},
	"LY": {"Tunisian", "Egyptian"},
	"DZ": {"Moroccan", "Tunisian"},

	// Americas
	"BR": {"Argentinian", "Portuguese"},
	"CO": {"Mexican", "Venezulan"},
	"CL": {"Argentinian", "Mexican"},
	"PE": {"Mexican", "Argentinian"},
	"PR": {"Jamaican", "Mexican"},
	"CU": {"Jamaican", "Mexican"},

	// Asia
	"KR": {"Japanese", "Chinese"},
	"TW": {"Chinese", "Japanese"},
	"HK": {"Chinese"},
	"SG": {"Malaysian", "Chinese", "Indian"},
	"ID": {"Malaysian", "Indian"},
	"PK": {"Indian"},
	"BD": {"Indian"},
	"LK": {"Indian"},
	"NP": {"Indian"},
	"MM": {"Thai", "Indian"},
	"KH": {"Thai", "Vietnamese"},
	"LA": {"Thai", "Vietnamese"},

	// Oceania
	"NZ": {"Australian", "British"},
}

// defaultAreas is used for unknown or unmapped locations.
var defaultAreas = []string{"Italian", "Mexican", "Indian", "Chinese"}

// AreasForCountry returns the prioritized area list for a country code,
// or the default list for unknown/unmapped codes.
func AreasForCountry(countryCode string) []string {
	if countryCode == "" {
		return defaultAreas
	}
	if areas, ok := countryAreas[countryCode]; ok {
		return areas
	}
	return defaultAreas
}
