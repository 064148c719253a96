// Package geo models the closed country and subdivision code system used by
// the meet data set. Country is a fixed enumeration; State pairs a country
// with one of its modeled subdivisions and serializes as a combined code
// like "USA-NY". Adding a country or subdivision is a schema change, not a
// runtime operation.
package geo

import (
	"errors"
	"fmt"
)

// Country is a closed enumeration of the home countries appearing in the
// meet data set. The string form is the exact spelling used in CSV files.
type Country int

const (
	Algeria Country = iota
	Argentina
	Armenia
	Aruba
	Australia
	Austria
	Azerbaijan
	Belarus
	Belgium
	Bolivia
	Brazil
	Bulgaria
	Canada
	Chile
	China
	Colombia
	CostaRica
	Croatia
	Czechia
	Denmark
	Ecuador
	Egypt
	ElSalvador
	England
	Estonia
	Fiji
	Finland
	France
	Georgia
	Germany
	Greece
	Guatemala
	Guyana
	HongKong
	Hungary
	Iceland
	India
	Indonesia
	Iran
	Iraq
	Ireland
	Israel
	Italy
	Japan
	Kazakhstan
	Kuwait
	Kyrgyzstan
	Latvia
	Lithuania
	Luxembourg
	Malaysia
	Mexico
	Moldova
	Mongolia
	Morocco
	Nauru
	Netherlands
	NewCaledonia
	NewZealand
	Nicaragua
	NorthernIreland
	Norway
	Oman
	Pakistan
	PapuaNewGuinea
	Paraguay
	Peru
	Philippines
	Poland
	Portugal
	PuertoRico
	Qatar
	Romania
	Russia
	Samoa
	Scotland
	Serbia
	Singapore
	Slovakia
	Slovenia
	SouthAfrica
	SouthKorea
	Spain
	SriLanka
	Sweden
	Switzerland
	Taiwan
	Tajikistan
	Thailand
	Turkey
	UAE
	UK
	Ukraine
	Uruguay
	USA
	USVirginIslands
	Uzbekistan
	Venezuela
	Vietnam
	Wales
)

// countryNames is indexed by Country. Order must match the const block.
var countryNames = [...]string{
	"Algeria",
	"Argentina",
	"Armenia",
	"Aruba",
	"Australia",
	"Austria",
	"Azerbaijan",
	"Belarus",
	"Belgium",
	"Bolivia",
	"Brazil",
	"Bulgaria",
	"Canada",
	"Chile",
	"China",
	"Colombia",
	"CostaRica",
	"Croatia",
	"Czechia",
	"Denmark",
	"Ecuador",
	"Egypt",
	"ElSalvador",
	"England",
	"Estonia",
	"Fiji",
	"Finland",
	"France",
	"Georgia",
	"Germany",
	"Greece",
	"Guatemala",
	"Guyana",
	"HongKong",
	"Hungary",
	"Iceland",
	"India",
	"Indonesia",
	"Iran",
	"Iraq",
	"Ireland",
	"Israel",
	"Italy",
	"Japan",
	"Kazakhstan",
	"Kuwait",
	"Kyrgyzstan",
	"Latvia",
	"Lithuania",
	"Luxembourg",
	"Malaysia",
	"Mexico",
	"Moldova",
	"Mongolia",
	"Morocco",
	"Nauru",
	"Netherlands",
	"NewCaledonia",
	"NewZealand",
	"Nicaragua",
	"NorthernIreland",
	"Norway",
	"Oman",
	"Pakistan",
	"PapuaNewGuinea",
	"Paraguay",
	"Peru",
	"Philippines",
	"Poland",
	"Portugal",
	"PuertoRico",
	"Qatar",
	"Romania",
	"Russia",
	"Samoa",
	"Scotland",
	"Serbia",
	"Singapore",
	"Slovakia",
	"Slovenia",
	"SouthAfrica",
	"SouthKorea",
	"Spain",
	"SriLanka",
	"Sweden",
	"Switzerland",
	"Taiwan",
	"Tajikistan",
	"Thailand",
	"Turkey",
	"UAE",
	"UK",
	"Ukraine",
	"Uruguay",
	"USA",
	"USVirginIslands",
	"Uzbekistan",
	"Venezuela",
	"Vietnam",
	"Wales",
}

var countryByName = make(map[string]Country, len(countryNames))

func init() {
	for i, name := range countryNames {
		countryByName[name] = Country(i)
	}
}

// ErrVariantNotFound reports that an input matched no member of a closed
// enumeration: an unknown country name, a country without modeled
// subdivisions, or a subdivision code that is not a member for its country.
var ErrVariantNotFound = errors.New("variant not found")

// String returns the canonical spelling, e.g. "USA" or "NewZealand".
func (c Country) String() string {
	if c < 0 || int(c) >= len(countryNames) {
		return fmt.Sprintf("Country(%d)", int(c))
	}
	return countryNames[c]
}

// ParseCountry parses the exact, case-sensitive country spelling.
func ParseCountry(s string) (Country, error) {
	if c, ok := countryByName[s]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown country %q: %w", s, ErrVariantNotFound)
}

// Countries returns every member of the enumeration in canonical order.
func Countries() []Country {
	all := make([]Country, len(countryNames))
	for i := range all {
		all[i] = Country(i)
	}
	return all
}

// HasSubdivisions reports whether the country has modeled subdivisions.
func (c Country) HasSubdivisions() bool {
	_, ok := subdivisions[c]
	return ok
}
