package geo

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// State pairs a Country with one of that country's modeled subdivisions.
// The zero value is not a valid State; construct one with FromStrAndCountry
// or FromFullCode. State is comparable, so two values constructed from the
// same inputs compare equal with ==.
type State struct {
	country Country
	code    string
}

// ErrMalformedCode reports a combined code that does not have the
// "{Country}-{Subdivision}" shape: zero or more than one hyphen.
var ErrMalformedCode = errors.New("malformed country-state code")

// FromStrAndCountry looks up a bare subdivision code against exactly the
// enumeration belonging to country. This is how the checker interprets the
// MeetState column, where Country and State are separate fields.
//
// Matching is exact and case-sensitive. Subdivision codes are not globally
// unique ("CA" is an Argentina province, a China province abbreviation, and
// a USA state); the country is the disambiguator.
func FromStrAndCountry(code string, country Country) (State, error) {
	members, ok := subdivisionSets[country]
	if !ok {
		return State{}, fmt.Errorf("country %s has no modeled subdivisions: %w", country, ErrVariantNotFound)
	}
	if _, ok := members[code]; !ok {
		return State{}, fmt.Errorf("unknown subdivision %q for country %s: %w", code, country, ErrVariantNotFound)
	}
	return State{country: country, code: code}, nil
}

// FromFullCode constructs a State from a full, unambiguous code like
// "USA-NY". This is how boundaries that carry a State without an adjacent
// Country field interpret the value. Codes of this form are exactly what
// String produces, and FromFullCode routes through the same dispatch table
// as FromStrAndCountry, so the two entry points cannot disagree.
func FromFullCode(s string) (State, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return State{}, fmt.Errorf("%q is not a Country-State code like \"USA-NY\": %w", s, ErrMalformedCode)
	}
	country, err := ParseCountry(parts[0])
	if err != nil {
		return State{}, err
	}
	return FromStrAndCountry(parts[1], country)
}

// ToCountry returns the Country for the given State. Total and pure: the
// country is part of the value, never recomputed from the code.
func (s State) ToCountry() Country {
	return s.country
}

// ToStateString returns just the bare subdivision code, with no country.
func (s State) ToStateString() string {
	return s.code
}

// String returns the canonical combined code, "{Country}-{Subdivision}".
func (s State) String() string {
	return s.country.String() + "-" + s.code
}

// MarshalText serializes the canonical combined code.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a combined code via FromFullCode.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := FromFullCode(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SubdivisionsOf returns a copy of the country's subdivision codes in
// canonical order, or nil if the country has no modeled subdivisions.
func SubdivisionsOf(c Country) []string {
	members, ok := subdivisions[c]
	if !ok {
		return nil
	}
	out := make([]string, len(members))
	copy(out, members)
	return out
}

// ModeledCountries returns the countries with modeled subdivisions, sorted
// by canonical name.
func ModeledCountries() []Country {
	out := make([]Country, 0, len(subdivisions))
	for c := range subdivisions {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// argentinaStates are the provinces of Argentina.
var argentinaStates = []string{
	"CA", // Ciudad Autónoma de Buenos Aires
	"BA", // Buenos Aires
	"CT", // Catamarca
	"CC", // Chaco
	"CH", // Chubut
	"CB", // Córdoba
	"CN", // Corrientes
	"ER", // Entre Ríos
	"FM", // Formosa
	"JY", // Jujuy
	"LP", // La Pampa
	"LR", // La Rioja
	"MZ", // Mendoza
	"MN", // Misiones
	"NQ", // Neuquén
	"RN", // Río Negro
	"SA", // Salta
	"SJ", // San Juan
	"SL", // San Luis
	"SC", // Santa Cruz
	"SF", // Santa Fe
	"SE", // Santiago del Estero
	"TF", // Tierra del Fuego
	"TM", // Tucumán
}

// australiaStates are the states and territories of Australia.
var australiaStates = []string{
	"ACT", // Australian Capital Territory
	"JBT", // Jervis Bay Territory
	"NSW", // New South Wales
	"NT",  // Northern Territory
	"QLD", // Queensland
	"SA",  // South Australia
	"TAS", // Tasmania
	"VIC", // Victoria
	"WA",  // Western Australia
}

// brazilStates are the states of Brazil.
var brazilStates = []string{
	"AC", // Acre
	"AL", // Alagoas
	"AP", // Amapá
	"AM", // Amazonas
	"BA", // Bahia
	"CE", // Ceará
	"DF", // Distrito Federal
	"ES", // Espírito Santo
	"GO", // Goiás
	"MA", // Maranhão
	"MT", // Mato Grosso
	"MS", // Mato Grosso do Sul
	"MG", // Minas Gerais
	"PA", // Pará
	"PB", // Paraíba
	"PR", // Paraná
	"PE", // Pernambuco
	"PI", // Piauí
	"RJ", // Rio de Janeiro
	"RN", // Rio Grande do Norte
	"RS", // Rio Grande do Sul
	"RO", // Rondônia
	"RR", // Roraima
	"SC", // Santa Catarina
	"SP", // São Paulo
	"SE", // Sergipe
	"TO", // Tocantins
}

// canadaStates are the provinces and territories of Canada.
var canadaStates = []string{
	"AB", "BC", "MB", "NB", "NL", "NT", "NS", "NU", "ON", "PE", "QC", "SK", "YT",
}

// chinaStates are the province-level divisions of China. Hong Kong and
// Macau are usually treated as separate countries; they are here for
// completeness.
var chinaStates = []string{
	"AH",  // Anhui
	"BJ",  // Beijing
	"CQ",  // Chongqing
	"FJ",  // Fujian
	"GD",  // Guangdong
	"GS",  // Gansu
	"GX",  // Guangxi
	"GZ",  // Guizhou
	"HEN", // Henan
	"HUB", // Hubei
	"HEB", // Hebei
	"HI",  // Hainan
	"HK",  // Hong Kong
	"HL",  // Heilongjiang
	"HUN", // Hunan
	"JL",  // Jilin
	"JS",  // Jiangsu
	"JX",  // Jiangxi
	"LN",  // Liaoning
	"MO",  // Macau
	"NM",  // Inner Mongolia
	"NX",  // Ningxia
	"QH",  // Qinghai
	"SC",  // Sichuan
	"SD",  // Shandong
	"SH",  // Shanghai
	"SAA", // Shaanxi
	"SAX", // Shanxi
	"TJ",  // Tianjin
	"XJ",  // Xinjiang
	"XZ",  // Tibet
	"YN",  // Yunnan
	"ZJ",  // Zhejiang
}

// englandStates are the (ill-defined) regions of England used by BP. This
// omits divisions not in England: Scotland, N.Ireland, and Wales.
var englandStates = []string{
	"EM",  // East Midlands
	"GL",  // Greater London
	"NM",  // North Midlands
	"NW",  // North West
	"SE",  // South East
	"SM",  // South Midlands
	"SW",  // South West
	"WM",  // West Midlands
	"YNE", // Yorkshire North East
}

// germanyStates are the federal states of Germany.
var germanyStates = []string{
	"BW",  // Baden-Württemberg
	"BY",  // Bavaria
	"BE",  // Berlin
	"BB",  // Brandenburg
	"HB",  // Bremen
	"HE",  // Hesse
	"HH",  // Hamburg
	"MV",  // Mecklenburg-Vorpommern
	"NI",  // Lower Saxony
	"NRW", // North Rhine-Westphalia
	"RP",  // Rhineland-Palatinate
	"SH",  // Schleswig-Holstein
	"SL",  // Saarland
	"SN",  // Saxony
	"ST",  // Saxony-Anhalt
	"TH",  // Thuringia
}

// indiaStates are the states and union territories of India.
var indiaStates = []string{
	"AN", // Andaman and Nicobar Islands
	"AP", // Andhra Pradesh
	"AR", // Arunachal Pradesh
	"AS", // Assam
	"BR", // Bihar
	"CG", // Chhattisgarh
	"CH", // Chandigarh
	"DD", // Daman and Diu
	"DH", // Dadra and Nagar Haveli
	"DL", // Delhi
	"GA", // Goa
	"GJ", // Gujarat
	"HR", // Haryana
	"HP", // Himachal Pradesh
	"JK", // Jammu and Kashmir
	"JH", // Jharkhand
	"KA", // Karnataka
	"KL", // Kerala
	"LD", // Lakshadweep
	"MP", // Madhya Pradesh
	"MH", // Maharashtra
	"MN", // Manipur
	"ML", // Meghalaya
	"MZ", // Mizoram
	"NL", // Nagaland
	"OR", // Orissa
	"PB", // Punjab
	"PY", // Puducherry
	"RJ", // Rajasthan
	"SK", // Sikkim
	"TN", // Tamil Nadu
	"TR", // Tripura
	"UK", // Uttarakhand
	"UP", // Uttar Pradesh
	"WB", // West Bengal
}

// mexicoStates are the states of Mexico.
var mexicoStates = []string{
	"AG", // Aguascalientes
	"BC", // Baja California
	"BS", // Baja California Sur
	"CM", // Campeche
	"CS", // Chiapas
	"CH", // Chihuahua
	"CO", // Coahuila
	"CL", // Colima
	"DF", // Mexico City
	"DG", // Durango
	"GT", // Guanajuato
	"GR", // Guerrero
	"HG", // Hidalgo
	"JA", // Jalisco
	"EM", // México
	"MI", // Michoacán
	"MO", // Morelos
	"NA", // Nayarit
	"NL", // Nuevo León
	"OA", // Oaxaca
	"PU", // Puebla
	"QT", // Querétaro
	"QR", // Quintana Roo
	"SL", // San Luis Potosí
	"SI", // Sinaloa
	"SO", // Sonora
	"TB", // Tabasco
	"TM", // Tamaulipas
	"TL", // Tlaxcala
	"VE", // Veracruz
	"YU", // Yucatán
	"ZA", // Zacatecas
}

// netherlandsStates are the provinces of the Netherlands.
var netherlandsStates = []string{
	"DR", // Drenthe
	"FL", // Flevoland
	"FR", // Friesland
	"GE", // Gelderland
	"GR", // Groningen
	"LI", // Limburg
	"NB", // North Brabant
	"NH", // North Holland
	"OV", // Overijssel
	"UT", // Utrecht
	"ZE", // Zeeland
	"ZH", // South Holland
}

// newZealandStates are the regions of New Zealand.
var newZealandStates = []string{
	"NTL", // Northland
	"AKL", // Auckland
	"WKO", // Waikato
	"BOP", // Bay of Plenty
	"GIS", // Gisborne
	"HKB", // Hawke's Bay
	"TKI", // Taranaki
	"MWT", // Manawatu-Whanganui
	"WGN", // Wellington
	"TAS", // Tasman
	"NSN", // Nelson
	"MBH", // Marlborough
	"WTC", // West Coast
	"CAN", // Canterbury
	"OTA", // Otago
	"STL", // Southland
}

// romaniaStates are the counties of Romania.
var romaniaStates = []string{
	"AB", // Alba
	"AG", // Argeș
	"AR", // Arad
	"B",  // Bucharest
	"BC", // Bacău
	"BH", // Bihor
	"BN", // Bistrița-Năsăud
	"BR", // Brăila
	"BT", // Botoșani
	"BV", // Brașov
	"BZ", // Buzău
	"CJ", // Cluj
	"CL", // Călărași
	"CS", // Caraș-Severin
	"CT", // Constanța
	"CV", // Covasna
	"DB", // Dâmbovița
	"DJ", // Dolj
	"GJ", // Gorj
	"GL", // Galați
	"GR", // Giurgiu
	"HD", // Hunedoara
	"HR", // Harghita
	"IF", // Ilfov
	"IL", // Ialomița
	"IS", // Iași
	"MH", // Mehedinți
	"MM", // Maramureș
	"MS", // Mureș
	"NT", // Neamț
	"OT", // Olt
	"PH", // Prahova
	"SB", // Sibiu
	"SJ", // Sălaj
	"SM", // Satu Mare
	"SV", // Suceava
	"TL", // Tulcea
	"TM", // Timiș
	"TR", // Teleorman
	"VL", // Vâlcea
	"VN", // Vrancea
	"VS", // Vaslui
}

// russiaStates are the federal subjects of Russia.
var russiaStates = []string{
	"AD", "AL", "BA", "BU", "CE", "CU", "DA", "IN", "KB", "KL", "KC", "KR", "KK", "KO", "ME", "MO", "SA",
	"SE", "TA", "TY", "UD", "ALT", "KAM", "KHA", "KDA", "KYA", "PER", "PRI", "STA", "ZAB", "AMU", "ARK",
	"AST", "BEL", "BRY", "CHE", "IRK", "IVA", "KGD", "KLU", "KEM", "KIR", "KOS", "KGN", "KRS", "LEN",
	"LIP", "MAG", "MOS", "MUR", "NIZ", "NGR", "NVS", "OMS", "ORE", "ORL", "PNZ", "PSK", "ROS", "RYA",
	"SAK", "SAM", "SAR", "SMO", "SVE", "TAM", "TOM", "TUL", "TVE", "TYE", "TYU", "ULY", "VLA", "VGG",
	"VLG", "VOR", "YAR", "MOW", "SPE", "YEV", "CHU", "KHM", "NEN", "YAN",
}

// southAfricaStates are the provinces of South Africa, using conventional
// (non-ISO) acronyms.
var southAfricaStates = []string{
	"EC",  // Eastern Cape
	"FS",  // Free State
	"GT",  // Gauteng
	"KZN", // KwaZulu-Natal
	"LP",  // Limpopo
	"MP",  // Mpumalanga
	"NC",  // Northern Cape
	"NW",  // North-West
	"WC",  // Western Cape
}

// usaStates are the states of the USA plus DC and Guam, an unincorporated
// territory.
var usaStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI", "ID", "IL", "IN", "IA", "KS",
	"KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC",
	"ND", "OH", "OK", "OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	"Guam",
}

// subdivisions is the dispatch table from Country to its closed subdivision
// enumeration. A country absent from this table has no modeled subdivisions
// and FromStrAndCountry fails for it explicitly rather than silently
// accepting any code.
var subdivisions = map[Country][]string{
	Argentina:   argentinaStates,
	Australia:   australiaStates,
	Brazil:      brazilStates,
	Canada:      canadaStates,
	China:       chinaStates,
	England:     englandStates,
	Germany:     germanyStates,
	India:       indiaStates,
	Mexico:      mexicoStates,
	Netherlands: netherlandsStates,
	NewZealand:  newZealandStates,
	Romania:     romaniaStates,
	Russia:      russiaStates,
	SouthAfrica: southAfricaStates,
	USA:         usaStates,
}

// subdivisionSets mirrors subdivisions for O(1) membership checks.
var subdivisionSets = make(map[Country]map[string]struct{}, len(subdivisions))

func init() {
	for country, members := range subdivisions {
		set := make(map[string]struct{}, len(members))
		for _, code := range members {
			set[code] = struct{}{}
		}
		subdivisionSets[country] = set
	}
}
