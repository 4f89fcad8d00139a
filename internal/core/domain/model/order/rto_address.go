package order

// DefaultRTOCountry is used when an RTO address is set without a country.
const DefaultRTOCountry = "India"

// RTOAddress is the structured postal address used for the return-to-origin
// path. Subfields default to empty strings (country to DefaultRTOCountry)
// and are populated only when an RTO path is entered. Setting an RTO address
// is a full overwrite, never a partial merge.
type RTOAddress struct {
	line1      string
	line2      string
	city       string
	state      string
	postalCode string
	country    string
}

// NewRTOAddress creates an RTO address, defaulting an empty country to
// DefaultRTOCountry. All other unsupplied fields stay empty strings.
func NewRTOAddress(line1, line2, city, state, postalCode, country string) RTOAddress {
	if country == "" {
		country = DefaultRTOCountry
	}
	return RTOAddress{
		line1:      line1,
		line2:      line2,
		city:       city,
		state:      state,
		postalCode: postalCode,
		country:    country,
	}
}

// EmptyRTOAddress returns the default (unpopulated) address.
func EmptyRTOAddress() RTOAddress {
	return RTOAddress{country: DefaultRTOCountry}
}

// Line1 returns the first address line.
func (a RTOAddress) Line1() string { return a.line1 }

// Line2 returns the second address line.
func (a RTOAddress) Line2() string { return a.line2 }

// City returns the city.
func (a RTOAddress) City() string { return a.city }

// State returns the state.
func (a RTOAddress) State() string { return a.state }

// PostalCode returns the postal code.
func (a RTOAddress) PostalCode() string { return a.postalCode }

// Country returns the country, never empty.
func (a RTOAddress) Country() string { return a.country }
