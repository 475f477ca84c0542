package booking

// Location is a park city a visit can be booked for
type Location struct {
	Name          string `json:"name"`
	OfferEligible bool   `json:"offer_eligible"`
}

// Locations is the fixed set of bookable parks. OfferEligible is shown to
// customers only; the offer service alone decides whether an offer applies.
var Locations = []Location{
	{Name: "Kochi", OfferEligible: true},
	{Name: "Bangalore", OfferEligible: true},
	{Name: "Hyderabad", OfferEligible: true},
	{Name: "Bhubaneswar", OfferEligible: true},
	{Name: "Chennai"},
	{Name: "Mumbai"},
}

// LookupLocation finds a location by its exact name
func LookupLocation(name string) (Location, bool) {
	for _, l := range Locations {
		if l.Name == name {
			return l, true
		}
	}
	return Location{}, false
}

// IsKnownLocation reports whether name is one of the bookable parks
func IsKnownLocation(name string) bool {
	_, ok := LookupLocation(name)
	return ok
}
