package domain

// Destination is a travel destination known to the planner.
type Destination struct {
	// ID is the stable destination identifier (e.g., "paris")
	ID string `json:"id"`

	// Name is the display name (e.g., "파리")
	Name string `json:"name"`

	// Country is the destination country name
	Country string `json:"country"`

	// Airport is the IATA code of the destination's main airport
	Airport string `json:"airport"`
}

// Destinations is the fixed destination catalog.
var Destinations = []Destination{
	{ID: "paris", Name: "파리", Country: "프랑스", Airport: "CDG"},
	{ID: "tokyo", Name: "도쿄", Country: "일본", Airport: "NRT"},
	{ID: "santorini", Name: "산토리니", Country: "그리스", Airport: "JTR"},
	{ID: "bali", Name: "발리", Country: "인도네시아", Airport: "DPS"},
	{ID: "iceland", Name: "아이슬란드", Country: "아이슬란드", Airport: "KEF"},
	{ID: "maldives", Name: "몰디브", Country: "몰디브", Airport: "MLE"},
}

// FindDestination looks up a destination by ID.
// The second return value reports whether the destination is known.
func FindDestination(id string) (Destination, bool) {
	for _, d := range Destinations {
		if d.ID == id {
			return d, true
		}
	}
	return Destination{}, false
}
