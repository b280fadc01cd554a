package domain

import (
	"strings"
	"unicode"
)

// AirlineEntry maps an airline name to its IATA code.
type AirlineEntry struct {
	// Code is the IATA airline code (e.g., "KE")
	Code string

	// Name is the airline name as reported by the remote backend
	Name string
}

// Airlines is the fixed airline table used for code lookup and for the
// synthetic fallback offers. Names are the Korean carrier names the remote
// backend reports.
var Airlines = []AirlineEntry{
	{Code: "KE", Name: "대한항공"},
	{Code: "OZ", Name: "아시아나항공"},
	{Code: "AF", Name: "에어프랑스"},
	{Code: "LH", Name: "루프트한자"},
	{Code: "JL", Name: "일본항공"},
	{Code: "ANA", Name: "전일본공수"},
	{Code: "EK", Name: "에미레이트"},
	{Code: "QR", Name: "카타르항공"},
}

// LookupAirlineCode resolves an airline name to an IATA code using substring
// matching against the fixed table. Unknown names fall back to the uppercase
// letters-only prefix of the name (first two characters).
func LookupAirlineCode(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	for _, entry := range Airlines {
		if strings.Contains(trimmed, entry.Name) || strings.Contains(entry.Name, trimmed) {
			return entry.Code
		}
	}
	return airlineCodeFromName(trimmed)
}

// airlineCodeFromName derives a two-character code from the letters of the
// airline name.
func airlineCodeFromName(name string) string {
	var letters []rune
	for _, r := range name {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
			if len(letters) == 2 {
				break
			}
		}
	}
	return strings.ToUpper(string(letters))
}
