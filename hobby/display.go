package hobby

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName formats a canonical hobby for headings: "rock climbing" -> "Rock Climbing".
func DisplayName(hobby string) string {
	// a Caser holds state and cannot be shared between goroutines
	return cases.Title(language.English).String(hobby)
}
