package directory

import (
	"slices"
	"strings"

	"github.com/dalemusser/userdirectory/internal/domain/models"
	"golang.org/x/text/cases"
)

// CompareFunc orders two field values; Collator.Compare is the usual one.
type CompareFunc func(a, b string) int

// FilterByCountry keeps the users whose country contains text, ignoring case.
// Whitespace in text is significant. Empty text is the identity filter and
// returns users itself.
func FilterByCountry(users []models.User, text string) []models.User {
	if text == "" {
		return users
	}

	fold := cases.Fold()
	needle := fold.String(text)

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(fold.String(u.Location.Country), needle) {
			out = append(out, u)
		}
	}
	return out
}

// SortUsers returns users ordered ascending by key using cmp. The input slice
// is never reordered; SortNone returns it as is. Equal keys keep input order.
func SortUsers(users []models.User, key SortKey, cmp CompareFunc) []models.User {
	if key == SortNone || key == "" {
		return users
	}

	out := slices.Clone(users)
	slices.SortStableFunc(out, func(a, b models.User) int {
		return cmp(key.field(a), key.field(b))
	})
	return out
}

// Derive filters then sorts.
func Derive(users []models.User, filter string, key SortKey, cmp CompareFunc) []models.User {
	return SortUsers(FilterByCountry(users, filter), key, cmp)
}
