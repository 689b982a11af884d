package directory

import (
	"errors"
	"fmt"

	"github.com/dalemusser/userdirectory/internal/app/system/normalize"
	"github.com/dalemusser/userdirectory/internal/domain/models"
)

// SortKey selects the field the derived sequence is ordered by.
type SortKey string

const (
	SortNone      SortKey = "none"
	SortCountry   SortKey = "country"
	SortFirstName SortKey = "first"
	SortLastName  SortKey = "last"
)

// ErrUnknownSortKey is returned by ParseSortKey for anything outside SortKeys.
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKeys lists every selectable key in display order.
var SortKeys = []SortKey{SortNone, SortCountry, SortFirstName, SortLastName}

// ParseSortKey maps a form value to a SortKey. Blank means SortNone.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(normalize.SortKey(s))
	if k == "" {
		return SortNone, nil
	}
	for _, known := range SortKeys {
		if k == known {
			return k, nil
		}
	}
	return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// Label is the human name shown on sort controls.
func (k SortKey) Label() string {
	switch k {
	case SortCountry:
		return "Country"
	case SortFirstName:
		return "First name"
	case SortLastName:
		return "Last name"
	default:
		return "Unsorted"
	}
}

// field returns the value of u the key compares on.
func (k SortKey) field(u models.User) string {
	switch k {
	case SortCountry:
		return u.Location.Country
	case SortFirstName:
		return u.Name.First
	case SortLastName:
		return u.Name.Last
	default:
		return ""
	}
}
