package directory_test

import (
	"slices"
	"testing"

	"github.com/dalemusser/userdirectory/internal/app/system/directory"
	"github.com/dalemusser/userdirectory/internal/domain/models"
)

func sample() []models.User {
	return []models.User{
		user("a@x.com", "Ana", "Quispe", "Perú"),
		user("b@x.com", "Benjamín", "Rojas", "Chile"),
		user("c@x.com", "Émile", "Dubois", "France"),
		user("d@x.com", "Zoe", "Álvarez", "Spain"),
		user("e@x.com", "Ole", "Berg", "Norway"),
	}
}

func mustCollator(t *testing.T, locale string) *directory.Collator {
	t.Helper()
	c, err := directory.NewCollator(locale)
	if err != nil {
		t.Fatalf("NewCollator(%q): %v", locale, err)
	}
	return c
}

func TestFilterByCountry_EmptyIsIdentity(t *testing.T) {
	users := sample()
	got := directory.FilterByCountry(users, "")
	if !slices.Equal(emails(got), emails(users)) {
		t.Errorf("got %v, want %v", emails(got), emails(users))
	}
}

func TestFilterByCountry_SpaceIsSignificant(t *testing.T) {
	users := append(sample(), user("f@x.com", "Sam", "Lee", "United States"))

	got := emails(directory.FilterByCountry(users, " "))
	if !slices.Equal(got, []string{"f@x.com"}) {
		t.Errorf("filter %q: got %v, want [f@x.com]", " ", got)
	}
	if got := directory.FilterByCountry(users, " per"); len(got) != 0 {
		t.Errorf("leading space should not match Perú, got %v", emails(got))
	}
}

func TestFilterByCountry_CaseInsensitiveSubstring(t *testing.T) {
	users := sample()
	tests := []struct {
		text string
		want []string
	}{
		{"per", []string{"a@x.com"}},
		{"PER", []string{"a@x.com"}},
		{"Perú", []string{"a@x.com"}},
		{"an", []string{"c@x.com"}},
		{"a", []string{"c@x.com", "d@x.com", "e@x.com"}},
		{"xyz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := emails(directory.FilterByCountry(users, tt.text))
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterByCountry_DoesNotModifyInput(t *testing.T) {
	users := sample()
	before := emails(users)
	_ = directory.FilterByCountry(users, "a")
	if !slices.Equal(emails(users), before) {
		t.Errorf("input changed: %v", emails(users))
	}
}

func TestSortUsers_NoneKeepsOrder(t *testing.T) {
	users := sample()
	got := directory.SortUsers(users, directory.SortNone, mustCollator(t, "en").Compare)
	if !slices.Equal(emails(got), emails(users)) {
		t.Errorf("got %v, want input order", emails(got))
	}
}

func TestSortUsers_ByCountry(t *testing.T) {
	users := sample()
	got := directory.SortUsers(users, directory.SortCountry, mustCollator(t, "en").Compare)
	want := []string{"b@x.com", "c@x.com", "e@x.com", "a@x.com", "d@x.com"}
	if !slices.Equal(emails(got), want) {
		t.Errorf("got %v, want %v", emails(got), want)
	}
}

func TestSortUsers_AccentsCollateWithBaseLetter(t *testing.T) {
	users := sample()
	c := mustCollator(t, "en")

	first := emails(directory.SortUsers(users, directory.SortFirstName, c.Compare))
	// Ana, Benjamín, Émile, Ole, Zoe
	wantFirst := []string{"a@x.com", "b@x.com", "c@x.com", "e@x.com", "d@x.com"}
	if !slices.Equal(first, wantFirst) {
		t.Errorf("first name: got %v, want %v", first, wantFirst)
	}

	last := emails(directory.SortUsers(users, directory.SortLastName, c.Compare))
	// Álvarez, Berg, Dubois, Quispe, Rojas
	wantLast := []string{"d@x.com", "e@x.com", "c@x.com", "a@x.com", "b@x.com"}
	if !slices.Equal(last, wantLast) {
		t.Errorf("last name: got %v, want %v", last, wantLast)
	}
}

func TestSortUsers_PreservesMultisetAndInput(t *testing.T) {
	users := sample()
	before := emails(users)

	got := directory.SortUsers(users, directory.SortLastName, mustCollator(t, "en").Compare)

	if !slices.Equal(emails(users), before) {
		t.Errorf("input reordered: %v", emails(users))
	}
	a, b := emails(got), slices.Clone(before)
	slices.Sort(a)
	slices.Sort(b)
	if !slices.Equal(a, b) {
		t.Errorf("sorted multiset differs: %v vs %v", a, b)
	}
}

func TestSortUsers_StableForEqualKeys(t *testing.T) {
	users := []models.User{
		user("1@x.com", "A", "A", "Chile"),
		user("2@x.com", "B", "B", "Chile"),
		user("3@x.com", "C", "C", "Argentina"),
		user("4@x.com", "D", "D", "Chile"),
	}
	got := emails(directory.SortUsers(users, directory.SortCountry, mustCollator(t, "es").Compare))
	want := []string{"3@x.com", "1@x.com", "2@x.com", "4@x.com"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDerive_FiltersThenSorts(t *testing.T) {
	users := sample()
	got := emails(directory.Derive(users, "a", directory.SortCountry, mustCollator(t, "en").Compare))
	// France, Norway, Spain
	want := []string{"c@x.com", "e@x.com", "d@x.com"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNewCollator_InvalidLocale(t *testing.T) {
	if _, err := directory.NewCollator("not a locale!"); err == nil {
		t.Fatal("expected error for invalid locale")
	}
}

func TestNewCollator_DefaultLocale(t *testing.T) {
	c := mustCollator(t, "")
	if c.Locale() != directory.DefaultLocale {
		t.Errorf("Locale: got %q, want %q", c.Locale(), directory.DefaultLocale)
	}
	if c.Compare("Chile", "Perú") >= 0 {
		t.Error("expected Chile to collate before Perú")
	}
}
