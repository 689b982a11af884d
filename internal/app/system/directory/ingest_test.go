package directory_test

import (
	"slices"
	"testing"

	"github.com/dalemusser/userdirectory/internal/app/system/directory"
	"github.com/dalemusser/userdirectory/internal/domain/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccept_StripsMarkup(t *testing.T) {
	batch := []models.User{
		user("a@x.com", "<b>Ana</b>", "Quispe", `<a href="javascript:x()">Perú</a>`),
	}
	got := directory.Accept(batch, zap.NewNop())

	if len(got) != 1 {
		t.Fatalf("expected 1 user, got %d", len(got))
	}
	if got[0].Name.First != "Ana" {
		t.Errorf("first name: got %q, want %q", got[0].Name.First, "Ana")
	}
	if got[0].Location.Country != "Perú" {
		t.Errorf("country: got %q, want %q", got[0].Location.Country, "Perú")
	}
	if batch[0].Name.First != "<b>Ana</b>" {
		t.Error("Accept modified its input")
	}
}

func TestAccept_KeepsFirstOfDuplicates(t *testing.T) {
	batch := []models.User{
		user("a@x.com", "Ana", "Quispe", "Perú"),
		user("b@x.com", "Benjamín", "Rojas", "Chile"),
		user("a@X.com", "Another", "Ana", "Perú"),
	}
	got := directory.Accept(batch, zap.NewNop())

	if !slices.Equal(emails(got), []string{"a@x.com", "b@x.com"}) {
		t.Errorf("got %v", emails(got))
	}
	if got[0].Name.Last != "Quispe" {
		t.Errorf("expected first occurrence kept, got %q", got[0].Name.Last)
	}
}

func TestAccept_DropsEmptyEmails(t *testing.T) {
	batch := []models.User{
		user("", "No", "Email", "Chile"),
		user("   ", "Blank", "Email", "Chile"),
		user("ok@example.com", "Good", "Email", "Chile"),
	}
	got := directory.Accept(batch, zap.NewNop())
	if !slices.Equal(emails(got), []string{"ok@example.com"}) {
		t.Errorf("got %v", emails(got))
	}
}

func TestAccept_KeepsAccentedLocalParts(t *testing.T) {
	batch := []models.User{
		user("zoé.martin@example.com", "Zoé", "Martin", "France"),
		user("oğuz.kaya@example.com", "Oğuz", "Kaya", "Turkey"),
		user("a@x.com", "Ana", "Quispe", "Perú"),
		user("ZOÉ.MARTIN@example.com", "Zoé", "Again", "France"),
	}
	core, logs := observer.New(zap.WarnLevel)
	got := directory.Accept(batch, zap.New(core))

	want := []string{"zoé.martin@example.com", "oğuz.kaya@example.com", "a@x.com"}
	if !slices.Equal(emails(got), want) {
		t.Fatalf("got %v, want %v", emails(got), want)
	}
	if n := logs.FilterMessage("keeping user with unrecognized email").Len(); n < 2 {
		t.Errorf("expected a warning per unrecognized email, got %d", n)
	}
	if n := logs.FilterMessage("dropping user with duplicate email").Len(); n != 1 {
		t.Errorf("duplicate warnings: got %d, want 1", n)
	}
}

func TestAccept_KeepsUnrecognizedEmails(t *testing.T) {
	batch := []models.User{
		user("missing-at.example.com", "Odd", "Email", "Chile"),
		user("ok@example.com", "Good", "Email", "Chile"),
	}
	got := directory.Accept(batch, zap.NewNop())
	if !slices.Equal(emails(got), []string{"missing-at.example.com", "ok@example.com"}) {
		t.Errorf("got %v", emails(got))
	}
}

func TestAccept_Empty(t *testing.T) {
	got := directory.Accept(nil, zap.NewNop())
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in      string
		want    directory.SortKey
		wantErr bool
	}{
		{"", directory.SortNone, false},
		{"none", directory.SortNone, false},
		{"country", directory.SortCountry, false},
		{" Country ", directory.SortCountry, false},
		{"first", directory.SortFirstName, false},
		{"LAST", directory.SortLastName, false},
		{"email", directory.SortNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := directory.ParseSortKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortKey_Label(t *testing.T) {
	for _, k := range directory.SortKeys {
		if k.Label() == "" {
			t.Errorf("empty label for %q", k)
		}
	}
	if directory.SortCountry.Label() != "Country" {
		t.Errorf("country label: %q", directory.SortCountry.Label())
	}
}
