// internal/domain/models/user.go
package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// User is one record from the random-user API.
//
// The view never edits a User; it only includes, excludes, and reorders them.
// Email is the key that identifies a record within a view.
type User struct {
	Gender     string     `json:"gender"`
	Name       Name       `json:"name"`
	Location   Location   `json:"location"`
	Email      string     `json:"email"`
	Login      Login      `json:"login"`
	Dob        DatedAge   `json:"dob"`
	Registered DatedAge   `json:"registered"`
	Phone      string     `json:"phone"`
	Cell       string     `json:"cell"`
	ID         Identifier `json:"id"`
	Picture    Picture    `json:"picture"`
	Nat        string     `json:"nat"`
}

type Name struct {
	Title string `json:"title"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// Full returns "First Last", skipping empty parts.
func (n Name) Full() string {
	return strings.TrimSpace(n.First + " " + n.Last)
}

type Location struct {
	Street      Street      `json:"street"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	Postcode    Postcode    `json:"postcode"`
	Coordinates Coordinates `json:"coordinates"`
	Timezone    Timezone    `json:"timezone"`
}

type Street struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type Timezone struct {
	Offset      string `json:"offset"`
	Description string `json:"description"`
}

// Login carries the public login fields; password material is not decoded.
type Login struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}

type DatedAge struct {
	Date string `json:"date"`
	Age  int    `json:"age"`
}

type Identifier struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Picture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Thumbnail string `json:"thumbnail"`
}

// Postcode accepts both the string and the numeric form the API mixes
// depending on nationality.
type Postcode string

func (p *Postcode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Postcode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*p = Postcode(n.String())
	return nil
}
