// internal/app/features/userlist/types.go
package userlist

import "github.com/dalemusser/userdirectory/internal/app/system/viewdata"

// Row is one rendered table row.
type Row struct {
	Position  int
	Email     string
	First     string
	Last      string
	Country   string
	Thumbnail string
	RowClass  string // "", row-even, row-odd
}

// sortOption is one button in the sort control group.
type sortOption struct {
	Key    string
	Label  string
	Active bool
}

// View model for the user list page and its table snippet.
type pageData struct {
	viewdata.BaseVM

	Colorize  bool
	Sort      string
	SortLabel string
	Country   string

	Loaded   bool
	Original int
	Current  int
	Shown    int

	SortOptions []sortOption
	Rows        []Row
}
