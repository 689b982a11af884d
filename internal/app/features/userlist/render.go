package userlist

import (
	"github.com/dalemusser/userdirectory/internal/app/system/directory"
	"github.com/dalemusser/userdirectory/internal/domain/models"
)

// Rows turns the derived sequence into table rows. When colorize is set,
// rows alternate between the even and odd classes. It holds no state.
func Rows(users []models.User, colorize bool) []Row {
	rows := make([]Row, 0, len(users))
	for i, u := range users {
		row := Row{
			Position:  i + 1,
			Email:     u.Email,
			First:     u.Name.First,
			Last:      u.Name.Last,
			Country:   u.Location.Country,
			Thumbnail: u.Picture.Thumbnail,
		}
		if colorize {
			if i%2 == 0 {
				row.RowClass = "row-even"
			} else {
				row.RowClass = "row-odd"
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func sortOptions(active directory.SortKey) []sortOption {
	opts := make([]sortOption, 0, len(directory.SortKeys))
	for _, k := range directory.SortKeys {
		opts = append(opts, sortOption{
			Key:    string(k),
			Label:  k.Label(),
			Active: k == active,
		})
	}
	return opts
}
