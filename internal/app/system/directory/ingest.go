package directory

import (
	"strings"

	"github.com/dalemusser/userdirectory/internal/app/system/htmlsanitize"
	"github.com/dalemusser/userdirectory/internal/app/system/normalize"
	"github.com/dalemusser/userdirectory/internal/domain/models"
	emailaddress "github.com/mcnijman/go-emailaddress"
	"go.uber.org/zap"
)

// Accept prepares a fetched batch for use as a view's base set. Displayed
// strings are stripped of markup. Records with an empty email, or one that
// repeats an earlier record's email, are dropped so email stays a unique key.
// An email the address parser rejects is kept as sent and logged. The input
// slice is not modified.
func Accept(batch []models.User, logger *zap.Logger) []models.User {
	seen := make(map[string]struct{}, len(batch))
	out := make([]models.User, 0, len(batch))

	for i, u := range batch {
		u = clean(u)

		u.Email = strings.TrimSpace(u.Email)
		key := normalize.Email(u.Email)
		if key == "" {
			logger.Warn("dropping user without email", zap.Int("index", i))
			continue
		}
		if addr, err := emailaddress.Parse(u.Email); err != nil {
			// The parser only knows ASCII local parts; names with accents fail here.
			logger.Warn("keeping user with unrecognized email",
				zap.Int("index", i),
				zap.String("email", u.Email),
				zap.Error(err))
		} else {
			u.Email = addr.String()
		}

		if _, dup := seen[key]; dup {
			logger.Warn("dropping user with duplicate email",
				zap.Int("index", i),
				zap.String("email", u.Email))
			continue
		}
		seen[key] = struct{}{}
		out = append(out, u)
	}

	return out
}

func clean(u models.User) models.User {
	u.Name.Title = htmlsanitize.Text(u.Name.Title)
	u.Name.First = htmlsanitize.Text(u.Name.First)
	u.Name.Last = htmlsanitize.Text(u.Name.Last)
	u.Location.City = htmlsanitize.Text(u.Location.City)
	u.Location.State = htmlsanitize.Text(u.Location.State)
	u.Location.Country = htmlsanitize.Text(u.Location.Country)
	u.Email = htmlsanitize.Text(u.Email)
	return u
}
