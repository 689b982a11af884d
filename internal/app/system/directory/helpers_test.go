package directory_test

import (
	"context"
	"sync/atomic"

	"github.com/dalemusser/userdirectory/internal/domain/models"
)

func user(email, first, last, country string) models.User {
	return models.User{
		Email:    email,
		Name:     models.Name{First: first, Last: last},
		Location: models.Location{Country: country},
	}
}

func emails(users []models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Email
	}
	return out
}

type fakeSource struct {
	users []models.User
	err   error
	calls int32
}

func (f *fakeSource) FetchUsers(ctx context.Context) ([]models.User, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}
