package remote

import (
	"context"

	"github.com/alexanderramin/trainingtask/internal/domain"
)

// Fetcher runs list calls in the background and hands each result to a
// callback exactly once. Callbacks run on the fetch goroutine; receivers
// must do their own synchronization.
type Fetcher struct {
	client Client
}

func NewFetcher(client Client) *Fetcher {
	return &Fetcher{client: client}
}

// FetchProjects starts loading the project list.
func (f *Fetcher) FetchProjects(ctx context.Context, done func([]domain.Project, error)) {
	go func() {
		projects, err := f.client.ListProjects(ctx)
		done(projects, err)
	}()
}

// FetchEmployees starts loading the employee list.
func (f *Fetcher) FetchEmployees(ctx context.Context, done func([]domain.Employee, error)) {
	go func() {
		employees, err := f.client.ListEmployees(ctx)
		done(employees, err)
	}()
}
