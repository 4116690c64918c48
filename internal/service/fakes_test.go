package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/alexanderramin/trainingtask/internal/remote"
)

// fakeClient is an in-memory remote.Client. When gate is set, list calls
// block until it is closed.
type fakeClient struct {
	mu        sync.Mutex
	projects  []domain.Project
	employees []domain.Employee
	tasks     map[string]domain.Task
	listErr   error
	gate      chan struct{}
	nextID    int
	down      bool
}

var _ remote.Client = (*fakeClient)(nil)

func newFakeClient() *fakeClient {
	return &fakeClient{
		projects: []domain.Project{{ID: "p1", Name: "Project A"}, {ID: "p2", Name: "Project B"}},
		employees: []domain.Employee{
			{ID: "e1", LastName: "Jane", FirstName: "Doe"},
			{ID: "e2", LastName: "Ivanov", FirstName: "Ivan", Patronymic: "Ivanovich"},
		},
		tasks: map[string]domain.Task{},
	}
}

func (f *fakeClient) wait(ctx context.Context) error {
	if f.gate == nil {
		return nil
	}
	select {
	case <-f.gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeClient) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Project(nil), f.projects...), f.listErr
}

func (f *fakeClient) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Employee(nil), f.employees...), f.listErr
}

func (f *fakeClient) ListTasks(context.Context) ([]domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeClient) GetTask(_ context.Context, id string) (domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok {
		return domain.Task{}, fmt.Errorf("task %s: %w", id, remote.ErrNotFound)
	}
	return t, nil
}

func (f *fakeClient) CreateTask(_ context.Context, t domain.Task) (domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t.ID = fmt.Sprintf("t%d", f.nextID)
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeClient) UpdateTask(_ context.Context, t domain.Task) (domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[t.ID]; !ok {
		return domain.Task{}, fmt.Errorf("task %s: %w", t.ID, remote.ErrNotFound)
	}
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeClient) DeleteTask(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[id]; !ok {
		return fmt.Errorf("task %s: %w", id, remote.ErrNotFound)
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeClient) CreateProject(_ context.Context, p domain.Project) (domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = fmt.Sprintf("p%d", len(f.projects)+1)
	f.projects = append(f.projects, p)
	return p, nil
}

func (f *fakeClient) CreateEmployee(_ context.Context, e domain.Employee) (domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = fmt.Sprintf("e%d", len(f.employees)+1)
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeClient) Available(context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.down
}

type staticSettings struct {
	s   domain.Settings
	err error
}

func (s staticSettings) GetSettings(context.Context) (domain.Settings, error) {
	return s.s, s.err
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	names := make([]string, 0, len(o.events))
	for _, e := range o.events {
		names = append(names, e.Name)
	}
	return names
}
