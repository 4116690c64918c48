package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/alexanderramin/trainingtask/internal/remote"
)

type taskService struct {
	client   remote.Client
	observer UseCaseObserver
}

func NewTaskService(client remote.Client, observers ...UseCaseObserver) TaskService {
	return &taskService{client: client, observer: useCaseObserverOrNoop(observers)}
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.client.ListTasks(ctx)
}

func (s *taskService) Get(ctx context.Context, id string) (domain.Task, error) {
	return s.client.GetTask(ctx, id)
}

func (s *taskService) Remove(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "remove-task",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"task_id": id},
		})
	}()
	if id == "" {
		return fmt.Errorf("task id is required")
	}
	return s.client.DeleteTask(ctx, id)
}

type directoryService struct {
	client   remote.Client
	observer UseCaseObserver
}

func NewDirectoryService(client remote.Client, observers ...UseCaseObserver) DirectoryService {
	return &directoryService{client: client, observer: useCaseObserverOrNoop(observers)}
}

func (s *directoryService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.client.ListProjects(ctx)
}

func (s *directoryService) AddProject(ctx context.Context, p domain.Project) (created domain.Project, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "add-project", startedAt, err, created.ID)
	}()
	if err := p.Validate(); err != nil {
		return domain.Project{}, err
	}
	return s.client.CreateProject(ctx, p)
}

func (s *directoryService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.client.ListEmployees(ctx)
}

func (s *directoryService) AddEmployee(ctx context.Context, e domain.Employee) (created domain.Employee, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "add-employee", startedAt, err, created.ID)
	}()
	if err := e.Validate(); err != nil {
		return domain.Employee{}, err
	}
	return s.client.CreateEmployee(ctx, e)
}

func (s *directoryService) observe(ctx context.Context, name string, startedAt time.Time, err error, id string) {
	fields := map[string]any{}
	if id != "" {
		fields["id"] = id
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
