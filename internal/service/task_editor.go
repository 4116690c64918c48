package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/alexanderramin/trainingtask/internal/refcache"
	"github.com/alexanderramin/trainingtask/internal/remote"
	"github.com/alexanderramin/trainingtask/internal/taskform"
)

// ErrSessionClosed is returned when saving a session that was cancelled,
// already saved, or superseded by a newer one.
var ErrSessionClosed = errors.New("edit session is no longer active")

type taskEditor struct {
	client   remote.Client
	fetcher  *remote.Fetcher
	cache    *refcache.Cache
	settings SettingsSource
	now      func() time.Time
	observer UseCaseObserver
}

func NewTaskEditor(
	client remote.Client,
	cache *refcache.Cache,
	settings SettingsSource,
	observers ...UseCaseObserver,
) TaskEditor {
	return &taskEditor{
		client:   client,
		fetcher:  remote.NewFetcher(client),
		cache:    cache,
		settings: settings,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Options are the picker values available to the form.
type Options struct {
	Projects  []string
	Employees []string
	Statuses  []string
}

// EditSession is one open task form. Reference lists arrive in the
// background; Save validates against whatever has arrived by then.
type EditSession struct {
	editor   *taskEditor
	session  refcache.Session
	original *domain.Task
	form     taskform.Form
	cancel   context.CancelFunc

	done    chan struct{}
	mu      sync.Mutex
	pending int
	errs    []error
}

// Open fails fast with remote.ErrServerUnavailable when the server does
// not answer its health check, so no session is started against it.
func (e *taskEditor) Open(ctx context.Context, original *domain.Task) (*EditSession, error) {
	if !e.client.Available(ctx) {
		return nil, fmt.Errorf("opening task form: %w", remote.ErrServerUnavailable)
	}

	var form taskform.Form
	if original != nil {
		form = taskform.FormFromTask(*original)
		copied := *original
		original = &copied
	} else {
		s, err := e.settings.GetSettings(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		form = taskform.NewForm(e.now(), s)
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	es := &EditSession{
		editor:   e,
		session:  e.cache.Begin(),
		original: original,
		form:     form,
		cancel:   cancel,
		done:     make(chan struct{}),
		pending:  2,
	}

	e.fetcher.FetchProjects(fetchCtx, func(projects []domain.Project, err error) {
		if err == nil {
			e.cache.SetProjects(es.session, projects)
		}
		es.delivered(err)
	})
	e.fetcher.FetchEmployees(fetchCtx, func(employees []domain.Employee, err error) {
		if err == nil {
			e.cache.SetEmployees(es.session, employees)
		}
		es.delivered(err)
	})
	return es, nil
}

func (s *EditSession) delivered(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errs = append(s.errs, err)
	}
	s.pending--
	if s.pending == 0 {
		close(s.done)
	}
}

// Form returns the pre-filled form for this session.
func (s *EditSession) Form() taskform.Form {
	return s.form
}

// Editing reports whether the session edits an existing task.
func (s *EditSession) Editing() bool {
	return s.original != nil
}

// Wait blocks until both reference lists have been delivered and returns
// any fetch errors.
func (s *EditSession) Wait(ctx context.Context) error {
	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Join(s.errs...)
}

// Options returns the picker values from the cache.
func (s *EditSession) Options() Options {
	refs := s.editor.cache.References()
	return Options{
		Projects:  taskform.ProjectNames(refs.Projects),
		Employees: taskform.EmployeeNames(refs.Employees),
		Statuses:  taskform.StatusTitles(),
	}
}

// Save assembles the task from form and persists it. A form that fails
// validation leaves the session open so the user can correct it; a
// successful save ends the session.
func (s *EditSession) Save(ctx context.Context, form taskform.Form) (saved domain.Task, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"editing": s.Editing()}
	defer func() {
		s.editor.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save-task",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if !s.editor.cache.Current(s.session) {
		return domain.Task{}, ErrSessionClosed
	}

	refs := s.editor.cache.References()
	var task domain.Task
	if s.original != nil {
		task, err = taskform.AssembleEdit(*s.original, form, refs)
	} else {
		task, err = taskform.Assemble(form, refs)
	}
	if err != nil {
		return domain.Task{}, err
	}

	if s.original != nil {
		saved, err = s.editor.client.UpdateTask(ctx, task)
	} else {
		saved, err = s.editor.client.CreateTask(ctx, task)
	}
	if err != nil {
		return domain.Task{}, err
	}
	fields["task_id"] = saved.ID
	s.end()
	return saved, nil
}

// Cancel ends the session. Lists still in flight are discarded.
func (s *EditSession) Cancel() {
	s.end()
}

func (s *EditSession) end() {
	s.cancel()
	s.editor.cache.Finish(s.session)
}
