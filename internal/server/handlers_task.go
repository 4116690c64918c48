package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/alexanderramin/trainingtask/internal/contract"
	"github.com/alexanderramin/trainingtask/internal/db"
	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/alexanderramin/trainingtask/internal/repository"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	repo := repository.NewSQLiteTaskRepo(s.db)
	var tasks []*domain.Task
	if projectID := r.URL.Query().Get("project"); projectID != "" {
		tasks, err = repo.ListByProject(r.Context(), projectID, limit)
	} else {
		tasks, err = repo.List(r.Context(), limit)
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out := make([]contract.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, contract.FromTask(*t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	t, err := repository.NewSQLiteTaskRepo(s.db).GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.FromTask(*t))
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	t, err := decodeTask(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	t.ID = uuid.New().String()

	var stored *domain.Task
	err = s.uow.WithinTx(r.Context(), func(ctx context.Context, tx db.DBTX) error {
		if err := checkReferences(ctx, tx, &t); err != nil {
			return err
		}
		repo := repository.NewSQLiteTaskRepo(tx)
		if err := repo.Create(ctx, &t); err != nil {
			return err
		}
		stored, err = repo.GetByID(ctx, t.ID)
		return err
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract.FromTask(*stored))
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	t, err := decodeTask(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	id := mux.Vars(r)["id"]
	if t.ID != "" && t.ID != id {
		s.fail(w, r, badRequest("body id %q does not match path id %q", t.ID, id))
		return
	}
	t.ID = id

	var stored *domain.Task
	err = s.uow.WithinTx(r.Context(), func(ctx context.Context, tx db.DBTX) error {
		if err := checkReferences(ctx, tx, &t); err != nil {
			return err
		}
		repo := repository.NewSQLiteTaskRepo(tx)
		if err := repo.Update(ctx, &t); err != nil {
			return err
		}
		stored, err = repo.GetByID(ctx, t.ID)
		return err
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.FromTask(*stored))
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	if err := repository.NewSQLiteTaskRepo(s.db).Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeTask(r *http.Request) (domain.Task, error) {
	var in contract.Task
	if err := decodeBody(r, &in); err != nil {
		return domain.Task{}, err
	}
	t, err := in.ToDomain()
	if err != nil {
		return domain.Task{}, badRequest("%v", err)
	}
	if err := t.Validate(); err != nil {
		return domain.Task{}, badRequest("%v", err)
	}
	return t, nil
}

// checkReferences resolves the task's project and employee inside tx. A
// missing reference is the caller's fault, not a missing task.
func checkReferences(ctx context.Context, tx db.DBTX, t *domain.Task) error {
	p, err := repository.NewSQLiteProjectRepo(tx).GetByID(ctx, t.Project.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return badRequest("unknown project %q", t.Project.ID)
	}
	if err != nil {
		return err
	}
	e, err := repository.NewSQLiteEmployeeRepo(tx).GetByID(ctx, t.Employee.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return badRequest("unknown employee %q", t.Employee.ID)
	}
	if err != nil {
		return err
	}
	t.Project = *p
	t.Employee = *e
	return nil
}
