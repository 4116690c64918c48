package server

import (
	"net/http"

	"github.com/alexanderramin/trainingtask/internal/contract"
	"github.com/alexanderramin/trainingtask/internal/repository"
	"github.com/google/uuid"
)

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	projects, err := repository.NewSQLiteProjectRepo(s.db).List(r.Context(), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out := make([]contract.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, contract.FromProject(*p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var in contract.Project
	if err := decodeBody(r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	// IDs are server-assigned; an ID in the body is ignored.
	p := in.ToDomain()
	p.ID = uuid.New().String()
	if err := p.Validate(); err != nil {
		s.fail(w, r, badRequest("%v", err))
		return
	}
	if err := repository.NewSQLiteProjectRepo(s.db).Create(r.Context(), &p); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract.FromProject(p))
}

func (s *Server) listEmployees(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	employees, err := repository.NewSQLiteEmployeeRepo(s.db).List(r.Context(), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out := make([]contract.Employee, 0, len(employees))
	for _, e := range employees {
		out = append(out, contract.FromEmployee(*e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createEmployee(w http.ResponseWriter, r *http.Request) {
	var in contract.Employee
	if err := decodeBody(r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	e := in.ToDomain()
	e.ID = uuid.New().String()
	if err := e.Validate(); err != nil {
		s.fail(w, r, badRequest("%v", err))
		return
	}
	if err := repository.NewSQLiteEmployeeRepo(s.db).Create(r.Context(), &e); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract.FromEmployee(e))
}
