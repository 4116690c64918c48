// Package refcache holds the project and employee lists fetched for the
// current task edit session. Only one session is live at a time; a list
// delivered for any other session is dropped.
package refcache

import (
	"slices"
	"sync"

	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/alexanderramin/trainingtask/internal/taskform"
)

// Session identifies one edit session. The zero value is never current.
type Session uint64

type Cache struct {
	mu        sync.RWMutex
	current   Session
	projects  []domain.Project
	employees []domain.Employee
}

func New() *Cache {
	return &Cache{}
}

// Begin starts a new session, clears the lists and invalidates any
// previous session.
func (c *Cache) Begin() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current++
	c.projects = nil
	c.employees = nil
	return c.current
}

// End invalidates the current session. Lists already stored stay readable
// until the next Begin.
func (c *Cache) End() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current++
}

// Finish ends s if it is still the live session. Unlike End it never
// touches a session started after s.
func (c *Cache) Finish(s Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s != 0 && s == c.current {
		c.current++
	}
}

// Current reports whether s is the live session.
func (c *Cache) Current(s Session) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return s != 0 && s == c.current
}

// SetProjects replaces the project list if s is still live. Later calls
// overwrite earlier ones. It reports whether the list was stored.
func (c *Cache) SetProjects(s Session, projects []domain.Project) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s == 0 || s != c.current {
		return false
	}
	c.projects = slices.Clone(projects)
	return true
}

// SetEmployees replaces the employee list if s is still live.
func (c *Cache) SetEmployees(s Session, employees []domain.Employee) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s == 0 || s != c.current {
		return false
	}
	c.employees = slices.Clone(employees)
	return true
}

// References returns a copy of the cached lists for form validation.
func (c *Cache) References() taskform.References {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return taskform.References{
		Projects:  slices.Clone(c.projects),
		Employees: slices.Clone(c.employees),
	}
}
