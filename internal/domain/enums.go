package domain

// TaskStatus is the lifecycle state of a task. The string value is the
// stable wire/storage code; Title is what users see and type.
type TaskStatus string

const (
	StatusNew        TaskStatus = "new"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
	StatusPostponed  TaskStatus = "postponed"
)

var statusTitles = map[TaskStatus]string{
	StatusNew:        "New",
	StatusInProgress: "In progress",
	StatusDone:       "Done",
	StatusPostponed:  "Postponed",
}

// AllTaskStatuses returns every status in display order.
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{StatusNew, StatusInProgress, StatusDone, StatusPostponed}
}

// Title returns the display title, or the raw code for unknown statuses.
func (s TaskStatus) Title() string {
	if t, ok := statusTitles[s]; ok {
		return t
	}
	return string(s)
}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	_, ok := statusTitles[s]
	return ok
}
