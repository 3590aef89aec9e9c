package task

// VisibleTo computes the subset of tasks the viewer's role may see.
// It is a pure filter over its inputs and preserves task order; callers
// must re-derive it whenever the collection or the identity changes
// rather than caching the result.
//
//	tutor      assigned-to the viewer only
//	executive  assigned to or by the viewer, or administrative
//	hr         administrative or training, or assigned to the viewer
//	admin, manager, anything else: the entire collection
func VisibleTo(tasks []Task, viewer Viewer) []Task {
	switch viewer.Role {
	case RoleTutor:
		return filter(tasks, func(t Task) bool {
			return t.AssignedTo == viewer.UserID
		})
	case RoleExecutive:
		return filter(tasks, func(t Task) bool {
			return t.AssignedTo == viewer.UserID ||
				t.AssignedBy == viewer.UserID ||
				t.Category == CategoryAdministrative
		})
	case RoleHR:
		return filter(tasks, func(t Task) bool {
			return t.Category == CategoryAdministrative ||
				t.Category == CategoryTraining ||
				t.AssignedTo == viewer.UserID
		})
	case RoleAdmin, RoleManager:
		return tasks
	default:
		return tasks
	}
}

func filter(tasks []Task, keep func(Task) bool) []Task {
	visible := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			visible = append(visible, t)
		}
	}
	return visible
}
