package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/tdx/internal/models"
)

const (
	focusTitle = iota
	focusDescription
	focusDueDate
	focusStatus
)

// taskForm is the create/edit form. The status row only exists in edit mode;
// new tasks always start in To Do.
type taskForm struct {
	title       textinput.Model
	description textarea.Model
	dueDate     textinput.Model
	status      models.TaskStatus
	editing     bool
	focus       int
	errors      map[string]string
	banner      string
}

func newTaskForm(draft models.TaskDraft, editing bool) *taskForm {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 200
	title.SetValue(draft.Title)
	title.Focus()

	description := textarea.New()
	description.Placeholder = "Describe the task"
	description.SetHeight(4)
	description.SetValue(draft.Description)

	dueDate := textinput.New()
	dueDate.Placeholder = "YYYY-MM-DD"
	dueDate.CharLimit = 10
	dueDate.SetValue(draft.DueDate)

	return &taskForm{
		title:       title,
		description: description,
		dueDate:     dueDate,
		status:      draft.Status,
		editing:     editing,
		errors:      map[string]string{},
	}
}

// draft snapshots the current field values.
func (f *taskForm) draft() models.TaskDraft {
	return models.TaskDraft{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		Status:      f.status,
		DueDate:     f.dueDate.Value(),
	}
}

func (f *taskForm) setErrors(errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	f.errors = errs
}

func (f *taskForm) lastFocus() int {
	if f.editing {
		return focusStatus
	}
	return focusDueDate
}

func (f *taskForm) focusNext() {
	f.setFocus(f.focus + 1)
}

func (f *taskForm) focusPrev() {
	f.setFocus(f.focus - 1)
}

func (f *taskForm) setFocus(target int) {
	last := f.lastFocus()
	if target > last {
		target = focusTitle
	}
	if target < focusTitle {
		target = last
	}
	f.focus = target

	f.title.Blur()
	f.description.Blur()
	f.dueDate.Blur()

	switch f.focus {
	case focusTitle:
		f.title.Focus()
	case focusDescription:
		f.description.Focus()
	case focusDueDate:
		f.dueDate.Focus()
	}
}

// cycleStatus rotates the status field through the full enum.
func (f *taskForm) cycleStatus(delta int) {
	statuses := models.Statuses()
	idx := 0
	for i, s := range statuses {
		if s == f.status {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(statuses)) % len(statuses)
	f.status = statuses[idx]
}

// update routes input to the focused field.
func (f *taskForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusDescription:
		f.description, cmd = f.description.Update(msg)
	case focusDueDate:
		f.dueDate, cmd = f.dueDate.Update(msg)
	case focusStatus:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "left", "h":
				f.cycleStatus(-1)
			case "right", "l", " ":
				f.cycleStatus(1)
			}
		}
	}
	return cmd
}

func (f *taskForm) view() string {
	var b strings.Builder

	heading := "New Task"
	if f.editing {
		heading = "Edit Task"
	}
	b.WriteString(styles.title.Render(heading))
	b.WriteString("\n")

	if f.banner != "" {
		b.WriteString(styles.err.Render(f.banner))
		b.WriteString("\n\n")
	}

	f.writeField(&b, "Title", f.title.View(), f.errors["title"], f.focus == focusTitle)
	f.writeField(&b, "Description", f.description.View(), f.errors["description"], f.focus == focusDescription)
	f.writeField(&b, "Due date", f.dueDate.View(), f.errors["due_date"], f.focus == focusDueDate)

	if f.editing {
		label := "Status"
		if f.focus == focusStatus {
			label = styles.selected.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s\n  ◀ %s ▶\n\n", label, statusBadge(f.status)))
	}

	b.WriteString(styles.help.Render("tab next field • ctrl+s save • esc cancel"))
	return b.String()
}

func (f *taskForm) writeField(b *strings.Builder, label, field, errMsg string, focused bool) {
	if focused {
		label = styles.selected.Render(label)
	}
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(field)
	b.WriteString("\n")
	if errMsg != "" {
		b.WriteString(styles.err.Render(errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
