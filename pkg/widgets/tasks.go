package widgets

import (
	"slices"
	"strconv"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/binding"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/reactive"
)

// Task is one checklist entry.
type Task struct {
	ID        int    `yaml:"id"`
	Text      string `yaml:"text"`
	Completed bool   `yaml:"completed"`
}

// TaskToggle is emitted after a task flips.
type TaskToggle struct {
	Task      Task
	Completed bool
}

// DefaultTasks returns the tasks of a fresh list.
func DefaultTasks() []Task {
	return []Task{
		{ID: 1, Text: "Check email"},
		{ID: 2, Text: "Prepare for meeting"},
		{ID: 3, Text: "Submit report"},
	}
}

// TaskList is a checklist whose checkboxes pop and whose labels get a
// strikethrough drawn across them when completed.
type TaskList struct {
	*core.Instance
	tasks *reactive.Cell[[]Task]

	TasksChange core.Event[[]Task]
	TaskToggled core.Event[TaskToggle]
}

// NewTaskList creates a list of tasks. The slice is copied.
func NewTaskList(tasks []Task) *TaskList {
	l := &TaskList{
		Instance: core.NewInstance("tasks"),
		tasks:    reactive.NewRef(slices.Clone(tasks)),
	}
	b := l.Binder()
	for _, task := range tasks {
		id := task.ID
		done := reactive.Map(l.tasks, func(ts []Task) bool {
			i := slices.IndexFunc(ts, func(t Task) bool { return t.ID == id })
			return i >= 0 && ts[i].Completed
		})
		binding.ClassSwitch(b, l.Ref(checkboxKey(id)), done, "bg-blue-500", "bg-white")
		binding.ClassSwitch(b, l.Ref(taskKey(id)+"-text"), done, "text-gray-400", "text-gray-700")
		binding.Attr(b, l.Ref(checkboxKey(id)), "aria-checked", done, nil)
		if task.Completed {
			l.Scheduler().Seed(strikeSlot(id), "width", 100)
		}
	}
	return l
}

// Tasks returns the committed tasks.
func (l *TaskList) Tasks() []Task { return slices.Clone(l.tasks.Value()) }

// Mount builds one row per task under host.
func (l *TaskList) Mount(host *dom.Node) {
	l.Instance.Mount(host, "ul", func(root *dom.Node) {
		for _, task := range l.tasks.Value() {
			row := root.Append("li", taskKey(task.ID))
			row.Append("div", checkboxKey(task.ID))
			text := row.Append("span", taskKey(task.ID)+"-text")
			text.SetText(binding.Writer, task.Text)
			width := 0.0
			if task.Completed {
				width = 100
			}
			text.Append("span", strikeKey(task.ID)).SetProp(binding.Writer, "width", width)
		}
	})
}

// Toggle flips the task with id. Unknown ids are ignored.
func (l *TaskList) Toggle(id int) {
	if l.IsDisposed() {
		l.Ignore("toggle", "disposed")
		return
	}
	tasks := l.tasks.Value()
	i := slices.IndexFunc(tasks, func(t Task) bool { return t.ID == id })
	if i < 0 {
		l.Ignore("toggle", "task "+strconv.Itoa(id))
		return
	}
	next := slices.Clone(tasks)
	next[i].Completed = !next[i].Completed
	task := next[i]
	l.tasks.Set(next)

	if task.Completed {
		l.Animate(animation.SlotOf(checkboxKey(id), "scale"), animation.Spec{
			Target:   l.Ref(checkboxKey(id)),
			Tracks:   []animation.Track{animation.Keys("scale", 1, 1.2, 1)},
			Duration: 300 * time.Millisecond,
		})
		l.Animate(strikeSlot(id), animation.Spec{
			Target:   l.Ref(strikeKey(id)),
			Tracks:   []animation.Track{animation.FromTo("width", 0, 100)},
			Duration: 300 * time.Millisecond,
		})
	} else {
		l.Animate(strikeSlot(id), animation.Spec{
			Target:   l.Ref(strikeKey(id)),
			Tracks:   []animation.Track{animation.To("width", 0)},
			Duration: 200 * time.Millisecond,
			Restart:  animation.ResumeFromCurrent,
		})
	}

	l.TasksChange.Emit(l.Tasks())
	l.TaskToggled.Emit(TaskToggle{Task: task, Completed: task.Completed})
}

func taskKey(id int) string     { return "task-" + strconv.Itoa(id) }
func checkboxKey(id int) string { return "checkbox-" + strconv.Itoa(id) }
func strikeKey(id int) string   { return "strike-" + strconv.Itoa(id) }

func strikeSlot(id int) animation.Slot { return animation.SlotOf(strikeKey(id), "width") }
