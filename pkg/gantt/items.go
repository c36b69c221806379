package gantt

import (
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
)

// Tag marks the state or kind of a task.
type Tag int

const (
	Active Tag = iota
	Done
	Critical
	Milestone
)

var tags = domain.Symbols[Tag]{
	Active:    "active",
	Done:      "done",
	Critical:  "crit",
	Milestone: "milestone",
}

var sectionBlock = &domain.Block{Name: "section", Open: "section"}

// DefaultDateFormat is the date format used until DateFormat is called.
const DefaultDateFormat = "YYYY-MM-DD"

var layoutTokens = strings.NewReplacer(
	"YYYY", "2006",
	"MM", "01",
	"DD", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
)

// layout converts a Mermaid date format into a Go time layout.
func layout(format string) string {
	return layoutTokens.Replace(format)
}

// TaskOptions schedules a task. A task starts either at Start or after the
// listed tasks; without either it follows the previous task. It ends either
// at End or after Duration.
type TaskOptions struct {
	Tags     []Tag
	Start    time.Time
	After    []*Task
	End      time.Time
	Duration time.Duration
}

// Task is a bar of the chart.
type Task struct {
	domain.Element
	text   string
	opts   TaskOptions
	layout string
}

// Key is the identifier the task has in the rendered text.
func (t *Task) Key() string { return diagram.Key("t", t.ID) }

// Text returns the task label.
func (t *Task) Text() string { return t.text }

// Line implements domain.Leaf.
func (t *Task) Line() (string, bool) {
	var meta []string
	for _, tag := range t.opts.Tags {
		meta = append(meta, tags.MustLookup(tag))
	}
	meta = append(meta, t.Key())

	switch {
	case len(t.opts.After) > 0:
		keys := make([]string, len(t.opts.After))
		for i, a := range t.opts.After {
			keys[i] = a.Key()
		}
		meta = append(meta, "after "+strings.Join(keys, " "))
	case !t.opts.Start.IsZero():
		meta = append(meta, t.opts.Start.Format(t.layout))
	}

	if !t.opts.End.IsZero() {
		meta = append(meta, t.opts.End.Format(t.layout))
	} else {
		meta = append(meta, Duration(t.opts.Duration))
	}
	return t.text + " :" + strings.Join(meta, ", "), true
}

var units = []struct {
	size   time.Duration
	suffix string
}{
	{7 * 24 * time.Hour, "w"},
	{24 * time.Hour, "d"},
	{time.Hour, "h"},
	{time.Minute, "m"},
	{time.Second, "s"},
	{time.Millisecond, "ms"},
}

// Duration formats d with the largest unit that divides it exactly.
// Sub-millisecond remainders are truncated.
func Duration(d time.Duration) string {
	d = d.Truncate(time.Millisecond)
	if d == 0 {
		return "0d"
	}
	for _, u := range units {
		if d%u.size == 0 {
			return strconv.FormatInt(int64(d/u.size), 10) + u.suffix
		}
	}
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
