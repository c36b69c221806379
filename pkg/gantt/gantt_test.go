package gantt

import (
	"strings"
	"testing"
	"time"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time { return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC) }

func TestDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0d"},
		{14 * 24 * time.Hour, "2w"},
		{3 * 24 * time.Hour, "3d"},
		{36 * time.Hour, "36h"},
		{90 * time.Minute, "90m"},
		{45 * time.Second, "45s"},
		{1500 * time.Millisecond, "1500ms"},
		{time.Millisecond + time.Microsecond, "1ms"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Duration(tt.in), tt.in.String())
	}
}

func TestBuilder(t *testing.T) {
	b := New(diagram.WithTitle("Release"))
	require.NoError(t, b.DateFormat("YYYY-MM-DD"))
	require.NoError(t, b.Exclude("weekends", "2024-01-15"))

	var design *Task
	err := b.Section("Plan", func(b *Builder) error {
		var err error
		design, err = b.AddTask("Design", TaskOptions{Tags: []Tag{Critical, Done}, Start: day(1), Duration: 72 * time.Hour})
		return err
	})
	require.NoError(t, err)
	err = b.Section("Build", func(b *Builder) error {
		impl, err := b.AddTask("Implement", TaskOptions{After: []*Task{design}, Duration: 14 * 24 * time.Hour})
		if err != nil {
			return err
		}
		_, err = b.AddTask("Ship", TaskOptions{Tags: []Tag{Milestone}, After: []*Task{impl}})
		return err
	})
	require.NoError(t, err)
	_, err = b.AddTask("Retro", TaskOptions{Start: day(29), End: day(30)})
	require.NoError(t, err)

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"---",
		"title: Release",
		"---",
		"gantt",
		"    dateFormat YYYY-MM-DD",
		"    excludes weekends,2024-01-15",
		"    section Plan",
		"        Design :crit, done, t2, 2024-01-01, 3d",
		"    section Build",
		"        Implement :t3, after t2, 2w",
		"        Ship :milestone, t4, after t3, 0d",
		"    Retro :t5, 2024-01-29, 2024-01-30",
	}, "\n"), out)
}

func TestBuilder_CustomDateFormat(t *testing.T) {
	b := New()
	require.NoError(t, b.DateFormat("DD/MM/YYYY HH:mm"))
	_, err := b.AddTask("Deploy", TaskOptions{Start: time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC), Duration: 2 * time.Hour})
	require.NoError(t, err)

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "gantt\n    dateFormat DD/MM/YYYY HH:mm\n    Deploy :t1, 09/03/2024 14:30, 2h", out)
}

func TestBuilder_Validation(t *testing.T) {
	b := New()
	first, err := b.AddTask("first", TaskOptions{Duration: time.Hour})
	require.NoError(t, err)
	foreign, err := New().AddTask("other", TaskOptions{})
	require.NoError(t, err)

	tests := []struct {
		name string
		err  error
		code domain.Code
	}{
		{"blank", task(b.AddTask(" ", TaskOptions{})), domain.CodeWhiteSpace},
		{"start and after", task(b.AddTask("x", TaskOptions{Start: day(1), After: []*Task{first}})), domain.CodeInvalidConfiguration},
		{"end and duration", task(b.AddTask("x", TaskOptions{End: day(2), Duration: time.Hour})), domain.CodeInvalidConfiguration},
		{"end before start", task(b.AddTask("x", TaskOptions{Start: day(3), End: day(2)})), domain.CodeInvalidConfiguration},
		{"negative duration", task(b.AddTask("x", TaskOptions{Duration: -time.Hour})), domain.CodeStrictlyNegative},
		{"foreign dependency", task(b.AddTask("x", TaskOptions{After: []*Task{foreign}})), domain.CodeForeignItem},
		{"bad tag", task(b.AddTask("x", TaskOptions{Tags: []Tag{Tag(10)}})), domain.CodeInvalidOperation},
		{"no excludes", b.Exclude(), domain.CodeEmptyCollection},
		{"nested section", b.Section("a", func(b *Builder) error { return b.Section("b", nil) }), domain.CodeInvalidOperation},
		{"format in section", b.Section("a", func(b *Builder) error { return b.DateFormat("YYYY") }), domain.CodeInvalidOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, domain.CodeOf(tt.err))
		})
	}

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "gantt\n    first :t0, 1h", out)
}

func task(_ *Task, err error) error { return err }
