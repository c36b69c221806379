package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with fresh flag values, since commands are shared
// between tests.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, c := range append(rootCmd.Commands(), rootCmd) {
		reset(c.Flags())
	}
	reset(rootCmd.PersistentFlags())

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func reset(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "mermaidkit version "))
}

func TestKinds(t *testing.T) {
	out, _, err := run(t, "", "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "KIND")
	assert.Regexp(t, `sequence\s+sequenceDiagram\s+yes`, out)
	assert.Regexp(t, `gantt\s+gantt\s+-`, out)
}

func TestRender_Stdin(t *testing.T) {
	out, _, err := run(t, "kind: pie\nslices:\n  - {label: Dogs, value: 3}\n", "render")
	require.NoError(t, err)
	assert.Equal(t, "pie\n    \"Dogs\" : 3\n", out)
}

func TestRender_FileFormatFromExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"kind":"pie","title":"Pets"}`), 0o600))

	out, _, err := run(t, "", "render", path)
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: Pets\n---\npie\n", out)
}

func TestRender_RejectedStatements(t *testing.T) {
	src := "kind: pie\nslices:\n  - {label: Dogs, value: 3}\n  - {label: Debt, value: -1}\n"

	out, errOut, err := run(t, src, "render", "--format", "yaml")
	require.Error(t, err)
	assert.Equal(t, "1 statement(s) rejected", err.Error())
	assert.Equal(t, "pie\n    \"Dogs\" : 3\n", out)
	assert.Contains(t, errOut, "slices[1]")

	out, _, err = run(t, src, "render", "--unsafe")
	require.NoError(t, err)
	assert.Contains(t, out, `"Debt" : -1`)
}

func TestRender_InvalidDocument(t *testing.T) {
	_, _, err := run(t, "kind: venn\n", "render")
	assert.ErrorContains(t, err, "unsupported diagram kind")

	_, _, err = run(t, "kind: pie\n", "render", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestRender_Pretty(t *testing.T) {
	out, _, err := run(t, "kind: pie\n", "render", "--pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "pie")
}

func TestLevel_Invalid(t *testing.T) {
	_, _, err := run(t, "", "version", "--level", "loud")
	assert.ErrorContains(t, err, "unknown log level")
}
