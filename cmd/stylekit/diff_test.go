package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
)

func TestDiffCommand_Direction(t *testing.T) {
	path := writeDocument(t, "props:\n  marginStart: 10\n  width: 4px\n")

	out, _, err := execute(t, "diff", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(ltr)")
	assert.Contains(t, out, "(rtl)")
	assert.Contains(t, out, "-margin-left: 10px;\n")
	assert.Contains(t, out, "+margin-right: 10px;\n")
	assert.Contains(t, out, " width: 4px;\n")
	assert.Contains(t, out, "1 added, 1 removed\n")
}

func TestDiffCommand_Breakpoints(t *testing.T) {
	path := writeDocument(t, "props:\n  width:\n    base: 4px\n    L: 8px\n")

	out, _, err := execute(t, "diff", path, "--against", "L")
	require.NoError(t, err)
	assert.Contains(t, out, "-width: 4px;\n")
	assert.Contains(t, out, "+width: 8px;\n")
}

func TestDiffCommand_NoDifferences(t *testing.T) {
	path := writeDocument(t, "props:\n  width: 4px\n")

	out, _, err := execute(t, "diff", path)
	require.NoError(t, err)
	assert.Equal(t, "no differences\n", out)
}

func loadedApp(t *testing.T, overrides map[string]any) *app {
	t.Helper()
	a := &app{v: config.NewViper()}
	for key, value := range overrides {
		a.v.Set(key, value)
	}
	cmd := &cobra.Command{Use: "watch"}
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, a.load(cmd))
	return a
}

func TestWatchSession_PrintsDiffsAfterFirstRender(t *testing.T) {
	path := writeDocument(t, "props:\n  width: 4px\n")
	a := loadedApp(t, map[string]any{"format": "css"})

	out := &bytes.Buffer{}
	session := &watchSession{out: out, app: a, path: path, diffs: true}

	require.NoError(t, session.render(context.Background(), path))
	assert.Equal(t, "width: 4px;\n", out.String())

	out.Reset()
	require.NoError(t, os.WriteFile(path, []byte("props:\n  width: 8px\n"), 0o644))
	require.NoError(t, session.render(context.Background(), path))
	assert.Equal(t, "--- previous\n+++ current\n-width: 4px;\n+width: 8px;\n", out.String())

	out.Reset()
	require.NoError(t, session.render(context.Background(), path))
	assert.Empty(t, out.String())
}

func TestWatchSession_FullRenderAndErrors(t *testing.T) {
	path := writeDocument(t, "props:\n  width: 4px\n")
	a := loadedApp(t, map[string]any{"format": "css"})

	out := &bytes.Buffer{}
	session := &watchSession{out: out, app: a, path: path}

	require.NoError(t, session.render(context.Background(), path))
	require.NoError(t, os.WriteFile(path, []byte("props:\n  width: [1, 2]\n"), 0o644))
	require.Error(t, session.render(context.Background(), path))
	assert.Contains(t, out.String(), "width: 4px;\n")
	assert.Contains(t, out.String(), "error:")
}

func TestWatchSession_DiffBaselineAfterFailedFirstRender(t *testing.T) {
	path := writeDocument(t, "props:\n  width: [1, 2]\n")
	a := loadedApp(t, map[string]any{"format": "css"})

	out := &bytes.Buffer{}
	session := &watchSession{out: out, app: a, path: path, diffs: true}

	require.Error(t, session.render(context.Background(), path))
	assert.Contains(t, out.String(), "error:")

	out.Reset()
	require.NoError(t, os.WriteFile(path, []byte("props:\n  width: 4px\n  height: 2px\n"), 0o644))
	require.NoError(t, session.render(context.Background(), path))
	assert.Equal(t, "height: 2px;\nwidth: 4px;\n", out.String())

	out.Reset()
	require.NoError(t, os.WriteFile(path, []byte("props:\n  width: 8px\n  height: 2px\n"), 0o644))
	require.NoError(t, session.render(context.Background(), path))
	assert.Equal(t, "--- previous\n+++ current\n height: 2px;\n-width: 4px;\n+width: 8px;\n", out.String())
}
