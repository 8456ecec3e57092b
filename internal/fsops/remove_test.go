package fsops

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirprune/internal/plan"
	"dirprune/internal/report"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func tempRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return root
}

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	p := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(p, 0o755))
	return p
}

func TestOutcomeStatus(t *testing.T) {
	tests := []struct {
		o    Outcome
		want Status
	}{
		{Outcome{}, StatusNothing},
		{Outcome{Vanished: 3}, StatusNothing},
		{Outcome{Succeeded: 2}, StatusSuccess},
		{Outcome{Succeeded: 2, Vanished: 1}, StatusSuccess},
		{Outcome{Succeeded: 1, Failed: 1}, StatusPartial},
		{Outcome{Failed: 2}, StatusFailure},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.o.Status(), "%+v", tt.o)
	}
}

func TestRemoveNested(t *testing.T) {
	root := tempRoot(t)
	outer := mkdir(t, root, "a", "build")
	inner := mkdir(t, outer, "x", "build")
	other := mkdir(t, root, "b", "build")
	require.NoError(t, os.WriteFile(filepath.Join(inner, "f.o"), []byte("x"), 0o644))

	var out bytes.Buffer
	o := Remove(RemoveArgs{
		Plan:    plan.Reduce(root, []string{outer, inner, other}),
		Printer: report.New(&out, nil, false),
	})

	assert.Equal(t, Outcome{Succeeded: 3}, o)
	assert.NoDirExists(t, outer)
	assert.NoDirExists(t, other)
	assert.DirExists(t, filepath.Join(root, "a"))
	assert.Contains(t, out.String(), outer)
}

func TestRemoveAncestorFirstIsNotFailure(t *testing.T) {
	root := tempRoot(t)
	outer := mkdir(t, root, "build")
	inner := mkdir(t, outer, "sub", "build")

	// Намеренно предок раньше потомка.
	o := Remove(RemoveArgs{Plan: plan.Plan{Root: root, Matches: []string{outer, inner}}})

	assert.Equal(t, Outcome{Succeeded: 1, Vanished: 1}, o)
	assert.Equal(t, StatusSuccess, o.Status())
	assert.NoDirExists(t, outer)
}

func TestRemoveOutsideRoot(t *testing.T) {
	root := tempRoot(t)
	outside := mkdir(t, tempRoot(t), "build")
	inside := mkdir(t, root, "build")

	var errOut bytes.Buffer
	o := Remove(RemoveArgs{
		Plan:    plan.Plan{Root: root, Matches: []string{outside, inside}},
		Printer: report.New(nil, &errOut, false),
	})

	assert.Equal(t, Outcome{Succeeded: 1, Failed: 1}, o)
	assert.Equal(t, StatusPartial, o.Status())
	assert.DirExists(t, outside)
	assert.NoDirExists(t, inside)
	assert.Contains(t, errOut.String(), outside)
}

func TestRemoveSymlinkEscapingRoot(t *testing.T) {
	root := tempRoot(t)
	target := mkdir(t, tempRoot(t), "build")
	link := filepath.Join(root, "build")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	o := Remove(RemoveArgs{Plan: plan.Plan{Root: root, Matches: []string{link}}})

	assert.Equal(t, Outcome{Failed: 1}, o)
	assert.Equal(t, StatusFailure, o.Status())
	assert.DirExists(t, target)
}

func TestRemoveErrors(t *testing.T) {
	root := tempRoot(t)
	a := mkdir(t, root, "a", "build")
	b := mkdir(t, root, "b", "build")
	c := mkdir(t, root, "c", "build")

	var errOut bytes.Buffer
	o := Remove(RemoveArgs{
		Plan:    plan.Reduce(root, []string{a, b, c}),
		Printer: report.New(nil, &errOut, false),
		RemoveAll: func(path string) error {
			switch path {
			case a:
				return fmt.Errorf("busy: %w", fs.ErrPermission)
			case b:
				return &fs.PathError{Op: "unlinkat", Path: path, Err: fs.ErrNotExist}
			}
			return os.RemoveAll(path)
		},
	})

	assert.Equal(t, Outcome{Succeeded: 1, Failed: 1, Vanished: 1}, o)
	assert.Equal(t, StatusPartial, o.Status())
	assert.DirExists(t, a)
	assert.NoDirExists(t, c)
	assert.Contains(t, errOut.String(), a)
	assert.NotContains(t, errOut.String(), b)
}

func TestRemoveAllFail(t *testing.T) {
	root := tempRoot(t)
	a := mkdir(t, root, "a", "build")
	b := mkdir(t, root, "b", "build")

	o := Remove(RemoveArgs{
		Plan:      plan.Reduce(root, []string{a, b}),
		RemoveAll: func(string) error { return errors.New("read-only file system") },
	})

	assert.Equal(t, Outcome{Failed: 2}, o)
	assert.Equal(t, StatusFailure, o.Status())
}

func TestRemoveVanishedVerbose(t *testing.T) {
	root := tempRoot(t)
	gone := filepath.Join(root, "gone", "build")

	var out bytes.Buffer
	o := Remove(RemoveArgs{
		Plan:    plan.Plan{Root: root, Matches: []string{gone}},
		Printer: report.New(&out, nil, true),
	})

	assert.Equal(t, Outcome{Vanished: 1}, o)
	assert.Equal(t, StatusNothing, o.Status())
	assert.Contains(t, out.String(), gone)
}
