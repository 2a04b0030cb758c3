package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireShell(t)

	var stdout bytes.Buffer
	r := newExecRunnerWithStreams(strings.NewReader(""), &stdout, &stdout)

	err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo hello"}, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestExecRunner_WorkingDirectory(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	r := newExecRunnerWithStreams(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "touch marker"}, Dir: dir})
	require.NoError(t, err)
	assert.FileExists(t, dir+"/marker")
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireShell(t)

	r := newExecRunnerWithStreams(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	err := r.Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "exit 3"}, Dir: t.TempDir()})

	var procErr *ProcessError
	require.True(t, errors.As(err, &procErr), "expected *ProcessError, got %T", err)
	assert.Equal(t, "sh", procErr.Name)
	assert.Equal(t, 3, procErr.ExitCode)
	assert.Contains(t, err.Error(), "exited with code 3")
}

func TestExecRunner_QuietCapturesOutput(t *testing.T) {
	requireShell(t)

	var stdout bytes.Buffer
	r := newExecRunnerWithStreams(strings.NewReader(""), &stdout, &stdout)

	err := r.Run(context.Background(), Command{
		Name:  "sh",
		Args:  []string{"-c", "echo npm ERR! missing; exit 1"},
		Dir:   t.TempDir(),
		Quiet: true,
	})

	var procErr *ProcessError
	require.True(t, errors.As(err, &procErr))
	assert.Empty(t, stdout.String(), "quiet command must not stream output")
	assert.Contains(t, procErr.Output, "npm ERR! missing")
	assert.Contains(t, err.Error(), "npm ERR! missing")
}

func TestExecRunner_SpawnFailure(t *testing.T) {
	r := newExecRunnerWithStreams(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	err := r.Run(context.Background(), Command{Name: "nxt-gen-definitely-not-installed", Dir: t.TempDir()})

	var spawnErr *SpawnError
	require.True(t, errors.As(err, &spawnErr), "expected *SpawnError, got %T", err)
	assert.Equal(t, "nxt-gen-definitely-not-installed", spawnErr.Name)

	var procErr *ProcessError
	assert.False(t, errors.As(err, &procErr))
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "npm", Command{Name: "npm"}.String())
	assert.Equal(t, "npm install axios", Command{Name: "npm", Args: []string{"install", "axios"}}.String())
}
