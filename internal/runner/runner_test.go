package runner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/rddi/internal/rdd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireProgram(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestExecute_PassesArgvWithoutShell(t *testing.T) {
	requireProgram(t, "echo")

	var out bytes.Buffer
	cmd := rdd.Command{
		Program: "echo",
		Options: []rdd.Option{{Flag: "--block-size", Value: "512k"}},
		Args:    []string{"$HOME", "a b"},
	}
	err := Execute(context.Background(), cmd, Options{Stdout: &out})
	require.NoError(t, err)
	assert.Equal(t, "--block-size 512k $HOME a b\n", out.String())
}

func TestExecute_Stdin(t *testing.T) {
	requireProgram(t, "cat")

	var out bytes.Buffer
	err := Execute(context.Background(), rdd.Command{Program: "cat"}, Options{
		Stdin:  strings.NewReader("data"),
		Stdout: &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "data", out.String())
}

func TestExecute_Dir(t *testing.T) {
	requireProgram(t, "pwd")

	dir := t.TempDir()
	var out bytes.Buffer
	err := Execute(context.Background(), rdd.Command{Program: "pwd"}, Options{Dir: dir, Stdout: &out})
	require.NoError(t, err)
	assert.Contains(t, out.String(), dir[strings.LastIndex(dir, "/")+1:])
}

func TestExecute_Failure(t *testing.T) {
	requireProgram(t, "false")

	err := Execute(context.Background(), rdd.Command{Program: "false"}, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running false")

	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr)
}

func TestExecute_MissingProgram(t *testing.T) {
	err := Execute(context.Background(), rdd.Command{Program: "rddi-no-such-program"}, Options{})
	require.Error(t, err)

	err = Execute(context.Background(), rdd.Command{}, Options{})
	require.Error(t, err)
}

func TestExecute_Timeout(t *testing.T) {
	requireProgram(t, "sleep")

	cmd := rdd.Command{Program: "sleep", Args: []string{"5"}}
	start := time.Now()
	err := Execute(context.Background(), cmd, Options{Timeout: 50 * time.Millisecond})
	require.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestExecute_ContextCancelled(t *testing.T) {
	requireProgram(t, "sleep")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Execute(ctx, rdd.Command{Program: "sleep", Args: []string{"5"}}, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
