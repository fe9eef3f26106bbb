package config

import (
	"bytes"
	"errors"
	"io"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/wmw9/twitchvod"
)

func testStreams(stdout *bytes.Buffer) Streams {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return Streams{Stdin: bytes.NewReader(nil), Stdout: stdout, Stderr: io.Discard, Log: logger}
}

func TestNewCommand_Empty(t *testing.T) {
	_, err := NewCommand("mpv", nil)
	require.ErrorIs(t, err, twitchvod.ErrInvalidCommand)

	_, err = NewCommand("mpv", []string{})
	require.ErrorIs(t, err, twitchvod.ErrInvalidCommand)
}

func TestNewCommand_UnterminatedPlaceholder(t *testing.T) {
	_, err := NewCommand("mpv", []string{"mpv", "${url"})
	require.ErrorIs(t, err, twitchvod.ErrInvalidCommand)
}

func TestRender(t *testing.T) {
	cmd, err := NewCommand("echo", []string{"echo", "${url}"})
	require.NoError(t, err)

	argv, err := cmd.Render(map[string]string{"url": "X"})
	require.NoError(t, err)
	require.Equal(t, []string{"echo", "X"}, argv)
}

func TestRender_MixedText(t *testing.T) {
	cmd, err := NewCommand("mpv", []string{"mpv", "--title=${channel_name} - ${title}", "${url}"})
	require.NoError(t, err)

	argv, err := cmd.Render(map[string]string{"url": "https://d/s/720p60/index-dvr.m3u8", "channel_name": "c", "title": "t"})
	require.NoError(t, err)
	require.Equal(t, []string{"mpv", "--title=c - t", "https://d/s/720p60/index-dvr.m3u8"}, argv)
}

func TestRender_MissingPlaceholder(t *testing.T) {
	cmd, err := NewCommand("echo", []string{"echo", "${nope}"})
	require.NoError(t, err)

	_, err = cmd.Render(map[string]string{"url": "X"})
	require.ErrorIs(t, err, twitchvod.ErrTemplateRender)
	require.Contains(t, err.Error(), "nope")
}

func TestPrint_Execute(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Print{}.Execute(map[string]string{"url": "X"}, testStreams(&out)))
	require.Equal(t, "X\n", out.String())

	err := Print{}.Execute(map[string]string{}, testStreams(&out))
	require.ErrorIs(t, err, twitchvod.ErrTemplateRender)
}

func TestCommand_Execute(t *testing.T) {
	cmd, err := NewCommand("echo", []string{"echo", "${id}", "${url}"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, cmd.Execute(map[string]string{"id": "42", "url": "X"}, testStreams(&out)))
	require.Equal(t, "42 X\n", out.String())
}

func TestCommand_Execute_NonZeroExitIsNotAnError(t *testing.T) {
	cmd, err := NewCommand("fail", []string{"sh", "-c", "exit 3"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, cmd.Execute(map[string]string{}, testStreams(&out)))
}

func TestCommand_Execute_SpawnFailure(t *testing.T) {
	cmd, err := NewCommand("missing", []string{"/nonexistent/twitchvod-test-binary", "${url}"})
	require.NoError(t, err)

	var out bytes.Buffer
	err = cmd.Execute(map[string]string{"url": "X"}, testStreams(&out))
	require.ErrorIs(t, err, twitchvod.ErrExecutionFailed)

	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
	require.Equal(t, []string{"/nonexistent/twitchvod-test-binary", "X"}, execErr.Args)
}

func TestCommand_Execute_RenderFailureDoesNotSpawn(t *testing.T) {
	cmd, err := NewCommand("echo", []string{"echo", "${title}"})
	require.NoError(t, err)

	var out bytes.Buffer
	err = cmd.Execute(map[string]string{"url": "X"}, testStreams(&out))
	require.ErrorIs(t, err, twitchvod.ErrTemplateRender)
	require.Empty(t, out.String())
}
