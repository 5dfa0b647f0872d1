package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
title = "Mix"
actions = ["Play", "Stop", "Rec"]
poll = "5ms"

[[fields]]
label = "Vol"
value = "11"
width = 4
`

func runDump(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"dump"}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mpctui.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDumpDefault(t *testing.T) {
	empty := writeConfig(t, "")
	out := runDump(t, "--config", empty)

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 14)
	assert.Equal(t, strings.Repeat(" ", 30)+"│============ Play/Record =============│", lines[1])
	assert.Equal(t, strings.Repeat(" ", 30)+"│Seq: 1-(unused) BPM: 120.0            │", lines[2])
	assert.Contains(t, lines[13], "[      TODO       ][      DONE       ]")
}

func TestDumpConfigFile(t *testing.T) {
	out := runDump(t, "--config", writeConfig(t, testConfig), "--keys", "2")

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[1], " Mix ")
	assert.Contains(t, lines[2], "Vol: 11   ")
	assert.Contains(t, lines[13], "Play")
	assert.Contains(t, lines[13], "Rec")
	assert.True(t, strings.HasSuffix(out, strings.Repeat(" ", 30)+"Stop\n"), "notification for the second action")
}

func TestDumpFlagsOverrideConfig(t *testing.T) {
	out := runDump(t, "--config", writeConfig(t, testConfig), "--title", "Flag", "--width", "20", "--height", "6")

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[1], " Flag ")
	assert.Equal(t, strings.Repeat(" ", 40)+"┌"+strings.Repeat("─", 18)+"┐", lines[0])
}

func TestDumpInvalidConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"dump", "--config", writeConfig(t, ""), "--theme", "neon"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "unknown theme")
}

func TestDumpLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "mpctui.log")
	runDump(t, "--config", writeConfig(t, ""), "--log-file", logPath, "--keys", "l")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "focus moved")
}
