package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BrandonKowalski/heritagepulse/pkg/heritage"
	"github.com/BrandonKowalski/heritagepulse/pkg/heritage/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := runWith(t, args...)
	return out, err
}

func runWith(t *testing.T, args ...string) (string, *rootOptions, error) {
	t.Helper()
	var out bytes.Buffer
	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if !hasFlag(args, "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	}
	cmd.SetArgs(args)
	err := execute(context.Background(), cmd, opts)
	return out.String(), opts, err
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestSectionsCmd(t *testing.T) {
	out, err := run(t, "sections", "trending")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 6)
	assert.Contains(t, got[0], "t1")
	assert.Contains(t, got[0], "The Majestic Mysore Dasara")
}

func TestSectionsCmd_UnknownKeyIsEmpty(t *testing.T) {
	out, err := run(t, "sections", "nope")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSectionsCmd_ConfigLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heritage.toml")
	require.NoError(t, os.WriteFile(path, []byte("language = \"te\"\n"), 0o644))

	out, err := run(t, "sections", "trending", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, lines(out)[0], "వైభవోపేత మైసూరు దసరా")
}

func TestShowCmd(t *testing.T) {
	out, err := run(t, "show", "l1", "--lang", "ta")
	require.NoError(t, err)

	assert.Contains(t, out, "கீழடியில் புதிய அகழாய்வுகள்")
	assert.Contains(t, out, "4.3k")
	assert.Contains(t, out, "165")
}

func TestShowCmd_UnknownID(t *testing.T) {
	_, err := run(t, "show", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestExecute_ClosesAppOnFailure(t *testing.T) {
	_, opts, err := runWith(t, "show", "nope")
	require.ErrorIs(t, err, content.ErrNotFound)
	assert.Nil(t, opts.app)
}

func TestExecute_ClosesAppOnSuccess(t *testing.T) {
	_, opts, err := runWith(t, "sections", "trending")
	require.NoError(t, err)
	assert.Nil(t, opts.app)
}

func TestSavedCmd_Toggle(t *testing.T) {
	out, err := run(t, "saved", "--toggle", "t1", "--toggle", "s1")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "s2")
	assert.Contains(t, got[1], "t1")
}

func TestRoot_BadLogLevel(t *testing.T) {
	_, err := run(t, "sections", "trending", "--log-level", "chatty")
	require.Error(t, err)
	assert.True(t, heritage.IsInfrastructureError(err))
}
