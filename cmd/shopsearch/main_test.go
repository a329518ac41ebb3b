package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{
		"--env", "test",
		"--config", "../../config/test.yaml",
		"--catalog", "../../config/catalog.yaml",
	}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "watch", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "Smart Watch")
	assert.NotContains(t, out, "Headphones")
}

func TestSearchCommand_Highlight(t *testing.T) {
	out, err := run(t, "search", "watch")
	require.NoError(t, err)
	assert.Contains(t, out, "Smart "+ansiBold+"Watch"+ansiReset)
}

func TestSearchCommand_JSON(t *testing.T) {
	out, err := run(t, "search", "shirt", "--json")
	require.NoError(t, err)

	var hits []searchHit
	require.NoError(t, json.Unmarshal([]byte(out), &hits))
	require.Len(t, hits, 2)
	assert.Equal(t, 1, hits[0].ID)
	assert.Equal(t, 130, hits[0].Score)
	assert.Equal(t, 3, hits[1].ID)
}

func TestSearchCommand_Flags(t *testing.T) {
	out, err := run(t, "search", "shrt", "--min-score", "30")
	require.NoError(t, err)
	assert.Contains(t, out, `No products match "shrt".`)

	out, err = run(t, "search", "electronics", "--price", "0-50", "--json")
	require.NoError(t, err)
	var hits []searchHit
	require.NoError(t, json.Unmarshal([]byte(out), &hits))
	require.Len(t, hits, 1)
	assert.Equal(t, 7, hits[0].ID)

	_, err = run(t, "search", "shirt", "--price", "cheap")
	assert.Error(t, err)

	_, err = run(t, "search", "shirt", "--limit", "0")
	assert.Error(t, err)
}

func TestSuggestCommand(t *testing.T) {
	out, err := run(t, "suggest", "sh", "--json")
	require.NoError(t, err)

	var items []suggestionItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	texts := make([]string, len(items))
	for i, it := range items {
		texts[i] = it.Text
	}
	assert.Equal(t, []string{"shirt", "shoes", "running shoes", "casual shirt"}, texts)

	out, err = run(t, "suggest")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "wireless headphones"))
}

func TestHistoryCommand(t *testing.T) {
	out, err := run(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "No recent searches.\n", out)

	out, err = run(t, "history", "add", "  watch ")
	require.NoError(t, err)
	assert.Equal(t, " 1. watch\n", out)

	out, err = run(t, "history", "clear")
	require.NoError(t, err)
	assert.Equal(t, "History cleared.\n", out)
}

func TestRootCommand_MissingConfig(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", "does-not-exist.yaml", "history"})
	assert.ErrorContains(t, root.Execute(), "failed to load config")
}
