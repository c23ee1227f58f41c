package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<ul id="menu"><li>one</li><li>two</li><li><a href="#">three</a></li></ul>
</body></html>`

func writePage(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o644))
	return path
}

func TestDumpCommand(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(context.Background(), []string{"stylepaths", "dump", writePage(t)})
	require.NoError(t, err)
	s := out.String()
	assert.Contains(t, s, "menu/li#2-3 li")
	assert.Contains(t, s, "document/html#1-1/body#1-1 body")
	// document, html, head, body, ul, 3×li, a
	assert.Contains(t, s, "9 elements, 9 cacheable, 0 unresolved, 1 dynamic")
}

func TestDotCommandWithConfig(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("styling:\n  cache:\n    shared: false\n"), 0o644))
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(context.Background(), []string{"stylepaths", "--config", conf, "dot", writePage(t)})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "digraph g {"))
}

func TestMissingArgument(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}
	err := app.Run(context.Background(), []string{"stylepaths", "dump"})
	assert.Error(t, err)
}
