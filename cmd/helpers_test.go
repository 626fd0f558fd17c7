package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()

	txtPath := filepath.Join(dir, "paper.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("plain text"), 0o644))
	htmlPath := filepath.Join(dir, "page.HTML")
	require.NoError(t, os.WriteFile(htmlPath, []byte("<html></html>"), 0o644))

	doc, err := loadDocument(txtPath)
	require.NoError(t, err)
	assert.Equal(t, txtPath, doc.Source)
	assert.Equal(t, "plain text", doc.Text)
	assert.Empty(t, doc.HTML)

	doc, err = loadDocument(htmlPath)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", doc.HTML)
	assert.Empty(t, doc.Text)

	_, err = loadDocument(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestListDocumentFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.md", "c.html", "skip.pdf", "skip.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	paths, err := listDocumentFiles(dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Contains(t, paths, filepath.Join(dir, "a.txt"))
	assert.Contains(t, paths, filepath.Join(dir, "b.md"))
	assert.Contains(t, paths, filepath.Join(dir, "c.html"))
}
