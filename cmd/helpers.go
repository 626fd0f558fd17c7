package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/scholar-cli/internal/citation"
	"github.com/sells-group/scholar-cli/internal/credibility"
	"github.com/sells-group/scholar-cli/internal/model"
	"github.com/sells-group/scholar-cli/internal/store"
)

func initStore(ctx context.Context) (store.Store, error) {
	dsn := cfg.Store.DatabaseURL
	if cfg.Store.Driver == "sqlite" && dsn == "" {
		dsn = "scholar.db"
	}
	st, err := store.Open(ctx, cfg.Store.Driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, eris.Wrap(err, "migrate store")
	}
	return st, nil
}

func initEvaluator() (*credibility.Evaluator, error) {
	if cfg.Credibility.ListsPath == "" {
		return credibility.NewEvaluator(credibility.DefaultLists()), nil
	}
	lists, err := credibility.LoadLists(cfg.Credibility.ListsPath)
	if err != nil {
		return nil, eris.Wrap(err, "load credibility lists")
	}
	return credibility.NewEvaluator(lists), nil
}

// resolveStyle picks the citation style from the flag, falling back to
// the configured default.
func resolveStyle(flag string) (citation.Style, error) {
	s := flag
	if s == "" {
		s = cfg.Citation.DefaultStyle
	}
	style, ok := citation.ParseStyle(s)
	if !ok {
		return "", eris.Errorf("unknown citation style %q", s)
	}
	return style, nil
}

// loadDocument reads a file into a Document. HTML files go through the
// webpage extractor, everything else is treated as plain text.
func loadDocument(path string) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, eris.Wrapf(err, "read %s", path)
	}

	doc := model.Document{Source: path}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		doc.HTML = string(data)
	default:
		doc.Text = string(data)
	}
	return doc, nil
}

// listDocumentFiles returns the analyzable files directly under dir.
func listDocumentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "read directory %s", dir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".md", ".html", ".htm":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}
