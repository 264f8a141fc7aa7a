package server

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/devopsboard/dashboard/internal/tabs"
)

// WriteSite renders the dashboard into dir as plain files: one page per tab,
// index.html for the default tab, and a copy of web/static.
func (s *Server) WriteSite(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	var written []string
	for _, tab := range tabs.All() {
		page, err := s.Page(tab)
		if err != nil {
			return written, err
		}

		var buf bytes.Buffer
		if err := s.RenderPage(&buf, page.WithStaticLinks()); err != nil {
			return written, fmt.Errorf("failed to render %s: %w", tab, err)
		}

		names := []string{string(tab) + ".html"}
		if tab == tabs.Default {
			names = append(names, "index.html")
		}
		for _, name := range names {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				return written, fmt.Errorf("failed to write %s: %w", path, err)
			}
			written = append(written, path)
		}
	}

	if err := copyDir(filepath.Join(s.rootDir, "web/static"), filepath.Join(dir, "static")); err != nil {
		return written, fmt.Errorf("failed to copy static files: %w", err)
	}

	log.Info().Str("dir", dir).Int("pages", len(written)).Msg("Rendered static site")
	return written, nil
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
}
