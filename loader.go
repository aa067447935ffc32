package glossa

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// LoadFile ingests a single translation file. The filename stem becomes the
// namespace; the document's top level maps locale codes to nested trees
// whose string leaves become that locale's entries, keyed
// "namespace<sep>path...". Merging overwrites existing keys, so loading the
// same file again is safe and is how reloads work. On success the file is
// tracked for change detection.
//
// Returns ErrUnreadable when the file cannot be read and ErrMalformed when
// its content is not a locale-to-tree document.
func (s *Store) LoadFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		s.report("cannot open language file: "+path, ReportOpenFailure)
		return fmt.Errorf("%w: %q: %s", ErrUnreadable, path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.report("cannot open language file: "+path, ReportOpenFailure)
		return fmt.Errorf("%w: %q: %s", ErrUnreadable, path, err)
	}

	var doc map[string]any
	if err := unmarshalerFor(path)(data, &doc); err != nil {
		return fmt.Errorf("%w: parsing %q: %s", ErrMalformed, path, err)
	}

	namespace := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	perLocale := make(map[string]map[string]string, len(doc))
	for locale, subtree := range doc {
		if locale == "" {
			continue
		}
		tree, ok := subtree.(map[string]any)
		if !ok {
			// Non-object locale values are dropped, same as non-string leaves.
			continue
		}
		flat, err := flattenTree(tree, namespace, s.separator)
		if err != nil {
			return fmt.Errorf("flattening %q: %w", path, err)
		}
		perLocale[locale] = flat
	}

	s.merge(path, fi.ModTime(), perLocale)
	s.log.Debug("loaded translation file",
		"path", path,
		"namespace", namespace,
		"locales", len(perLocale))

	return nil
}

// LoadDirectory ingests every translation file (.json, .yaml, .yml) in the
// directory, descending into subdirectories when recursive is set. A missing
// root is the one fatal condition, returned as ErrDirectoryMissing. Failures
// of individual files are forwarded to the error reporter and do not stop
// the rest of the directory from loading.
//
// Files are parsed concurrently; each file's table merge takes its own
// exclusive section, so lookups stay responsive during a large load.
func (s *Store) LoadDirectory(root string, recursive bool) error {
	fi, err := os.Stat(root)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("%w: %q", ErrDirectoryMissing, root)
	}

	paths, err := collectFiles(root, recursive)
	if err != nil {
		return fmt.Errorf("%w: %q: %s", ErrDirectoryMissing, root, err)
	}

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := s.LoadFile(path); err != nil {
				s.report("failed to load "+path+": "+err.Error(), ReportScanFailure)
				s.log.Warn("failed to load translation file", "path", path, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return nil
}

// ReloadAll re-ingests every tracked file. With clearFirst set, all
// translation tables are emptied before the reload (full rebuild); without
// it the reload is a pure overwrite-merge, which means keys removed from a
// file since the last load stay in the table until a clearing reload.
// Per-file failures are forwarded to the error reporter and skipped.
func (s *Store) ReloadAll(clearFirst bool) {
	s.mu.Lock()
	if clearFirst {
		s.translations = make(map[string]map[string]string)
		s.translations[s.defaultLocale] = make(map[string]string)
	}
	paths := slices.Clone(s.files)
	s.mu.Unlock()

	for _, path := range paths {
		if err := s.LoadFile(path); err != nil {
			s.report("failed to reload "+path+": "+err.Error(), ReportReloadFailure)
			s.log.Warn("failed to reload translation file", "path", path, "error", err)
		}
	}
}

// supportedFile reports whether the path has a recognized translation file
// extension.
func supportedFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// unmarshalerFor picks the parser by file extension. JSON is the default.
func unmarshalerFor(path string) func([]byte, any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal
	default:
		return json.Unmarshal
	}
}

func collectFiles(root string, recursive bool) ([]string, error) {
	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		var paths []string
		for _, entry := range entries {
			if entry.Type().IsRegular() && supportedFile(entry.Name()) {
				paths = append(paths, filepath.Join(root, entry.Name()))
			}
		}
		return paths, nil
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			return nil
		}
		if d.Type().IsRegular() && supportedFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}
