package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Exts are the extensions considered font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd),
// so fonts are found whether the demo runs from the repo root or cmd/cubetext.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// Finder looks up font files under a list of base directories.
type Finder struct {
	Dirs []string
}

// NewFinder returns a Finder over BaseDirs.
func NewFinder() *Finder {
	return &Finder{Dirs: BaseDirs()}
}

// ScanDir returns relative paths of all font files under dir (e.g. "FiraSans/FiraSans-Medium.ttf").
// Paths use forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFontFile(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFontFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// SearchCandidates returns search terms to try in order when the exact path failed.
// Example: "fonts/FiraSans-Medium.ttf" -> ["fonts/FiraSans-Medium.ttf", "FiraSans-Medium.ttf", "FiraSans-Medium", "FiraSans"].
func SearchCandidates(pathOrName string) []string {
	seen := map[string]bool{}
	var candidates []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			candidates = append(candidates, s)
		}
	}
	add(pathOrName)
	base := filepath.Base(filepath.ToSlash(pathOrName))
	add(base)
	for _, ext := range Exts {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			base = base[:len(base)-len(ext)]
			add(base)
			break
		}
	}
	// family before the first hyphen, e.g. "FiraSans" from "FiraSans-Medium"
	if i := strings.Index(base, "-"); i > 0 {
		add(base[:i])
	}
	return candidates
}

// Find searches the finder's dirs for a font file whose path matches search.
// When several match, one containing search's style suffix or "Regular" is preferred.
func (f *Finder) Find(search string) (fullPath string, err error) {
	norm := normalizeForMatch(search)
	if norm == "" {
		return "", os.ErrNotExist
	}
	var matches []string
	for _, base := range f.Dirs {
		list, walkErr := ScanDir(base)
		if walkErr != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				matches = append(matches, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", os.ErrNotExist
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(m), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}

// Resolve returns a loadable font path for nameOrPath: the path itself if it exists,
// otherwise the first hit for each of SearchCandidates.
func (f *Finder) Resolve(nameOrPath string) (string, error) {
	if nameOrPath == "" {
		return "", fmt.Errorf("fonts: no font configured")
	}
	if info, err := os.Stat(nameOrPath); err == nil && !info.IsDir() {
		return nameOrPath, nil
	}
	for _, c := range SearchCandidates(nameOrPath) {
		if p, err := f.Find(c); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("fonts: %q not found under %v: %w", nameOrPath, f.Dirs, os.ErrNotExist)
}
