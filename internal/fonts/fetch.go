package fonts

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	googleFontsAPI = "https://api.github.com/repos/google/fonts/contents/ofl"
	googleFontsRaw = "https://raw.githubusercontent.com/google/fonts/"
)

// Fetcher installs font files into Dir, either from the google/fonts repository by
// family name or from a direct .ttf/.otf/.zip URL.
type Fetcher struct {
	Client *http.Client
	// APIBase lists a family folder; RawPrefix is the only host prefix downloads may come from.
	APIBase   string
	RawPrefix string
	Dir       string
}

// NewFetcher returns a Fetcher for google/fonts that installs into dir.
func NewFetcher(dir string) *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: 60 * time.Second},
		APIBase:   googleFontsAPI,
		RawPrefix: googleFontsRaw,
		Dir:       dir,
	}
}

type listedFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// FamilyFolders maps a display name to google/fonts folder names to try,
// e.g. "Fira Sans" -> ["firasans", "fira-sans"].
func FamilyFolders(family string) []string {
	lower := strings.ToLower(strings.TrimSpace(family))
	if lower == "" {
		return nil
	}
	out := []string{strings.ReplaceAll(lower, " ", "")}
	if h := strings.ReplaceAll(lower, " ", "-"); h != out[0] {
		out = append(out, h)
	}
	return out
}

// pickFile chooses the file whose name carries style, then a Regular cut, then any
// upright cut, then anything.
func pickFile(files []listedFile, style, rawPrefix string) (listedFile, bool) {
	style = normalizeForMatch(style)
	var regular, upright, other *listedFile
	for i := range files {
		f := &files[i]
		if f.Type != "file" || !isFontFile(f.Name) || !strings.HasPrefix(f.DownloadURL, rawPrefix) {
			continue
		}
		name := normalizeForMatch(strings.TrimSuffix(f.Name, filepath.Ext(f.Name)))
		italic := strings.Contains(name, "italic")
		switch {
		case style != "" && strings.HasSuffix(name, style) && !italic:
			return *f, true
		case regular == nil && strings.HasSuffix(name, "regular"):
			regular = f
		case upright == nil && !italic:
			upright = f
		case other == nil:
			other = f
		}
	}
	for _, f := range []*listedFile{regular, upright, other} {
		if f != nil {
			return *f, true
		}
	}
	return listedFile{}, false
}

func (f *Fetcher) get(ctx context.Context, u string, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: HTTP %d", u, resp.StatusCode)
	}
	return resp, nil
}

// Lookup returns the download URL of family's file closest to style (e.g. "Medium").
func (f *Fetcher) Lookup(ctx context.Context, family, style string) (string, error) {
	folders := FamilyFolders(family)
	if len(folders) == 0 {
		return "", fmt.Errorf("fonts: empty family name")
	}
	lastErr := fmt.Errorf("fonts: family %q not found", family)
	for _, folder := range folders {
		resp, err := f.get(ctx, f.APIBase+"/"+url.PathEscape(folder), "application/vnd.github.v3+json")
		if err != nil {
			lastErr = fmt.Errorf("fonts: %w", err)
			continue
		}
		var files []listedFile
		err = json.NewDecoder(resp.Body).Decode(&files)
		resp.Body.Close()
		if err != nil {
			return "", fmt.Errorf("fonts: listing %s: %w", folder, err)
		}
		if file, ok := pickFile(files, style, f.RawPrefix); ok {
			return file.DownloadURL, nil
		}
		lastErr = fmt.Errorf("fonts: no .ttf/.otf in %s", folder)
	}
	return "", lastErr
}

// Install looks up family/style and downloads it to Dir/<family>/, returning the file path.
func (f *Fetcher) Install(ctx context.Context, family, style string) (string, error) {
	u, err := f.Lookup(ctx, family, style)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(f.Dir, sanitizeName(strings.ReplaceAll(family, " ", "")))
	return f.download(ctx, u, dir)
}

// InstallURL downloads a font file or a zip of fonts. Zips are unpacked into a folder
// named after the archive and only their font files are kept.
func (f *Fetcher) InstallURL(ctx context.Context, rawURL string) ([]string, error) {
	p, err := f.download(ctx, rawURL, f.Dir)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(p), ".zip") {
		return []string{p}, nil
	}
	defer os.Remove(p)
	return ExtractFonts(p, strings.TrimSuffix(p, filepath.Ext(p)))
}

func (f *Fetcher) download(ctx context.Context, rawURL, dir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	name := sanitizeName(path.Base(u.Path))
	ext := strings.ToLower(filepath.Ext(name))
	if !isFontFile(name) && ext != ".zip" {
		return "", fmt.Errorf("fonts: %s is not a .ttf, .otf or .zip", rawURL)
	}
	resp, err := f.get(ctx, rawURL, "")
	if err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	defer resp.Body.Close()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	dest := filepath.Join(dir, name)
	if err := writeFile(dest, resp.Body); err != nil {
		return "", fmt.Errorf("fonts: %w", err)
	}
	return dest, nil
}

func writeFile(dest string, r io.Reader) error {
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	return out.Close()
}

// ExtractFonts unpacks the font files in zipPath into destDir, flattening directories.
// Entries that would land outside destDir are skipped.
func ExtractFonts(zipPath, destDir string) ([]string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("fonts: unzip: %w", err)
	}
	defer r.Close()
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("fonts: unzip: %w", err)
	}
	var out []string
	for _, zf := range r.File {
		if zf.FileInfo().IsDir() || !isFontFile(zf.Name) || strings.Contains(zf.Name, "..") {
			continue
		}
		dest := filepath.Join(destDir, sanitizeName(path.Base(zf.Name)))
		rc, err := zf.Open()
		if err != nil {
			return out, fmt.Errorf("fonts: unzip %s: %w", zf.Name, err)
		}
		err = writeFile(dest, rc)
		rc.Close()
		if err != nil {
			return out, fmt.Errorf("fonts: unzip %s: %w", zf.Name, err)
		}
		out = append(out, dest)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("fonts: %s holds no font files", zipPath)
	}
	return out, nil
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitizeName(name string) string {
	name = unsafeName.ReplaceAllString(name, "_")
	if len(name) > 96 {
		name = name[:96]
	}
	if name == "" || name == "." || name == ".." {
		return "font"
	}
	return name
}
