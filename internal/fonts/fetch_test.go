package fonts

import (
	"archive/zip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyFolders(t *testing.T) {
	assert.Equal(t, []string{"firasans", "fira-sans"}, FamilyFolders(" Fira Sans "))
	assert.Equal(t, []string{"inter"}, FamilyFolders("Inter"))
	assert.Nil(t, FamilyFolders(""))
}

func TestPickFile(t *testing.T) {
	raw := "https://raw.example/"
	files := []listedFile{
		{Name: "OFL.txt", Type: "file", DownloadURL: raw + "OFL.txt"},
		{Name: "FiraSans-MediumItalic.ttf", Type: "file", DownloadURL: raw + "FiraSans-MediumItalic.ttf"},
		{Name: "FiraSans-Bold.ttf", Type: "file", DownloadURL: raw + "FiraSans-Bold.ttf"},
		{Name: "FiraSans-Regular.ttf", Type: "file", DownloadURL: raw + "FiraSans-Regular.ttf"},
		{Name: "FiraSans-Medium.ttf", Type: "file", DownloadURL: raw + "FiraSans-Medium.ttf"},
		{Name: "Evil-Medium.ttf", Type: "file", DownloadURL: "https://elsewhere/Evil-Medium.ttf"},
	}
	f, ok := pickFile(files, "Medium", raw)
	require.True(t, ok)
	assert.Equal(t, "FiraSans-Medium.ttf", f.Name)

	f, ok = pickFile(files, "Light", raw)
	require.True(t, ok)
	assert.Equal(t, "FiraSans-Regular.ttf", f.Name)

	_, ok = pickFile(files[:1], "", raw)
	assert.False(t, ok)
}

func TestInstall(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ofl/firasans":
			json.NewEncoder(w).Encode([]listedFile{
				{Name: "FiraSans-Regular.ttf", Type: "file", DownloadURL: srv.URL + "/raw/FiraSans-Regular.ttf"},
				{Name: "FiraSans-Medium.ttf", Type: "file", DownloadURL: srv.URL + "/raw/FiraSans-Medium.ttf"},
			})
		case "/raw/FiraSans-Medium.ttf":
			w.Write([]byte("medium"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := &Fetcher{Client: srv.Client(), APIBase: srv.URL + "/ofl", RawPrefix: srv.URL + "/raw/", Dir: dir}
	p, err := f.Install(context.Background(), "Fira Sans", "Medium")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "FiraSans", "FiraSans-Medium.ttf"), p)
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "medium", string(data))

	got, err := (&Finder{Dirs: []string{dir}}).Resolve("FiraSans-Medium")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = f.Install(context.Background(), "No Such Font", "")
	assert.Error(t, err)
}

func TestExtractFonts(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "pack.zip")
	zf, err := os.Create(zipPath)
	require.NoError(t, err)
	zw := zip.NewWriter(zf)
	for _, name := range []string{"pack/static/Inter-Regular.ttf", "pack/README.md", "pack/OFL.txt"} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, zf.Close())

	out, err := ExtractFonts(zipPath, filepath.Join(dir, "pack"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "pack", "Inter-Regular.ttf")}, out)
}
