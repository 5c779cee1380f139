package serve

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testSite(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"index.html":                  "<html><body>home</body></html>",
		"places/index.html":           "<html><body>places</body></html>",
		"article/rohtas/desktop.html": `<div class="hop-article">snapshot</div>`,
		"article/rohtas/index.html":   "<html><body>article</body></html>",
		"404.html":                    "<html><body>missing page</body></html>",
	}
	for fname, content := range files {
		full := filepath.Join(root, filepath.FromSlash(fname))
		if err := os.MkdirAll(filepath.Dir(full), 0o777); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o666); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &Config{SiteDir: testSite(t)}
	cfg.applyDefaults()
	ts := httptest.NewServer(NewServer(cfg).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestServeHome(t *testing.T) {
	ts := testServer(t)

	resp, body := get(t, ts.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d, wanted %d", resp.StatusCode, http.StatusOK)
	}
	if !strings.Contains(body, "home") {
		t.Errorf("got body %q, wanted the home page", body)
	}
}

func TestServeDirectoryRedirect(t *testing.T) {
	ts := testServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(ts.URL + "/places")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMovedPermanently {
		t.Fatalf("got status %d, wanted %d", resp.StatusCode, http.StatusMovedPermanently)
	}
	if loc := resp.Header.Get("Location"); loc != "/places/" {
		t.Errorf("got location %q, wanted %q", loc, "/places/")
	}
}

func TestSnapshotCacheControl(t *testing.T) {
	ts := testServer(t)

	resp, body := get(t, ts.URL+"/article/rohtas/desktop.html")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, wanted %d", resp.StatusCode, http.StatusOK)
	}
	if !strings.Contains(body, "snapshot") {
		t.Errorf("got body %q, wanted the snapshot", body)
	}
	cc := resp.Header.Get("Cache-Control")
	if !strings.Contains(cc, "immutable") {
		t.Errorf("got cache control %q, wanted an immutable policy", cc)
	}

	resp, _ = get(t, ts.URL+"/article/rohtas/")
	if cc := resp.Header.Get("Cache-Control"); cc != "" {
		t.Errorf("got cache control %q on a viewer page, wanted none", cc)
	}
}

func TestNotFoundServesGeneratedPage(t *testing.T) {
	ts := testServer(t)

	resp, body := get(t, ts.URL+"/no-such-page/")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("got status %d, wanted %d", resp.StatusCode, http.StatusNotFound)
	}
	if !strings.Contains(body, "missing page") {
		t.Errorf("got body %q, wanted the generated 404 page", body)
	}
}

func TestHealth(t *testing.T) {
	ts := testServer(t)

	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d, wanted %d", resp.StatusCode, http.StatusOK)
	}
	if strings.TrimSpace(body) != "ok" {
		t.Errorf("got body %q, wanted %q", body, "ok")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != ":8077" {
		t.Errorf("got addr %q, wanted %q", cfg.Addr, ":8077")
	}
	if cfg.CacheMaxAge != 3600 {
		t.Errorf("got cache max age %d, wanted %d", cfg.CacheMaxAge, 3600)
	}
}

func TestLoadConfigFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "serve.yaml")
	content := "addr: \":9000\"\nsite_dir: /srv/site\ncache_max_age: 60\n"
	if err := os.WriteFile(fname, []byte(content), 0o666); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(fname)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("got addr %q, wanted %q", cfg.Addr, ":9000")
	}
	if cfg.SiteDir != "/srv/site" {
		t.Errorf("got site dir %q, wanted %q", cfg.SiteDir, "/srv/site")
	}
	if cfg.CacheMaxAge != 60 {
		t.Errorf("got cache max age %d, wanted %d", cfg.CacheMaxAge, 60)
	}
}
