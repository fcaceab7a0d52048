package preview

import (
	"context"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/weft-ui/weft/pkg/docstore"
)

const testDoc = `
name: Panel
class: Frame
children:
  - name: Title
    class: Label
    properties:
      Text: Preview me
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "panel.yaml"), []byte(testDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := New(Config{
		Store:    docstore.NewDiskStore(dir),
		Document: "panel.yaml",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("New without a store should fail")
	}
	if _, err := New(Config{Store: docstore.NewDiskStore(t.TempDir())}); err == nil {
		t.Error("New without a document should fail")
	}
	if _, err := New(Config{Store: docstore.NewDiskStore(t.TempDir()), Document: "absent.yaml"}); err == nil {
		t.Error("New with a missing document should fail at startup")
	}
}

func TestHandleIndex(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != 200 {
		t.Fatalf("GET / status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	html := string(body)
	if !strings.Contains(html, `data-class="Frame"`) {
		t.Errorf("body missing rendered root: %s", html)
	}
	if !strings.Contains(html, "Preview me") {
		t.Errorf("body missing rendered label text: %s", html)
	}
	if !strings.Contains(html, "WebSocket") {
		t.Error("body missing the reload client")
	}
}

func TestHandleHealthz(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	if rec.Code != 200 || rec.Body.String() != "ok" {
		t.Errorf("GET /healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestHandleMetrics(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("GET /metrics status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "weft_preview_rebuilds_total") {
		t.Error("metrics output missing the rebuild counter")
	}
}

func TestReloadSwapsTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panel.yaml")
	if err := os.WriteFile(path, []byte(testDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := New(Config{Store: docstore.NewDiskStore(dir), Document: "panel.yaml"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	before := s.Template()

	updated := strings.Replace(testDoc, "Preview me", "Changed", 1)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.reload(context.Background()); err != nil {
		t.Fatalf("reload() error = %v", err)
	}
	if s.Template() == before {
		t.Error("reload should install a fresh template")
	}
	out, err := s.Template().Synthesize()
	if err != nil {
		t.Fatal(err)
	}
	if out.Children["Title"].Props["Text"] != "Changed" {
		t.Error("reloaded template still has the old document contents")
	}
}
