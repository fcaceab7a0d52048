package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weft-ui/weft/pkg/docstore"
	"github.com/weft-ui/weft/pkg/render"
	"github.com/weft-ui/weft/pkg/schema"
	"github.com/weft-ui/weft/pkg/template"
	"github.com/weft-ui/weft/pkg/tree"
)

// Config configures the preview server.
type Config struct {
	// Addr is the listen address (default ":8473").
	Addr string

	// Store provides the source-tree documents.
	Store docstore.Store

	// Document is the key of the document to preview.
	Document string

	// Registry supplies class metadata for template building.
	// Defaults to schema.Builtin().
	Registry *schema.Registry

	// WatchPath, when set, is a local file watched for changes; each
	// change rebuilds the template and reloads connected browsers.
	WatchPath string

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Server previews one template document.
type Server struct {
	cfg      Config
	log      *slog.Logger
	renderer *render.Renderer
	hub      *hub

	mu   sync.RWMutex
	tmpl *template.Template
}

// New builds the initial template and returns a ready server. A document
// that fails to load or build is a startup error, not a 500 at first
// request.
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("preview: nil document store")
	}
	if cfg.Document == "" {
		return nil, errors.New("preview: no document configured")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8473"
	}
	if cfg.Registry == nil {
		cfg.Registry = schema.Builtin()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	s := &Server{
		cfg:      cfg,
		log:      cfg.Logger.With("component", "preview"),
		renderer: render.NewRenderer(render.RendererConfig{Pretty: true}),
		hub:      newHub(cfg.Logger),
	}
	if err := s.reload(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// Template returns the currently built template.
func (s *Server) Template() *template.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tmpl
}

// reload loads the document, rebuilds the template, and tells connected
// browsers to refresh.
func (s *Server) reload(ctx context.Context) error {
	start := time.Now()
	data, err := s.cfg.Store.Load(ctx, s.cfg.Document)
	if err != nil {
		return fmt.Errorf("load document %q: %w", s.cfg.Document, err)
	}
	root, err := parseDocument(s.cfg.Document, data)
	if err != nil {
		return err
	}
	tmpl, err := template.Build(root, s.cfg.Registry)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tmpl = tmpl
	s.mu.Unlock()

	recordRebuild(time.Since(start))
	s.log.Info("template rebuilt",
		"document", s.cfg.Document,
		"elapsed", time.Since(start))
	s.hub.broadcast([]byte("reload"))
	return nil
}

// parseDocument picks the decoder from the document key's extension,
// mirroring tree.LoadFile.
func parseDocument(key string, data []byte) (tree.Node, error) {
	switch strings.ToLower(path.Ext(key)) {
	case ".json", ".jsonc":
		return tree.LoadJSONC(data)
	default:
		return tree.LoadYAML(data)
	}
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// The websocket upgrade needs the raw ResponseWriter: the wrapping
	// middlewares replace it with a statusWriter that has no Hijacker,
	// which makes every upgrade fail.
	r.Get("/ws", s.hub.handleWS)

	r.Group(func(r chi.Router) {
		r.Use(requestLogger(s.log))
		r.Use(metricsMiddleware())
		r.Use(tracingMiddleware("weft-preview"))

		r.Get("/", s.handleIndex)
		r.Get("/healthz", s.handleHealthz)
		r.Handle("/metrics", promhttp.Handler())
	})
	return r
}

// ListenAndServe runs the server until ctx is canceled. When a watch path
// is configured, a file watcher runs alongside the listener.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s.cfg.WatchPath != "" {
		stop, err := s.watch(ctx)
		if err != nil {
			return err
		}
		defer stop()
	}

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("preview listening", "addr", s.cfg.Addr, "document", s.cfg.Document)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	out, err := s.Template().Synthesize()
	if err != nil {
		s.log.Error("synthesize failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	recordSynthesis(time.Since(start))

	body, err := s.renderer.RenderToString(out)
	if err != nil {
		s.log.Error("render failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, s.cfg.Document, body)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// pageShell wraps the rendered tree with a minimal reload client.
const pageShell = `<!DOCTYPE html>
<html>
<head><title>weft preview: %s</title></head>
<body>
%s
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/ws");
  ws.onmessage = function () { location.reload(); };
})();
</script>
</body>
</html>
`
