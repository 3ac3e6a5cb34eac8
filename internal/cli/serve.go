package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	pkgerrors "github.com/tilekit/docktree/pkg/errors"
	layoutio "github.com/tilekit/docktree/pkg/io"
	"github.com/tilekit/docktree/pkg/layout"
	"github.com/tilekit/docktree/pkg/observability"
	"github.com/tilekit/docktree/pkg/render/dot"
)

// serveCommand creates the serve command for exposing a layout over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		file string
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve [layout.json]",
		Short: "Expose a layout over HTTP for remote mutation",
		Long: `Expose a layout over HTTP for remote mutation.

The server loads the layout file once and keeps the tree in memory;
every successful mutation is written back to the file. Mutations are
serialized through a single lock, so concurrent clients always observe
a complete layout.

Endpoints:
  GET  /layout         current layout (ETag carries the revision)
  GET  /layout.svg     current layout rendered as SVG
  POST /layout/split   {"form": "...", "destination": "...", "direction": "..."}
  POST /layout/stack   {"form": "...", "destination": "..."}
  POST /layout/forms   {"title": "...", "destination": "..."}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				file = args[0]
			}
			return c.runServe(cmd.Context(), file, addr)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", defaultLayoutFile, "layout file to serve")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config)")

	return cmd
}

// runServe loads the layout and blocks serving it until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, file, addr string) error {
	if addr == "" {
		addr = c.Config.Listen
	}
	tree, err := loadTree(file)
	if err != nil {
		return err
	}

	store := newLayoutStore(tree, file)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(store, c.Logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving layout", "file", file, "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve on %s: %w", addr, err)
	}
}

// =============================================================================
// Layout Store
// =============================================================================

// layoutStore owns the served tree. All access goes through its mutex:
// the engine itself is not safe for concurrent use, so the store admits
// one reader or writer at a time.
type layoutStore struct {
	mu       sync.Mutex
	tree     *layout.Tree
	path     string
	revision string
}

// newLayoutStore wraps tree with a fresh revision id.
func newLayoutStore(tree *layout.Tree, path string) *layoutStore {
	return &layoutStore{
		tree:     tree,
		path:     path,
		revision: uuid.NewString(),
	}
}

// snapshot returns a deep copy of the current root and its revision.
func (s *layoutStore) snapshot() (layout.Node, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Snapshot(), s.revision
}

// mutate applies fn to the tree, and on success persists the layout and
// assigns a new revision. A failed mutation leaves both untouched.
func (s *layoutStore) mutate(fn func(*layout.Tree) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.tree); err != nil {
		return err
	}
	if err := saveTree(s.tree, s.path); err != nil {
		return err
	}
	s.revision = uuid.NewString()
	return nil
}

// =============================================================================
// Router
// =============================================================================

// newRouter builds the HTTP API around a layout store.
func newRouter(store *layoutStore, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(loggerMiddleware(logger))
	r.Use(hookMiddleware)

	r.Get("/layout", handleGetLayout(store))
	r.Get("/layout.svg", handleGetSVG(store))
	r.Post("/layout/split", handleSplit(store))
	r.Post("/layout/stack", handleStack(store))
	r.Post("/layout/forms", handleCreateForm(store))

	return r
}

// loggerMiddleware attaches the CLI logger to every request context so
// handlers can log without reaching for globals.
func loggerMiddleware(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), logger)))
		})
	}
}

// hookMiddleware reports request and response events to the registered
// server hooks.
func hookMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}

// statusWriter captures the response status code for the hooks.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// =============================================================================
// Handlers
// =============================================================================

type splitRequest struct {
	Form        string `json:"form"`
	Destination string `json:"destination"`
	Direction   string `json:"direction"`
}

type stackRequest struct {
	Form        string `json:"form"`
	Destination string `json:"destination"`
}

type formRequest struct {
	Title       string `json:"title"`
	Destination string `json:"destination"`
}

func handleGetLayout(store *layoutStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		root, revision := store.snapshot()
		etag := `"` + revision + `"`
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("ETag", etag)
		if err := layoutio.WriteJSON(root, w); err != nil {
			writeError(w, err)
		}
	}
}

func handleGetSVG(store *layoutStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		root, revision := store.snapshot()
		svg, err := dot.RenderSVG(dot.ToDOT(root, dot.Options{Detailed: true}))
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("ETag", `"`+revision+`"`)
		_, _ = w.Write(svg)
	}
}

func handleSplit(store *layoutStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req splitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "malformed request body"))
			return
		}
		if err := validateIDs(req.Form, req.Destination); err != nil {
			writeError(w, err)
			return
		}
		dir, err := layout.ParseDirection(req.Direction)
		if err != nil {
			writeError(w, err)
			return
		}
		start := time.Now()
		err = store.mutate(func(t *layout.Tree) error {
			return t.Split(req.Form, req.Destination, dir)
		})
		observability.Layout().OnSplit(r.Context(), req.Form, req.Destination, time.Since(start), err)
		if err != nil {
			loggerFromContext(r.Context()).Debug("split rejected", "form", req.Form, "destination", req.Destination, "err", err)
			writeError(w, err)
			return
		}
		writeLayout(w, store)
	}
}

func handleStack(store *layoutStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req stackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "malformed request body"))
			return
		}
		if err := validateIDs(req.Form, req.Destination); err != nil {
			writeError(w, err)
			return
		}
		start := time.Now()
		err := store.mutate(func(t *layout.Tree) error {
			return t.Stack(req.Form, req.Destination)
		})
		observability.Layout().OnStack(r.Context(), req.Form, req.Destination, time.Since(start), err)
		if err != nil {
			loggerFromContext(r.Context()).Debug("stack rejected", "form", req.Form, "destination", req.Destination, "err", err)
			writeError(w, err)
			return
		}
		writeLayout(w, store)
	}
}

func handleCreateForm(store *layoutStore) http.HandlerFunc {
	type response struct {
		ID string `json:"id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req formRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "malformed request body"))
			return
		}
		if err := pkgerrors.ValidateFormTitle(req.Title); err != nil {
			writeError(w, err)
			return
		}
		if err := pkgerrors.ValidateNodeID(req.Destination); err != nil {
			writeError(w, err)
			return
		}
		var id string
		err := store.mutate(func(t *layout.Tree) error {
			f := t.NewForm(req.Title, nil, "")
			id = f.ID
			return t.Stack(f.ID, req.Destination)
		})
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(response{ID: id})
	}
}

// =============================================================================
// Response Helpers
// =============================================================================

// validateIDs checks a pair of untrusted ids from a request body.
func validateIDs(formID, destinationID string) error {
	if err := pkgerrors.ValidateNodeID(formID); err != nil {
		return err
	}
	return pkgerrors.ValidateNodeID(destinationID)
}

// writeLayout responds with the current layout and its revision ETag.
func writeLayout(w http.ResponseWriter, store *layoutStore) {
	root, revision := store.snapshot()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", `"`+revision+`"`)
	if err := layoutio.WriteJSON(root, w); err != nil {
		writeError(w, err)
	}
}

// writeError maps an error to a coded JSON response.
func writeError(w http.ResponseWriter, err error) {
	coded := pkgerrors.FromLayout(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(pkgerrors.HTTPStatus(coded))
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":  string(pkgerrors.GetCode(coded)),
		"error": pkgerrors.UserMessage(coded),
	})
}
