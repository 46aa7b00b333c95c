// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package devserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/doc-viewer/pkg/types"
)

const shutdownTimeout = 5 * time.Second

// NewRouter builds the gin engine serving s. Request logs go to w.
func NewRouter(s *Store, w io.Writer) *gin.Engine {
	if w == nil {
		w = io.Discard
	}
	r := gin.New()
	r.Use(gin.LoggerWithWriter(w), gin.Recovery(), allowAnyOrigin)

	h := &handler{store: s}
	r.GET("/", h.root)
	r.GET("/documents/", h.listDocuments)
	r.GET("/document/:id", h.getDocument)
	return r
}

// allowAnyOrigin lets a browser frontend on another port read responses.
func allowAnyOrigin(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Next()
}

type handler struct {
	store *Store
}

// documentJSON is the wire form of a stored document. A missing citation
// is sent as null rather than dropped.
type documentJSON struct {
	types.DocumentSummary
	Citation *types.Citation `json:"citation"`
}

func toJSON(doc *types.DocumentDetail) documentJSON {
	return documentJSON{DocumentSummary: doc.DocumentSummary, Citation: doc.Citation}
}

func (h *handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to doc-viewer dev backend"})
}

func (h *handler) listDocuments(c *gin.Context) {
	docs, err := h.store.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}
	out := make([]documentJSON, len(docs))
	for i := range docs {
		out[i] = toJSON(&docs[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) getDocument(c *gin.Context) {
	doc, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Document not found"})
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, toJSON(doc))
}

// ListenAndServe serves h on cfg.Addr until ctx is cancelled, then shuts
// down gracefully.
func ListenAndServe(ctx context.Context, cfg types.ServeConfig, h http.Handler, w io.Writer) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Fprintf(w, "serving documents on %s\n", cfg.Addr)
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listening on %s: %w", cfg.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	fmt.Fprintln(w, "server stopped")
	return nil
}
