// Package httpserver implements the read-only HTTP surface of the
// traffic archive: request dispatch, the sensor- and metro_config-family
// handler cascades, and the lifecycle of the underlying net/http server.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mnit-rtmc/trafdat/internal/archive"
	"github.com/mnit-rtmc/trafdat/internal/assets"
	"github.com/mnit-rtmc/trafdat/internal/metroconfig"
	"github.com/mnit-rtmc/trafdat/pkg/logger"
)

// Server owns the archive and metro_config stores and renders HTTP
// responses for the route table implemented in dispatch. A Server holds
// no per-request state; every field is read-only after construction.
type Server struct {
	Archive         *archive.Store
	Config          *metroconfig.Store
	DefaultDistrict string
	Assets          *assets.Renderer
	MountPrefix     string

	httpServer *http.Server
	done       chan error
	once       sync.Once
}

// New constructs a Server. mountPrefix is stripped from every request
// path before dispatch (e.g. "/trafdat"); pass "" for no prefix.
func New(archiveStore *archive.Store, configStore *metroconfig.Store, defaultDistrict string, renderer *assets.Renderer, mountPrefix string) *Server {
	return &Server{
		Archive:         archiveStore,
		Config:          configStore,
		DefaultDistrict: defaultDistrict,
		Assets:          renderer,
		MountPrefix:     mountPrefix,
		done:            make(chan error, 1),
	}
}

// Start binds addr and begins serving in the background. Call Shutdown
// to stop it gracefully.
func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.ServeHTTP)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	go s.serve(ln)
	return nil
}

// Wait blocks until the server stops, returning the reason (nil on a
// clean Shutdown).
func (s *Server) Wait() error {
	err := <-s.done
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully, waiting up to the context's
// deadline for in-flight requests to finish. It returns the context's
// error if that deadline passes first.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.once.Do(func() {
		if s.httpServer != nil {
			shutdownErr = s.httpServer.Shutdown(ctx)
		}
	})
	if err := s.Wait(); err != nil {
		return err
	}
	return shutdownErr
}

func (s *Server) serve(ln net.Listener) {
	err := s.httpServer.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Warn("archive server ended unexpectedly", logger.Err(err))
	}
	s.done <- err
	close(s.done)
}

// ServeHTTP strips MountPrefix from the request path, dispatches it and
// writes the resulting handlerResult, a 400, or a 404.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, s.MountPrefix)

	res, err := s.dispatch(path)
	if err != nil {
		writeBadRequest(w)
		return
	}
	if res == nil {
		writeNotFound(w)
		return
	}
	writeResult(w, res)
}

func writeResult(w http.ResponseWriter, res *handlerResult) {
	w.Header().Set("Content-Type", res.contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.body)
}

func writeNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("Not Found"))
}

func writeBadRequest(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write([]byte("Bad request"))
}

func (s *Server) handleLandingPage() *handlerResult {
	if s.Assets == nil {
		return nil
	}
	body, err := s.Assets.Landing(s.Archive.Districts())
	if err != nil {
		return nil
	}
	return &handlerResult{body: body, contentType: "text/html; charset=utf-8"}
}

func (s *Server) handleStylesheet() *handlerResult {
	if s.Assets == nil {
		return nil
	}
	return &handlerResult{body: s.Assets.Stylesheet(), contentType: "text/css"}
}
