// Package web hosts the browser-facing front-end for the laboratory
// directory: it renders server-side views over the user and lab REST
// services and keeps the signed-in state in a signed cookie.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	dirlabs "github.com/uamlabs/labfront/internal/directory/labs"
	dirusers "github.com/uamlabs/labfront/internal/directory/users"
	"github.com/uamlabs/labfront/internal/web/modules"
	"github.com/uamlabs/labfront/internal/web/platform/httpx"
	"github.com/uamlabs/labfront/internal/web/platform/requestmeta"
	"github.com/uamlabs/labfront/internal/web/routepath"
	"github.com/uamlabs/labfront/internal/web/session"
	"github.com/uamlabs/labfront/internal/web/static"
)

// defaultDirectoryTimeout caps one round trip to a directory service.
const defaultDirectoryTimeout = 10 * time.Second

// defaultShutdownTimeout caps the graceful drain on shutdown.
const defaultShutdownTimeout = 5 * time.Second

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr       string
	UserAPIBaseURL string
	LabAPIBaseURL  string
	SessionSecret  string
	SessionTTL     time.Duration
	// TrustForwardedProto marks session and notice cookies Secure when
	// a proxy reports HTTPS via X-Forwarded-Proto.
	TrustForwardedProto bool
}

// Server hosts the web front-end HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	codec, err := session.NewCodec(config.SessionSecret, config.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("init session codec: %w", err)
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto}
	sessions := session.NewStore(codec, policy)

	httpClient := &http.Client{Timeout: defaultDirectoryTimeout}
	userClient := dirusers.NewClient(config.UserAPIBaseURL, httpClient)
	labClient := dirlabs.NewClient(config.LabAPIBaseURL, httpClient)

	handler, err := NewHandler(modules.Dependencies{
		AuthDirectory:    userClient,
		ProfileDirectory: userClient,
		AccountDirectory: userClient,
		LabDirectory:     labClient,
		OwnerDirectory:   userClient,
		Sessions:         sessions,
		Policy:           policy,
	})
	if err != nil {
		return nil, fmt.Errorf("init web handler: %w", err)
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       time.Minute,
		},
	}, nil
}

// NewHandler assembles the root HTTP handler: static assets, the /app
// redirect, and every module mount, wrapped in the shared middleware.
func NewHandler(deps modules.Dependencies) (http.Handler, error) {
	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, static.Handler()))
	redirectHome := func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteRedirect(w, r, routepath.AppLabs)
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppRoot, redirectHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppRootPrefix+"{$}", redirectHome)

	for _, m := range modules.Compose(deps) {
		mount, err := m.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount %s module: %w", m.ID(), err)
		}
		mux.Handle(mount.Prefix, mount.Handler)
		if !strings.HasSuffix(mount.Prefix, "/") {
			mux.Handle(mount.Prefix+"/", mount.Handler)
		}
	}

	return httpx.Chain(mux, httpx.RequestID(), httpx.RecoverPanic()), nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.httpAddr }

// ListenAndServe runs the HTTP server until the context is canceled,
// then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
