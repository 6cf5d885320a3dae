package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/uamlabs/labfront/internal/directory/labs"
	"github.com/uamlabs/labfront/internal/directory/users"
	"github.com/uamlabs/labfront/internal/web/modules"
	"github.com/uamlabs/labfront/internal/web/platform/requestmeta"
	"github.com/uamlabs/labfront/internal/web/routepath"
	"github.com/uamlabs/labfront/internal/web/session"
)

type stubUserDirectory struct{}

func (stubUserDirectory) Login(context.Context, string, string) (users.User, error) {
	return users.User{}, nil
}

func (stubUserDirectory) Register(context.Context, users.Registration) error { return nil }

func (stubUserDirectory) ResetPassword(context.Context, string, string) error { return nil }

func (stubUserDirectory) List(context.Context) ([]users.User, error) { return nil, nil }

func (stubUserDirectory) Update(context.Context, int, users.Update) (users.User, error) {
	return users.User{}, nil
}

func (stubUserDirectory) Delete(context.Context, int) error { return nil }

type stubLabDirectory struct{}

func (stubLabDirectory) List(context.Context) ([]labs.Lab, error) { return nil, nil }

func (stubLabDirectory) Create(context.Context, labs.Lab) (labs.Lab, error) {
	return labs.Lab{}, nil
}

func (stubLabDirectory) Update(context.Context, int, labs.Lab) (labs.Lab, error) {
	return labs.Lab{}, nil
}

func (stubLabDirectory) Delete(context.Context, int) error { return nil }

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	codec, err := session.NewCodec("test-secret", 0)
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}
	handler, err := NewHandler(modules.Dependencies{
		AuthDirectory:    stubUserDirectory{},
		ProfileDirectory: stubUserDirectory{},
		AccountDirectory: stubUserDirectory{},
		LabDirectory:     stubLabDirectory{},
		OwnerDirectory:   stubUserDirectory{},
		Sessions:         session.NewStore(codec, requestmeta.SchemePolicy{}),
	})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return handler
}

func TestNewServerRequiresAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{SessionSecret: "s"}); err == nil {
		t.Fatal("NewServer() error = nil, want missing address failure")
	}
}

func TestNewServerRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{HTTPAddr: "localhost:8080"}); err == nil {
		t.Fatal("NewServer() error = nil, want missing secret failure")
	}
}

func TestHandlerServesStaticAssets(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/styles.css", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), ".navbar") {
		t.Fatal("stylesheet body missing .navbar rule")
	}
}

func TestHandlerRedirectsAppRootToLabs(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	for _, path := range []string{routepath.AppRoot, routepath.AppRootPrefix} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusFound {
			t.Fatalf("GET %s status = %d, want %d", path, rec.Code, http.StatusFound)
		}
		if got := rec.Header().Get("Location"); got != routepath.AppLabs {
			t.Fatalf("GET %s location = %q, want %q", path, got, routepath.AppLabs)
		}
	}
}

func TestHandlerMountsModules(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	tests := []struct {
		path         string
		wantStatus   int
		wantLocation string
	}{
		{path: routepath.Login, wantStatus: http.StatusOK},
		{path: routepath.NewAccount, wantStatus: http.StatusOK},
		{path: routepath.AppLabs, wantStatus: http.StatusFound, wantLocation: routepath.Login},
		{path: routepath.AppProfile, wantStatus: http.StatusFound, wantLocation: routepath.Login},
		{path: routepath.AppAdminUsers, wantStatus: http.StatusFound, wantLocation: routepath.Login},
		{path: "/nowhere", wantStatus: http.StatusFound, wantLocation: routepath.Login},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

		if rec.Code != tc.wantStatus {
			t.Fatalf("GET %s status = %d, want %d", tc.path, rec.Code, tc.wantStatus)
		}
		if tc.wantLocation != "" {
			if got := rec.Header().Get("Location"); got != tc.wantLocation {
				t.Fatalf("GET %s location = %q, want %q", tc.path, got, tc.wantLocation)
			}
		}
	}
}

func TestHandlerEchoesRequestID(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Login, nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-42" {
		t.Fatalf("X-Request-ID = %q, want %q", got, "req-42")
	}
}
