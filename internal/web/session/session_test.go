package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/uamlabs/labfront/internal/directory/users"
	"github.com/uamlabs/labfront/internal/web/platform/requestmeta"
	"github.com/uamlabs/labfront/internal/web/platform/sessioncookie"
)

func testCodec(t *testing.T) Codec {
	t.Helper()
	codec, err := NewCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return codec
}

func TestNewCodecRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewCodec("", time.Hour); err != ErrNoSecret {
		t.Fatalf("err = %v, want ErrNoSecret", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	codec := testCodec(t)
	user := User{ID: 5, Name: "Ana", Email: "a@b.com", Active: true, Admin: true}
	token, err := codec.Encode(user)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, ok := codec.Decode(token)
	if !ok {
		t.Fatal("expected valid session")
	}
	if decoded != user {
		t.Fatalf("decoded = %+v, want %+v", decoded, user)
	}
}

func TestDecodeRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	codec := testCodec(t)
	token, err := codec.Encode(User{ID: 5, Name: "Ana"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	other, err := NewCodec("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	if _, ok := other.Decode(token); ok {
		t.Fatal("token signed with another secret must not decode")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, ok := testCodec(t).Decode("not-a-token"); ok {
		t.Fatal("garbage must read as no session")
	}
}

func TestDecodeRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	codec, err := NewCodec("test-secret", time.Nanosecond)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	token, err := codec.Encode(User{ID: 5})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok := codec.Decode(token); ok {
		t.Fatal("expired token must read as no session")
	}
}

func TestStoreSaveLoadClear(t *testing.T) {
	t.Parallel()

	store := NewStore(testCodec(t), requestmeta.SchemePolicy{})
	user := User{ID: 7, Name: "Luis", Email: "l@b.com", Active: true}

	rr := httptest.NewRecorder()
	store.Save(rr, httptest.NewRequest("GET", "/", nil), user)
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %v", cookies)
	}

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookies[0])
	loaded, ok := store.Load(r)
	if !ok || loaded != user {
		t.Fatalf("Load() = %+v, %v", loaded, ok)
	}

	rr = httptest.NewRecorder()
	store.Clear(rr, httptest.NewRequest("GET", "/", nil))
	cleared := rr.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Fatalf("expected expired cookie, got %v", cleared)
	}
}

// Saving twice keeps a single snapshot: the second write fully replaces
// the first, there is no merge.
func TestStoreSaveOverwrites(t *testing.T) {
	t.Parallel()

	store := NewStore(testCodec(t), requestmeta.SchemePolicy{})
	rr := httptest.NewRecorder()
	store.Save(rr, httptest.NewRequest("GET", "/", nil), User{ID: 1, Name: "Old"})
	store.Save(rr, httptest.NewRequest("GET", "/", nil), User{ID: 1, Name: "New"})

	cookies := rr.Result().Cookies()
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookies[len(cookies)-1])
	loaded, ok := store.Load(r)
	if !ok || loaded.Name != "New" {
		t.Fatalf("Load() = %+v, %v", loaded, ok)
	}
}

func TestStoreLoadMalformedCookieIsNoSession(t *testing.T) {
	t.Parallel()

	store := NewStore(testCodec(t), requestmeta.SchemePolicy{})
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "{broken json}"})
	if _, ok := store.Load(r); ok {
		t.Fatal("malformed cookie must read as no session")
	}
}

func TestFromDirectoryAndRole(t *testing.T) {
	t.Parallel()

	user := FromDirectory(users.User{ID: 3, Name: "Ana", Email: "a@b.com", Active: true, Admin: true, CreatedAt: "2026-01-01T00:00:00Z"})
	if user.ID != 3 || user.CreatedAt == "" {
		t.Fatalf("user = %+v", user)
	}
	if user.Role() != "admin" {
		t.Fatalf("role = %q", user.Role())
	}
	if (User{ID: 4}).Role() != "user" {
		t.Fatal("non-admin role must be user")
	}
}
