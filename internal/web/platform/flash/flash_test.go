package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func carryCookies(t *testing.T, rr *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest("GET", "/", nil)
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge >= 0 {
			r.AddCookie(cookie)
		}
	}
	return r
}

func TestWriteThenReadAndClear(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest("GET", "/", nil), NoticeSuccess("labs.notice_updated"))

	next := carryCookies(t, rr)
	rr2 := httptest.NewRecorder()
	notice, ok := ReadAndClear(rr2, next)
	if !ok {
		t.Fatal("expected a pending notice")
	}
	if notice.Kind != KindSuccess || notice.Key != "labs.notice_updated" {
		t.Fatalf("notice = %+v", notice)
	}

	cookies := rr2.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected clearing cookie, got %v", cookies)
	}
}

// A second notice written before the first is rendered replaces it:
// there is a single slot and no queue. This supersedes the earlier
// client-side toast scheme, where every show call armed its own hide
// timer and a stale timer could dismiss a newer toast; with one slot
// and one fixed hide delay per render that race cannot occur.
func TestSecondWriteReplacesPendingNotice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest("GET", "/", nil), NoticeError("labs.error_update"))
	Write(rr, httptest.NewRequest("GET", "/", nil), NoticeSuccess("labs.notice_updated"))

	cookies := rr.Result().Cookies()
	last := cookies[len(cookies)-1]
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(last)

	notice, ok := ReadAndClear(httptest.NewRecorder(), r)
	if !ok {
		t.Fatal("expected a pending notice")
	}
	if notice.Kind != KindSuccess {
		t.Fatalf("kind = %q, want replacement notice", notice.Kind)
	}
}

func TestVerbatimTextSurvivesRoundTrip(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest("GET", "/", nil), NoticeErrorText("el correo ya existe"))

	notice, ok := ReadAndClear(httptest.NewRecorder(), carryCookies(t, rr))
	if !ok || notice.Text != "el correo ya existe" {
		t.Fatalf("notice = %+v, %v", notice, ok)
	}
}

func TestReadAndClearRejectsGarbage(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64!"})
	if _, ok := ReadAndClear(httptest.NewRecorder(), r); ok {
		t.Fatal("expected malformed cookie to read as no notice")
	}
}

func TestWriteDropsEmptyNotice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest("GET", "/", nil), Notice{Kind: KindInfo})
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("empty notice must not set a cookie")
	}
}
