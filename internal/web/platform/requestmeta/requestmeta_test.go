package requestmeta

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPSWithPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		forwarded string
		tls       bool
		policy    SchemePolicy
		want      bool
	}{
		{name: "plain http", want: false},
		{name: "tls request", tls: true, want: true},
		{name: "forwarded header ignored by default", forwarded: "https", want: false},
		{name: "forwarded header trusted by policy", forwarded: "https", policy: SchemePolicy{TrustForwardedProto: true}, want: true},
		{name: "forwarded http stays http", forwarded: "http", policy: SchemePolicy{TrustForwardedProto: true}, want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", "/", nil)
			if tc.tls {
				r.TLS = &tls.ConnectionState{}
			}
			if tc.forwarded != "" {
				r.Header.Set("X-Forwarded-Proto", tc.forwarded)
			}
			if got := IsHTTPSWithPolicy(r, tc.policy); got != tc.want {
				t.Fatalf("IsHTTPSWithPolicy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsHTTPSNilRequest(t *testing.T) {
	t.Parallel()

	if IsHTTPS(nil) {
		t.Fatal("nil request must not be https")
	}
}
