package realtime

import (
	"net/http"
	"net/url"
	"strings"
)

const (
	queryTokenParam = "token"
	cookieTokenName = "token"
)

// ResolveCredential extracts the connect credential from the upgrade
// request. Sources are tried in fixed order: the handshake token parameter,
// the Authorization header, the session cookie. Empty string means no
// credential was presented.
func ResolveCredential(r *http.Request) string {
	if token := r.URL.Query().Get(queryTokenParam); token != "" {
		return token
	}

	if header := r.Header.Get("Authorization"); header != "" {
		if token := strings.TrimPrefix(header, "Bearer "); token != "" {
			return token
		}
	}

	return parseCookies(r.Header.Get("Cookie"))[cookieTokenName]
}

// parseCookies splits a raw Cookie header into key/value pairs. Values are
// URL-decoded when possible and kept verbatim otherwise.
func parseCookies(raw string) map[string]string {
	out := make(map[string]string)
	if raw == "" {
		return out
	}

	for _, part := range strings.Split(raw, ";") {
		key, value, _ := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		value = strings.TrimSpace(value)
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}

		out[key] = value
	}

	return out
}
