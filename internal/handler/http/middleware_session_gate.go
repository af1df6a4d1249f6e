package http

import (
	"net/http"
	"path"
	"strings"

	"github.com/MKhiriev/greenwall/internal/logger"
)

var staticAssetExtensions = map[string]bool{
	".svg":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// sessionGate redirects page requests based on whether the session cookie
// identifies a user. It keeps no state between requests.
func (h *Handler) sessionGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gateBypass(r) {
			next.ServeHTTP(w, r)
			return
		}

		authenticated := h.hasSession(r)
		if target, ok := gateRedirect(authenticated, r.URL.Path); ok {
			logger.FromRequest(r).Debug().
				Bool("authenticated", authenticated).
				Str("from", r.URL.Path).
				Str("to", target).
				Msg("session gate redirect")
			http.Redirect(w, r, target, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// gateRedirect decides where a page request goes:
//
//	authenticated, landing page     -> journal
//	anonymous, journal or sub-page  -> landing page
//
// Everything else passes through.
func gateRedirect(authenticated bool, requestPath string) (string, bool) {
	switch {
	case authenticated && requestPath == landingPath:
		return journalPath, true
	case !authenticated && isJournalPath(requestPath):
		return landingPath, true
	default:
		return "", false
	}
}

func isJournalPath(p string) bool {
	return p == journalPath || strings.HasPrefix(p, journalPath+"/")
}

// gateBypass reports whether the request never needs a session lookup:
// API calls, framework assets, prefetches and static images.
func gateBypass(r *http.Request) bool {
	p := r.URL.Path

	if hasPathPrefix(p, "/api") || hasPathPrefix(p, "/_next") {
		return true
	}
	if r.URL.Query().Has("_rsc") {
		return true
	}
	if path.Base(p) == "favicon.ico" {
		return true
	}

	return staticAssetExtensions[strings.ToLower(path.Ext(p))]
}

func hasPathPrefix(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

// hasSession validates the session cookie. Any failure counts as anonymous.
func (h *Handler) hasSession(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}

	_, err = h.services.AuthService.ParseToken(r.Context(), cookie.Value)
	return err == nil
}
