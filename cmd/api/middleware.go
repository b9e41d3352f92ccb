package main

import (
	"net/http"
	"strings"

	"github.com/tapmenu/tapmenu/internal/tenant"
)

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// TenantRewriteMiddleware inspects the Host header on every request. Hosts
// carrying a vendor subdomain get their path rewritten in place before
// routing: dashboard paths keep their path with the subdomain injected as a
// query parameter, every other storefront path becomes the public menu view.
// API paths pass through untouched, they take tenant context explicitly.
// This is an internal dispatch, never a redirect.
func (app *application) TenantRewriteMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, ok := tenant.Resolve(r.Host, app.config.appDomain)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api") {
			next.ServeHTTP(w, r)
			return
		}

		query := r.URL.Query()
		query.Set("subdomain", sub)
		r.URL.RawQuery = query.Encode()

		if !strings.HasPrefix(r.URL.Path, "/dashboard") {
			r.URL.Path = "/menu"
		}

		next.ServeHTTP(w, r)
	})
}
