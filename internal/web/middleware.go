package web

import (
	"net"
	"net/http"
)

// AllowedHosts rejects requests whose Host header is not in the configured
// list. A "*" entry allows everything.
func AllowedHosts(hosts []string) func(http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]bool, len(hosts))
	for _, h := range hosts {
		if h == "*" {
			allowAll = true
		}
		allowed[h] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowAll {
				next.ServeHTTP(w, r)
				return
			}
			host := r.Host
			if h, _, err := net.SplitHostPort(host); err == nil {
				host = h
			}
			if !allowed[host] {
				http.Error(w, "Invalid Host header", http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
