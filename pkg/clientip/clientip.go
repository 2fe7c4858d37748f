// Package clientip resolves the address of the client behind an HTTP request.
//
// Forwarding headers are only honoured when the server sits behind a proxy
// that sets them; otherwise any client could pick its own address and dodge
// per-client limits. Middleware stores the result in the request context.
package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/dmitrymomot/namegen/pkg/logger"
)

// proxyHeaders are consulted in order when proxies are trusted.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Real-IP"}

// FromRequest returns the client address of r, or "" when none parses.
// With trustProxy it prefers CF-Connecting-IP, then the first valid entry of
// X-Forwarded-For, then X-Real-IP, before falling back to RemoteAddr.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if ip := parse(r.Header.Get(proxyHeaders[0])); ip != "" {
			return ip
		}
		for part := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
			if ip := parse(part); ip != "" {
				return ip
			}
		}
		if ip := parse(r.Header.Get(proxyHeaders[1])); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

type contextKey struct{}

// WithContext returns a copy of ctx carrying ip.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the client address of every request in its context.
func Middleware(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), FromRequest(r, trustProxy))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LoggerExtractor adds a client_ip attribute to records logged with a
// request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
