// Package device annotates requests with a parsed client description used
// for audit attribution.
package device

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"attestry/pkg/requestcontext"
)

// Annotate parses the User-Agent already captured by the metadata
// middleware into a compact "browser on OS" label. Unparseable agents
// leave the annotation empty rather than failing the request.
func Annotate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if ua := requestcontext.UserAgent(ctx); ua != "" {
			if label := describe(ua); label != "" {
				ctx = requestcontext.WithDevice(ctx, label)
			}
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func describe(raw string) string {
	parsed := useragent.New(raw)
	name, _ := parsed.Browser()
	os := parsed.OS()

	switch {
	case name != "" && os != "":
		label := name + " on " + os
		if parsed.Bot() {
			label += " (bot)"
		}
		return label
	case name != "":
		return name
	case os != "":
		return os
	default:
		return strings.TrimSpace(raw)
	}
}
