package http

import (
	"net/http"
	"os"
	"path"
	"strings"
)

// withStatic serves regular files found under the configured static
// directory for GET and HEAD requests. Everything else, including
// directories and missing files, falls through to the next stage. Lookups go
// through an [os.Root] so paths cannot escape the directory.
func (h *Handler) withStatic() func(http.Handler) http.Handler {
	if h.server.StaticDir == "" {
		return passthrough
	}

	root, err := os.OpenRoot(h.server.StaticDir)
	if err != nil {
		h.logger.Debug().Err(err).Str("dir", h.server.StaticDir).Msg("static directory is not available")
		return passthrough
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
			if name == "" {
				next.ServeHTTP(w, r)
				return
			}

			file, err := root.Open(name)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			defer file.Close()

			info, err := file.Stat()
			if err != nil || !info.Mode().IsRegular() {
				next.ServeHTTP(w, r)
				return
			}

			http.ServeContent(w, r, info.Name(), info.ModTime(), file)
		})
	}
}

func passthrough(next http.Handler) http.Handler {
	return next
}
