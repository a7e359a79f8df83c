package middlewares

import (
	"io"
	"net/http"

	"clinic-service/internal/pkg/constvars"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5/middleware"
)

const defaultCompressionLevel = 5

// Compress encodes JSON responses with br when the client accepts it,
// otherwise gzip or deflate.
func (m *Middlewares) Compress() func(http.Handler) http.Handler {
	level := m.InternalConfig.App.CompressionLevel
	if level <= 0 || level > 9 {
		level = defaultCompressionLevel
	}

	compressor := middleware.NewCompressor(level, constvars.MIMEApplicationJSON)
	compressor.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return compressor.Handler
}
