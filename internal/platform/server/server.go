package server

import (
	"net"
	"net/http"
	"time"

	"gallery-viewer/internal/config"
)

// New builds the HTTP server for host:port. A nil timeouts config falls back
// to conservative defaults.
func New(host, port string, handler http.Handler, timeouts *config.ServerConfig) *http.Server {
	readTimeout, writeTimeout, idleTimeout := 15*time.Second, 15*time.Second, 60*time.Second
	if timeouts != nil {
		readTimeout, writeTimeout, idleTimeout = timeouts.ReadTimeout, timeouts.WriteTimeout, timeouts.IdleTimeout
	}

	return &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}
}
