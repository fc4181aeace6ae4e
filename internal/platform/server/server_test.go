package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gallery-viewer/internal/config"
)

func TestNew(t *testing.T) {
	handler := http.NotFoundHandler()

	t.Run("configured timeouts", func(t *testing.T) {
		srv := New("0.0.0.0", "3000", handler, &config.ServerConfig{
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 6 * time.Second,
			IdleTimeout:  7 * time.Second,
		})

		assert.Equal(t, "0.0.0.0:3000", srv.Addr)
		assert.Equal(t, 5*time.Second, srv.ReadTimeout)
		assert.Equal(t, 6*time.Second, srv.WriteTimeout)
		assert.Equal(t, 7*time.Second, srv.IdleTimeout)
	})

	t.Run("defaults", func(t *testing.T) {
		srv := New("", "8080", handler, nil)

		assert.Equal(t, ":8080", srv.Addr)
		assert.Equal(t, 15*time.Second, srv.ReadTimeout)
		assert.Equal(t, 60*time.Second, srv.IdleTimeout)
	})
}
