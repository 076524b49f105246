package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and serves until the listener fails or the
// process is terminated.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("mapping handlers: %w", err)
	}

	srv.l.Infof(context.Background(), "Listening on :%d", srv.port)
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
