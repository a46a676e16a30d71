package handler

import (
	"hotelops/config"
	"hotelops/di"
	"hotelops/shared/logger"
	httpTransport "hotelops/transport/http"
	"net/http"
	"sync"
)

var (
	server     *httpTransport.HTTP
	serverOnce sync.Once
)

// Handler is the serverless entry point. Background workers (notification relay, scheduled
// night audit) do not run here; deploy cmd/app for those.
func Handler(w http.ResponseWriter, r *http.Request) {
	serverOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
