package handler

import (
	"drivent/config"
	"drivent/di"
	"drivent/shared/logger"
	"net/http"
	"sync"

	transport "drivent/transport/http"
)

var (
	once   sync.Once
	server *transport.HTTP
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
