package server

import (
	"net/http"
	"worldcup-scoreboard/assets"
	"worldcup-scoreboard/internal/middleware"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func NewHandler(scoreboard *ScoreboardServer, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(assets.FS()))))
	mux.HandleFunc("GET /{$}", scoreboard.ServePage)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	path, rpc := scoreboard.RPCHandler()
	mux.Handle(path, c.Handler(rpc))

	return middleware.RequestID(logger)(mux)
}
