package main

import "net/http"

func buildHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/presets", handlePresets)
	mux.HandleFunc("GET /v1/symbolgrid", handleNewSymbolGrid)
	mux.HandleFunc("GET /v1/kenken", handleNewKenKen)

	handler := useMiddleware(mux,
		corsMiddleware,
		loggingMiddleware,
	)

	return handler
}
