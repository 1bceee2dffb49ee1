package main

import (
	"context"
	"net/http"
	"time"

	"locallibrary/internal/catalog"
	"locallibrary/internal/httpx"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(catalogHandler *catalog.HTTPHandler, store pinger) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			httpx.JSONError(w, r, http.StatusServiceUnavailable, "NOT_READY", "store not ready", nil)
			return
		}
		httpx.JSONSuccess(w, r, map[string]string{"status": "ready"}, nil)
	})

	router.HandleFunc("GET /authors", catalogHandler.ShowAllAuthors)
	router.HandleFunc("GET /books/status", catalogHandler.ShowAllBooksStatus)
	router.HandleFunc("GET /books/{id}", catalogHandler.ShowBookDetail)
	// {id} never matches an empty segment; an absent id is still a book lookup.
	router.HandleFunc("GET /books/{$}", catalogHandler.ShowBookDetail)

	return router
}
