package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"locallibrary/internal/httpx"
)

// AuthorLister produces the formatted author list.
type AuthorLister interface {
	AuthorList(ctx context.Context) ([]string, error)
}

type HTTPHandler struct {
	svc     *Service
	authors AuthorLister
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc, authors: svc}
}

type statusQuery struct {
	Status string `validate:"required,alpha,max=32"`
}

// ShowAllAuthors handles GET /authors
func (h *HTTPHandler) ShowAllAuthors(w http.ResponseWriter, r *http.Request) {
	entries, err := h.authors.AuthorList(r.Context())
	if err != nil {
		log.Printf("show authors: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.Send(w, http.StatusOK, "No authors found here")
		return
	}
	if len(entries) == 0 {
		httpx.Send(w, http.StatusOK, "No authors found")
		return
	}
	httpx.Send(w, http.StatusOK, entries)
}

// ShowBookDetail handles GET /books/{id}
func (h *HTTPHandler) ShowBookDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	detail, err := h.svc.BookDetail(r.Context(), id)
	if err != nil {
		shown := displayID(id)
		switch {
		case errors.Is(err, ErrBookNotFound):
			httpx.Send(w, http.StatusNotFound, fmt.Sprintf("Book with the %s not found", shown))
		case errors.Is(err, ErrCopiesNotFound):
			httpx.Send(w, http.StatusNotFound, fmt.Sprintf("Book details not found for book %s", shown))
		case errors.Is(err, ErrCopiesQuery):
			log.Printf("show book detail: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
			httpx.Send(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching book %s", shown))
		default:
			log.Printf("show book detail: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
			httpx.Send(w, http.StatusInternalServerError, fmt.Sprintf("Error fetching book with id %s", shown))
		}
		return
	}

	httpx.Send(w, http.StatusOK, detail)
}

// ShowAllBooksStatus handles GET /books/status?status=Available
func (h *HTTPHandler) ShowAllBooksStatus(w http.ResponseWriter, r *http.Request) {
	q := statusQuery{Status: r.URL.Query().Get("status")}
	if q.Status == "" {
		q.Status = StatusAvailable
	}
	if details := httpx.ValidateStruct(q); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status filter", details)
		return
	}

	entries, err := h.svc.BooksStatus(r.Context(), q.Status)
	if err != nil {
		log.Printf("show books status: request_id=%s error=%v", httpx.RequestIDFrom(r), err)
		httpx.Send(w, http.StatusInternalServerError, "Status not found")
		return
	}

	httpx.Send(w, http.StatusOK, entries)
}

// displayID renders a missing id the way it appears in client messages.
func displayID(id string) string {
	if id == "" {
		return "null"
	}
	return id
}
