package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Service shapes repository records into the views served by the catalog.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AuthorList returns the formatted author entries in family-name order.
// Repository failures are logged and yield an empty list; an error is only
// returned once the caller's context is done.
func (s *Service) AuthorList(ctx context.Context) ([]string, error) {
	authors, err := s.repo.FindAuthors(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("author list: %w", ctxErr)
		}
		log.Printf("author list: fetch failed: %v", err)
		return []string{}, nil
	}

	entries := make([]string, 0, len(authors))
	for _, a := range authors {
		entries = append(entries, FormatAuthorEntry(a))
	}
	return entries, nil
}

// BookDetail merges a book and its copies. Errors wrap ErrBookNotFound,
// ErrCopiesQuery or ErrCopiesNotFound; anything else is a book query failure.
func (s *Service) BookDetail(ctx context.Context, id string) (BookDetail, error) {
	book, err := s.repo.FindBookByID(ctx, id)
	if err != nil {
		return BookDetail{}, fmt.Errorf("find book %q: %w", id, err)
	}
	if book == nil {
		return BookDetail{}, fmt.Errorf("book %q: %w", id, ErrBookNotFound)
	}

	copies, err := s.repo.FindCopiesByBookID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return BookDetail{}, fmt.Errorf("copies of book %q: %w", id, ErrCopiesNotFound)
		}
		return BookDetail{}, fmt.Errorf("%w: book %q: %w", ErrCopiesQuery, id, err)
	}
	if copies == nil {
		copies = []Copy{}
	}

	return BookDetail{
		Title:  book.Title,
		Author: book.AuthorName,
		Copies: copies,
	}, nil
}

// BooksStatus returns "<title>: <status>" for every copy carrying status.
func (s *Service) BooksStatus(ctx context.Context, status string) ([]string, error) {
	instances, err := s.repo.FindInstancesByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("find instances with status %q: %w", status, err)
	}

	entries := make([]string, 0, len(instances))
	for _, in := range instances {
		if in.Status != status {
			continue
		}
		if in.Book == nil {
			return nil, fmt.Errorf("instance %s: %w", in.ID, ErrUnresolvedBook)
		}
		entries = append(entries, FormatStatusEntry(in.Book.Title, in.Status))
	}
	return entries, nil
}
