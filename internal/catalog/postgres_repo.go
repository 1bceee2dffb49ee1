package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo reads the catalog from the authors, books and book_instances tables.
type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

// OpenPostgres creates a pool for dsn and verifies the database answers.
func OpenPostgres(ctx context.Context, dsn string, timeout time.Duration) (*PostgresRepo, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	repo := NewPostgresRepo(pool, timeout)
	if err := repo.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return repo, nil
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Close(context.Context) error {
	r.db.Close()
	return nil
}

func (r *PostgresRepo) FindAuthors(ctx context.Context) ([]Author, error) {
	const query = `
		SELECT id::text, first_name, family_name, date_of_birth, date_of_death
		FROM authors
		ORDER BY family_name ASC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}
	defer rows.Close()

	out := []Author{}
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) FindBookByID(ctx context.Context, id string) (*Book, error) {
	const query = `
		SELECT b.id::text, b.title, COALESCE(a.first_name, ''), COALESCE(a.family_name, '')
		FROM books b
		LEFT JOIN authors a ON a.id = b.author_id
		WHERE b.id = $1
		LIMIT 1`

	bookID, err := uuid.Parse(id)
	if err != nil {
		// Not a UUID, so nothing can match it.
		return nil, nil
	}

	var (
		b      Book
		author Author
	)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err = r.db.QueryRow(timeoutCtx, query, bookID.String()).Scan(&b.ID, &b.Title, &author.FirstName, &author.FamilyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find book %s: %w", id, err)
	}
	b.AuthorName = author.Name()
	return &b, nil
}

func (r *PostgresRepo) FindCopiesByBookID(ctx context.Context, bookID string) ([]Copy, error) {
	const query = `
		SELECT imprint, status
		FROM book_instances
		WHERE book_id = $1
		ORDER BY imprint ASC`

	parsed, err := uuid.Parse(bookID)
	if err != nil {
		return []Copy{}, nil
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, parsed.String())
	if err != nil {
		return nil, fmt.Errorf("find copies of book %s: %w", bookID, err)
	}
	defer rows.Close()

	out := []Copy{}
	for rows.Next() {
		var c Copy
		if err := rows.Scan(&c.Imprint, &c.Status); err != nil {
			return nil, fmt.Errorf("scan copy: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) FindInstancesByStatus(ctx context.Context, status string) ([]Instance, error) {
	const query = `
		SELECT bi.id::text, bi.imprint, bi.status, b.id::text, b.title
		FROM book_instances bi
		LEFT JOIN books b ON b.id = bi.book_id
		WHERE bi.status = $1
		ORDER BY b.title ASC NULLS LAST`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, status)
	if err != nil {
		return nil, fmt.Errorf("find instances with status %q: %w", status, err)
	}
	defer rows.Close()

	out := []Instance{}
	for rows.Next() {
		var (
			in        Instance
			bookID    *string
			bookTitle *string
		)
		if err := rows.Scan(&in.ID, &in.Imprint, &in.Status, &bookID, &bookTitle); err != nil {
			return nil, fmt.Errorf("scan instance: %w", err)
		}
		if bookID != nil {
			in.Book = &Book{ID: *bookID, Title: deref(bookTitle)}
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

// Seed inserts authors, their books and the books' copies in one transaction.
func (r *PostgresRepo) Seed(ctx context.Context, authors []SeedAuthor) (SeedResult, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var res SeedResult
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return res, err
	}
	defer tx.Rollback(ctx)

	for _, a := range authors {
		var authorID string
		err := tx.QueryRow(ctx, `
			INSERT INTO authors (first_name, family_name, date_of_birth, date_of_death)
			VALUES ($1, $2, $3, $4)
			RETURNING id::text`,
			a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath,
		).Scan(&authorID)
		if err != nil {
			return SeedResult{}, fmt.Errorf("insert author %s: %w", a.FamilyName, err)
		}
		res.Authors++

		for _, b := range a.Books {
			var bookID string
			err := tx.QueryRow(ctx,
				`INSERT INTO books (title, author_id) VALUES ($1, $2::uuid) RETURNING id::text`,
				b.Title, authorID,
			).Scan(&bookID)
			if err != nil {
				return SeedResult{}, fmt.Errorf("insert book %q: %w", b.Title, err)
			}
			res.Books++

			for _, c := range b.Copies {
				_, err := tx.Exec(ctx,
					`INSERT INTO book_instances (book_id, imprint, status) VALUES ($1::uuid, $2, $3)`,
					bookID, c.Imprint, c.Status,
				)
				if err != nil {
					return SeedResult{}, fmt.Errorf("insert copy of %q: %w", b.Title, err)
				}
				res.Copies++
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return SeedResult{}, fmt.Errorf("commit seed: %w", err)
	}
	return res, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
