package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/models"
)

// bookRepository is the SQL-backed implementation of [BookRepository].
// It executes all catalog CRUD operations directly against the "books"
// table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (book id, filter predicates, etc.).
type bookRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateBook persists a new catalog record. The identifier is assigned by
// the store and returned through the INSERT's RETURNING clause, so the
// caller receives the canonical database representation of the record.
func (b *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	row := b.DB.QueryRowContext(ctx, createBook, book.Name, book.Author, book.Year)

	var created models.Book
	if err := row.Scan(&created.ID, &created.Name, &created.Author, &created.Year); err != nil {
		log.Err(err).
			Str("func", "bookRepository.CreateBook").
			Str("name", book.Name).
			Msg("failed to insert book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetBookByID retrieves a single catalog record by its identifier.
//
// Returns [ErrBookNotFound] when no record with the given id exists.
func (b *bookRepository) GetBookByID(ctx context.Context, id int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	row := b.DB.QueryRowContext(ctx, getBookByID, id)

	var book models.Book
	if err := row.Scan(&book.ID, &book.Name, &book.Author, &book.Year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).
			Str("func", "bookRepository.GetBookByID").
			Int64("book_id", id).
			Msg("failed to scan book row")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return book, nil
}

// DeleteBook removes a catalog record and returns it as it existed before
// deletion, via the DELETE's RETURNING clause.
//
// Returns [ErrBookNotFound] when no record with the given id exists.
func (b *bookRepository) DeleteBook(ctx context.Context, id int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	row := b.DB.QueryRowContext(ctx, deleteBook, id)

	var deleted models.Book
	if err := row.Scan(&deleted.ID, &deleted.Name, &deleted.Author, &deleted.Year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).
			Str("func", "bookRepository.DeleteBook").
			Int64("book_id", id).
			Msg("failed to delete book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deleted, nil
}

// ListBooks retrieves catalog records matching the supplied filter.
//
// The query is assembled by [buildListBooksQuery]: every supplied predicate
// is ANDed, results are ordered by id, and the filter's offset/limit window
// is applied after filtering.
//
// Returns an empty slice when no records match.
func (b *bookRepository) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBooksQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "bookRepository.ListBooks").
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := b.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookRepository.ListBooks").
			Str("query", query).
			Msg("failed to execute query for listing books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0, filter.Limit)

	for rows.Next() {
		var book models.Book

		scanErr := rows.Scan(&book.ID, &book.Name, &book.Author, &book.Year)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "bookRepository.ListBooks").
				Msg("failed to scan book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		books = append(books, book)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "bookRepository.ListBooks").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return books, nil
}
