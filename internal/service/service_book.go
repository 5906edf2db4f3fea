package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/store"
	"github.com/MKhiriev/go-book-catalog/models"
)

// maxListLimit is the hard cap on the number of books a single listing
// request may return. Requests asking for more (or not specifying a limit)
// are clamped to this value.
const maxListLimit = 100

// bookService is the concrete implementation of BookService. It validates
// catalog input and normalizes listing pagination before delegating to the
// BookRepository.
type bookService struct {
	bookRepository store.BookRepository
	logger         *logger.Logger
}

// NewBookService constructs a BookService wired to the given BookRepository.
func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

// CreateBook validates and persists a new catalog record.
//
// Returns the persisted book (with a store-assigned identifier) or:
//   - ErrInvalidDataProvided if name or author is empty.
//   - A wrapped storage error if persistence fails.
func (b *bookService) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	if book.Name == "" || book.Author == "" {
		log.Error().Str("name", book.Name).Str("author", book.Author).Msg("invalid book data provided")
		return models.Book{}, ErrInvalidDataProvided
	}

	createdBook, err := b.bookRepository.CreateBook(ctx, book)
	if err != nil {
		log.Err(err).Str("name", book.Name).Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	return createdBook, nil
}

// GetBook retrieves a single catalog record by identifier. A missing record
// surfaces as store.ErrBookNotFound.
func (b *bookService) GetBook(ctx context.Context, id int64) (models.Book, error) {
	return b.bookRepository.GetBookByID(ctx, id)
}

// DeleteBook removes a catalog record and returns it as it existed before
// deletion. A missing record surfaces as store.ErrBookNotFound.
func (b *bookService) DeleteBook(ctx context.Context, id int64) (models.Book, error) {
	return b.bookRepository.DeleteBook(ctx, id)
}

// ListBooks retrieves catalog records matching the supplied filter.
//
// The limit is normalized before the repository call: a zero limit selects
// the default page size and anything above maxListLimit is clamped down to
// it. The offset is passed through unchanged.
func (b *bookService) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	if filter.Limit == 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	return b.bookRepository.ListBooks(ctx, filter)
}
