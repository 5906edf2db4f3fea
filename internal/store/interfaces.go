package store

import (
	"context"

	"github.com/MKhiriev/go-book-catalog/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

type BookRepository interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	GetBookByID(ctx context.Context, id int64) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) (models.Book, error)
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
}
