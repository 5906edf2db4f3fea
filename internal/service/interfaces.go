package service

import (
	"context"

	"github.com/MKhiriev/go-book-catalog/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	Authorize(ctx context.Context, tokenString string) (models.User, error)
}

type BookService interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	GetBook(ctx context.Context, id int64) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) (models.Book, error)
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
}
