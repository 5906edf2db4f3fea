package http

import (
	"context"
	"net/http/httptest"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/service"
	"github.com/MKhiriev/go-book-catalog/models"
)

// mockAuthService implements service.AuthService with per-test function fields.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	authorizeFn    func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) Authorize(ctx context.Context, tokenString string) (models.User, error) {
	return m.authorizeFn(ctx, tokenString)
}

// mockBookService implements service.BookService with per-test function fields.
type mockBookService struct {
	createBookFn func(ctx context.Context, book models.Book) (models.Book, error)
	getBookFn    func(ctx context.Context, id int64) (models.Book, error)
	deleteBookFn func(ctx context.Context, id int64) (models.Book, error)
	listBooksFn  func(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
}

func (m *mockBookService) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	return m.createBookFn(ctx, book)
}

func (m *mockBookService) GetBook(ctx context.Context, id int64) (models.Book, error) {
	return m.getBookFn(ctx, id)
}

func (m *mockBookService) DeleteBook(ctx context.Context, id int64) (models.Book, error) {
	return m.deleteBookFn(ctx, id)
}

func (m *mockBookService) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	return m.listBooksFn(ctx, filter)
}

// newTestServer wires the mocks into a full router so requests exercise the
// same middleware chain and route patterns as production.
func newTestServer(auth service.AuthService, books service.BookService) *httptest.Server {
	handler := NewHandler(&service.Services{
		AuthService: auth,
		BookService: books,
	}, logger.Nop())

	return httptest.NewServer(handler.Init())
}
