package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-book-catalog/internal/service"
	"github.com/MKhiriev/go-book-catalog/internal/store"
	"github.com/MKhiriev/go-book-catalog/models"
)

func postProtectedBook(t *testing.T, ts *httptest.Server, authHeader string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/books/", strings.NewReader(`{"name":"Dune","author":"Herbert","year":1965}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	ts := newTestServer(&mockAuthService{}, &mockBookService{})
	defer ts.Close()

	resp := postProtectedBook(t, ts, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	ts := newTestServer(&mockAuthService{}, &mockBookService{})
	defer ts.Close()

	for _, header := range []string{"Bearer", "Bearer a b"} {
		resp := postProtectedBook(t, ts, header)
		resp.Body.Close()

		assert.Equalf(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
		assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
	}{
		{name: "expired or tampered token", serviceErr: service.ErrTokenIsExpiredOrInvalid},
		{name: "unknown subject", serviceErr: store.ErrNoUserWasFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				authorizeFn: func(ctx context.Context, tokenString string) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}
			ts := newTestServer(auth, &mockBookService{})
			defer ts.Close()

			resp := postProtectedBook(t, ts, "Bearer bad.token")
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, "could not validate credentials", strings.TrimSpace(string(raw)))
		})
	}
}

func TestAuthMiddleware_DisabledAccount(t *testing.T) {
	auth := &mockAuthService{
		authorizeFn: func(ctx context.Context, tokenString string) (models.User, error) {
			return models.User{}, service.ErrInactiveUser
		},
	}
	ts := newTestServer(auth, &mockBookService{})
	defer ts.Close()

	resp := postProtectedBook(t, ts, "Bearer disabled.user.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "inactive user", strings.TrimSpace(string(raw)))
}

func TestAuthMiddleware_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		authorizeFn: func(ctx context.Context, tokenString string) (models.User, error) {
			return models.User{}, errors.New("connection reset")
		},
	}
	ts := newTestServer(auth, &mockBookService{})
	defer ts.Close()

	resp := postProtectedBook(t, ts, "Bearer some.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestAuthMiddleware_PassesTokenAndAdmitsRequest(t *testing.T) {
	var seenToken string
	auth := &mockAuthService{
		authorizeFn: func(ctx context.Context, tokenString string) (models.User, error) {
			seenToken = tokenString
			return models.User{UserID: 1, Username: "alice"}, nil
		},
	}
	books := &mockBookService{
		createBookFn: func(ctx context.Context, book models.Book) (models.Book, error) {
			book.ID = 1
			return book, nil
		},
	}
	ts := newTestServer(auth, books)
	defer ts.Close()

	resp := postProtectedBook(t, ts, "Bearer signed.jwt.token")
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "signed.jwt.token", seenToken)

	var created models.Book
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Dune", created.Name)
}

func TestReadEndpointsAreUnprotected(t *testing.T) {
	// read traffic never touches the auth service
	books := &mockBookService{
		listBooksFn: func(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
			return []models.Book{}, nil
		},
	}
	ts := newTestServer(&mockAuthService{}, books)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/books/")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func Test_getTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid bearer header", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "too many parts", header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
