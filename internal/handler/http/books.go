package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/utils"
	"github.com/MKhiriev/go-book-catalog/models"
)

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusUnprocessableEntity)
		return
	}

	createdBook, err := h.services.BookService.CreateBook(ctx, book)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("book_id", createdBook.ID).Str("name", createdBook.Name).Msg("book created")

	utils.WriteJSON(w, createdBook, http.StatusCreated)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	bookID, err := parseBookID(r)
	if err != nil {
		log.Err(err).Msg("invalid book id")
		http.Error(w, "invalid book id", http.StatusUnprocessableEntity)
		return
	}

	book, err := h.services.BookService.GetBook(ctx, bookID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	bookID, err := parseBookID(r)
	if err != nil {
		log.Err(err).Msg("invalid book id")
		http.Error(w, "invalid book id", http.StatusUnprocessableEntity)
		return
	}

	deletedBook, err := h.services.BookService.DeleteBook(ctx, bookID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("book_id", deletedBook.ID).Msg("book deleted")

	utils.WriteJSON(w, deletedBook, http.StatusOK)
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := parseBookFilter(r.URL.Query())
	if err != nil {
		log.Err(err).Msg("invalid filter params")
		http.Error(w, "invalid filter params", http.StatusUnprocessableEntity)
		return
	}

	books, err := h.services.BookService.ListBooks(ctx, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

// parseBookID extracts the numeric book identifier from the route path.
func parseBookID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "bookID"), 10, 64)
}

// parseBookFilter converts listing query parameters into a models.BookFilter.
// Absent parameters keep their zero values; the service layer applies the
// default and maximum page size.
func parseBookFilter(query url.Values) (models.BookFilter, error) {
	filter := models.BookFilter{
		Name:   query.Get("name"),
		Author: query.Get("author"),
	}

	if rawOffset := query.Get("offset"); rawOffset != "" {
		offset, err := strconv.ParseUint(rawOffset, 10, 64)
		if err != nil {
			return models.BookFilter{}, err
		}
		filter.Offset = offset
	}

	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil {
			return models.BookFilter{}, err
		}
		filter.Limit = limit
	}

	if rawMinYear := query.Get("min_year"); rawMinYear != "" {
		minYear, err := strconv.Atoi(rawMinYear)
		if err != nil {
			return models.BookFilter{}, err
		}
		filter.MinYear = &minYear
	}

	if rawMaxYear := query.Get("max_year"); rawMaxYear != "" {
		maxYear, err := strconv.Atoi(rawMaxYear)
		if err != nil {
			return models.BookFilter{}, err
		}
		filter.MaxYear = &maxYear
	}

	return filter, nil
}
