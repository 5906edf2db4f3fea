package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-book-catalog/models"
)

// buildListBooksQuery assembles the SELECT statement for a filtered book
// listing. Each supplied filter contributes one predicate; squirrel combines
// them with AND. Pagination is applied after filtering, and the result is
// ordered by id so that offset windows are stable.
//
// The LOWER(...) LIKE form is used instead of ILIKE so the same statement
// runs on both the Postgres and SQLite backends.
func buildListBooksQuery(filter models.BookFilter) (string, []any, error) {
	builder := sq.Select("id", "name", "author", "year").
		From("books").
		PlaceholderFormat(sq.Dollar)

	if filter.Name != "" {
		builder = builder.Where(sq.Expr("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%"))
	}
	if filter.Author != "" {
		builder = builder.Where(sq.Eq{"author": filter.Author})
	}
	if filter.MinYear != nil {
		builder = builder.Where(sq.GtOrEq{"year": *filter.MinYear})
	}
	if filter.MaxYear != nil {
		builder = builder.Where(sq.LtOrEq{"year": *filter.MaxYear})
	}

	return builder.
		OrderBy("id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		ToSql()
}
