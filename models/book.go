package models

// Book is a single catalog record. The identifier is assigned by the store
// on creation and is immutable afterwards.
type Book struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookFilter describes an optional set of predicates for listing books.
// Zero-valued string fields and nil year bounds mean "not supplied";
// all supplied predicates are combined with logical AND.
type BookFilter struct {
	// Name is matched case-insensitively as a substring of the book name.
	Name string

	// Author is matched exactly.
	Author string

	// MinYear and MaxYear are inclusive publication-year bounds.
	MinYear *int
	MaxYear *int

	// Offset and Limit paginate the filtered result set.
	Offset uint64
	Limit  uint64
}
