package store

const (
	createUser = `INSERT INTO users (username, email, full_name, hashed_password, disabled)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, username, email, full_name, hashed_password, disabled, created_at;`

	findUserByUsername = `SELECT user_id, username, email, full_name, hashed_password, disabled, created_at
    FROM users
    WHERE username = $1;`

	createBook = `INSERT INTO books (name, author, year)
    VALUES ($1, $2, $3)
    RETURNING id, name, author, year;`

	getBookByID = `SELECT id, name, author, year
    FROM books
    WHERE id = $1;`

	deleteBook = `DELETE FROM books
    WHERE id = $1
    RETURNING id, name, author, year;`
)
