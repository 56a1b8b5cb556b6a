package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mleone/ironwill/internal/logger"
	"github.com/mleone/ironwill/internal/models"
	"github.com/mleone/ironwill/internal/repository"
)

type bookRepository struct {
	db *sql.DB
}

// NewBookRepository creates a new BookRepository implementation
func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Get(ctx context.Context, id, profileID int64) (*models.Book, error) {
	log := logger.FromContext(ctx).WithPrefix("book_repo")

	var b models.Book
	err := r.db.QueryRowContext(ctx, `
SELECT id, profile_id, title, author, total_pages, pages_read, status, started_date, completed_date
FROM books
WHERE id = ? AND profile_id = ?
`, id, profileID).Scan(&b.ID, &b.ProfileID, &b.Title, &b.Author, &b.TotalPages, &b.PagesRead, &b.Status, &b.StartedDate, &b.CompletedDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found: id=%d", id)
		} else {
			log.Error("failed to get book: %v", err)
		}
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) List(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	log := logger.FromContext(ctx).WithPrefix("book_repo")
	log.Debug("listing books: profile_id=%d, status=%s, year=%d", filter.ProfileID, filter.Status, filter.CompletedYear)

	query := sqlBuilder.Select(
		"id", "profile_id", "title", "author", "total_pages", "pages_read",
		"status", "started_date", "completed_date",
	).From("books").Where(squirrel.Eq{"profile_id": filter.ProfileID})

	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.CompletedYear != 0 {
		query = query.Where(squirrel.Like{"completed_date": fmt.Sprintf("%04d-%%", filter.CompletedYear)})
	}
	query = query.OrderBy("started_date DESC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list books: %v", err)
		return nil, err
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.ProfileID, &b.Title, &b.Author, &b.TotalPages, &b.PagesRead, &b.Status, &b.StartedDate, &b.CompletedDate); err != nil {
			log.Error("failed to scan book row: %v", err)
			return nil, err
		}
		books = append(books, b)
	}
	log.Debug("found %d books", len(books))
	return books, rows.Err()
}

func (r *bookRepository) Insert(ctx context.Context, book models.Book) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("book_repo")
	log.Debug("inserting book: title=%s", book.Title)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO books (profile_id, title, author, total_pages, pages_read, status)
VALUES (?, ?, ?, ?, ?, ?)
`, book.ProfileID, book.Title, book.Author, book.TotalPages, book.PagesRead, book.Status)
	if err != nil {
		log.Error("failed to insert book: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *bookRepository) Update(ctx context.Context, book models.Book) error {
	log := logger.FromContext(ctx).WithPrefix("book_repo")
	log.Debug("updating book: id=%d, status=%s, pages_read=%d", book.ID, book.Status, book.PagesRead)

	res, err := r.db.ExecContext(ctx, `
UPDATE books
SET title = ?, author = ?, total_pages = ?, pages_read = ?, status = ?, completed_date = ?
WHERE id = ? AND profile_id = ?
`, book.Title, book.Author, book.TotalPages, book.PagesRead, book.Status, book.CompletedDate, book.ID, book.ProfileID)
	if err != nil {
		log.Error("failed to update book: %v", err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id, profileID int64) error {
	log := logger.FromContext(ctx).WithPrefix("book_repo")
	log.Debug("deleting book: id=%d", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ? AND profile_id = ?`, id, profileID)
	if err != nil {
		log.Error("failed to delete book: %v", err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
