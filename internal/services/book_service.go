package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/mleone/ironwill/internal/engine"
	"github.com/mleone/ironwill/internal/errors"
	"github.com/mleone/ironwill/internal/logger"
	"github.com/mleone/ironwill/internal/models"
	"github.com/mleone/ironwill/internal/repository"
)

// BookService handles the reading library. Progress updates clamp to the
// book's page count, and reaching the last page completes the book.
type BookService interface {
	GetBook(ctx context.Context, id, profileID int64) (*models.Book, error)
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
	AddBook(ctx context.Context, book models.Book) (*models.Book, error)
	UpdateProgress(ctx context.Context, id, profileID int64, pagesRead int, today time.Time) (*models.Book, error)
	SetStatus(ctx context.Context, id, profileID int64, status string, today time.Time) (*models.Book, error)
	DeleteBook(ctx context.Context, id, profileID int64) error
}

type bookService struct {
	bookRepo repository.BookRepository
}

// NewBookService creates a new BookService
func NewBookService(bookRepo repository.BookRepository) BookService {
	return &bookService{bookRepo: bookRepo}
}

func (s *bookService) GetBook(ctx context.Context, id, profileID int64) (*models.Book, error) {
	log := logger.FromContext(ctx)

	book, err := s.bookRepo.Get(ctx, id, profileID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("book", id)
		}
		log.Error("failed to get book: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return book, nil
}

func (s *bookService) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	if filter.Status != "" && !validBookStatus(filter.Status) {
		return nil, errors.NewValidationError("status", "unknown status")
	}

	books, err := s.bookRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list books: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return books, nil
}

func (s *bookService) AddBook(ctx context.Context, book models.Book) (*models.Book, error) {
	log := logger.FromContext(ctx)
	log.Debug("adding book: profile_id=%d, title=%s", book.ProfileID, book.Title)

	book.Title = strings.TrimSpace(book.Title)
	if book.Title == "" {
		return nil, errors.NewValidationError("title", "cannot be empty")
	}
	if book.TotalPages <= 0 {
		return nil, errors.NewValidationError("total_pages", "must be positive")
	}
	if book.Status == "" {
		book.Status = models.BookStatusActive
	}
	if !validBookStatus(book.Status) {
		return nil, errors.NewValidationError("status", "unknown status")
	}
	if book.PagesRead < 0 {
		book.PagesRead = 0
	}
	if book.PagesRead > book.TotalPages {
		book.PagesRead = book.TotalPages
	}

	id, err := s.bookRepo.Insert(ctx, book)
	if err != nil {
		log.Error("failed to insert book: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return s.GetBook(ctx, id, book.ProfileID)
}

func (s *bookService) UpdateProgress(ctx context.Context, id, profileID int64, pagesRead int, today time.Time) (*models.Book, error) {
	log := logger.FromContext(ctx)
	log.Debug("updating book progress: id=%d, pages_read=%d", id, pagesRead)

	book, err := s.GetBook(ctx, id, profileID)
	if err != nil {
		return nil, err
	}

	if pagesRead < 0 {
		pagesRead = 0
	}
	if pagesRead > book.TotalPages {
		pagesRead = book.TotalPages
	}
	book.PagesRead = pagesRead

	// Finishing the last page completes the book.
	if book.PagesRead == book.TotalPages && book.Status == models.BookStatusActive {
		book.Status = models.BookStatusCompleted
		completed := engine.Day(today)
		book.CompletedDate = &completed
	}

	if err := s.bookRepo.Update(ctx, *book); err != nil {
		log.Error("failed to update book: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return book, nil
}

func (s *bookService) SetStatus(ctx context.Context, id, profileID int64, status string, today time.Time) (*models.Book, error) {
	log := logger.FromContext(ctx)
	log.Debug("setting book status: id=%d, status=%s", id, status)

	if !validBookStatus(status) {
		return nil, errors.NewValidationError("status", "unknown status")
	}

	book, err := s.GetBook(ctx, id, profileID)
	if err != nil {
		return nil, err
	}

	book.Status = status
	switch status {
	case models.BookStatusCompleted:
		if book.CompletedDate == nil {
			completed := engine.Day(today)
			book.CompletedDate = &completed
		}
	default:
		book.CompletedDate = nil
	}

	if err := s.bookRepo.Update(ctx, *book); err != nil {
		log.Error("failed to update book: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return book, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id, profileID int64) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting book: id=%d", id)

	if err := s.bookRepo.Delete(ctx, id, profileID); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("book", id)
		}
		log.Error("failed to delete book: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func validBookStatus(status string) bool {
	switch status {
	case models.BookStatusActive, models.BookStatusCompleted, models.BookStatusAbandoned:
		return true
	}
	return false
}
