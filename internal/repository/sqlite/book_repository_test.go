package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mleone/ironwill/internal/db"
	"github.com/mleone/ironwill/internal/models"
	"github.com/mleone/ironwill/internal/repository"
	"github.com/mleone/ironwill/internal/repository/sqlite"
	"github.com/mleone/ironwill/internal/testutil"
)

type BookRepositorySuite struct {
	suite.Suite
	db        *db.DB
	repo      repository.BookRepository
	profileID int64
}

func (s *BookRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewBookRepository(s.db.DB)
	s.profileID = testutil.NewTestProfile(s.T(), s.db, "testuser")
}

func (s *BookRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *BookRepositorySuite) insert(title string) int64 {
	id, err := s.repo.Insert(context.Background(), models.Book{
		ProfileID:  s.profileID,
		Title:      title,
		Author:     "Author",
		TotalPages: 300,
		Status:     models.BookStatusActive,
	})
	s.Require().NoError(err)
	return id
}

func (s *BookRepositorySuite) TestInsertAndGet() {
	id := s.insert("Deep Work")

	b, err := s.repo.Get(context.Background(), id, s.profileID)
	s.Require().NoError(err)
	s.Assert().Equal("Deep Work", b.Title)
	s.Assert().Equal(models.BookStatusActive, b.Status)
	s.Assert().Equal(0, b.PagesRead)
	s.Assert().False(b.StartedDate.IsZero())
	s.Assert().Nil(b.CompletedDate)
}

func (s *BookRepositorySuite) TestGet_WrongProfile() {
	otherID := testutil.NewTestProfile(s.T(), s.db, "other")
	id := s.insert("Deep Work")

	_, err := s.repo.Get(context.Background(), id, otherID)
	s.Assert().ErrorIs(err, sql.ErrNoRows)
}

func (s *BookRepositorySuite) TestUpdate() {
	ctx := context.Background()
	id := s.insert("Atomic Habits")

	b, err := s.repo.Get(ctx, id, s.profileID)
	s.Require().NoError(err)
	done := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	b.PagesRead = 300
	b.Status = models.BookStatusCompleted
	b.CompletedDate = &done
	s.Require().NoError(s.repo.Update(ctx, *b))

	got, err := s.repo.Get(ctx, id, s.profileID)
	s.Require().NoError(err)
	s.Assert().Equal(models.BookStatusCompleted, got.Status)
	s.Assert().Equal(300, got.PagesRead)
	s.Require().NotNil(got.CompletedDate)
	s.Assert().Equal(2026, got.CompletedDate.Year())
}

func (s *BookRepositorySuite) TestList_StatusAndYearFilters() {
	ctx := context.Background()
	s.insert("Reading Now")

	doneID := s.insert("Finished")
	done, err := s.repo.Get(ctx, doneID, s.profileID)
	s.Require().NoError(err)
	completedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	done.Status = models.BookStatusCompleted
	done.CompletedDate = &completedAt
	s.Require().NoError(s.repo.Update(ctx, *done))

	active, err := s.repo.List(ctx, models.BookFilter{ProfileID: s.profileID, Status: models.BookStatusActive})
	s.Require().NoError(err)
	s.Require().Len(active, 1)
	s.Assert().Equal("Reading Now", active[0].Title)

	completed, err := s.repo.List(ctx, models.BookFilter{ProfileID: s.profileID, CompletedYear: 2026})
	s.Require().NoError(err)
	s.Require().Len(completed, 1)
	s.Assert().Equal("Finished", completed[0].Title)

	none, err := s.repo.List(ctx, models.BookFilter{ProfileID: s.profileID, CompletedYear: 2025})
	s.Require().NoError(err)
	s.Assert().Empty(none)
}

func (s *BookRepositorySuite) TestDelete() {
	ctx := context.Background()
	id := s.insert("To Delete")

	s.Require().NoError(s.repo.Delete(ctx, id, s.profileID))
	s.Assert().ErrorIs(s.repo.Delete(ctx, id, s.profileID), sql.ErrNoRows)
}

func TestBookRepositorySuite(t *testing.T) {
	suite.Run(t, new(BookRepositorySuite))
}
