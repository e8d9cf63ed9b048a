package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/digimarket/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, role, balance, rating, reviews_count FROM users WHERE id = $1`)
	balance := decimal.RequireFromString("120.50")
	rating := decimal.RequireFromString("4.50")

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:   "User found",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "role", "balance", "rating", "reviews_count"}).
					AddRow(1, "seller", balance, rating, 2)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			result: &domain.User{ID: 1, Role: "seller", Balance: balance, Rating: rating, ReviewsCount: 2},
		},
		{
			name:   "User not found",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(2).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 3,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(3).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, balance FROM users WHERE id = $1 FOR UPDATE`)
	balance := decimal.RequireFromString("50.00")

	mock.ExpectQuery(query).WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"id", "balance"}).AddRow(5, balance))
	user, err := repo.LockBalance(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, &domain.User{ID: 5, Balance: balance}, user)

	mock.ExpectQuery(query).WithArgs(6).WillReturnError(pgx.ErrNoRows)
	user, err = repo.LockBalance(context.Background(), 6)
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ApplyDelta(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`UPDATE users SET balance = balance + $1, updated_at = NOW() WHERE id = $2 RETURNING id, balance`)

	tests := []struct {
		name      string
		userID    int
		delta     decimal.Decimal
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:   "Credit",
			userID: 1,
			delta:  decimal.RequireFromString("85.00"),
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(pgxmock.AnyArg(), 1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "balance"}).AddRow(1, decimal.RequireFromString("85.00")))
			},
			result: &domain.User{ID: 1, Balance: decimal.RequireFromString("85.00")},
		},
		{
			name:   "Debit below zero is not blocked",
			userID: 1,
			delta:  decimal.RequireFromString("-100.00"),
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(pgxmock.AnyArg(), 1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "balance"}).AddRow(1, decimal.RequireFromString("-15.00")))
			},
			result: &domain.User{ID: 1, Balance: decimal.RequireFromString("-15.00")},
		},
		{
			name:   "Unknown user",
			userID: 9,
			delta:  decimal.NewFromInt(1),
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(pgxmock.AnyArg(), 9).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 1,
			delta:  decimal.NewFromInt(1),
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(pgxmock.AnyArg(), 1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ApplyDelta(context.Background(), tt.userID, tt.delta)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_RecomputeRating(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`COALESCE(AVG(rating), 0)::DECIMAL(3, 2) AS rating, COUNT(*) AS reviews_count FROM reviews WHERE seller_id = $1`)
	rating := decimal.RequireFromString("4.33")

	mock.ExpectQuery(query).WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"rating", "reviews_count"}).AddRow(rating, 3))
	summary, err := repo.RecomputeRating(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, &domain.RatingSummary{Rating: rating, ReviewsCount: 3}, summary)

	mock.ExpectQuery(query).WithArgs(3).WillReturnError(errors.New("database error"))
	summary, err = repo.RecomputeRating(context.Background(), 3)
	assert.Error(t, err)
	assert.Nil(t, summary)

	assert.NoError(t, mock.ExpectationsWereMet())
}
