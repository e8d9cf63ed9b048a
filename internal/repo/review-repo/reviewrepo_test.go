package reviewrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/digimarket/internal/domain"
	"github.com/GlebRadaev/digimarket/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByOrderID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT id, order_id, buyer_id, seller_id, product_id, rating, comment, created_at FROM reviews WHERE order_id = $1`)
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "order_id", "buyer_id", "seller_id", "product_id", "rating", "comment", "created_at"}

	mock.ExpectQuery(query).WithArgs(5).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(1, 5, 7, 2, 10, 5, "great", created))
	review, err := repo.FindByOrderID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, &domain.Review{
		ID: 1, OrderID: 5, BuyerID: 7, SellerID: 2, ProductID: 10, Rating: 5, Comment: "great", CreatedAt: created,
	}, review)

	mock.ExpectQuery(query).WithArgs(6).WillReturnError(pgx.ErrNoRows)
	review, err = repo.FindByOrderID(context.Background(), 6)
	assert.NoError(t, err)
	assert.Nil(t, review)

	mock.ExpectQuery(query).WithArgs(7).WillReturnError(errors.New("database error"))
	_, err = repo.FindByOrderID(context.Background(), 7)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO reviews (order_id, buyer_id, seller_id, product_id, rating, comment) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`)
	created := time.Now()

	tests := []struct {
		name         string
		mockSetup    func()
		expectErr    bool
		expectUnique bool
	}{
		{
			name: "Review saved",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(5, 7, 2, 10, 4, "ok").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, created))
			},
		},
		{
			name: "Second review for the order",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(5, 7, 2, 10, 4, "ok").
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectErr:    true,
			expectUnique: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			review := &domain.Review{OrderID: 5, BuyerID: 7, SellerID: 2, ProductID: 10, Rating: 4, Comment: "ok"}
			result, err := repo.Create(context.Background(), review)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Equal(t, tt.expectUnique, pg.IsUniqueViolation(err))
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, result.ID)
				assert.Equal(t, created, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
