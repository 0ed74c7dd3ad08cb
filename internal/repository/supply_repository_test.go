package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func TestSupplyRepository_Stats_Query(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSupplyRepository(db)

	rows := sqlmock.NewRows([]string{
		"min_quantity", "max_quantity", "avg_quantity",
		"min_price", "max_price", "avg_price",
	}).AddRow(40, 500, 220.0, 9.99, 60.0, 38.33)

	mock.ExpectQuery(`SELECT MIN\(quantity\) AS min_quantity,.*AVG\(price\) AS avg_price FROM .supplieds.`).
		WillReturnRows(rows)

	stats, err := repo.Stats()
	require.NoError(t, err)
	require.Equal(t, 40, stats.MinQuantity)
	require.Equal(t, 500, stats.MaxQuantity)
	require.InDelta(t, 220.0, stats.AvgQuantity, 0.001)
	require.Equal(t, 9.99, stats.MinPrice)
	require.Equal(t, 60.0, stats.MaxPrice)
	require.InDelta(t, 38.33, stats.AvgPrice, 0.001)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSupplyRepository_ListFiltered_Query(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSupplyRepository(db)

	rows := sqlmock.NewRows([]string{"supplier_id", "item", "quantity", "price"}).
		AddRow(1, "nails", 500, 9.99)

	mock.ExpectQuery(`SELECT \* FROM .supplieds. WHERE quantity >= \? AND price < \?`).
		WithArgs(100, 50.0).
		WillReturnRows(rows)

	supplies, err := repo.ListFiltered(100, 50.0)
	require.NoError(t, err)
	require.Len(t, supplies, 1)
	require.Equal(t, "nails", supplies[0].Item)

	require.NoError(t, mock.ExpectationsWereMet())
}
