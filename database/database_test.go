package database_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hanksha/sports-club-backend/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func TestContainsPattern(t *testing.T) {
	require.Equal(t, "%tennis%", database.ContainsPattern(" tennis "))
	require.Equal(t, `%50\%\_off%`, database.ContainsPattern("50%_off"))
	require.Equal(t, "%%", database.ContainsPattern(""))
}

func TestIsUniqueViolation(t *testing.T) {
	require.True(t, database.IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	require.False(t, database.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, database.IsUniqueViolation(fmt.Errorf("boom")))
}

func TestWithTx(t *testing.T) {
	t.Run("commits when fn succeeds", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE club\.courts`).WithArgs("c1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		err = database.WithTx(context.Background(), mock, func(tx pgx.Tx) error {
			_, err := tx.Exec(context.Background(), `UPDATE club.courts SET status = 'available' WHERE id = $1`, "c1")
			return err
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns the error of fn", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		boom := errors.New("boom")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err = database.WithTx(context.Background(), mock, func(tx pgx.Tx) error {
			return boom
		})

		require.ErrorIs(t, err, boom)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		called := false
		err = database.WithTx(context.Background(), mock, func(tx pgx.Tx) error {
			called = true
			return nil
		})

		require.ErrorContains(t, err, "failed to begin transaction")
		require.False(t, called)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
