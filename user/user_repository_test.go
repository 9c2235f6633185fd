package user_test

import (
	"context"
	"testing"

	"github.com/hanksha/sports-club-backend/user"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromote(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		promoted bool
	}{
		{name: "plain user becomes member", affected: 1, promoted: true},
		{name: "member or admin is left alone", affected: 0, promoted: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectBegin()
			mock.ExpectExec(`(?s)SET role = 'member'.*WHERE id = \$1 AND role = 'user'`).
				WithArgs("u1").
				WillReturnResult(pgxmock.NewResult("UPDATE", tc.affected))

			tx, err := mock.Begin(context.Background())
			require.NoError(t, err)

			promoted, err := user.Promote(context.Background(), tx, "u1")

			require.NoError(t, err)
			assert.Equal(t, tc.promoted, promoted)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
