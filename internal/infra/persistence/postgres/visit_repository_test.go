package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB builds SQL without a server. captured receives the last query statement.
func newDryRunDB(t *testing.T, captured *string) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=clinic dbname=clinic sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	err = db.Callback().Query().After("gorm:query").Register("test:capture_sql", func(tx *gorm.DB) {
		*captured = tx.Statement.SQL.String()
	})
	require.NoError(t, err)

	return db
}

func TestVisitRepository_Ordering(t *testing.T) {
	tests := []struct {
		name string
		run  func(repo *visitRepository) error
		want string
	}{
		{
			name: "patient history",
			run: func(repo *visitRepository) error {
				_, err := repo.ListByPatient(context.Background(), uuid.New())

				return err
			},
			want: `WHERE patient_id = $1 ORDER BY visit_date DESC,created_at DESC`,
		},
		{
			name: "doctor recent visits",
			run: func(repo *visitRepository) error {
				_, err := repo.ListRecentByDoctor(context.Background(), uuid.New(), 10)

				return err
			},
			want: `WHERE doctor_id = $1 ORDER BY visit_date DESC,created_at DESC LIMIT $2`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sql string
			repo := &visitRepository{db: newDryRunDB(t, &sql)}

			require.NoError(t, tt.run(repo))

			assert.Contains(t, sql, `FROM "visits"`)
			assert.Contains(t, sql, tt.want)
		})
	}
}
