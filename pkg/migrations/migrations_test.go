package migrations

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/ShahiTechnovation/X4PN/pkg/migrations/apidb"
	mghelper "github.com/ShahiTechnovation/X4PN/pkg/pgutil"
	"github.com/ShahiTechnovation/X4PN/pkg/sessionstore"
)

func migrateUp(t *testing.T, db *bun.DB) *migrate.Migrator {
	t.Helper()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, apidb.Migrations)
	require.NoError(t, migrator.Init(ctx))

	group, err := migrator.Migrate(ctx)
	require.NoError(t, err)
	require.False(t, group.IsZero(), "expected migrations to run")
	return migrator
}

func TestAPIDBMigrations_Apply(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()

	migrateUp(t, db)

	for _, table := range []string{"users", "nodes", "sessions", "transactions", "bun_migrations"} {
		mghelper.AssertTableExists(t, db, table)
	}

	mghelper.AssertIndexExists(t, db, sessionstore.ActiveSessionIndex)
	mghelper.AssertIndexExists(t, db, "idx_nodes_operator_address")
	mghelper.AssertIndexExists(t, db, "idx_nodes_is_active")
	mghelper.AssertIndexExists(t, db, "idx_sessions_user_address")
	mghelper.AssertIndexExists(t, db, "idx_sessions_node_id")
	mghelper.AssertIndexExists(t, db, "idx_sessions_last_settled_at")
	mghelper.AssertIndexExists(t, db, "idx_transactions_user_id")
}

func TestAPIDBMigrations_Constraints(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrateUp(t, db)

	_, err := db.ExecContext(ctx,
		"INSERT INTO users (id, wallet_address, usdc_balance) VALUES (gen_random_uuid(), ?, ?)",
		"0x0000000000000000000000000000000000000001", decimal.NewFromInt(-1))
	assert.Error(t, err, "negative balance must be rejected")

	_, err = db.ExecContext(ctx,
		"INSERT INTO nodes (id, operator_address, name, location, country, country_code, ip_address, rate_per_minute) "+
			"VALUES (gen_random_uuid(), ?, 'n', 'l', 'c', 'US', '10.0.0.1', 0)",
		"0x0000000000000000000000000000000000000002")
	assert.Error(t, err, "zero rate must be rejected")

	var next int64
	require.NoError(t, db.NewSelect().ColumnExpr("nextval(?)", sessionstore.SessionSequence).Scan(ctx, &next))
	assert.Equal(t, int64(1), next)
}

func TestMigrations_Idempotency(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrateUp(t, db)

	group, err := migrator.Migrate(ctx)
	require.NoError(t, err)
	assert.True(t, group.IsZero(), "expected no new migrations on second run")

	mghelper.AssertTableExists(t, db, "users")
	mghelper.AssertTableExists(t, db, "sessions")
}

func TestMigrations_Rollback(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrateUp(t, db)

	// all migrations run in one group, so one rollback removes everything
	group, err := migrator.Rollback(ctx)
	require.NoError(t, err)
	assert.False(t, group.IsZero(), "expected rollback to process a migration")

	mghelper.AssertTableNotExists(t, db, "transactions")
	mghelper.AssertTableNotExists(t, db, "sessions")
	mghelper.AssertTableNotExists(t, db, "nodes")
	mghelper.AssertTableNotExists(t, db, "users")

	var exists bool
	require.NoError(t, db.NewSelect().
		ColumnExpr("EXISTS (SELECT 1 FROM pg_class WHERE relkind = 'S' AND relname = ?)", sessionstore.SessionSequence).
		Scan(ctx, &exists))
	assert.False(t, exists, "session sequence should be dropped")
}
