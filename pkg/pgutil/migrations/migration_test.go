package migrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/ShahiTechnovation/X4PN/pkg/pgutil"
)

// latencySampleDao is a throwaway model exercising the helpers.
type latencySampleDao struct {
	bun.BaseModel `bun:"table:latency_samples"`
	ID            int64  `bun:",pk,autoincrement"`
	Region        string `bun:",notnull,type:varchar(100)"`
	LatencyMs     int    `bun:",nullzero"`
	Active        bool   `bun:",notnull,default:false"`
}

func indexExists(t *testing.T, db bun.IDB, name string) bool {
	t.Helper()
	var exists bool
	query := `SELECT EXISTS (SELECT FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)`
	require.NoError(t, db.NewRaw(query, name).Scan(context.Background(), &exists))
	return exists
}

func insertSample(ctx context.Context, db bun.IDB, s *latencySampleDao) error {
	_, err := db.NewInsert().Model(s).Exec(ctx)
	return err
}

func TestHelpers(t *testing.T) {
	pgutil.RequireDockerAccess(t)
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	reset := func(t *testing.T) {
		t.Helper()
		require.NoError(t, DropTables(ctx, db, &latencySampleDao{}))
		require.NoError(t, CreateSchema(ctx, db, &latencySampleDao{}))
	}

	t.Run("create schema is idempotent", func(t *testing.T) {
		reset(t)
		pgutil.AssertTableExists(t, db, "latency_samples")
		assert.NoError(t, CreateSchema(ctx, db, &latencySampleDao{}))
	})

	t.Run("drop tables is idempotent", func(t *testing.T) {
		reset(t)
		require.NoError(t, DropTables(ctx, db, &latencySampleDao{}))
		pgutil.AssertTableNotExists(t, db, "latency_samples")
		assert.NoError(t, DropTables(ctx, db, &latencySampleDao{}))
	})

	t.Run("model indexes are removed with their table", func(t *testing.T) {
		reset(t)
		require.NoError(t, CreateModelIndexes(ctx, db, &latencySampleDao{}, "region", "latency_ms"))
		require.NoError(t, CreateModelIndexes(ctx, db, &latencySampleDao{}, "region"))
		pgutil.AssertIndexExists(t, db, "idx_latency_samples_region")
		pgutil.AssertIndexExists(t, db, "idx_latency_samples_latency_ms")

		require.NoError(t, DropTables(ctx, db, &latencySampleDao{}))
		assert.False(t, indexExists(t, db, "idx_latency_samples_region"))
		assert.False(t, indexExists(t, db, "idx_latency_samples_latency_ms"))
	})

	t.Run("partial unique index only covers matching rows", func(t *testing.T) {
		reset(t)
		require.NoError(t, CreatePartialUniqueIndex(ctx, db, &latencySampleDao{},
			"idx_latency_samples_active_region", "region", "active = true"))
		pgutil.AssertIndexExists(t, db, "idx_latency_samples_active_region")

		require.NoError(t, insertSample(ctx, db, &latencySampleDao{Region: "eu-central"}))
		require.NoError(t, insertSample(ctx, db, &latencySampleDao{Region: "eu-central"}))
		require.NoError(t, insertSample(ctx, db, &latencySampleDao{Region: "eu-central", Active: true}))
		assert.Error(t, insertSample(ctx, db, &latencySampleDao{Region: "eu-central", Active: true}))
	})

	t.Run("check constraints are replaced by name", func(t *testing.T) {
		reset(t)
		checks := map[string]string{"chk_latency_non_negative": "latency_ms >= 0"}
		require.NoError(t, AddCheckConstraints(ctx, db, "latency_samples", checks))
		require.NoError(t, AddCheckConstraints(ctx, db, "latency_samples", checks))

		require.NoError(t, insertSample(ctx, db, &latencySampleDao{Region: "us-east", LatencyMs: 31}))
		assert.Error(t, insertSample(ctx, db, &latencySampleDao{Region: "us-east", LatencyMs: -1}))
	})

	t.Run("sequences", func(t *testing.T) {
		require.NoError(t, CreateSequence(ctx, db, "latency_sample_seq"))
		require.NoError(t, CreateSequence(ctx, db, "latency_sample_seq"))

		var next int64
		require.NoError(t, db.NewRaw("SELECT nextval('latency_sample_seq')").Scan(ctx, &next))
		assert.Equal(t, int64(1), next)

		require.NoError(t, DropSequence(ctx, db, "latency_sample_seq"))
		assert.NoError(t, DropSequence(ctx, db, "latency_sample_seq"))
	})
}
