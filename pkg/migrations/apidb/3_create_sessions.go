package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/ShahiTechnovation/X4PN/pkg/pgutil/migrations"
	"github.com/ShahiTechnovation/X4PN/pkg/sessionstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating sessions table...")
		if err := mghelper.CreateSequence(ctx, db, sessionstore.SessionSequence); err != nil {
			return err
		}
		if err := mghelper.CreateSchema(ctx, db, &sessionstore.SessionDao{}); err != nil {
			return err
		}
		if err := mghelper.AddForeignKey(ctx, db, "sessions", "user_id", "users", "id"); err != nil {
			return err
		}
		if err := mghelper.AddForeignKey(ctx, db, "sessions", "node_id", "nodes", "id"); err != nil {
			return err
		}
		if err := mghelper.AddCheckConstraints(ctx, db, "sessions", map[string]string{
			"sessions_totals_non_negative": "total_cost >= 0 AND x4pn_earned >= 0 AND total_duration >= 0",
			"sessions_status_matches_flag": "(is_active AND status = 'active') OR (NOT is_active AND status IN ('ended', 'failed'))",
			"sessions_settled_after_start": "last_settled_at >= started_at",
		}); err != nil {
			return err
		}
		// one active session per user; concurrent starts lose on this index
		if err := mghelper.CreatePartialUniqueIndex(ctx, db, &sessionstore.SessionDao{},
			sessionstore.ActiveSessionIndex, "user_id", "is_active"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &sessionstore.SessionDao{},
			"user_address", "node_id", "last_settled_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping sessions table...")
		if err := mghelper.DropTables(ctx, db, &sessionstore.SessionDao{}); err != nil {
			return err
		}
		return mghelper.DropSequence(ctx, db, sessionstore.SessionSequence)
	})
}
