package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/ShahiTechnovation/X4PN/pkg/nodestore"
	mghelper "github.com/ShahiTechnovation/X4PN/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating nodes table...")
		if err := mghelper.CreateSchema(ctx, db, &nodestore.NodeDao{}); err != nil {
			return err
		}
		if err := mghelper.AddCheckConstraints(ctx, db, "nodes", map[string]string{
			"nodes_rate_positive":             "rate_per_minute > 0",
			"nodes_active_users_non_negative": "active_users >= 0",
			"nodes_port_range":                "port BETWEEN 1 AND 65535",
		}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &nodestore.NodeDao{}, "operator_address", "is_active")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping nodes table...")
		return mghelper.DropTables(ctx, db, &nodestore.NodeDao{})
	})
}
