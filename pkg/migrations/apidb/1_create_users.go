package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/ShahiTechnovation/X4PN/pkg/pgutil/migrations"
	"github.com/ShahiTechnovation/X4PN/pkg/userstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating users table...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.UserDao{}); err != nil {
			return err
		}
		return mghelper.AddCheckConstraints(ctx, db, "users", map[string]string{
			"users_usdc_balance_non_negative": "usdc_balance >= 0",
			"users_x4pn_balance_non_negative": "x4pn_balance >= 0",
		})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping users table...")
		return mghelper.DropTables(ctx, db, &userstore.UserDao{})
	})
}
