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
		log.Println("creating transactions table...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.TransactionDao{}); err != nil {
			return err
		}
		if err := mghelper.AddForeignKey(ctx, db, "transactions", "user_id", "users", "id"); err != nil {
			return err
		}
		if err := mghelper.AddCheckConstraints(ctx, db, "transactions", map[string]string{
			"transactions_amount_positive": "amount > 0",
		}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &userstore.TransactionDao{}, "user_id", "created_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping transactions table...")
		return mghelper.DropTables(ctx, db, &userstore.TransactionDao{})
	})
}
