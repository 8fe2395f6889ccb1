package userstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/ShahiTechnovation/X4PN/pkg/user"
)

// UserDao is a data access object that maps directly to the 'users' table in PostgreSQL.
type UserDao struct {
	bun.BaseModel   `bun:"table:users,alias:u"`
	ID              uuid.UUID       `bun:"id,pk,type:uuid"`
	WalletAddress   string          `bun:"wallet_address,unique,notnull,type:varchar(42)"`
	UsdcBalance     decimal.Decimal `bun:"usdc_balance,notnull,type:numeric(38,18),default:0"`
	X4pnBalance     decimal.Decimal `bun:"x4pn_balance,notnull,type:numeric(38,18),default:0"`
	TotalSpent      decimal.Decimal `bun:"total_spent,notnull,type:numeric(38,18),default:0"`
	TotalEarnedX4pn decimal.Decimal `bun:"total_earned_x4pn,notnull,type:numeric(38,18),default:0"`
	CreatedAt       time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// TransactionDao maps to the 'transactions' table.
type TransactionDao struct {
	bun.BaseModel `bun:"table:transactions,alias:t"`
	ID            uuid.UUID       `bun:"id,pk,type:uuid"`
	UserID        uuid.UUID       `bun:"user_id,notnull,type:uuid"`
	Type          string          `bun:"type,notnull,type:varchar(16)"`
	Amount        decimal.Decimal `bun:"amount,notnull,type:numeric(38,18)"`
	Token         string          `bun:"token,notnull,type:varchar(8)"`
	TxHash        *string         `bun:"tx_hash,type:varchar(80)"`
	Status        string          `bun:"status,notnull,type:varchar(16)"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toUserDao(usr *user.User) *UserDao {
	return &UserDao{
		ID:              usr.ID,
		WalletAddress:   usr.WalletAddress,
		UsdcBalance:     usr.UsdcBalance,
		X4pnBalance:     usr.X4pnBalance,
		TotalSpent:      usr.TotalSpent,
		TotalEarnedX4pn: usr.TotalEarnedX4pn,
		CreatedAt:       usr.CreatedAt,
	}
}

func toUser(dao *UserDao) *user.User {
	return &user.User{
		ID:              dao.ID,
		WalletAddress:   dao.WalletAddress,
		UsdcBalance:     dao.UsdcBalance,
		X4pnBalance:     dao.X4pnBalance,
		TotalSpent:      dao.TotalSpent,
		TotalEarnedX4pn: dao.TotalEarnedX4pn,
		CreatedAt:       dao.CreatedAt,
	}
}

func toTransactionDao(tx *user.Transaction) *TransactionDao {
	dao := &TransactionDao{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Type:      string(tx.Type),
		Amount:    tx.Amount,
		Token:     string(tx.Token),
		Status:    string(tx.Status),
		CreatedAt: tx.CreatedAt,
	}
	if tx.TxHash != "" {
		dao.TxHash = &tx.TxHash
	}
	return dao
}

func toTransaction(dao *TransactionDao) *user.Transaction {
	tx := &user.Transaction{
		ID:        dao.ID,
		UserID:    dao.UserID,
		Type:      user.TransactionType(dao.Type),
		Amount:    dao.Amount,
		Token:     user.Token(dao.Token),
		Status:    user.TransactionStatus(dao.Status),
		CreatedAt: dao.CreatedAt,
	}
	if dao.TxHash != nil {
		tx.TxHash = *dao.TxHash
	}
	return tx
}
