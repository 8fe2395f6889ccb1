package nodestore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/ShahiTechnovation/X4PN/pkg/node"
)

// NodeDao maps to the 'nodes' table.
type NodeDao struct {
	bun.BaseModel   `bun:"table:nodes,alias:n"`
	ID              uuid.UUID       `bun:"id,pk,type:uuid"`
	OperatorAddress string          `bun:"operator_address,notnull,type:varchar(42)"`
	Name            string          `bun:"name,notnull,type:varchar(100)"`
	Location        string          `bun:"location,notnull,type:varchar(100)"`
	Country         string          `bun:"country,notnull,type:varchar(100)"`
	CountryCode     string          `bun:"country_code,notnull,type:varchar(2)"`
	IPAddress       string          `bun:"ip_address,notnull,type:varchar(45)"`
	Port            int             `bun:"port,notnull,default:51820"`
	RatePerMinute   decimal.Decimal `bun:"rate_per_minute,notnull,type:numeric(38,18)"`
	IsActive        bool            `bun:"is_active,notnull,default:true"`
	TotalEarnedUsdc decimal.Decimal `bun:"total_earned_usdc,notnull,type:numeric(38,18),default:0"`
	TotalEarnedX4pn decimal.Decimal `bun:"total_earned_x4pn,notnull,type:numeric(38,18),default:0"`
	ActiveUsers     int             `bun:"active_users,notnull,default:0"`
	Uptime          float64         `bun:"uptime,notnull,type:double precision,default:100"`
	Latency         int             `bun:"latency,notnull,default:0"`
	CreatedAt       time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toNodeDao(n *node.Node) *NodeDao {
	return &NodeDao{
		ID:              n.ID,
		OperatorAddress: n.OperatorAddress,
		Name:            n.Name,
		Location:        n.Location,
		Country:         n.Country,
		CountryCode:     n.CountryCode,
		IPAddress:       n.IPAddress,
		Port:            n.Port,
		RatePerMinute:   n.RatePerMinute,
		IsActive:        n.IsActive,
		TotalEarnedUsdc: n.TotalEarnedUsdc,
		TotalEarnedX4pn: n.TotalEarnedX4pn,
		ActiveUsers:     n.ActiveUsers,
		Uptime:          n.Uptime,
		Latency:         n.Latency,
		CreatedAt:       n.CreatedAt,
	}
}

func toNode(dao *NodeDao) *node.Node {
	return &node.Node{
		ID:              dao.ID,
		OperatorAddress: dao.OperatorAddress,
		Name:            dao.Name,
		Location:        dao.Location,
		Country:         dao.Country,
		CountryCode:     dao.CountryCode,
		IPAddress:       dao.IPAddress,
		Port:            dao.Port,
		RatePerMinute:   dao.RatePerMinute,
		IsActive:        dao.IsActive,
		TotalEarnedUsdc: dao.TotalEarnedUsdc,
		TotalEarnedX4pn: dao.TotalEarnedX4pn,
		ActiveUsers:     dao.ActiveUsers,
		Uptime:          dao.Uptime,
		Latency:         dao.Latency,
		CreatedAt:       dao.CreatedAt,
	}
}
