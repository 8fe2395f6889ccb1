// Package node holds the VPN node domain model.
package node

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultPort is the WireGuard port assumed when a node registers without one.
const DefaultPort = 51820

// DefaultRatePerMinute is the USDC price per minute used when registration omits a rate.
var DefaultRatePerMinute = decimal.RequireFromString("0.001")

// Node is an operator-run VPN endpoint that users connect to and that earns from settlements.
type Node struct {
	ID              uuid.UUID       `json:"id"`
	OperatorAddress string          `json:"operatorAddress"`
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	Country         string          `json:"country"`
	CountryCode     string          `json:"countryCode"`
	IPAddress       string          `json:"ipAddress"`
	Port            int             `json:"port"`
	RatePerMinute   decimal.Decimal `json:"ratePerMinute"`
	IsActive        bool            `json:"isActive"`
	TotalEarnedUsdc decimal.Decimal `json:"totalEarnedUsdc"`
	TotalEarnedX4pn decimal.Decimal `json:"totalEarnedX4pn"`
	ActiveUsers     int             `json:"activeUsers"`
	Uptime          float64         `json:"uptime"`
	Latency         int             `json:"latency"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// RegisterRequest registers a node for the authenticated operator.
type RegisterRequest struct {
	Name          string           `json:"name" validate:"required,max=100"`
	Location      string           `json:"location" validate:"required,max=100"`
	Country       string           `json:"country" validate:"required,max=100"`
	CountryCode   string           `json:"countryCode" validate:"required,len=2,alpha"`
	IPAddress     string           `json:"ipAddress" validate:"required,ip"`
	Port          int              `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	RatePerMinute *decimal.Decimal `json:"ratePerMinute,omitempty"`
}

// UpdateRequest changes mutable node attributes. The rate is fixed at registration.
type UpdateRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Location *string  `json:"location,omitempty" validate:"omitempty,min=1,max=100"`
	IsActive *bool    `json:"isActive,omitempty"`
	Uptime   *float64 `json:"uptime,omitempty" validate:"omitempty,min=0,max=100"`
	Latency  *int     `json:"latency,omitempty" validate:"omitempty,min=0"`
}

// IsEmpty reports whether the request changes nothing.
func (r *UpdateRequest) IsEmpty() bool {
	return r.Name == nil && r.Location == nil && r.IsActive == nil && r.Uptime == nil && r.Latency == nil
}

// Stats is the network-wide summary served to dashboards.
type Stats struct {
	TotalNodes  int `json:"totalNodes"`
	ActiveNodes int `json:"activeNodes"`
	TotalUsers  int `json:"totalUsers"`
	AvgLatency  int `json:"avgLatency"`
}
