package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID               int64
	TelegramID       string
	FirstName        string
	LastName         string
	Username         string
	PhotoURL         string
	Phone            *string
	TotalBonuses     decimal.Decimal
	TotalOrders      int
	TotalSpent       decimal.Decimal
	RegistrationDate time.Time
	LastActive       time.Time
}

func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.Username
	}
	return name
}
