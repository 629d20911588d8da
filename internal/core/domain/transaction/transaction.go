package transaction

import (
	"spendlog/internal/core/domain/user"
	"time"
)

type ID int64

// Amount is a signed money amount in minor currency units; negative values
// are expenses.
type Amount int64

type Transaction struct {
	ID        ID
	CreatedBy user.ID
	Text      string
	Amount    Amount
	CreatedAt time.Time
}
