package response

import (
	"spendlog/internal/core/domain/transaction"
	"time"
)

type Transaction struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Transaction) FromDomainTransaction(dt transaction.Transaction) {
	t.ID = int64(dt.ID)
	t.Text = dt.Text
	t.Amount = int64(dt.Amount)
	t.CreatedAt = dt.CreatedAt
}

func TransactionsFromDomain(dts []transaction.Transaction) []Transaction {
	transactions := make([]Transaction, len(dts))
	for ix, dt := range dts {
		transactions[ix].FromDomainTransaction(dt)
	}
	return transactions
}
