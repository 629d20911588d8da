package transaction

import (
	"context"
	"fmt"
	"sort"
	"spendlog/internal/core/domain/user"
	"sync"
)

type FakeRepository struct {
	Transactions []Transaction
	ReturnError  bool
	lock         sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Transactions: make([]Transaction, 0, 10)}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (t Transaction, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not create transaction %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Transactions {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	t = Transaction{
		ID:        maxID + 1,
		CreatedBy: input.CreatedBy,
		Text:      input.Text,
		Amount:    input.Amount,
		CreatedAt: input.CreatedAt,
	}
	r.Transactions = append(r.Transactions, t)
	return t, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (t Transaction, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not get transaction by id %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Transactions {
		if existing.ID == id {
			return existing, nil
		}
	}
	return t, ErrTransactionDoesNotExist
}

func (r *FakeRepository) ListByUser(ctx context.Context, userID user.ID) ([]Transaction, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list transactions for user %d", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	result := make([]Transaction, 0, len(r.Transactions))
	for _, existing := range r.Transactions {
		if existing.CreatedBy == userID {
			result = append(result, existing)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete transaction %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Transactions {
		if existing.ID == id {
			r.Transactions = append(r.Transactions[:ix], r.Transactions[ix+1:]...)
			return nil
		}
	}
	return ErrTransactionDoesNotExist
}
