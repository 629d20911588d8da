package transaction

import "errors"

var ErrTransactionDoesNotExist = errors.New("transaction does not exist")
