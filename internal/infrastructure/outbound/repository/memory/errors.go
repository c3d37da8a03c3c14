package memory

import "errors"

// ErrTxClosed mirrors the pgx message so callers treat both drivers alike.
var ErrTxClosed = errors.New("tx is closed")
