package common

import (
	"context"
	"log/slog"
	"strings"

	"pinstack-publish-service/internal/domain/custom_errors"
	ports "pinstack-publish-service/internal/domain/ports/output"
)

// InTx runs fn inside one transaction. fn's error is returned as is after a
// rollback; Begin and Commit failures surface as ErrDatabaseQuery.
func InTx(ctx context.Context, uow ports.UnitOfWork, log ports.Logger, fn func(tx ports.Transaction) error) (err error) {
	tx, err := uow.Begin(ctx)
	if err != nil {
		log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if txCommitted {
			return
		}
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			if isClosed(rollbackErr) {
				log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
			} else {
				log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
		} else {
			log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		}
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true
	return nil
}

func isClosed(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "tx is closed") || strings.Contains(msg, "commit unexpectedly resulted in rollback")
}
