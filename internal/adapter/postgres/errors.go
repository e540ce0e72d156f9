package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"

	"github.com/heartmarshall/wordbot-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped, they pass through.
// Connectivity failures (dial, broken connection, closed pool) become
// domain.ErrStorageUnavailable; anything else, such as scan errors, is
// returned wrapped but unmapped.
func MapError(err error, entity string, key string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		}
		if isConnectionClass(pgErr.Code) {
			return fmt.Errorf("%s %s: %w: %w", entity, key, domain.ErrStorageUnavailable, err)
		}
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	if isUnreachable(err) {
		return fmt.Errorf("%s %s: %w: %w", entity, key, domain.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s %s: %w", entity, key, err)
}

func isUnreachable(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if errors.Is(err, puddle.ErrClosedPool) || pgconn.SafeToRetry(err) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// isConnectionClass reports SQLSTATE class 08 (connection exception) and
// 57P0x (operator intervention: shutdown, crash, cannot connect now).
func isConnectionClass(code string) bool {
	if len(code) != 5 {
		return false
	}
	return code[:2] == "08" || code[:4] == "57P0"
}
