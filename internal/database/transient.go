package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATEs that mean the server is unreachable or the connection
// was lost. Class 08 is "connection exception"; the 57P0x states are server
// shutdown/startup conditions that clear on their own.
const (
	sqlstateConnectionClass = "08"

	sqlstateAdminShutdown    = "57P01"
	sqlstateCrashShutdown    = "57P02"
	sqlstateCannotConnectNow = "57P03"
)

// transientMarkers are matched against lowercased error messages for drivers
// that surface plain errors instead of SQLSTATEs.
var transientMarkers = []string{
	"conn closed",
	"connection closed",
	"connection terminated",
	"connection reset",
	"connection refused",
	"broken pipe",
	"timed out",
	"unexpected eof",
}

// IsTransient reports whether err is a recoverable infrastructure fault
// (connection lost/refused/reset/timeout) as opposed to an application-level
// fault. Constraint violations, missing rows and cancelled contexts are never
// transient. Pure predicate, no side effects.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, sqlstateConnectionClass) {
			return true
		}
		switch pgErr.Code {
		case sqlstateAdminShutdown, sqlstateCrashShutdown, sqlstateCannotConnectNow:
			return true
		}
		// Everything else with a SQLSTATE is an application fault: constraint
		// violations, bad queries, missing relations.
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}

	return false
}
