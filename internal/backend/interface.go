// Package backend defines the ports the web frontend consumes and a factory
// selecting their implementation.
package backend

import (
	"context"

	"github.com/voldemort-x/Finance-Monitor/internal/core"
)

// Ports for outbound adapters.
type (
	TransactionLister interface {
		ListTransactions(ctx context.Context) ([]core.Transaction, error)
	}

	TransactionWriter interface {
		// AddTransaction stores a transaction and returns its assigned id.
		AddTransaction(ctx context.Context, tx core.Transaction) (int64, error)
	}

	SummaryReader interface {
		ReadSummary(ctx context.Context) (core.SummaryReport, error)
	}

	DetailedReader interface {
		ReadDetailedReport(ctx context.Context) (core.DetailedReport, error)
	}
)

// Backend provides all operations the frontend needs.
type Backend interface {
	TransactionLister
	TransactionWriter
	SummaryReader
	DetailedReader
}

// Type selects the backend implementation.
type Type string

const (
	// APIBackend talks to the remote finance monitor service.
	APIBackend Type = "api"
	// MemoryBackend is an in-process store for development and tests.
	MemoryBackend Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case APIBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{APIBackend, MemoryBackend}
}
