package txview

import (
	"github.com/spacemeshos/go-txview/common/types"
)

//go:generate mockgen -typed -package=txview -destination=./mocks.go -source=./interface.go

// Ledger guards the wallet's transaction stores. Reads that touch transaction
// content require both the chain and the wallet locks, which Ledger hands out
// together as a LedgerView.
type Ledger interface {
	// Acquire blocks until both locks are held.
	Acquire() LedgerView
	// TryAcquire takes both locks without blocking. It returns false, holding
	// neither lock, if either one is busy.
	TryAcquire() (LedgerView, bool)
}

// LedgerView is a read capability over the ledger, valid until Release.
type LedgerView interface {
	TipHeight() int64
	// ActiveTransactions returns the live wallet set in ledger iteration order.
	ActiveTransactions() []*types.Transaction
	ArchivePoints() []types.ArchivePoint
	Active(types.TransactionID) (*types.Transaction, bool)
	// Archived resolves an archived transaction only if its block is known and indexed.
	Archived(types.TransactionID) (*types.Transaction, bool)
	Release()
}

// Decomposer turns ledger transactions into display records and computes their status.
type Decomposer interface {
	// Decompose returns zero or more records in a stable order.
	Decompose(*types.Transaction) []DisplayRecord
	Status(tx *types.Transaction, tip int64) Status
	Describe(*types.Transaction, DisplayRecord) string
}
