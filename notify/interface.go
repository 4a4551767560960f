package notify

import "github.com/spacemeshos/go-txview/common/types"

//go:generate mockgen -typed -package=notify -destination=./mocks.go -source=./interface.go

// Consumer applies ledger changes to a view.
type Consumer interface {
	ApplyChange(types.TxChange)
}
