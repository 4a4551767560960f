package dispatch

import "github.com/spacemeshos/go-txview/common/types"

//go:generate mockgen -typed -package=dispatch -destination=./mocks.go -source=./interface.go

// Handler receives dispatched messages on the dispatcher's execution context.
type Handler interface {
	Notify(types.TxChange)
	Progress(types.Progress)
}
