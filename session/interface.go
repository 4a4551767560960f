package session

import (
	"github.com/spacemeshos/go-txview/common/types"
	"github.com/spacemeshos/go-txview/events"
	"github.com/spacemeshos/go-txview/txview"
)

//go:generate mockgen -typed -package=session -destination=./mocks.go -source=./interface.go

// Source is a ledger that publishes its changes.
type Source interface {
	txview.Ledger
	SubscribeChanges(func(types.TxChange)) events.Handle
	UnsubscribeChanges(events.Handle) bool
	SubscribeProgress(func(types.Progress)) events.Handle
	UnsubscribeProgress(events.Handle) bool
	SubscribeTip(func(int64)) events.Handle
	UnsubscribeTip(events.Handle) bool
}
