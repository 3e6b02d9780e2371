package history

import (
	"sort"

	"walletscope/internal/model"
)

// Order selects how a classified sequence is sorted by time.
type Order string

const (
	// OrderDesc puts the most recent transaction first.
	OrderDesc Order = "desc"
	// OrderAsc is chronological display order.
	OrderAsc Order = "asc"
)

// ParseOrder validates an order parameter, defaulting to descending.
func ParseOrder(input string) Order {
	if Order(input) == OrderAsc {
		return OrderAsc
	}
	return OrderDesc
}

func sortByTime(txs []model.Transaction, order Order) {
	sort.SliceStable(txs, func(i, j int) bool {
		if order == OrderAsc {
			return txs[i].Time < txs[j].Time
		}
		return txs[i].Time > txs[j].Time
	})
}
