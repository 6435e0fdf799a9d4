package catalog

// DefaultLowStockThreshold applies to a variant group when none of its units
// carries a threshold.
const DefaultLowStockThreshold = 5

// LowStockPolicy decides which rows count as low stock. Units and batches use
// different policies; see PolicyFor.
type LowStockPolicy interface {
	lowStockPolicy()
}

// GroupedThreshold groups active, unsold units by variant within the scope and
// flags a variant when its unit count is <= the smallest threshold configured
// on the group's rows, or DefaultThreshold when no row has one.
type GroupedThreshold struct {
	DefaultThreshold int
}

// RowThreshold flags a row when its own quantity is <= its own threshold.
type RowThreshold struct{}

func (GroupedThreshold) lowStockPolicy() {}
func (RowThreshold) lowStockPolicy()     {}

// PolicyFor returns the low-stock policy for an item kind.
func PolicyFor(kind ItemKind) LowStockPolicy {
	if kind == KindBatch {
		return RowThreshold{}
	}
	return GroupedThreshold{DefaultThreshold: DefaultLowStockThreshold}
}

// GroupThreshold returns the effective threshold for a variant group given the
// thresholds set on its rows (nil entries are unset).
func (p GroupedThreshold) GroupThreshold(thresholds []*int) int {
	var min *int
	for _, t := range thresholds {
		if t == nil {
			continue
		}
		if min == nil || *t < *min {
			v := *t
			min = &v
		}
	}
	if min == nil {
		return p.DefaultThreshold
	}
	return *min
}
