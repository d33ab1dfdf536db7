package cart

// Line is one client-held cart entry. Prices are in pence. Name is the
// denormalized display name at the time the line was added (composite names
// for build-your-own items included); Option is the selected variant label,
// empty when the item has none.
type Line struct {
	MenuItemID *int64
	Name       string
	Option     string
	UnitPrice  int64
	Quantity   int
	TotalPrice int64
}

// key identifies a mergeable line: same item with the same option.
func (l Line) key() string {
	if l.MenuItemID == nil {
		return "-:" + l.Name + ":" + l.Option
	}
	return itoa(*l.MenuItemID) + ":" + l.Option
}

type Customer struct {
	Name         string
	Phone        string
	Instructions string
}

// Submission is what the boundary hands to Materialize: the raw cart plus
// the customer's claims, nothing trusted yet.
type Submission struct {
	Customer       Customer
	CollectionDate string
	CollectionTime string
	Lines          []Line
	ClaimedTotal   int64
}

// OrderRequest is a validated, priced order ready for the order store.
// Line totals have been recomputed server-side and reconciled against the
// client's claimed total.
type OrderRequest struct {
	CustomerName        string
	CustomerPhone       string
	CollectionDate      string
	CollectionTime      string
	SpecialInstructions string
	TotalAmount         int64
	Lines               []Line
}
