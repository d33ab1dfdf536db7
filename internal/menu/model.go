package menu

// The menu is owned elsewhere (admin CRUD is out of scope here); this
// package only reads it. Prices are in pence.

type Category struct {
	ID           int64
	Name         string
	Slug         string
	DisplayOrder int
}

type Item struct {
	ID           int64
	CategoryID   int64
	Name         string
	Description  string
	BasePrice    int64
	DisplayOrder int
	Options      []Option
}

// Option is a named price-bearing variant of an item (e.g. a size),
// mutually exclusive per order line.
type Option struct {
	ID           int64
	ItemID       int64
	Name         string
	Price        int64
	DisplayOrder int
}
