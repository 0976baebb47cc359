package repository

// ItemListFilter narrows the storefront catalog listing.
type ItemListFilter struct {
	Category      string
	Search        string
	OnlyAvailable bool
}

// OrderListFilter narrows the staff order listing.
type OrderListFilter struct {
	Page     int
	PageSize int
	Status   string
	UserID   uint
}
