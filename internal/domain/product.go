package domain

import "time"

// Product belongs to exactly one shop and carries a set of tags through
// the product_tags association table.
// Title is the unique business key and is used in URLs (/product/{title}).
type Product struct {
	ID        int64
	Title     string
	Cost      float64
	ShopID    int64
	CreatedAt time.Time

	// Shop is the owning shop, populated on reads that join shops.
	Shop *Shop

	// Tags is the association set in insertion order, populated on reads.
	Tags []Tag
}
