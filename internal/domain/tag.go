package domain

import "time"

// Tag is a global label applied to products through the product_tags
// association table. Tags are not owned by any shop or product.
// Name is the unique business key and is used in URLs (/tag/{name}).
type Tag struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
