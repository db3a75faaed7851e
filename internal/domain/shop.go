// Package domain contains the core data types for the shop catalog API.
// This package has zero external dependencies beyond uuid and is imported
// by every other internal package (repo, service, handler).
package domain

import "time"

// Shop is the top-level aggregate; products belong to a shop.
// Title is the unique business key and is used in URLs (/shop/{title}).
type Shop struct {
	ID        int64
	Title     string
	CreatedAt time.Time

	// Products is populated only by reads that request the nested view
	// (GET /shop/{title}, GET /shops). Write paths leave it nil.
	Products []Product
}
