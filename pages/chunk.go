// Package pages builds the fixed interior page templates: the
// table of contents, category dividers, product grids, and the back
// cover. Like the cover registry, everything here is a pure function
// from data and a resolved stylesheet to a node tree.
package pages

import "github.com/ayhamDev/roza-catalog/catalog"

// Chunk splits products into consecutive groups of pageSize elements,
// the last group holding the remainder. It preserves order, never
// emits an empty group, and returns nil for an empty input.
func Chunk(products []catalog.Product, pageSize int) [][]catalog.Product {
	if pageSize <= 0 || len(products) == 0 {
		return nil
	}
	chunks := make([][]catalog.Product, 0, (len(products)+pageSize-1)/pageSize)
	for start := 0; start < len(products); start += pageSize {
		end := start + pageSize
		if end > len(products) {
			end = len(products)
		}
		chunks = append(chunks, products[start:end])
	}
	return chunks
}
