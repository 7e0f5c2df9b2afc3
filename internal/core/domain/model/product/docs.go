// Package product contains the catalog entities the inventory ledger
// deducts from: Product with its stock counter and derived StockStatus,
// and Variation with its optional own counter.
//
// Deduction is hybrid, chosen per line item: a variation with a non-nil
// stock level is deducted directly; otherwise the parent product's counter
// takes the hit and its stock status is recomputed.
package product
