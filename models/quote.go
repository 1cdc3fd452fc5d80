package models

// LineItem is one priced row in a quote breakdown. Amounts are in AED.
type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// QuoteResult is the full itemized estimate for a selection. Item order is
// significant: the base service line first, then service add-ons in a fixed
// order, then studio, travel and rush fees last.
type QuoteResult struct {
	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
}
