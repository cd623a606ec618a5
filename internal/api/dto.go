package api

import "blitzswap/internal/model"

// QuoteResponse mirrors the shape the swap UI consumes: amounts as decimal
// strings, display-only price impact, and the asset path traversed.
type QuoteResponse struct {
	InputAmount  string   `json:"input_amount"`
	OutputAmount string   `json:"output_amount"`
	PriceImpact  float64  `json:"price_impact"`
	Path         []string `json:"path"`
	PoolIDs      []string `json:"pool_ids"`
}

// ErrorResponse carries a single error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toQuoteResponse(route model.SwapRoute) QuoteResponse {
	path := make([]string, 0, len(route.Path))
	for _, asset := range route.Path {
		path = append(path, string(asset))
	}
	poolIDs := make([]string, 0, len(route.Legs))
	for _, leg := range route.Legs {
		poolIDs = append(poolIDs, leg.PoolID)
	}
	return QuoteResponse{
		InputAmount:  route.InputAmount.String(),
		OutputAmount: route.OutputAmount.String(),
		PriceImpact:  route.PriceImpact,
		Path:         path,
		PoolIDs:      poolIDs,
	}
}
