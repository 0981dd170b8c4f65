package api

import "github.com/nzai/stockapi/quotes"

// ErrorResponse define error body
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// BatchResponse define multiple tickers body
type BatchResponse struct {
	Data quotes.Batch `json:"data"`
}

// InfoResponse define service description body
type InfoResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
}
