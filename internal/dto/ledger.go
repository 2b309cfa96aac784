package dto

import "time"

type TransactionDTO struct {
	ID        string    `json:"id"`
	Type      string    `json:"type" example:"deposit"`
	Currency  string    `json:"currency" example:"BTC"`
	Amount    float64   `json:"amount" example:"0.5"`
	Status    string    `json:"status" example:"completed"`
	CreatedAt time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type HoldingDTO struct {
	Currency string  `json:"currency" example:"BTC"`
	Amount   float64 `json:"amount" example:"1.2"`
	USDValue float64 `json:"usd_value" example:"78000"`
}

type HoldingsResponseDTO struct {
	Holdings []HoldingDTO `json:"holdings"`
	TotalUSD float64      `json:"total_usd" example:"78000"`
}
