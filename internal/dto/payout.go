package dto

import "time"

type BankDetailsDTO struct {
	Kind          string `json:"kind" example:"bank"`
	AccountNumber string `json:"accountNumber,omitempty" example:"40817810099910004312"`
	BankName      string `json:"bankName,omitempty" example:"First National"`
	IBAN          string `json:"iban,omitempty"`
	UPI           string `json:"upi,omitempty" example:"user@upi"`
}

type PayoutSubmitRequestDTO struct {
	Currency    string         `json:"currency" example:"USD"`
	Amount      float64        `json:"amount" example:"150"`
	BankDetails BankDetailsDTO `json:"bank_details"`
}

type PayoutReviewRequestDTO struct {
	AdminNotes string `json:"admin_notes"`
}

type PayoutDTO struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	Currency     string    `json:"currency" example:"USD"`
	Amount       float64   `json:"amount" example:"150"`
	Fee          float64   `json:"fee" example:"25"`
	CryptoAmount float64   `json:"crypto_amount" example:"0.00230769"`
	Status       string    `json:"status" example:"pending"`
	AdminNotes   string    `json:"admin_notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
