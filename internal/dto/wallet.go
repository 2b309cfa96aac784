package dto

type AddressResponseDTO struct {
	Currency string `json:"currency" example:"BTC"`
	Address  string `json:"address" example:"BTCmfrggzdfmztwq2lknnwg23tp"`
}
