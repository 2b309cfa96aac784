package domain

import "time"

type Role string

const (
	RoleUser     Role = "user"
	RoleMerchant Role = "merchant"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleMerchant, RoleAdmin:
		return true
	}
	return false
}

type Account struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// Principal is the authenticated identity on whose behalf an operation runs.
// It is threaded explicitly through every core call.
type Principal struct {
	AccountID string
	Role      Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanActFor reports whether the principal may mutate state owned by accountID.
func (p Principal) CanActFor(accountID string) bool {
	return p.AccountID == accountID || p.IsAdmin()
}

type Session struct {
	ID        string
	AccountID string
	Role      Role
	IssuedAt  time.Time
}

type WalletAddress struct {
	AccountID string    `db:"account_id"`
	Currency  string    `db:"currency"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
}

type TxType string

const (
	TxDeposit    TxType = "deposit"
	TxWithdrawal TxType = "withdrawal"
	TxPayment    TxType = "payment"
	TxConversion TxType = "conversion"
)

func (t TxType) Valid() bool {
	switch t {
	case TxDeposit, TxWithdrawal, TxPayment, TxConversion:
		return true
	}
	return false
}

type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxCompleted TxStatus = "completed"
	TxFailed    TxStatus = "failed"
)

func (s TxStatus) Valid() bool {
	switch s {
	case TxPending, TxCompleted, TxFailed:
		return true
	}
	return false
}

type Transaction struct {
	ID        string    `db:"id"`
	AccountID string    `db:"account_id"`
	Type      TxType    `db:"type"`
	Currency  string    `db:"currency"`
	Amount    float64   `db:"amount"`
	Status    TxStatus  `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// TxFilter narrows a transaction listing. Zero values mean "no constraint";
// Search matches a substring of the id or the currency code.
type TxFilter struct {
	Type   TxType
	Status TxStatus
	Search string
}

// Holding is one currency position derived from the transaction log.
type Holding struct {
	Currency string  `db:"currency"`
	Amount   float64 `db:"amount"`
	USDValue float64
}

type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "pending"
	PayoutApproved  PayoutStatus = "approved"
	PayoutRejected  PayoutStatus = "rejected"
	PayoutCompleted PayoutStatus = "completed"
)

type BankDetailsKind string

const (
	BankDetailsBank BankDetailsKind = "bank"
	BankDetailsUPI  BankDetailsKind = "upi"
)

// BankDetails is the payout destination, tagged by Kind. A bank transfer
// requires AccountNumber and BankName (IBAN optional); the UPI rail requires
// only the UPI id.
type BankDetails struct {
	Kind          BankDetailsKind `json:"kind"`
	AccountNumber string          `json:"accountNumber,omitempty"`
	BankName      string          `json:"bankName,omitempty"`
	IBAN          string          `json:"iban,omitempty"`
	UPI           string          `json:"upi,omitempty"`
}

type PayoutRequest struct {
	ID           string       `db:"id"`
	AccountID    string       `db:"account_id"`
	Currency     string       `db:"currency"`
	Amount       float64      `db:"amount"`
	Fee          float64      `db:"fee"`
	CryptoAmount float64      `db:"crypto_amount"`
	BankDetails  BankDetails  `db:"bank_details"`
	Status       PayoutStatus `db:"status"`
	AdminNotes   string       `db:"admin_notes"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}
