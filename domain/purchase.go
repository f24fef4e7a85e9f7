package domain

// PurchaseRecord is one basket from the purchase ledger. Products keeps the
// basket order and may repeat an id.
type PurchaseRecord struct {
	UserID   string   `json:"userId"`
	Products []string `json:"products" validate:"dive,required"`
}

// UserRef is the shape returned by the user listing. ID is omitted for ledger
// records that carry no user.
type UserRef struct {
	ID string `json:"id,omitempty"`
}
