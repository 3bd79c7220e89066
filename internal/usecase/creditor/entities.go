package creditor

// CreateInput is a creditor before insertion. The address is 1 to 4 lines,
// first line non-empty; shorter input is padded with empty lines.
type CreateInput struct {
	Name       string
	Address    []string
	Phone      string
	Email      string
	Newsletter bool
}

// UpdateInput carries a partial update; nil fields stay untouched. A set
// Address replaces all four lines positionally.
type UpdateInput struct {
	Name       *string
	Address    []string
	Phone      *string
	Email      *string
	Newsletter *bool
}

type CreditorDTO struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Address    []string `json:"address"`
	Phone      string   `json:"phone,omitempty"`
	Email      string   `json:"email,omitempty"`
	Newsletter bool     `json:"newsletter"`
}
