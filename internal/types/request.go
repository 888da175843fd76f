package types

import "github.com/go-playground/validator/v10"

// GenerateRequest asks for a new session.
type GenerateRequest struct {
	PortalID string `json:"portalId" validate:"required"`
	Device   string `json:"device,omitempty" validate:"omitempty,oneof=desktop mobile"`
	Mode     string `json:"mode,omitempty" validate:"omitempty,oneof=simple advanced"`
	Variant  string `json:"variant,omitempty" validate:"omitempty,oneof=toddler kids expert"`
	Seed     int64  `json:"seed,omitempty"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CheckRequest asks whether an item code may occupy a slot.
type CheckRequest struct {
	ItemCode      Code   `json:"itemCode" validate:"required,max=2"`
	RequiredCodes []Code `json:"requiredCodes" validate:"required,min=1,max=2,dive,required,max=2"`
	Strict        bool   `json:"strict,omitempty"`
}

// Validate validates the CheckRequest using the validator.
func (r *CheckRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CheckResponse is the answer to a CheckRequest.
type CheckResponse struct {
	Matches bool `json:"matches"`
	Exact   bool `json:"exact"`
	// Joker is set when the item is a wildcard, which fits any slot.
	Joker bool `json:"joker,omitempty"`
}
