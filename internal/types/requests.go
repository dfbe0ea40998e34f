package types

import "github.com/go-playground/validator/v10"

// SubmitRatingsRequest carries the user's slider values for one session.
type SubmitRatingsRequest struct {
	FirstName  string           `json:"first_name,omitempty"`
	Ratings    map[string][]int `json:"ratings" validate:"required"`
	Reflection string           `json:"reflection,omitempty"`
}

// RequestCodeRequest asks for a verification code to be emailed.
type RequestCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CheckCodeRequest submits a verification code for comparison.
type CheckCodeRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// Validate validates the SubmitRatingsRequest using the validator.
func (r *SubmitRatingsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RequestCodeRequest using the validator.
func (r *RequestCodeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CheckCodeRequest using the validator.
func (r *CheckCodeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
