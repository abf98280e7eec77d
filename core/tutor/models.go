package tutor

import (
	"github.com/go-playground/validator/v10"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
)

// Age bands drive tone and content selection.
const (
	AgeBandJunior = "6-11"
	AgeBandTeen   = "12-17"
)

// Interaction modes
const (
	ModeChat       = "chat"
	ModeCodeReview = "code-review"
	ModePractice   = "practice"
)

type Request struct {
	Message string `json:"message" validate:"required"`
	AgeBand string `json:"ageBand" validate:"omitempty,oneof=6-11 12-17"`
	Mode    string `json:"mode" validate:"omitempty,oneof=chat code-review practice"`
	Context string `json:"context"` // optional free-text context resent by the caller
}

func (r *Request) Validate(validate *validator.Validate) error {
	r.Message = core.CleanString(r.Message)
	r.AgeBand = core.CleanString(r.AgeBand)
	r.Mode = core.CleanString(r.Mode, true /* lower */)
	if r.AgeBand == "" {
		r.AgeBand = AgeBandJunior
	}
	if r.Mode == "" {
		r.Mode = ModeChat
	}
	return validate.Struct(r)
}

type Suggestion struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SampleCode  string `json:"sampleCode,omitempty"`
}

type Reply struct {
	Message    string      `json:"message"`
	Suggestion *Suggestion `json:"suggestion,omitempty"`
}
