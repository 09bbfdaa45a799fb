package main

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/fwojciec/pagetext"
	"github.com/go-playground/validator/v10"
)

// Extractor names accepted by --extractor.
const (
	ExtractorText        = "text"
	ExtractorTrafilatura = "trafilatura"
	ExtractorReadability = "readability"
)

// Settings are the resolved global options every command shares.
type Settings struct {
	Timeout        time.Duration `flag:"timeout" validate:"gt=0"`
	ConnectTimeout time.Duration `flag:"connect-timeout" validate:"gt=0"`
	UserAgent      string        `flag:"user-agent" validate:"required"`
	Rate           float64       `flag:"rate" validate:"gte=0"`
	Extractor      string        `flag:"extractor" validate:"oneof=text trafilatura readability"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("flag")
	})
	return v
}

// Validate checks the settings and reports every invalid flag at once.
func (s *Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return pagetext.Errorf(pagetext.EINVALID, "invalid settings: %v", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("--%s %s", e.Field(), describe(e)))
	}
	return pagetext.Errorf(pagetext.EINVALID, "invalid settings: %s", strings.Join(msgs, "; "))
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(e.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed validation '%s'", e.Tag())
	}
}
