package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"tradingJournal/internal/domain"
	"tradingJournal/internal/ports"
)

// newValidator returns a validator that compares decimals as float64 values,
// so numeric tags like gt=0 work on decimal.Decimal fields.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// validateTrade checks the trade invariants and wraps failures in ports.ErrValidation.
func validateTrade(v *validator.Validate, t *domain.Trade) error {
	if t == nil {
		return fmt.Errorf("trade is nil: %w", ports.ErrValidation)
	}
	t.Asset = strings.TrimSpace(t.Asset)

	err := v.Struct(t)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ports.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ports.ErrValidation, strings.Join(msgs, "; "))
}
