package validators

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/ndurmanov/medirates/models"
)

const (
	FieldName       = "name"
	FieldCategoryID = "category_id"
	FieldPrice      = "price"
)

type ServiceInputValidator struct {
}

func NewServiceInputValidator() Validator {
	return &ServiceInputValidator{}
}

func (v *ServiceInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ServiceInput:
		return v.validateServiceInput(ctx, value, fields...)
	case *models.ServiceInput:
		return v.validateServiceInput(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ServiceInputValidator) validateServiceInput(_ context.Context, input models.ServiceInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCategoryID, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(input.Name) == "" {
				return ErrEmptyServiceName
			}
		case FieldCategoryID:
			if input.CategoryID == "" {
				return ErrNoCategory
			}
		case FieldPrice:
			if _, err := ParsePrice(input.Price); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ParsePrice converts the free-text price field entered in the admin form
// into a numeric amount. Negative, NaN and infinite values are rejected.
func ParsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, ErrInvalidPrice
	}

	return price, nil
}

// BuildServiceDraft validates the raw form input and, on success, returns the
// typed payload sent to the remote store. Description whitespace is trimmed
// and an empty description becomes NULL.
func BuildServiceDraft(ctx context.Context, v Validator, input models.ServiceInput) (models.ServiceDraft, error) {
	if err := v.Validate(ctx, input); err != nil {
		return models.ServiceDraft{}, err
	}

	price, err := ParsePrice(input.Price)
	if err != nil {
		return models.ServiceDraft{}, err
	}

	draft := models.ServiceDraft{
		Name:       strings.TrimSpace(input.Name),
		CategoryID: input.CategoryID,
		Price:      price,
	}
	if description := strings.TrimSpace(input.Description); description != "" {
		draft.Description = &description
	}

	return draft, nil
}
