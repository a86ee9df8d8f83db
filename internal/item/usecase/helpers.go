package usecase

import (
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"items-api/internal/item"
)

// validateID rejects ids that can never address a stored item.
func (uc *implUseCase) validateID(id string) error {
	if !primitive.IsValidObjectID(id) {
		return item.ErrInvalidID
	}
	return nil
}

// normalizeName trims name and checks it is present and within bounds.
func (uc *implUseCase) normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", item.ErrNameRequired
	}
	if utf8.RuneCountInString(name) > item.MaxNameLength {
		return "", item.ErrNameTooLong
	}
	return name, nil
}

// cleanAttributes drops reserved keys and rejects keys, at any depth, that are not
// valid document field names.
func (uc *implUseCase) cleanAttributes(attrs map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if item.IsReservedField(k) {
			continue
		}
		if !validFieldName(k) {
			return nil, item.ErrInvalidAttribute
		}
		if err := validateNested(v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func validFieldName(k string) bool {
	return k != "" && !strings.HasPrefix(k, "$") && !strings.Contains(k, ".")
}

func validateNested(v any) error {
	switch val := v.(type) {
	case map[string]any:
		for k, e := range val {
			if !validFieldName(k) {
				return item.ErrInvalidAttribute
			}
			if err := validateNested(e); err != nil {
				return err
			}
		}
	case []any:
		for _, e := range val {
			if err := validateNested(e); err != nil {
				return err
			}
		}
	}
	return nil
}
