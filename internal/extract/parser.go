package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrInvalidJSON      = errors.New("invalid extraction JSON output")
	ErrUnknownDocument  = errors.New("document could not be classified")
	ErrMalformedPayload = errors.New("extraction payload does not match its declared type")
)

// ParseDocument calls the oracle and narrows its output into a validated
// Document. The oracle's shape varies by detected type, so everything is
// checked here, at the boundary — nothing downstream sees an unvalidated
// payload.
func ParseDocument(
	ctx context.Context,
	client Client,
	text string,
	hint string,
) (*Document, error) {

	rawJSON, err := client.ExtractDocument(ctx, text, hint)
	if err != nil {
		return nil, err
	}

	return NarrowDocument([]byte(rawJSON))
}

// NarrowDocument validates a raw tagged payload. Unrecognized or
// inconsistent shapes are rejected with an error, never a panic.
func NarrowDocument(rawJSON []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(rawJSON, &doc); err != nil {
		return nil, ErrInvalidJSON
	}

	switch doc.Type {
	case DocTypeSales:
		if doc.Sales == nil {
			return nil, fmt.Errorf("%w: sales document without rows", ErrMalformedPayload)
		}
	case DocTypeParSheet:
		if doc.ParSheet == nil {
			return nil, fmt.Errorf("%w: par sheet without rows", ErrMalformedPayload)
		}
		for _, row := range doc.ParSheet {
			if row.DayOfWeek < 0 || row.DayOfWeek > 6 {
				return nil, fmt.Errorf("%w: day_of_week %d out of range", ErrMalformedPayload, row.DayOfWeek)
			}
		}
	case DocTypeRecipe:
		if doc.Recipe == nil || doc.Recipe.Name == "" {
			return nil, fmt.Errorf("%w: recipe without a name", ErrMalformedPayload)
		}
	case DocTypeMenuItem:
		if doc.MenuItems == nil {
			return nil, fmt.Errorf("%w: menu document without items", ErrMalformedPayload)
		}
	case DocTypeUnknown:
		return nil, ErrUnknownDocument
	default:
		return nil, fmt.Errorf("%w: unrecognized type %q", ErrMalformedPayload, doc.Type)
	}

	return &doc, nil
}
