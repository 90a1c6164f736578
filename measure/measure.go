// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package measure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/danielhkuo/fitroom/models"
)

// ErrInvalidGender is returned when a non-null gender value is anything
// other than "man" or "woman".
var ErrInvalidGender = errors.New("invalid value for gender, must be 'man' or 'woman'")

// InvalidFieldError names the measurement field that failed numeric
// coercion.
type InvalidFieldError struct {
	Field string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value for %s, must be a number", e.Field)
}

// NumericFields is the allow-list of numeric measurement names, in the
// order updates are built. GenderField is the single enum field.
var NumericFields = []string{
	"height", "weight", "chest", "underbust", "waist",
	"hips", "sleeve", "thigh", "inseam", "outseam",
}

const GenderField = "gender"

// Update is a validated sparse set of column assignments, ready for the
// store. The zero value is the empty update.
type Update struct {
	columns []string
	values  []any
}

func (u *Update) Empty() bool       { return len(u.columns) == 0 }
func (u *Update) Len() int          { return len(u.columns) }
func (u *Update) Columns() []string { return u.columns }
func (u *Update) Values() []any     { return u.values }

func (u *Update) add(column string, value any) {
	u.columns = append(u.columns, column)
	u.values = append(u.values, value)
}

// ParseUpdate validates a raw JSON object against the field allow-list
// and builds an Update of exactly the recognized fields.
//
// Keys outside the allow-list are silently dropped: clients may POST the
// whole form state and the server takes what it knows. Numeric values
// are accepted as JSON numbers or numeric strings, because the stock
// frontend submits raw form-input strings. An explicit null clears a
// numeric field; a null gender is skipped rather than cleared. Any
// invalid value fails the whole parse, so a bad field never results in a
// partially applied update.
func ParseUpdate(raw map[string]json.RawMessage) (*Update, error) {
	var u Update

	for _, field := range NumericFields {
		value, ok := raw[field]
		if !ok {
			continue
		}
		if isNull(value) {
			u.add(field, nil)
			continue
		}
		n, err := coerceNumber(value)
		if err != nil {
			return nil, &InvalidFieldError{Field: field}
		}
		u.add(field, n)
	}

	if value, ok := raw[GenderField]; ok && !isNull(value) {
		gender, err := coerceString(value)
		if err != nil {
			return nil, ErrInvalidGender
		}
		if gender != models.GenderMan && gender != models.GenderWoman {
			return nil, ErrInvalidGender
		}
		u.add(GenderField, gender)
	}

	return &u, nil
}

// Store is the slice of the credential store the engine needs.
type Store interface {
	ApplyPartialUpdate(ctx context.Context, id int64, columns []string, values []any) error
}

// Engine validates raw measurement payloads and applies them through
// the credential store.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// SaveMeasurements parses raw fields and, if anything survives the
// allow-list, issues exactly one partial update. Returns the number of
// fields written; zero with a nil error means the payload contained
// nothing recognizable, which is not a client error.
func (e *Engine) SaveMeasurements(ctx context.Context, userID int64, raw map[string]json.RawMessage) (int, error) {
	u, err := ParseUpdate(raw)
	if err != nil {
		return 0, err
	}
	if u.Empty() {
		return 0, nil
	}

	if err := e.store.ApplyPartialUpdate(ctx, userID, u.Columns(), u.Values()); err != nil {
		return 0, err
	}

	return u.Len(), nil
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

func coerceNumber(raw json.RawMessage) (float64, error) {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	// Form inputs arrive as strings; accept "180" as 180.
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}

func coerceString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	// Tolerate non-string scalars the way a loose client might send
	// them, but still validate the resulting text.
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b), nil
	}
	return "", fmt.Errorf("value is not a scalar")
}
