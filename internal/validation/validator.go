// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package validation

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Validator returns the process-wide validator instance with custom
// rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails for empty tag names.
		_ = validate.RegisterValidation("bbox", validateBBox)
		_ = validate.RegisterValidation("yearmonth", validateYearMonth)
	})
	return validate
}

// validateBBox accepts "west,south,east,north" in EPSG:4326 degrees with
// west < east and south < north.
func validateBBox(fl validator.FieldLevel) bool {
	_, err := ParseBBox(fl.Field().String())
	return err == nil
}

// validateYearMonth accepts "YYYY-MM".
func validateYearMonth(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 7 || s[4] != '-' {
		return false
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil || year < 1970 || year > 9999 {
		return false
	}
	month, err := strconv.Atoi(s[5:])
	return err == nil && month >= 1 && month <= 12
}

// BBox is a geographic bounding box in EPSG:4326 degrees.
type BBox struct {
	West  float64
	South float64
	East  float64
	North float64
}

// String renders the box back in "west,south,east,north" order.
func (b BBox) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.West, b.South, b.East, b.North)
}

// ParseBBox parses "west,south,east,north" and checks coordinate ranges
// and ordering.
func ParseBBox(s string) (BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BBox{}, fmt.Errorf("bbox must have 4 comma-separated values, got %d", len(parts))
	}

	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BBox{}, fmt.Errorf("bbox component %d is not a number: %q", i+1, p)
		}
		vals[i] = v
	}

	b := BBox{West: vals[0], South: vals[1], East: vals[2], North: vals[3]}
	if b.West < -180 || b.West > 180 || b.East < -180 || b.East > 180 {
		return BBox{}, fmt.Errorf("bbox longitudes must be within [-180, 180]")
	}
	if b.South < -90 || b.South > 90 || b.North < -90 || b.North > 90 {
		return BBox{}, fmt.Errorf("bbox latitudes must be within [-90, 90]")
	}
	if b.West >= b.East {
		return BBox{}, fmt.Errorf("bbox west (%g) must be less than east (%g)", b.West, b.East)
	}
	if b.South >= b.North {
		return BBox{}, fmt.Errorf("bbox south (%g) must be less than north (%g)", b.South, b.North)
	}
	return b, nil
}

// FormatErrors converts validator errors into a single operator-readable
// message listing each failed field and rule.
func FormatErrors(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("field %s failed rule %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
