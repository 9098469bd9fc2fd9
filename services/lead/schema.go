package lead

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"cleaningco/models"

	"github.com/go-playground/validator/v10"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
)

type leadField struct {
	name     string
	kind     fieldKind
	required bool
}

// leadFields is the declaration order of models.Lead; violations follow it.
var leadFields = []leadField{
	{name: "name", kind: kindString, required: true},
	{name: "email", kind: kindString, required: true},
	{name: "phone", kind: kindString, required: true},
	{name: "address", kind: kindString, required: true},
	{name: "city", kind: kindString},
	{name: "service_type", kind: kindString, required: true},
	{name: "bedrooms", kind: kindInt},
	{name: "bathrooms", kind: kindInt},
	{name: "preferred_date", kind: kindString},
	{name: "message", kind: kindString},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("service_type", func(fl validator.FieldLevel) bool {
		return models.ServiceType(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
	return v
}

// DecodeLead parses and validates a JSON request body. On failure the error
// is a *ValidationError listing every violated constraint.
func DecodeLead(body []byte) (*models.Lead, error) {
	if len(bytes.TrimSpace(body)) == 0 || !json.Valid(body) {
		return nil, &ValidationError{Violations: []Violation{{
			Loc:  []string{"body"},
			Msg:  "JSON decode error",
			Type: "json_invalid",
		}}}
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, &ValidationError{Violations: []Violation{{
			Loc:  []string{"body"},
			Msg:  "Input should be a valid dictionary or object to extract fields from",
			Type: "model_attributes_type",
		}}}
	}

	var l models.Lead
	found := make(map[string]Violation)
	for _, f := range leadFields {
		msg, ok := raw[f.name]
		if !ok || string(bytes.TrimSpace(msg)) == "null" {
			if f.required {
				found[f.name] = violation(f.name, "Field required", "missing")
			}
			continue
		}
		if v, bad := assign(&l, f, msg); bad {
			found[f.name] = v
		}
	}

	if err := validate.Struct(&l); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		for _, fe := range verrs {
			if _, seen := found[fe.Field()]; seen {
				continue
			}
			found[fe.Field()] = constraintViolation(fe)
		}
	}

	if len(found) > 0 {
		out := make([]Violation, 0, len(found))
		for _, f := range leadFields {
			if v, ok := found[f.name]; ok {
				out = append(out, v)
			}
		}
		return nil, &ValidationError{Violations: out}
	}
	return &l, nil
}

// assign decodes one field into l, reporting a type violation on mismatch.
func assign(l *models.Lead, f leadField, msg json.RawMessage) (Violation, bool) {
	if f.kind == kindInt {
		n, v, bad := decodeInt(f.name, msg)
		if bad {
			return v, true
		}
		// Clamped values are still out of any field's range, so the
		// validator reports them as range violations.
		i := int(max(min(n, math.MaxInt32), math.MinInt32))
		switch f.name {
		case "bedrooms":
			l.Bedrooms = &i
		case "bathrooms":
			l.Bathrooms = &i
		}
		return Violation{}, false
	}

	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return violation(f.name, "Input should be a valid string", "string_type"), true
	}
	switch f.name {
	case "name":
		l.Name = s
	case "email":
		l.Email = s
	case "phone":
		l.Phone = s
	case "address":
		l.Address = s
	case "city":
		l.City = &s
	case "service_type":
		l.ServiceType = models.ServiceType(s)
	case "preferred_date":
		l.PreferredDate = &s
	case "message":
		l.Message = &s
	}
	return Violation{}, false
}

// decodeInt accepts whole JSON numbers and strings holding an integer.
func decodeInt(field string, msg json.RawMessage) (float64, Violation, bool) {
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			var nerr *strconv.NumError
			if errors.As(err, &nerr) && errors.Is(nerr.Err, strconv.ErrRange) {
				// Sign survives in the text; clamp like an oversized number.
				if strings.HasPrefix(strings.TrimSpace(s), "-") {
					return math.MinInt64, Violation{}, false
				}
				return math.MaxInt64, Violation{}, false
			}
			return 0, violation(field, "Input should be a valid integer, unable to parse string as an integer", "int_parsing"), true
		}
		return float64(i), Violation{}, false
	}

	var n float64
	if err := json.Unmarshal(msg, &n); err != nil {
		return 0, violation(field, "Input should be a valid integer", "int_type"), true
	}
	if n != math.Trunc(n) {
		return 0, violation(field, "Input should be a valid integer, got a number with a fractional part", "int_from_float"), true
	}
	return n, Violation{}, false
}

func constraintViolation(fe validator.FieldError) Violation {
	name := fe.Field()
	switch fe.Tag() {
	case "min":
		if fe.Kind() == reflect.String {
			return violation(name, fmt.Sprintf("String should have at least %s characters", fe.Param()), "string_too_short")
		}
		return violation(name, "Input should be greater than or equal to "+fe.Param(), "greater_than_equal")
	case "max":
		return violation(name, "Input should be less than or equal to "+fe.Param(), "less_than_equal")
	case "email":
		return violation(name, "value is not a valid email address", "value_error")
	case "service_type":
		return violation(name, "Input should be "+serviceTypeChoices(), "literal_error")
	default:
		return violation(name, fmt.Sprintf("failed on the '%s' constraint", fe.Tag()), "value_error")
	}
}

func serviceTypeChoices() string {
	quoted := make([]string, len(models.ServiceTypes))
	for i, t := range models.ServiceTypes {
		quoted[i] = "'" + string(t) + "'"
	}
	last := len(quoted) - 1
	return strings.Join(quoted[:last], ", ") + " or " + quoted[last]
}

func violation(field, msg, typ string) Violation {
	return Violation{Loc: []string{"body", field}, Msg: msg, Type: typ}
}
