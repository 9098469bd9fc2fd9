package lead

import (
	"errors"
	"reflect"
	"testing"

	"cleaningco/models"
)

func validBody() string {
	return `{"name":"Jane Doe","email":"jane@example.com","phone":"555-0100","address":"1 Main St","service_type":"Deep Cleaning"}`
}

func violationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	out := make(map[string]string, len(verr.Violations))
	for _, v := range verr.Violations {
		out[v.Loc[len(v.Loc)-1]] = v.Type
	}
	return out
}

func TestDecodeLeadValid(t *testing.T) {
	l, err := DecodeLead([]byte(validBody()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Name != "Jane Doe" || l.Email != "jane@example.com" || l.ServiceType != models.ServiceDeep {
		t.Fatalf("unexpected lead: %+v", l)
	}
	if l.City != nil || l.Bedrooms != nil || l.Message != nil {
		t.Fatalf("optional fields should stay nil: %+v", l)
	}
}

func TestDecodeLeadAllFields(t *testing.T) {
	body := `{"name":"Al","email":"al@example.com","phone":"1","address":"2 Side St","city":"Springfield",
		"service_type":"Move In/Out","bedrooms":0,"bathrooms":10,"preferred_date":"2025-01-31","message":"gate code 42","extra":"ignored"}`
	l, err := DecodeLead([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.City == nil || *l.City != "Springfield" {
		t.Fatalf("city: %v", l.City)
	}
	if l.Bedrooms == nil || *l.Bedrooms != 0 || l.Bathrooms == nil || *l.Bathrooms != 10 {
		t.Fatalf("rooms: %v %v", l.Bedrooms, l.Bathrooms)
	}
	if l.PreferredDate == nil || *l.PreferredDate != "2025-01-31" {
		t.Fatalf("preferred_date: %v", l.PreferredDate)
	}
}

func TestDecodeLeadIntegerForms(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{`3`, 3},
		{`3.0`, 3},
		{`"3"`, 3},
		{`" 4 "`, 4},
		{`"0"`, 0},
	}
	for _, tt := range tests {
		body := `{"name":"Jane","email":"j@example.com","phone":"1","address":"a","service_type":"Deep Cleaning","bedrooms":` + tt.raw + `}`
		l, err := DecodeLead([]byte(body))
		if err != nil {
			t.Fatalf("bedrooms=%s: unexpected error: %v", tt.raw, err)
		}
		if l.Bedrooms == nil || *l.Bedrooms != tt.want {
			t.Fatalf("bedrooms=%s: got %v, want %d", tt.raw, l.Bedrooms, tt.want)
		}
	}
}

func TestDecodeLeadEveryServiceType(t *testing.T) {
	for _, st := range models.ServiceTypes {
		body := `{"name":"Jane","email":"j@example.com","phone":"1","address":"a","service_type":"` + string(st) + `"}`
		if _, err := DecodeLead([]byte(body)); err != nil {
			t.Errorf("%s rejected: %v", st, err)
		}
	}
}

func TestDecodeLeadViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{
			name: "missing name",
			body: `{"email":"j@example.com","phone":"1","address":"a","service_type":"Deep Cleaning"}`,
			want: map[string]string{"name": "missing"},
		},
		{
			name: "null email",
			body: `{"name":"Jane","email":null,"phone":"1","address":"a","service_type":"Deep Cleaning"}`,
			want: map[string]string{"email": "missing"},
		},
		{
			name: "missing phone and address",
			body: `{"name":"Jane","email":"j@example.com","service_type":"Deep Cleaning"}`,
			want: map[string]string{"phone": "missing", "address": "missing"},
		},
		{
			name: "missing service type",
			body: `{"name":"Jane","email":"j@example.com","phone":"1","address":"a"}`,
			want: map[string]string{"service_type": "missing"},
		},
		{
			name: "unknown service type",
			body: `{"name":"Jane","email":"j@example.com","phone":"1","address":"a","service_type":"Window Washing"}`,
			want: map[string]string{"service_type": "literal_error"},
		},
		{
			name: "bedrooms too high",
			body: `{"name":"Jane","email":"j@example.com","phone":"1","address":"a","service_type":"Deep Cleaning","bedrooms":11}`,
			want: map[string]string{"bedrooms": "less_than_equal"},
		},
		{
			name: "bathrooms negative",
			body: `{"name":"Jane","email":"j@example.com","phone":"1","address":"a","service_type":"Deep Cleaning","bathrooms":-1}`,
			want: map[string]string{"bathrooms": "greater_than_equal"},
		},
		{
			name: "fractional bedrooms",
			body: `{"name":"Jane","email":"j@example.com","phone":"1","address":"a","service_type":"Deep Cleaning","bedrooms":2.5}`,
			want: map[string]string{"bedrooms": "int_from_float"},
		},
		{
			name: "bedrooms far above range",
			body: `{"name":"Jane","email":"j@example.com","phone":"1","address":"a","service_type":"Deep Cleaning","bedrooms":99999999999}`,
			want: map[string]string{"bedrooms": "less_than_equal"},
		},
		{
			name: "bathrooms far below range",
			body: `{"name":"Jane","email":"j@example.com","phone":"1","address":"a","service_type":"Deep Cleaning","bathrooms":-99999999999}`,
			want: map[string]string{"bathrooms": "greater_than_equal"},
		},
		{
			name: "oversized numeric string",
			body: `{"name":"Jane","email":"j@example.com","phone":"1","address":"a","service_type":"Deep Cleaning","bedrooms":"99999999999999999999"}`,
			want: map[string]string{"bedrooms": "less_than_equal"},
		},
		{
			name: "numeric string out of range",
			body: `{"name":"Jane","email":"j@example.com","phone":"1","address":"a","service_type":"Deep Cleaning","bedrooms":"11"}`,
			want: map[string]string{"bedrooms": "less_than_equal"},
		},
		{
			name: "boolean bedrooms",
			body: `{"name":"Jane","email":"j@example.com","phone":"1","address":"a","service_type":"Deep Cleaning","bedrooms":true}`,
			want: map[string]string{"bedrooms": "int_type"},
		},
		{
			name: "wrong types",
			body: `{"name":42,"email":"j@example.com","phone":true,"address":"a","service_type":"Deep Cleaning","bathrooms":"two"}`,
			want: map[string]string{"name": "string_type", "phone": "string_type", "bathrooms": "int_parsing"},
		},
		{
			name: "empty email",
			body: `{"name":"Jane","email":"","phone":"1","address":"a","service_type":"Deep Cleaning"}`,
			want: map[string]string{"email": "value_error"},
		},
		{
			name: "scenario from the form",
			body: `{"name":"J","email":"bad-email","service_type":"Unknown"}`,
			want: map[string]string{
				"name":         "string_too_short",
				"email":        "value_error",
				"phone":        "missing",
				"address":      "missing",
				"service_type": "literal_error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLead([]byte(tt.body))
			got := violationFields(t, err)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("violations = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeLeadViolationOrder(t *testing.T) {
	_, err := DecodeLead([]byte(`{"service_type":"Unknown","email":"bad","name":"J"}`))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	var order []string
	for _, v := range verr.Violations {
		if v.Loc[0] != "body" {
			t.Fatalf("loc should start with body: %v", v.Loc)
		}
		order = append(order, v.Loc[1])
	}
	want := []string{"name", "email", "phone", "address", "service_type"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestDecodeLeadMalformedBody(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"", "json_invalid"},
		{"{not json", "json_invalid"},
		{"[1,2]", "model_attributes_type"},
		{"null", "model_attributes_type"},
		{`"text"`, "model_attributes_type"},
	}
	for _, tt := range tests {
		_, err := DecodeLead([]byte(tt.body))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%q: expected *ValidationError, got %v", tt.body, err)
		}
		if len(verr.Violations) != 1 || verr.Violations[0].Type != tt.want {
			t.Fatalf("%q: violations = %+v, want type %s", tt.body, verr.Violations, tt.want)
		}
	}
}
