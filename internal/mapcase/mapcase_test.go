package mapcase

import (
	"reflect"
	"testing"
)

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"petId":           "pet_id",
		"veterinarianId":  "veterinarian_id",
		"appointmentDate": "appointment_date",
		"ownerName":       "owner_name",
		"name":            "name",
		"":                "",
	}
	for in, want := range cases {
		if got := ToSnakeCase(in); got != want {
			t.Fatalf("ToSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToCamelCase(t *testing.T) {
	cases := map[string]string{
		"pet_id":           "petId",
		"veterinarian_id":  "veterinarianId",
		"appointment_date": "appointmentDate",
		"owner_name":       "ownerName",
		"name":             "name",
		"":                 "",
	}
	for in, want := range cases {
		if got := ToCamelCase(in); got != want {
			t.Fatalf("ToCamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSnakeKeys_Recursive(t *testing.T) {
	in := map[string]any{
		"petId": "p1",
		"owner": map[string]any{
			"ownerName":  "Ana",
			"ownerEmail": "ana@example.com",
		},
		"visits": []any{
			map[string]any{"appointmentDate": "2026-03-15"},
		},
	}

	want := map[string]any{
		"pet_id": "p1",
		"owner": map[string]any{
			"owner_name":  "Ana",
			"owner_email": "ana@example.com",
		},
		"visits": []any{
			map[string]any{"appointment_date": "2026-03-15"},
		},
	}

	if got := SnakeKeys(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("SnakeKeys mismatch:\n got %#v\nwant %#v", got, want)
	}
}

func TestCamelKeys_RoundTrip(t *testing.T) {
	in := map[string]any{
		"petId":          "p1",
		"serviceId":      "s1",
		"veterinarianId": "v1",
		"nested":         map[string]any{"createdAt": "x"},
	}

	got := CamelKeys(SnakeKeys(in))
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, in)
	}
}
