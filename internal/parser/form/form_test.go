// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package form

import (
	"net/url"
	"reflect"
	"testing"
)

type TestStruct struct {
	StringField  string  `form:"string_field"`
	BoolField    bool    `form:"bool_field"`
	IntField     int     `form:"int_field"`
	FloatField   float64 `form:"float_field"`
	IgnoredField string  `form:"-"`
	Untagged     string
}

func TestUnmarshal(t *testing.T) {
	testCases := []struct {
		name        string
		input       url.Values
		expected    TestStruct
		expectedErr bool
	}{
		{
			name: "Valid input data",
			input: url.Values{
				"string_field": {"test_string"},
				"bool_field":   {"true"},
				"int_field":    {"42"},
				"float_field":  {"3.14"},
			},
			expected: TestStruct{
				StringField: "test_string",
				BoolField:   true,
				IntField:    42,
				FloatField:  3.14,
			},
		},
		{
			name:     "Empty input",
			input:    url.Values{},
			expected: TestStruct{},
		},
		{
			name: "Missing fields",
			input: url.Values{
				"string_field": {"test_string"},
			},
			expected: TestStruct{
				StringField: "test_string",
			},
		},
		{
			name: "Takes only the first value",
			input: url.Values{
				"int_field": {"7", "8"},
			},
			expected: TestStruct{IntField: 7},
		},
		{
			name: "Dash tag is never populated",
			input: url.Values{
				"-": {"sneaky"},
			},
			expected: TestStruct{},
		},
		{
			name: "Invalid int",
			input: url.Values{
				"int_field": {"not-a-number"},
			},
			expectedErr: true,
		},
		{
			name: "Invalid float",
			input: url.Values{
				"float_field": {"wat"},
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got TestStruct
			err := Unmarshal(tc.input, &got)
			if (err != nil) != tc.expectedErr {
				t.Fatalf("Unmarshal() error = %v, expectedErr %v", err, tc.expectedErr)
			}
			if err != nil {
				return
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Unmarshal() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestUnmarshal_InvalidTarget(t *testing.T) {
	if err := Unmarshal(url.Values{}, nil); err == nil {
		t.Error("expected error for nil target")
	}
	var s TestStruct
	if err := Unmarshal(url.Values{}, s); err == nil {
		t.Error("expected error for non-pointer target")
	}
}
