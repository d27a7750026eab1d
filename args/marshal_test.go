package args

import (
	"errors"
	"math"
	"testing"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		suffix string
		want   Kind
		ok     bool
	}{
		{"", KindBoolean, true},
		{"*", KindString, true},
		{"#", KindInteger, true},
		{"##", KindDouble, true},
		{"###", 0, false},
		{"**", 0, false},
		{"#*", 0, false},
		{" ", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.suffix)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, %v",
				tt.suffix, got, ok, tt.want, tt.ok)
		}

		if ok && got.Suffix() != tt.suffix {
			t.Errorf("%v.Suffix() = %q, want %q", got, got.Suffix(), tt.suffix)
		}
	}
}

func TestValue_ZeroValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want any
	}{
		{KindBoolean, false},
		{KindString, ""},
		{KindInteger, 0},
		{KindDouble, 0.0},
	}

	for _, tt := range tests {
		if got := newValue(tt.kind).Any(); got != tt.want {
			t.Errorf("%v zero value = %#v, want %#v", tt.kind, got, tt.want)
		}
	}
}

func TestValue_Consume(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    Kind
		tokens  []string
		want    any
		wantErr *Error
		read    int
	}{
		{"boolean reads nothing", KindBoolean, []string{"next"}, true, nil, 0},
		{"boolean on empty stream", KindBoolean, nil, true, nil, 0},
		{"string verbatim", KindString, []string{" spaced "}, " spaced ", nil, 1},
		{"string empty token", KindString, []string{""}, "", nil, 1},
		{"string exhausted", KindString, nil, "", ErrMissingString, 0},
		{"integer", KindInteger, []string{"124"}, 124, nil, 1},
		{"integer signed", KindInteger, []string{"+7"}, 7, nil, 1},
		{"integer negative", KindInteger, []string{"-7"}, -7, nil, 1},
		{"integer invalid", KindInteger, []string{"0x10"}, 0, ErrInvalidInteger, 1},
		{"integer exhausted", KindInteger, nil, 0, ErrMissingInteger, 0},
		{"double", KindDouble, []string{"75.45"}, 75.45, nil, 1},
		{"double exponent", KindDouble, []string{"1e3"}, 1000.0, nil, 1},
		{"double from integer", KindDouble, []string{"3"}, 3.0, nil, 1},
		{"double invalid", KindDouble, []string{"1,5"}, 0.0, ErrInvalidDouble, 1},
		{"double leading dot", KindDouble, []string{"-.5"}, -0.5, nil, 1},
		{"double trailing dot", KindDouble, []string{"2."}, 2.0, nil, 1},
		{"double digit separator", KindDouble, []string{"1_0"}, 0.0, ErrInvalidDouble, 1},
		{"double hex", KindDouble, []string{"0x10p0"}, 0.0, ErrInvalidDouble, 1},
		{"double short infinity", KindDouble, []string{"Inf"}, 0.0, ErrInvalidDouble, 1},
		{"double lowercase infinity", KindDouble, []string{"infinity"}, 0.0, ErrInvalidDouble, 1},
		{"double lowercase nan", KindDouble, []string{"nan"}, 0.0, ErrInvalidDouble, 1},
		{"double bare exponent", KindDouble, []string{"e5"}, 0.0, ErrInvalidDouble, 1},
		{"double exhausted", KindDouble, nil, 0.0, ErrMissingDouble, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := newValue(tt.kind)
			s := newStream(tt.tokens...)

			err := v.consume(s)

			switch {
			case tt.wantErr == nil && err != nil:
				t.Fatalf("unexpected error: %v", err)
			case tt.wantErr != nil && err == nil:
				t.Fatalf("expected %v, got success", tt.wantErr.Code())
			case tt.wantErr != nil && !errors.Is(err, tt.wantErr):
				t.Fatalf("error = %v, want %v", err, tt.wantErr.Code())
			}

			if got := v.Any(); got != tt.want {
				t.Errorf("value = %#v, want %#v", got, tt.want)
			}
			if s.Pos() != tt.read {
				t.Errorf("tokens read = %d, want %d", s.Pos(), tt.read)
			}
		})
	}
}

func TestValue_ConsumeSpecialDoubles(t *testing.T) {
	t.Parallel()

	v := newValue(KindDouble)
	if err := v.consume(newStream("NaN")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(v.double) {
		t.Errorf("value = %v, want NaN", v.double)
	}

	if err := v.consume(newStream("-Infinity")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(v.double, -1) {
		t.Errorf("value = %v, want -Inf", v.double)
	}

	if err := v.consume(newStream("+Infinity")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(v.double, 1) {
		t.Errorf("value = %v, want +Inf", v.double)
	}
}

func TestValue_ConsumeFailureKeepsPreviousValue(t *testing.T) {
	t.Parallel()

	v := newValue(KindInteger)
	if err := v.consume(newStream("5")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := v.consume(newStream("five")); err == nil {
		t.Fatal("expected error")
	}

	if v.integer != 5 {
		t.Errorf("value = %d after failed consume, want 5", v.integer)
	}
}
