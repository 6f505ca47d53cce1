package assert

import (
	"errors"
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	if reflect.DeepEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	if condition {
		return
	}

	t.Errorf("condition is false")

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	if !condition {
		return
	}

	t.Errorf("condition is true")

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// NoError errors if err is non-nil.
func NoError(t *testing.T, err error) {
	if err == nil {
		return
	}

	t.Errorf("unexpected error: %v", err)
	t.FailNow()
}

// ErrorAs errors if err is nil, or does not match the given target in the
// sense of errors.As.
func ErrorAs(t *testing.T, err error, target any) {
	if err == nil {
		t.Errorf("expected an error")
		t.FailNow()
	} else if !errors.As(err, target) {
		t.Errorf("unexpected error type: %v", err)
		t.FailNow()
	}
}
