package main

import (
	"testing"
)

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error, want none, have %v", err)
	}
}

func assertStreamLen(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("unexpected stream entries, want %d, have %d", expected, actual)
	}
}

func assertEventValue(t *testing.T, values map[string]interface{}, key, expected string) {
	t.Helper()

	actual, ok := values[key].(string)
	if !ok {
		t.Errorf("missing %q in stream entry %v", key, values)
		return
	}

	if expected != actual {
		t.Errorf("unexpected %q, want %s, have %s", key, expected, actual)
	}
}
