package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"TODO", TaskStatusTodo, true},
		{"TO-DO", TaskStatusTodo, true},
		{"to-do", TaskStatusTodo, true},
		{" in_progress ", TaskStatusInProgress, true},
		{"DONE", TaskStatusDone, true},
		{"done", TaskStatusDone, true},
		{"ARCHIVED", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeStatus(tc.in)
		require.Equal(t, tc.ok, ok, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
