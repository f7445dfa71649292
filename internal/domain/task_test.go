package domain

import "testing"

func TestValidStatus(t *testing.T) {
	valid := []TaskStatus{StatusTodo, StatusInProgress, StatusDone}
	for _, s := range valid {
		if !ValidStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}

	invalid := []TaskStatus{"", "todo", "DONE", "Blocked", "In progress"}
	for _, s := range invalid {
		if ValidStatus(s) {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}
