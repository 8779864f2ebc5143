package models

import (
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in      string
		want    TaskStatus
		wantErr bool
	}{
		{"TODO", TaskStatusTodo, false},
		{"todo", TaskStatusTodo, false},
		{"  In_Progress ", TaskStatusInProgress, false},
		{"DONE", TaskStatusDone, false},
		{"", "", true},
		{"FINISHED", "", true},
		{"IN-PROGRESS", "", true},
	}
	for _, c := range cases {
		got, err := ParseStatus(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q): expected error, got %q", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStatus(%q): %v", c.in, err)
		} else if got != c.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	cases := []struct {
		in      string
		want    TaskPriority
		wantErr bool
	}{
		{"LOW", TaskPriorityLow, false},
		{"medium", TaskPriorityMedium, false},
		{"HIGH", TaskPriorityHigh, false},
		{"", "", true},
		{"URGENT", "", true},
	}
	for _, c := range cases {
		got, err := ParsePriority(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParsePriority(%q): expected error, got %q", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q): %v", c.in, err)
		} else if got != c.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseDueDate(t *testing.T) {
	got, err := ParseDueDate("2026-03-15")
	if err != nil {
		t.Fatalf("ParseDueDate: %v", err)
	}
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDueDate = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "15-03-2026", "2026-03-15T10:00:00Z", "2026-13-40"} {
		if _, err := ParseDueDate(bad); err == nil {
			t.Errorf("ParseDueDate(%q): expected error", bad)
		}
	}
}
