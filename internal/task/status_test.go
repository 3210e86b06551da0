package task

import "testing"

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusToDo, "to do"},
		{StatusInProgress, "in progress"},
		{StatusDone, "done"},
		{Status(7), "status(7)"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}

func TestStatusNext(t *testing.T) {
	tests := []struct {
		status Status
		want   Status
	}{
		{StatusToDo, StatusInProgress},
		{StatusInProgress, StatusDone},
		{StatusDone, StatusToDo},
	}

	for _, tt := range tests {
		if got := tt.status.Next(); got != tt.want {
			t.Errorf("%v.Next() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestStatusNext_NeverInvalid(t *testing.T) {
	s := StatusToDo
	for i := 0; i < 10; i++ {
		s = s.Next()
		if !s.IsValid() {
			t.Fatalf("Next() produced invalid status %d", int(s))
		}
	}
}

func TestStatusValues(t *testing.T) {
	// The encodings are part of the schema contract.
	if int(StatusToDo) != 0 || int(StatusInProgress) != 1 || int(StatusDone) != 2 {
		t.Errorf("status encodings = %d/%d/%d, want 0/1/2",
			int(StatusToDo), int(StatusInProgress), int(StatusDone))
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"todo", StatusToDo, false},
		{"to do", StatusToDo, false},
		{"To-Do", StatusToDo, false},
		{"doing", StatusInProgress, false},
		{"in progress", StatusInProgress, false},
		{"IN-PROGRESS", StatusInProgress, false},
		{"done", StatusDone, false},
		{"completed", StatusDone, false},
		{" done ", StatusDone, false},
		{"banana", StatusToDo, true},
		{"", StatusToDo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
