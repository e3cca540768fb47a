package validation

import (
	"testing"
	"time"

	"github.com/blaisecz/sleep-stats/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int        { return &i }

func TestValidate(t *testing.T) {
	sleep := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)
	wake := sleep.Add(8 * time.Hour)

	tests := []struct {
		name        string
		input       interface{}
		wantField   string
		wantMessage string
	}{
		{
			name:  "valid session",
			input: &domain.CreateSleepSessionRequest{SleepTime: sleep, WakeTime: wake, Quality: intPtr(7), LocalTimezone: strPtr("Europe/Prague")},
		},
		{
			name:        "missing sleep time",
			input:       &domain.CreateSleepSessionRequest{WakeTime: wake},
			wantField:   "sleep_time",
			wantMessage: "is required",
		},
		{
			name:        "wake before sleep",
			input:       &domain.CreateSleepSessionRequest{SleepTime: wake, WakeTime: sleep},
			wantField:   "wake_time",
			wantMessage: "must be after sleep_time",
		},
		{
			name:        "quality above range",
			input:       &domain.CreateSleepSessionRequest{SleepTime: sleep, WakeTime: wake, Quality: intPtr(11)},
			wantField:   "quality",
			wantMessage: "must be at most 10",
		},
		{
			name:        "bad timezone",
			input:       &domain.CreateUserRequest{Timezone: "Mars/Olympus"},
			wantField:   "timezone",
			wantMessage: "must be a valid IANA timezone",
		},
		{
			name:        "notes too long",
			input:       &domain.UpdateSleepSessionRequest{Notes: strPtr(string(make([]byte, 1001)))},
			wantField:   "notes",
			wantMessage: "must be at most 1000 characters",
		},
		{
			name:        "feedback score below range",
			input:       &domain.NarrativeFeedbackRequest{TraceID: "abc", Score: -1},
			wantField:   "score",
			wantMessage: "must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.input)

			if tt.wantField == "" {
				if errs != nil {
					t.Fatalf("Validate() = %+v, want no errors", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %+v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
			if errs[0].Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", errs[0].Message, tt.wantMessage)
			}
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"SleepTime":     "sleep_time",
		"LocalTimezone": "local_timezone",
		"notes":         "notes",
	}
	for in, want := range cases {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
