package utils

import (
	"testing"
	"time"
)

func TestGetCookie(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		key       string
		wantValue string
		wantOK    bool
	}{
		{"second cookie", "a=1; b=2", "b", "2", true},
		{"first cookie", "a=1; b=2", "a", "1", true},
		{"missing cookie", "a=1; b=2", "c", "", false},
		{"no cookies", "", "a", "", false},
		{"empty name", "a=1", "", "", false},
		{"prefix is not a match", "csrftoken2=x; csrftoken=abc", "csrftoken", "abc", true},
		{"first match wins", "k=1; k=2", "k", "1", true},
		{"percent decoded", "msg=hello%20world%21", "msg", "hello world!", true},
		{"plus kept", "q=a+b", "q", "a+b", true},
		{"bad escape returned raw", "bad=%zz", "bad", "%zz", true},
		{"invalid utf-8 returned raw", "bin=%FF%FE", "bin", "%FF%FE", true},
		{"utf-8 decoded", "name=Kai%27Sa%20%E2%9C%93", "name", "Kai'Sa ✓", true},
		{"empty value", "a=; b=2", "a", "", true},
		{"value with equals", "token=abc=def", "token", "abc=def", true},
		{"no spaces", "a=1;b=2", "b", "2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := GetCookie(tt.header, tt.key)
			if ok != tt.wantOK {
				t.Fatalf("GetCookie(%q, %q) ok = %v, want %v", tt.header, tt.key, ok, tt.wantOK)
			}
			if value != tt.wantValue {
				t.Errorf("GetCookie(%q, %q) = %q, want %q", tt.header, tt.key, value, tt.wantValue)
			}
		})
	}
}

// withLocal 临时替换本地时区
func withLocal(t *testing.T, loc *time.Location) {
	t.Helper()
	original := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = original })
}

func TestFormatDate(t *testing.T) {
	withLocal(t, time.UTC)

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"2024-05-01T10:00:00.000Z", "5/1/2024", false},
		{"2026-10-19T23:59:59+03:00", "10/19/2026", false},
		{"2025-12-31", "12/31/2025", false},
		{"2025-01-02 08:00:00", "1/2/2025", false},
		{"yesterday", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := FormatDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDateUsesLocalZone(t *testing.T) {
	tests := []struct {
		zone  *time.Location
		input string
		want  string
	}{
		{time.FixedZone("UTC+3", 3*3600), "2024-05-01T23:30:00Z", "5/2/2024"},
		{time.FixedZone("UTC-5", -5*3600), "2024-05-01T02:00:00Z", "4/30/2024"},
		{time.FixedZone("UTC-5", -5*3600), "2026-10-19T12:00:00-05:00", "10/19/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.zone.String()+" "+tt.input, func(t *testing.T) {
			withLocal(t, tt.zone)
			got, err := FormatDate(tt.input)
			if err != nil {
				t.Fatalf("FormatDate(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("FormatDate(%q) in %s = %q, want %q", tt.input, tt.zone, got, tt.want)
			}
		})
	}
}
