package eduemail

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		wantValid bool
		wantMsg   string
	}{
		// Stage 1: empty input
		{"empty string", "", false, MsgEmpty},

		// Stage 2: general shape
		{"no at sign", "not-an-email", false, MsgInvalidFormat},
		{"missing local part", "@school.edu", false, MsgInvalidFormat},
		{"missing domain", "student@", false, MsgInvalidFormat},
		{"missing tld", "student@school", false, MsgInvalidFormat},
		{"one-letter tld", "student@school.e", false, MsgInvalidFormat},
		{"space in local part", "stu dent@school.edu", false, MsgInvalidFormat},
		{"trailing whitespace", "student@school.edu ", false, MsgInvalidFormat},

		// Stage 3: .edu suffix is a separate, more specific failure
		{"valid shape but .com", "student@school.com", false, MsgNotEdu},
		{"valid shape but .org", "alice@nonprofit.org", false, MsgNotEdu},
		{"edu not at end", "student@edu.school.com", false, MsgNotEdu},
		{"longer tld starting with edu", "a@b.education", false, MsgNotEdu},

		// Success
		{"plain edu address", "student@university.edu", true, MsgValid},
		{"uppercase suffix", "STUDENT@SCHOOL.EDU", true, MsgValid},
		{"mixed case suffix", "student@school.Edu", true, MsgValid},
		{"subdomain", "grad.student+lab@cs.state.edu", true, MsgValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.candidate)
			if got.Valid != tt.wantValid {
				t.Errorf("Validate(%q).Valid = %v, want %v", tt.candidate, got.Valid, tt.wantValid)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Validate(%q).Message = %q, want %q", tt.candidate, got.Message, tt.wantMsg)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("student@university.edu") {
		t.Error("IsValid should accept a valid .edu address")
	}
	if IsValid("student@school.com") {
		t.Error("IsValid should reject a non-.edu address")
	}
}
