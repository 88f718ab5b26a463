package mongo

import "testing"

func TestPasswordMeetsPolicy(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Strong1!", true},
		{"Aa1#", true},
		{"Weak1", false},      // no special symbol
		{"strong1!", false},   // no uppercase
		{"Strong!", false},    // no digit
		{"STRONG1!", true},    // no lowercase required
		{"", false},
		{"!!!!", false},
		{"Päss1€", true}, // non-ASCII symbol counts
	}

	for _, tc := range cases {
		if got := passwordMeetsPolicy(tc.password); got != tc.ok {
			t.Errorf("passwordMeetsPolicy(%q) = %v, want %v", tc.password, got, tc.ok)
		}
	}
}
