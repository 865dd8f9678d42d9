package arabic

import "testing"

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want bool
	}{
		{"simple name", "محمد", true},
		{"phrase with spaces", "محمد رسول الله", true},
		{"leading and trailing whitespace", "  علي  ", true},
		{"with diacritics", "مُحَمَّد", true},
		{"presentation forms", "ﭑﹰ", true},
		{"empty", "", false},
		{"whitespace only", "   \t\n", false},
		{"latin text", "English", false},
		{"latin mixed with arabic", "محمدX", false},
		{"digits", "محمد123", false},
		{"punctuation", "محمد!", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Validate(tc.text); got != tc.want {
				t.Errorf("Validate(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want string
	}{
		{"plain text unchanged", "محمد", "محمد"},
		{"strips harakat", "مُحَمَّد", "محمد"},
		{"strips tatweel", "محـــمد", "محمد"},
		{"strips superscript alef", "الرحمٰن", "الرحمن"},
		{"collapses whitespace", "محمد   رسول\tالله", "محمد رسول الله"},
		{"trims", "  علي ", "علي"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tc.text); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{"مُحَمَّد", "محمد   رسول الله", "  فاطمة الزهراء  ", "محـــمد"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
