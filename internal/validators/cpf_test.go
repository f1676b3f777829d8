package validators

import "testing"

func TestNormalizeCPF(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"529.982.247-25", "52998224725", true},
		{"52998224725", "52998224725", true},
		{" 529 982 247 25 ", "52998224725", true},
		{"5299822472", "5299822472", false},
		{"529.982.247-2x", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeCPF(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("NormalizeCPF(%q) = %q, %v", tt.in, got, ok)
		}
	}
}

func TestIsCPFValid(t *testing.T) {
	valid := []string{"52998224725", "11144477735"}
	for _, c := range valid {
		if !IsCPFValid(c) {
			t.Errorf("%s should be valid", c)
		}
	}

	invalid := []string{"52998224724", "11111111111", "123"}
	for _, c := range invalid {
		if IsCPFValid(c) {
			t.Errorf("%s should be invalid", c)
		}
	}
}

func TestCompleteCPF(t *testing.T) {
	if got := CompleteCPF("529982247"); got != "52998224725" {
		t.Errorf("got %s", got)
	}
	if !IsCPFValid(CompleteCPF("123456780")) {
		t.Error("completed CPF should validate")
	}
}
