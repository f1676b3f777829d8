package validators

import "strings"

// NormalizeCPF remove pontuação e devolve os 11 dígitos. ok é false
// quando sobra outra quantidade de dígitos.
func NormalizeCPF(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == ' ' || r == '/':
		default:
			return "", false
		}
	}
	cpf := b.String()
	return cpf, len(cpf) == 11
}

// IsCPFValid confere os dois dígitos verificadores de um CPF já normalizado.
func IsCPFValid(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return checkDigit(cpf[:9]) == int(cpf[9]-'0') &&
		checkDigit(cpf[:10]) == int(cpf[10]-'0')
}

func checkDigit(digits string) int {
	sum := 0
	weight := len(digits) + 1
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weight
		weight--
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}

// CompleteCPF acrescenta os dígitos verificadores a uma base de 9 dígitos.
func CompleteCPF(base string) string {
	withFirst := base + string(rune('0'+checkDigit(base)))
	return withFirst + string(rune('0'+checkDigit(withFirst)))
}
