package validators

import "strings"

// NormalizePhone reduz o telefone a dígitos (mantendo o + internacional)
// para que o mesmo cliente não vire dois registros por causa de máscara.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid aceita telefones BR com ou sem DDI (8 a 13 dígitos)
func IsPhoneValid(phone string) bool {
	digits := strings.TrimPrefix(NormalizePhone(phone), "+")
	return len(digits) >= 8 && len(digits) <= 13
}
