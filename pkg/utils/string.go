package utils

// TruncateString corta s no limite de caracteres informado, respeitando
// os limites de runas.
func TruncateString(s string, limit int) string {
	if limit <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
