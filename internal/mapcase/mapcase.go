// Package mapcase convierte claves entre camelCase (API) y snake_case (storage).
// Es puro y recursivo sobre contenedores genéricos; nunca se usa dentro de la
// lógica de negocio, solo en el borde de almacenamiento.
package mapcase

import "strings"

// ToSnakeCase convierte "petId" -> "pet_id".
func ToSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToCamelCase convierte "pet_id" -> "petId".
func ToCamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upper := false
	for _, r := range s {
		if r == '_' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			b.WriteRune(r - 'a' + 'A')
			upper = false
			continue
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}

// SnakeKeys aplica ToSnakeCase a todas las claves, recursivamente
// (maps anidados y slices incluidos). Los valores escalares no se tocan.
func SnakeKeys(v any) any {
	return transcode(v, ToSnakeCase)
}

// CamelKeys aplica ToCamelCase a todas las claves, recursivamente.
func CamelKeys(v any) any {
	return transcode(v, ToCamelCase)
}

func transcode(v any, key func(string) string) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[key(k)] = transcode(val, key)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = transcode(val, key)
		}
		return out
	default:
		return v
	}
}
