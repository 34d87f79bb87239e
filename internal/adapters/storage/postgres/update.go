package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/Dev-Icaro/pet-impacta/internal/domain/patch"
	"github.com/Dev-Icaro/pet-impacta/internal/mapcase"
)

// buildPartialUpdate arma el UPDATE dinámico a partir de la directiva:
// exactamente los campos presentes se vuelven cláusulas SET, más el
// refresco de updated_at; el predicado de identidad siempre va y la
// sentencia nunca toca más de una fila. Los nombres de campo llegan en
// camelCase y se traducen a columna snake_case recién acá, en el borde
// de almacenamiento.
func buildPartialUpdate(table string, d *patch.Directive, id string, updatedAt time.Time) (string, []any) {
	var sb strings.Builder
	sb.WriteString("UPDATE " + table + " SET ")

	args := make([]any, 0, len(d.Assignments())+2)
	argN := 1

	for _, a := range d.Assignments() {
		if argN > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s = $%d", mapcase.ToSnakeCase(a.Field), argN))
		args = append(args, a.Value)
		argN++
	}

	sb.WriteString(fmt.Sprintf(", updated_at = $%d", argN))
	args = append(args, updatedAt)
	argN++

	sb.WriteString(fmt.Sprintf(" WHERE id = $%d", argN))
	args = append(args, id)

	return sb.String(), args
}
