// Package patch modela la directiva de update parcial: solo los campos
// presentes en el request se vuelven asignaciones. "Ausente" y "vacío"
// son distinguibles; la presencia (no la verdad del valor) gobierna.
package patch

// Assignment es un par (campo API en camelCase, valor nuevo).
type Assignment struct {
	Field string
	Value any
}

// Directive es la lista ordenada de asignaciones validadas, lista para
// convertirse en cláusulas SET. El orden es estable pero no afecta el
// resultado (last-write-wins por campo).
type Directive struct {
	assignments []Assignment
}

// Set agrega una asignación. Un mismo campo seteado dos veces conserva
// la última entrada al aplicarse.
func (d *Directive) Set(field string, value any) {
	d.assignments = append(d.assignments, Assignment{Field: field, Value: value})
}

// Empty reporta si no hay nada que actualizar (update no-op).
func (d *Directive) Empty() bool {
	return len(d.assignments) == 0
}

// Assignments devuelve los pares en orden de inserción.
func (d *Directive) Assignments() []Assignment {
	return d.assignments
}
