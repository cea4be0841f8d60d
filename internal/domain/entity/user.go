package entity

import "time"

// User usuario registrado en la base. La autenticación vive fuera de este
// servicio; aquí solo se necesita la fila para el join de movimientos
// (nombre + matrícula) y para el seed inicial.
type User struct {
	ID           string
	Name         string
	Email        string
	Matricula    *string
	PasswordHash string
	Role         string // "admin" | "operador"
	CreatedAt    time.Time
}
