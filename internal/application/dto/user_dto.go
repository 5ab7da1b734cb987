package dto

import "time"

// RegisterRequest alta de un usuario del panel.
type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	NombreCompleto string `json:"nombre_completo"`
	Rol            string `json:"rol"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse representación API de un usuario (sin hash).
type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	NombreCompleto string    `json:"nombre_completo"`
	Rol            string    `json:"rol"`
	Estado         string    `json:"estado"`
	CreadoEn       time.Time `json:"creado_en"`
}

// LoginResponse token emitido más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
