package entity

import "time"

// Roles válidos para Usuario. Cada usuario tiene exactamente un rol; el
// middleware RBAC decide el acceso por grupo de rutas sin consultar la DB.
const (
	RolMaster        = "master"
	RolEspecialista  = "especialista"
	RolOperador      = "operador"
	RolEDistribucion = "edistribucion"
	RolESuministros  = "esuministros"
	RolADistribucion = "adistribucion"
	RolAdm           = "adm"
)

// Usuario usuario interno del panel de operaciones.
type Usuario struct {
	ID             string // UUID
	Email          string
	PasswordHash   string // bcrypt, nunca plano después de persistir
	NombreCompleto string
	Rol            string
	Estado         string // active, inactive
	CreadoEn       time.Time
	ActualizadoEn  time.Time
}
