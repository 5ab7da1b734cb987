package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/printops-api/internal/domain"
	"github.com/jhoicas/printops-api/internal/domain/entity"
	"github.com/jhoicas/printops-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un cliente nuevo y deja el ID generado en la entidad.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (nombre_especifico, ruc, telefono, direccion, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_cliente`
	err := r.q.QueryRow(ctx, query,
		c.NombreEspecifico, c.RUC, c.Telefono, c.Direccion, c.CreadoEn, c.ActualizadoEn,
	).Scan(&c.IDCliente)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	query := `
		SELECT id_cliente, nombre_especifico, ruc, telefono, direccion, creado_en, actualizado_en
		FROM clientes WHERE id_cliente = $1`
	var c entity.Cliente
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.IDCliente, &c.NombreEspecifico, &c.RUC, &c.Telefono, &c.Direccion, &c.CreadoEn, &c.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// Update actualiza los datos del cliente.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre_especifico = $2, ruc = $3, telefono = $4, direccion = $5, actualizado_en = $6
		WHERE id_cliente = $1`
	_, err := r.q.Exec(ctx, query,
		c.IDCliente, c.NombreEspecifico, c.RUC, c.Telefono, c.Direccion, c.ActualizadoEn,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// List lista todos los clientes ordenados por nombre.
func (r *ClienteRepo) List(ctx context.Context) ([]*entity.Cliente, error) {
	query := `
		SELECT id_cliente, nombre_especifico, ruc, telefono, direccion, creado_en, actualizado_en
		FROM clientes ORDER BY nombre_especifico`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.IDCliente, &c.NombreEspecifico, &c.RUC, &c.Telefono, &c.Direccion, &c.CreadoEn, &c.ActualizadoEn); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente por ID.
func (r *ClienteRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id_cliente = $1`, id); err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
