package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	portsrepo "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/repositories"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/models"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils/mapping"
)

type PgxUnitRepository struct {
	BaseRepository
}

// newPgxUnitRepository creates a new repository for units of measure.
func newPgxUnitRepository(pool *pgxpool.Pool) portsrepo.UnitRepositoryFacade {
	return &PgxUnitRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitRepositoryFacade = (*PgxUnitRepository)(nil)

func (r *PgxUnitRepository) CreateUnit(ctx context.Context, unit domain.UnitOfMeasure) (int64, error) {
	m := mapping.ToModelUnitOfMeasure(unit)
	query := `
		INSERT INTO unidades_medida (nome, sigla, criado_em, criado_por, atualizado_em, atualizado_por)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING codigo;
	`
	var code int64
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.Abbreviation,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&code)
	if err != nil {
		return 0, translatePgError(err, "failed to insert unit")
	}
	return code, nil
}

func (r *PgxUnitRepository) UpdateUnit(ctx context.Context, unit domain.UnitOfMeasure) error {
	m := mapping.ToModelUnitOfMeasure(unit)
	query := `
		UPDATE unidades_medida SET nome = $2, sigla = $3, atualizado_em = $4, atualizado_por = $5
		WHERE codigo = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.Code, m.Name, m.Abbreviation, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update unit %d", m.Code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUnitRepository) DeleteUnit(ctx context.Context, code int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM unidades_medida WHERE codigo = $1;`, code)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to delete unit %d", code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUnitRepository) FindUnitByCode(ctx context.Context, code int64) (*domain.UnitOfMeasure, error) {
	query := `
		SELECT codigo, nome, sigla, criado_em, criado_por, atualizado_em, atualizado_por
		FROM unidades_medida WHERE codigo = $1;
	`
	var m models.UnitOfMeasure
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&m.Code, &m.Name, &m.Abbreviation,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find unit %d", code), err)
	}
	d := mapping.ToDomainUnitOfMeasure(m)
	return &d, nil
}

func (r *PgxUnitRepository) ListUnits(ctx context.Context) ([]domain.UnitOfMeasure, error) {
	query := `
		SELECT codigo, nome, sigla, criado_em, criado_por, atualizado_em, atualizado_por
		FROM unidades_medida ORDER BY nome;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query units", err)
	}
	defer rows.Close()

	out := []domain.UnitOfMeasure{}
	for rows.Next() {
		var m models.UnitOfMeasure
		if err := rows.Scan(
			&m.Code, &m.Name, &m.Abbreviation,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan unit row", err)
		}
		out = append(out, mapping.ToDomainUnitOfMeasure(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating unit rows", err)
	}
	return out, nil
}

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for the product master.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

func (r *PgxProductRepository) CreateProduct(ctx context.Context, product domain.Product) (int64, error) {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO produtos (descricao, codigo_unidade, preco_venda, estoque, ativo, criado_em, criado_por, atualizado_em, atualizado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING codigo;
	`
	var code int64
	err := r.Pool.QueryRow(ctx, query,
		m.Description, m.UnitCode, m.SalePrice, m.Stock, m.Active,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&code)
	if err != nil {
		return 0, translatePgError(err, "failed to insert product")
	}
	return code, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		UPDATE produtos SET descricao = $2, codigo_unidade = $3, preco_venda = $4, estoque = $5, ativo = $6,
			atualizado_em = $7, atualizado_por = $8
		WHERE codigo = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Code, m.Description, m.UnitCode, m.SalePrice, m.Stock, m.Active,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update product %d", m.Code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, code int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM produtos WHERE codigo = $1;`, code)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to delete product %d", code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProductRepository) FindProductByCode(ctx context.Context, code int64) (*domain.Product, error) {
	query := `
		SELECT codigo, descricao, codigo_unidade, preco_venda, estoque, ativo,
		       criado_em, criado_por, atualizado_em, atualizado_por
		FROM produtos WHERE codigo = $1;
	`
	var m models.Product
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&m.Code, &m.Description, &m.UnitCode, &m.SalePrice, &m.Stock, &m.Active,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find product %d", code), err)
	}
	d := mapping.ToDomainProduct(m)
	return &d, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT codigo, descricao, codigo_unidade, preco_venda, estoque, ativo,
		       criado_em, criado_por, atualizado_em, atualizado_por
		FROM produtos ORDER BY descricao;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products", err)
	}
	defer rows.Close()

	out := []domain.Product{}
	for rows.Next() {
		var m models.Product
		if err := rows.Scan(
			&m.Code, &m.Description, &m.UnitCode, &m.SalePrice, &m.Stock, &m.Active,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		out = append(out, mapping.ToDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}
	return out, nil
}

// ExistingProductCodes reports which of the given codes exist, in one round trip.
func (r *PgxProductRepository) ExistingProductCodes(ctx context.Context, codes []int64) (map[int64]bool, error) {
	existing := make(map[int64]bool, len(codes))
	if len(codes) == 0 {
		return existing, nil
	}

	rows, err := r.Pool.Query(ctx, `SELECT codigo FROM produtos WHERE codigo = ANY($1);`, codes)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query product codes", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code int64
		if err := rows.Scan(&code); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product code", err)
		}
		existing[code] = true
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product codes", err)
	}
	return existing, nil
}

type PgxVehicleRepository struct {
	BaseRepository
}

// newPgxVehicleRepository creates a new repository for carrier vehicles.
func newPgxVehicleRepository(pool *pgxpool.Pool) portsrepo.VehicleRepositoryFacade {
	return &PgxVehicleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VehicleRepositoryFacade = (*PgxVehicleRepository)(nil)

func (r *PgxVehicleRepository) CreateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	m := mapping.ToModelVehicle(vehicle)
	query := `
		INSERT INTO veiculos (placa, modelo, marca, ano, capacidade_kg, codigo_transportadora,
			criado_em, criado_por, atualizado_em, atualizado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.Plate, m.Model, m.Brand, m.Year, m.CapacityKg, m.CarrierCode,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "failed to insert vehicle "+m.Plate)
	}
	return nil
}

func (r *PgxVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	m := mapping.ToModelVehicle(vehicle)
	query := `
		UPDATE veiculos SET modelo = $2, marca = $3, ano = $4, capacidade_kg = $5, codigo_transportadora = $6,
			atualizado_em = $7, atualizado_por = $8
		WHERE placa = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Plate, m.Model, m.Brand, m.Year, m.CapacityKg, m.CarrierCode,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "failed to update vehicle "+m.Plate)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVehicleRepository) DeleteVehicle(ctx context.Context, plate string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM veiculos WHERE placa = $1;`, plate)
	if err != nil {
		return translatePgError(err, "failed to delete vehicle "+plate)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVehicleRepository) FindVehicleByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	query := `
		SELECT placa, modelo, marca, ano, capacidade_kg, codigo_transportadora,
		       criado_em, criado_por, atualizado_em, atualizado_por
		FROM veiculos WHERE placa = $1;
	`
	var m models.Vehicle
	err := r.Pool.QueryRow(ctx, query, plate).Scan(
		&m.Plate, &m.Model, &m.Brand, &m.Year, &m.CapacityKg, &m.CarrierCode,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find vehicle "+plate, err)
	}
	d := mapping.ToDomainVehicle(m)
	return &d, nil
}

func (r *PgxVehicleRepository) ListVehicles(ctx context.Context, carrierCode int64) ([]domain.Vehicle, error) {
	query := `
		SELECT placa, modelo, marca, ano, capacidade_kg, codigo_transportadora,
		       criado_em, criado_por, atualizado_em, atualizado_por
		FROM veiculos
	`
	args := []interface{}{}
	if carrierCode != 0 {
		query += ` WHERE codigo_transportadora = $1`
		args = append(args, carrierCode)
	}
	query += ` ORDER BY placa;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query vehicles", err)
	}
	defer rows.Close()

	out := []domain.Vehicle{}
	for rows.Next() {
		var m models.Vehicle
		if err := rows.Scan(
			&m.Plate, &m.Model, &m.Brand, &m.Year, &m.CapacityKg, &m.CarrierCode,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan vehicle row", err)
		}
		out = append(out, mapping.ToDomainVehicle(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating vehicle rows", err)
	}
	return out, nil
}
