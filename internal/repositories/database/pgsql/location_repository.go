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

type PgxCountryRepository struct {
	BaseRepository
}

// newPgxCountryRepository creates a new repository for country data.
func newPgxCountryRepository(pool *pgxpool.Pool) portsrepo.CountryRepositoryFacade {
	return &PgxCountryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CountryRepositoryFacade = (*PgxCountryRepository)(nil)

func (r *PgxCountryRepository) CreateCountry(ctx context.Context, country domain.Country) (int64, error) {
	m := mapping.ToModelCountry(country)
	query := `
		INSERT INTO paises (nome, sigla, ddi, criado_em, criado_por, atualizado_em, atualizado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING codigo;
	`
	var code int64
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.Abbreviation, m.PhonePrefix,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&code)
	if err != nil {
		return 0, translatePgError(err, "failed to insert country")
	}
	return code, nil
}

func (r *PgxCountryRepository) UpdateCountry(ctx context.Context, country domain.Country) error {
	m := mapping.ToModelCountry(country)
	query := `
		UPDATE paises SET nome = $2, sigla = $3, ddi = $4, atualizado_em = $5, atualizado_por = $6
		WHERE codigo = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.Code, m.Name, m.Abbreviation, m.PhonePrefix, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update country %d", m.Code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCountryRepository) DeleteCountry(ctx context.Context, code int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM paises WHERE codigo = $1;`, code)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to delete country %d", code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCountryRepository) FindCountryByCode(ctx context.Context, code int64) (*domain.Country, error) {
	query := `
		SELECT codigo, nome, sigla, ddi, criado_em, criado_por, atualizado_em, atualizado_por
		FROM paises WHERE codigo = $1;
	`
	var m models.Country
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&m.Code, &m.Name, &m.Abbreviation, &m.PhonePrefix,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find country %d", code), err)
	}
	d := mapping.ToDomainCountry(m)
	return &d, nil
}

func (r *PgxCountryRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	query := `
		SELECT codigo, nome, sigla, ddi, criado_em, criado_por, atualizado_em, atualizado_por
		FROM paises ORDER BY nome;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query countries", err)
	}
	defer rows.Close()

	out := []domain.Country{}
	for rows.Next() {
		var m models.Country
		if err := rows.Scan(
			&m.Code, &m.Name, &m.Abbreviation, &m.PhonePrefix,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan country row", err)
		}
		out = append(out, mapping.ToDomainCountry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating country rows", err)
	}
	return out, nil
}

type PgxStateRepository struct {
	BaseRepository
}

// newPgxStateRepository creates a new repository for state data.
func newPgxStateRepository(pool *pgxpool.Pool) portsrepo.StateRepositoryFacade {
	return &PgxStateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StateRepositoryFacade = (*PgxStateRepository)(nil)

func (r *PgxStateRepository) CreateState(ctx context.Context, state domain.State) (int64, error) {
	m := mapping.ToModelState(state)
	query := `
		INSERT INTO estados (nome, uf, codigo_pais, criado_em, criado_por, atualizado_em, atualizado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING codigo;
	`
	var code int64
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.UF, m.CountryCode,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&code)
	if err != nil {
		return 0, translatePgError(err, "failed to insert state")
	}
	return code, nil
}

func (r *PgxStateRepository) UpdateState(ctx context.Context, state domain.State) error {
	m := mapping.ToModelState(state)
	query := `
		UPDATE estados SET nome = $2, uf = $3, codigo_pais = $4, atualizado_em = $5, atualizado_por = $6
		WHERE codigo = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.Code, m.Name, m.UF, m.CountryCode, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update state %d", m.Code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxStateRepository) DeleteState(ctx context.Context, code int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM estados WHERE codigo = $1;`, code)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to delete state %d", code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxStateRepository) FindStateByCode(ctx context.Context, code int64) (*domain.State, error) {
	query := `
		SELECT codigo, nome, uf, codigo_pais, criado_em, criado_por, atualizado_em, atualizado_por
		FROM estados WHERE codigo = $1;
	`
	var m models.State
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&m.Code, &m.Name, &m.UF, &m.CountryCode,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find state %d", code), err)
	}
	d := mapping.ToDomainState(m)
	return &d, nil
}

func (r *PgxStateRepository) ListStates(ctx context.Context, countryCode int64) ([]domain.State, error) {
	query := `
		SELECT codigo, nome, uf, codigo_pais, criado_em, criado_por, atualizado_em, atualizado_por
		FROM estados
	`
	args := []interface{}{}
	if countryCode != 0 {
		query += ` WHERE codigo_pais = $1`
		args = append(args, countryCode)
	}
	query += ` ORDER BY nome;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query states", err)
	}
	defer rows.Close()

	out := []domain.State{}
	for rows.Next() {
		var m models.State
		if err := rows.Scan(
			&m.Code, &m.Name, &m.UF, &m.CountryCode,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan state row", err)
		}
		out = append(out, mapping.ToDomainState(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating state rows", err)
	}
	return out, nil
}

type PgxCityRepository struct {
	BaseRepository
}

// newPgxCityRepository creates a new repository for city data.
func newPgxCityRepository(pool *pgxpool.Pool) portsrepo.CityRepositoryFacade {
	return &PgxCityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CityRepositoryFacade = (*PgxCityRepository)(nil)

func (r *PgxCityRepository) CreateCity(ctx context.Context, city domain.City) (int64, error) {
	m := mapping.ToModelCity(city)
	query := `
		INSERT INTO cidades (nome, ddd, codigo_estado, criado_em, criado_por, atualizado_em, atualizado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING codigo;
	`
	var code int64
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.AreaCode, m.StateCode,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&code)
	if err != nil {
		return 0, translatePgError(err, "failed to insert city")
	}
	return code, nil
}

func (r *PgxCityRepository) UpdateCity(ctx context.Context, city domain.City) error {
	m := mapping.ToModelCity(city)
	query := `
		UPDATE cidades SET nome = $2, ddd = $3, codigo_estado = $4, atualizado_em = $5, atualizado_por = $6
		WHERE codigo = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.Code, m.Name, m.AreaCode, m.StateCode, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update city %d", m.Code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCityRepository) DeleteCity(ctx context.Context, code int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM cidades WHERE codigo = $1;`, code)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to delete city %d", code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCityRepository) FindCityByCode(ctx context.Context, code int64) (*domain.City, error) {
	query := `
		SELECT codigo, nome, ddd, codigo_estado, criado_em, criado_por, atualizado_em, atualizado_por
		FROM cidades WHERE codigo = $1;
	`
	var m models.City
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&m.Code, &m.Name, &m.AreaCode, &m.StateCode,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find city %d", code), err)
	}
	d := mapping.ToDomainCity(m)
	return &d, nil
}

func (r *PgxCityRepository) ListCities(ctx context.Context, stateCode int64) ([]domain.City, error) {
	query := `
		SELECT codigo, nome, ddd, codigo_estado, criado_em, criado_por, atualizado_em, atualizado_por
		FROM cidades
	`
	args := []interface{}{}
	if stateCode != 0 {
		query += ` WHERE codigo_estado = $1`
		args = append(args, stateCode)
	}
	query += ` ORDER BY nome;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cities", err)
	}
	defer rows.Close()

	out := []domain.City{}
	for rows.Next() {
		var m models.City
		if err := rows.Scan(
			&m.Code, &m.Name, &m.AreaCode, &m.StateCode,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan city row", err)
		}
		out = append(out, mapping.ToDomainCity(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating city rows", err)
	}
	return out, nil
}
