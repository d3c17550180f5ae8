package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/domain"
	portsrepo "github.com/pedrorocha2000/praticavii-nfe-sub000/internal/core/ports/repositories"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/models"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils/mapping"
)

type PgxPersonRepository struct {
	BaseRepository
}

// newPgxPersonRepository creates a new repository for the shared identity records.
func newPgxPersonRepository(pool *pgxpool.Pool) portsrepo.PersonRepositoryFacade {
	return &PgxPersonRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PersonRepositoryFacade = (*PgxPersonRepository)(nil)

const personColumns = `
	codigo, tipo, nome, nome_fantasia, cpf_cnpj, inscricao_estadual, email, telefone,
	endereco, bairro, cep, codigo_cidade,
	eh_cliente, eh_fornecedor, eh_funcionario, eh_transportadora,
	data_admissao, cargo, salario, login, senha_hash, ativo,
	criado_em, criado_por, atualizado_em, atualizado_por`

func scanPerson(row pgx.Row) (models.Person, error) {
	var m models.Person
	err := row.Scan(
		&m.Code, &m.Type, &m.Name, &m.TradeName, &m.TaxID, &m.StateRegistration, &m.Email, &m.Phone,
		&m.Address, &m.District, &m.ZipCode, &m.CityCode,
		&m.IsClient, &m.IsSupplier, &m.IsEmployee, &m.IsCarrier,
		&m.HireDate, &m.Position, &m.Salary, &m.Login, &m.PasswordHash, &m.Active,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPersonRepository) CreatePerson(ctx context.Context, person domain.Person) (int64, error) {
	m := mapping.ToModelPerson(person)
	query := `
		INSERT INTO pessoas (
			tipo, nome, nome_fantasia, cpf_cnpj, inscricao_estadual, email, telefone,
			endereco, bairro, cep, codigo_cidade,
			eh_cliente, eh_fornecedor, eh_funcionario, eh_transportadora,
			data_admissao, cargo, salario, login, senha_hash, ativo,
			criado_em, criado_por, atualizado_em, atualizado_por
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		RETURNING codigo;
	`
	var code int64
	err := r.Pool.QueryRow(ctx, query,
		m.Type, m.Name, m.TradeName, m.TaxID, m.StateRegistration, m.Email, m.Phone,
		m.Address, m.District, m.ZipCode, m.CityCode,
		m.IsClient, m.IsSupplier, m.IsEmployee, m.IsCarrier,
		m.HireDate, m.Position, m.Salary, m.Login, m.PasswordHash, m.Active,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&code)
	if err != nil {
		return 0, translatePgError(err, "failed to insert person")
	}
	return code, nil
}

func (r *PgxPersonRepository) UpdatePerson(ctx context.Context, person domain.Person) error {
	m := mapping.ToModelPerson(person)
	query := `
		UPDATE pessoas SET
			tipo = $2, nome = $3, nome_fantasia = $4, cpf_cnpj = $5, inscricao_estadual = $6,
			email = $7, telefone = $8, endereco = $9, bairro = $10, cep = $11, codigo_cidade = $12,
			eh_cliente = $13, eh_fornecedor = $14, eh_funcionario = $15, eh_transportadora = $16,
			data_admissao = $17, cargo = $18, salario = $19, login = $20, senha_hash = $21,
			atualizado_em = $22, atualizado_por = $23
		WHERE codigo = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Code,
		m.Type, m.Name, m.TradeName, m.TaxID, m.StateRegistration,
		m.Email, m.Phone, m.Address, m.District, m.ZipCode, m.CityCode,
		m.IsClient, m.IsSupplier, m.IsEmployee, m.IsCarrier,
		m.HireDate, m.Position, m.Salary, m.Login, m.PasswordHash,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update person %d", m.Code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivatePerson flips the active flag off. The guard in the WHERE clause
// distinguishes a missing person from an already-inactive one.
func (r *PgxPersonRepository) DeactivatePerson(ctx context.Context, code int64, userID string, at time.Time) error {
	query := `
		UPDATE pessoas SET ativo = FALSE, atualizado_em = $2, atualizado_por = $3
		WHERE codigo = $1 AND ativo = TRUE;
	`
	tag, err := r.Pool.Exec(ctx, query, code, at, userID)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to deactivate person %d", code))
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if checkErr := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM pessoas WHERE codigo = $1)`, code).Scan(&exists); checkErr != nil {
			return apperrors.NewAppError(500, fmt.Sprintf("failed to check person %d", code), checkErr)
		}
		if exists {
			return apperrors.ErrAlreadyInState
		}
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPersonRepository) FindPersonByCode(ctx context.Context, code int64) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM pessoas WHERE codigo = $1;`
	m, err := scanPerson(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find person %d", code), err)
	}
	d := mapping.ToDomainPerson(m)
	return &d, nil
}

func (r *PgxPersonRepository) FindPersonByTaxID(ctx context.Context, taxID string) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM pessoas WHERE cpf_cnpj = $1;`
	m, err := scanPerson(r.Pool.QueryRow(ctx, query, taxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find person by tax ID", err)
	}
	d := mapping.ToDomainPerson(m)
	return &d, nil
}

func (r *PgxPersonRepository) FindPersonByLogin(ctx context.Context, login string) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM pessoas WHERE login = $1;`
	m, err := scanPerson(r.Pool.QueryRow(ctx, query, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find person by login", err)
	}
	d := mapping.ToDomainPerson(m)
	return &d, nil
}

func (r *PgxPersonRepository) ListPersons(ctx context.Context, role string) ([]domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM pessoas`
	switch role {
	case "client":
		query += ` WHERE eh_cliente`
	case "supplier":
		query += ` WHERE eh_fornecedor`
	case "employee":
		query += ` WHERE eh_funcionario`
	case "carrier":
		query += ` WHERE eh_transportadora`
	case "":
		// all persons
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown role filter %q", role))
	}
	query += ` ORDER BY nome;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query persons", err)
	}
	defer rows.Close()

	ms := []models.Person{}
	for rows.Next() {
		m, err := scanPerson(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan person row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating person rows", err)
	}

	return mapping.ToDomainPersonSlice(ms), nil
}
