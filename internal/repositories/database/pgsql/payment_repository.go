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

type PgxPaymentMethodRepository struct {
	BaseRepository
}

// newPgxPaymentMethodRepository creates a new repository for payment methods.
func newPgxPaymentMethodRepository(pool *pgxpool.Pool) portsrepo.PaymentMethodRepositoryFacade {
	return &PgxPaymentMethodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentMethodRepositoryFacade = (*PgxPaymentMethodRepository)(nil)

func (r *PgxPaymentMethodRepository) CreatePaymentMethod(ctx context.Context, method domain.PaymentMethod) (int64, error) {
	m := mapping.ToModelPaymentMethod(method)
	query := `
		INSERT INTO formas_pagamento (descricao, criado_em, criado_por, atualizado_em, atualizado_por)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING codigo;
	`
	var code int64
	err := r.Pool.QueryRow(ctx, query,
		m.Description, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&code)
	if err != nil {
		return 0, translatePgError(err, "failed to insert payment method")
	}
	return code, nil
}

func (r *PgxPaymentMethodRepository) UpdatePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	m := mapping.ToModelPaymentMethod(method)
	query := `
		UPDATE formas_pagamento SET descricao = $2, atualizado_em = $3, atualizado_por = $4
		WHERE codigo = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.Code, m.Description, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update payment method %d", m.Code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPaymentMethodRepository) DeletePaymentMethod(ctx context.Context, code int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM formas_pagamento WHERE codigo = $1;`, code)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to delete payment method %d", code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPaymentMethodRepository) FindPaymentMethodByCode(ctx context.Context, code int64) (*domain.PaymentMethod, error) {
	query := `
		SELECT codigo, descricao, criado_em, criado_por, atualizado_em, atualizado_por
		FROM formas_pagamento WHERE codigo = $1;
	`
	var m models.PaymentMethod
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&m.Code, &m.Description, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find payment method %d", code), err)
	}
	d := mapping.ToDomainPaymentMethod(m)
	return &d, nil
}

func (r *PgxPaymentMethodRepository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	query := `
		SELECT codigo, descricao, criado_em, criado_por, atualizado_em, atualizado_por
		FROM formas_pagamento ORDER BY descricao;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payment methods", err)
	}
	defer rows.Close()

	out := []domain.PaymentMethod{}
	for rows.Next() {
		var m models.PaymentMethod
		if err := rows.Scan(
			&m.Code, &m.Description, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment method row", err)
		}
		out = append(out, mapping.ToDomainPaymentMethod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment method rows", err)
	}
	return out, nil
}

type PgxPaymentConditionRepository struct {
	BaseRepository
}

// newPgxPaymentConditionRepository creates a new repository for payment
// conditions and their installment definitions.
func newPgxPaymentConditionRepository(pool *pgxpool.Pool) portsrepo.PaymentConditionRepositoryFacade {
	return &PgxPaymentConditionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentConditionRepositoryFacade = (*PgxPaymentConditionRepository)(nil)

// CreatePaymentCondition writes the condition header and its installment
// definitions in a single transaction.
func (r *PgxPaymentConditionRepository) CreatePaymentCondition(ctx context.Context, condition domain.PaymentCondition) (int64, error) {
	header, defs := mapping.ToModelPaymentCondition(condition)

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO condicoes_pagamento (descricao, taxa_juros, taxa_multa, taxa_desconto,
			criado_em, criado_por, atualizado_em, atualizado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING codigo;
	`
	var code int64
	err = tx.QueryRow(ctx, query,
		header.Description, header.InterestRate, header.FineRate, header.DiscountRate,
		header.CreatedAt, header.CreatedBy, header.LastUpdatedAt, header.LastUpdatedBy,
	).Scan(&code)
	if err != nil {
		return 0, translatePgError(err, "failed to insert payment condition")
	}

	if err := r.insertConditionInstallments(ctx, tx, code, defs); err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return code, nil
}

// UpdatePaymentCondition updates the header and replaces the installment
// definitions wholesale, all in one transaction.
func (r *PgxPaymentConditionRepository) UpdatePaymentCondition(ctx context.Context, condition domain.PaymentCondition) error {
	header, defs := mapping.ToModelPaymentCondition(condition)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE condicoes_pagamento SET descricao = $2, taxa_juros = $3, taxa_multa = $4, taxa_desconto = $5,
			atualizado_em = $6, atualizado_por = $7
		WHERE codigo = $1;
	`
	tag, err := tx.Exec(ctx, query,
		header.Code, header.Description, header.InterestRate, header.FineRate, header.DiscountRate,
		header.LastUpdatedAt, header.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update payment condition %d", header.Code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM parcelas_condicao WHERE codigo_condicao = $1;`, header.Code); err != nil {
		return translatePgError(err, fmt.Sprintf("failed to clear installment definitions of condition %d", header.Code))
	}
	if err := r.insertConditionInstallments(ctx, tx, header.Code, defs); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPaymentConditionRepository) insertConditionInstallments(ctx context.Context, tx pgx.Tx, conditionCode int64, defs []models.ConditionInstallment) error {
	if len(defs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO parcelas_condicao (codigo_condicao, numero, dias, percentual, codigo_forma)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, def := range defs {
		batch.Queue(query, conditionCode, def.Number, def.Days, def.Percentage, def.PaymentMethodCode)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range defs {
		if _, err := results.Exec(); err != nil {
			return translatePgError(err, fmt.Sprintf("failed to insert installment definitions of condition %d", conditionCode))
		}
	}
	return results.Close()
}

func (r *PgxPaymentConditionRepository) DeletePaymentCondition(ctx context.Context, code int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM parcelas_condicao WHERE codigo_condicao = $1;`, code); err != nil {
		return translatePgError(err, fmt.Sprintf("failed to delete installment definitions of condition %d", code))
	}

	tag, err := tx.Exec(ctx, `DELETE FROM condicoes_pagamento WHERE codigo = $1;`, code)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to delete payment condition %d", code))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPaymentConditionRepository) FindPaymentConditionByCode(ctx context.Context, code int64) (*domain.PaymentCondition, error) {
	query := `
		SELECT codigo, descricao, taxa_juros, taxa_multa, taxa_desconto,
		       criado_em, criado_por, atualizado_em, atualizado_por
		FROM condicoes_pagamento WHERE codigo = $1;
	`
	var header models.PaymentCondition
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&header.Code, &header.Description, &header.InterestRate, &header.FineRate, &header.DiscountRate,
		&header.CreatedAt, &header.CreatedBy, &header.LastUpdatedAt, &header.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find payment condition %d", code), err)
	}

	defs, err := r.findConditionInstallments(ctx, code)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainPaymentCondition(header, defs)
	return &d, nil
}

func (r *PgxPaymentConditionRepository) findConditionInstallments(ctx context.Context, conditionCode int64) ([]models.ConditionInstallment, error) {
	query := `
		SELECT codigo_condicao, numero, dias, percentual, codigo_forma
		FROM parcelas_condicao WHERE codigo_condicao = $1 ORDER BY numero;
	`
	rows, err := r.Pool.Query(ctx, query, conditionCode)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query installment definitions of condition %d", conditionCode), err)
	}
	defer rows.Close()

	defs := []models.ConditionInstallment{}
	for rows.Next() {
		var def models.ConditionInstallment
		if err := rows.Scan(&def.ConditionCode, &def.Number, &def.Days, &def.Percentage, &def.PaymentMethodCode); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan installment definition row", err)
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating installment definition rows", err)
	}
	return defs, nil
}

func (r *PgxPaymentConditionRepository) ListPaymentConditions(ctx context.Context) ([]domain.PaymentCondition, error) {
	query := `
		SELECT codigo, descricao, taxa_juros, taxa_multa, taxa_desconto,
		       criado_em, criado_por, atualizado_em, atualizado_por
		FROM condicoes_pagamento ORDER BY descricao;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payment conditions", err)
	}
	defer rows.Close()

	headers := []models.PaymentCondition{}
	for rows.Next() {
		var header models.PaymentCondition
		if err := rows.Scan(
			&header.Code, &header.Description, &header.InterestRate, &header.FineRate, &header.DiscountRate,
			&header.CreatedAt, &header.CreatedBy, &header.LastUpdatedAt, &header.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment condition row", err)
		}
		headers = append(headers, header)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment condition rows", err)
	}

	out := make([]domain.PaymentCondition, 0, len(headers))
	for _, header := range headers {
		defs, err := r.findConditionInstallments(ctx, header.Code)
		if err != nil {
			return nil, err
		}
		out = append(out, mapping.ToDomainPaymentCondition(header, defs))
	}
	return out, nil
}
