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
	"github.com/shopspring/decimal"
)

const installmentColumns = `modelo, serie, numero, tipo, numero_parcela, codigo_pessoa, data_vencimento,
	valor, codigo_forma, data_pagamento, valor_pago, criado_em, criado_por, atualizado_em, atualizado_por`

// tableForDirection maps an installment direction to its table. Receivables
// and payables share a row shape but live in separate tables.
func tableForDirection(direction domain.InstallmentDirection) string {
	if direction == domain.Payable {
		return "contas_pagar"
	}
	return "contas_receber"
}

type PgxInstallmentRepository struct {
	BaseRepository
}

// newPgxInstallmentRepository creates a new repository for receivable and
// payable installments.
func newPgxInstallmentRepository(pool *pgxpool.Pool) portsrepo.InstallmentRepositoryFacade {
	return &PgxInstallmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InstallmentRepositoryFacade = (*PgxInstallmentRepository)(nil)

func (r *PgxInstallmentRepository) FindInstallment(ctx context.Context, direction domain.InstallmentDirection, key domain.DocumentKey, number int) (*domain.Installment, error) {
	query := `
		SELECT ` + installmentColumns + `
		FROM ` + tableForDirection(direction) + `
		WHERE modelo = $1 AND serie = $2 AND numero = $3 AND tipo = $4 AND numero_parcela = $5;
	`
	var m models.Installment
	err := r.Pool.QueryRow(ctx, query, key.Model, key.Series, key.Number, string(key.Type), number).Scan(
		&m.Model, &m.Series, &m.Number, &m.Type, &m.InstallmentNumber,
		&m.PersonCode, &m.DueDate, &m.Amount, &m.PaymentMethodCode, &m.PaidAt, &m.PaidValue,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find installment %d of document %s", number, key), err)
	}
	d := mapping.ToDomainInstallment(m, direction)
	return &d, nil
}

func (r *PgxInstallmentRepository) ListInstallments(ctx context.Context, direction domain.InstallmentDirection, key *domain.DocumentKey, openOnly bool) ([]domain.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM ` + tableForDirection(direction)
	args := []interface{}{}

	if key != nil {
		args = append(args, key.Model, key.Series, key.Number, string(key.Type))
		query += ` WHERE modelo = $1 AND serie = $2 AND numero = $3 AND tipo = $4`
		if openOnly {
			query += ` AND data_pagamento IS NULL`
		}
	} else if openOnly {
		query += ` WHERE data_pagamento IS NULL`
	}
	query += ` ORDER BY data_vencimento, numero_parcela;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query installments", err)
	}
	defer rows.Close()

	out := []domain.Installment{}
	for rows.Next() {
		var m models.Installment
		if err := rows.Scan(
			&m.Model, &m.Series, &m.Number, &m.Type, &m.InstallmentNumber,
			&m.PersonCode, &m.DueDate, &m.Amount, &m.PaymentMethodCode, &m.PaidAt, &m.PaidValue,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan installment row", err)
		}
		out = append(out, mapping.ToDomainInstallment(m, direction))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating installment rows", err)
	}
	return out, nil
}

// SettleInstallment records the payment. The data_pagamento IS NULL guard
// makes a second settlement affect zero rows, reported as ErrAlreadyInState.
func (r *PgxInstallmentRepository) SettleInstallment(ctx context.Context, direction domain.InstallmentDirection, key domain.DocumentKey, number int, paidAt time.Time, paidValue decimal.Decimal, userID string) error {
	table := tableForDirection(direction)
	query := `
		UPDATE ` + table + ` SET data_pagamento = $6, valor_pago = $7, atualizado_em = $8, atualizado_por = $9
		WHERE modelo = $1 AND serie = $2 AND numero = $3 AND tipo = $4 AND numero_parcela = $5
		  AND data_pagamento IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		key.Model, key.Series, key.Number, string(key.Type), number,
		paidAt, paidValue, time.Now(), userID,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to settle installment %d of document %s", number, key))
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Zero rows: either the installment does not exist or it is already settled.
	var exists bool
	probe := `
		SELECT EXISTS (
			SELECT 1 FROM ` + table + `
			WHERE modelo = $1 AND serie = $2 AND numero = $3 AND tipo = $4 AND numero_parcela = $5
		);
	`
	if err := r.Pool.QueryRow(ctx, probe, key.Model, key.Series, key.Number, string(key.Type), number).Scan(&exists); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to check installment %d of document %s", number, key), err)
	}
	if exists {
		return apperrors.ErrAlreadyInState
	}
	return apperrors.ErrNotFound
}
