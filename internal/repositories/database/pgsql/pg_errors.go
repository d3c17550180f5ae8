package pgsql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/apperrors"
)

// PostgreSQL error codes this layer classifies.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// constraintMessages maps database constraint names to the message surfaced
// when one is violated. Classification keys on the constraint NAME, never on
// the driver's error text, so renaming a constraint in a migration is the
// only way to break this mapping.
var constraintMessages = map[string]string{
	// unique constraints
	"uq_pessoas_cpfcnpj":     "a person with this CPF/CNPJ already exists",
	"uq_pessoas_login":       "an employee with this login already exists",
	"uq_estados_uf":          "a state with this UF already exists in the country",
	"uq_unidades_sigla":      "a unit with this abbreviation already exists",
	"notas_fiscais_pkey":     "a document with this model/series/number/type already exists",
	"veiculos_pkey":          "a vehicle with this plate already exists",
	"parcelas_condicao_pkey": "duplicate installment number in payment condition",

	// foreign keys. Services validate references before writing, so in
	// practice these fire when deleting a record another row still points at.
	"fk_pessoas_cidade":       "city is still referenced by persons",
	"fk_estados_pais":         "country is still referenced by states",
	"fk_cidades_estado":       "state is still referenced by cities",
	"fk_produtos_unidade":     "unit is still referenced by products",
	"fk_veiculos_pessoa":      "carrier is still referenced by vehicles",
	"fk_parcelas_forma":       "payment method is still referenced by payment conditions",
	"fk_notas_pessoa":         "person is still referenced by documents",
	"fk_notas_transportadora": "carrier is still referenced by documents",
	"fk_notas_forma":          "payment method is still referenced by documents",
	"fk_notas_condicao":       "payment condition is still referenced by documents",
	"fk_itens_nota":           "document and its lines are out of sync",
	"fk_itens_produto":        "product is still referenced by document lines",
	"fk_contas_receber_nota":  "document and its receivables are out of sync",
	"fk_contas_pagar_nota":    "document and its payables are out of sync",
	"fk_parcelas_condicao":    "payment condition and its installments are out of sync",
}

// translatePgError converts a pgx/pgconn error into an application error.
// Unique violations unwrap to ErrDuplicate and foreign key violations to
// ErrValidation; anything else is wrapped as an internal failure with the
// given fallback message.
func translatePgError(err error, fallback string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperrors.NewAppError(500, fallback, err)
	}

	msg, known := constraintMessages[pgErr.ConstraintName]

	switch pgErr.Code {
	case uniqueViolation:
		if !known {
			msg = "a record with these values already exists"
		}
		return apperrors.NewAppError(409, msg, apperrors.ErrDuplicate)
	case foreignKeyViolation:
		if !known {
			msg = "operation violates a reference to another record"
		}
		return apperrors.NewAppError(409, msg, apperrors.ErrValidation)
	}

	return apperrors.NewAppError(500, fallback, err)
}
