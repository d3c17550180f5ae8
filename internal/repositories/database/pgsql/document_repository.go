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
	"github.com/pedrorocha2000/praticavii-nfe-sub000/internal/utils/pagination"
)

const documentColumns = `modelo, serie, numero, tipo, codigo_pessoa, data_emissao, data_saida, valor_total,
	chave_acesso, protocolo_autorizacao, codigo_transportadora, valor_frete, peso_bruto_kg, peso_liquido_kg,
	qtd_volumes, codigo_forma, codigo_condicao, criado_em, criado_por, atualizado_em, atualizado_por`

const lineColumns = `modelo, serie, numero, tipo, codigo_produto, quantidade, preco_unitario, valor_total,
	icms_base, icms_aliquota, icms_valor, ipi_base, ipi_aliquota, ipi_valor,
	pis_base, pis_aliquota, pis_valor, cofins_base, cofins_aliquota, cofins_valor`

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for fiscal documents.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

// SaveDocument persists the header, its lines and its generated installments
// in one transaction. A failure on any statement rolls everything back.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.FiscalDocument, lines []domain.DocumentLine, installments []domain.Installment) error {
	header := mapping.ToModelFiscalDocument(doc)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertHeader := `
		INSERT INTO notas_fiscais (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err = tx.Exec(ctx, insertHeader,
		header.Model, header.Series, header.Number, header.Type,
		header.PersonCode, header.EmissionDate, header.ExitDate, header.Total,
		header.AccessKey, header.AuthorizationProtocol, header.CarrierCode,
		header.FreightValue, header.GrossWeightKg, header.NetWeightKg, header.PackageCount,
		header.PaymentMethodCode, header.PaymentConditionCode,
		header.CreatedAt, header.CreatedBy, header.LastUpdatedAt, header.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to insert document %s", doc.Key))
	}

	if err := r.insertLines(ctx, tx, doc.Key, lines); err != nil {
		return err
	}
	if err := r.insertInstallments(ctx, tx, doc.Key, installments); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func (r *PgxDocumentRepository) insertLines(ctx context.Context, tx pgx.Tx, key domain.DocumentKey, lines []domain.DocumentLine) error {
	if len(lines) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO itens_nota (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	for _, line := range lines {
		m := mapping.ToModelDocumentLine(line)
		batch.Queue(query,
			m.Model, m.Series, m.Number, m.Type, m.ProductCode,
			m.Quantity, m.UnitPrice, m.Total,
			m.ICMSBase, m.ICMSRate, m.ICMSAmount,
			m.IPIBase, m.IPIRate, m.IPIAmount,
			m.PISBase, m.PISRate, m.PISAmount,
			m.COFINSBase, m.COFINSRate, m.COFINSAmount,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range lines {
		if _, err := results.Exec(); err != nil {
			return translatePgError(err, fmt.Sprintf("failed to insert lines of document %s", key))
		}
	}
	return results.Close()
}

func (r *PgxDocumentRepository) insertInstallments(ctx context.Context, tx pgx.Tx, key domain.DocumentKey, installments []domain.Installment) error {
	if len(installments) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, inst := range installments {
		m := mapping.ToModelInstallment(inst)
		query := `
			INSERT INTO ` + tableForDirection(inst.Direction) + ` (modelo, serie, numero, tipo, numero_parcela,
				codigo_pessoa, data_vencimento, valor, codigo_forma, data_pagamento, valor_pago,
				criado_em, criado_por, atualizado_em, atualizado_por)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
		`
		batch.Queue(query,
			m.Model, m.Series, m.Number, m.Type, m.InstallmentNumber,
			m.PersonCode, m.DueDate, m.Amount, m.PaymentMethodCode, m.PaidAt, m.PaidValue,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range installments {
		if _, err := results.Exec(); err != nil {
			return translatePgError(err, fmt.Sprintf("failed to insert installments of document %s", key))
		}
	}
	return results.Close()
}

// ReplaceDocumentLines updates the header and swaps the line set wholesale.
func (r *PgxDocumentRepository) ReplaceDocumentLines(ctx context.Context, doc domain.FiscalDocument, lines []domain.DocumentLine) error {
	header := mapping.ToModelFiscalDocument(doc)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateHeader := `
		UPDATE notas_fiscais SET codigo_pessoa = $5, data_emissao = $6, data_saida = $7, valor_total = $8,
			chave_acesso = $9, protocolo_autorizacao = $10, codigo_transportadora = $11,
			valor_frete = $12, peso_bruto_kg = $13, peso_liquido_kg = $14, qtd_volumes = $15,
			codigo_forma = $16, codigo_condicao = $17, atualizado_em = $18, atualizado_por = $19
		WHERE modelo = $1 AND serie = $2 AND numero = $3 AND tipo = $4;
	`
	tag, err := tx.Exec(ctx, updateHeader,
		header.Model, header.Series, header.Number, header.Type,
		header.PersonCode, header.EmissionDate, header.ExitDate, header.Total,
		header.AccessKey, header.AuthorizationProtocol, header.CarrierCode,
		header.FreightValue, header.GrossWeightKg, header.NetWeightKg, header.PackageCount,
		header.PaymentMethodCode, header.PaymentConditionCode,
		header.LastUpdatedAt, header.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to update document %s", doc.Key))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	deleteLines := `DELETE FROM itens_nota WHERE modelo = $1 AND serie = $2 AND numero = $3 AND tipo = $4;`
	if _, err := tx.Exec(ctx, deleteLines, header.Model, header.Series, header.Number, header.Type); err != nil {
		return translatePgError(err, fmt.Sprintf("failed to clear lines of document %s", doc.Key))
	}
	if err := r.insertLines(ctx, tx, doc.Key, lines); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteDocument removes the document with its lines and installments.
func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, key domain.DocumentKey) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	keyArgs := []interface{}{key.Model, key.Series, key.Number, string(key.Type)}
	for _, table := range []string{"contas_receber", "contas_pagar", "itens_nota"} {
		query := `DELETE FROM ` + table + ` WHERE modelo = $1 AND serie = $2 AND numero = $3 AND tipo = $4;`
		if _, err := tx.Exec(ctx, query, keyArgs...); err != nil {
			return translatePgError(err, fmt.Sprintf("failed to delete %s of document %s", table, key))
		}
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM notas_fiscais WHERE modelo = $1 AND serie = $2 AND numero = $3 AND tipo = $4;`,
		keyArgs...,
	)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to delete document %s", key))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindDocumentByKey retrieves the header together with its lines.
func (r *PgxDocumentRepository) FindDocumentByKey(ctx context.Context, key domain.DocumentKey) (*domain.FiscalDocument, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM notas_fiscais WHERE modelo = $1 AND serie = $2 AND numero = $3 AND tipo = $4;
	`
	var m models.FiscalDocument
	err := r.Pool.QueryRow(ctx, query, key.Model, key.Series, key.Number, string(key.Type)).Scan(
		&m.Model, &m.Series, &m.Number, &m.Type,
		&m.PersonCode, &m.EmissionDate, &m.ExitDate, &m.Total,
		&m.AccessKey, &m.AuthorizationProtocol, &m.CarrierCode,
		&m.FreightValue, &m.GrossWeightKg, &m.NetWeightKg, &m.PackageCount,
		&m.PaymentMethodCode, &m.PaymentConditionCode,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find document %s", key), err)
	}

	lines, err := r.findLines(ctx, key)
	if err != nil {
		return nil, err
	}

	doc := mapping.ToDomainFiscalDocument(m)
	doc.Lines = lines
	return &doc, nil
}

func (r *PgxDocumentRepository) findLines(ctx context.Context, key domain.DocumentKey) ([]domain.DocumentLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM itens_nota WHERE modelo = $1 AND serie = $2 AND numero = $3 AND tipo = $4
		ORDER BY codigo_produto;
	`
	rows, err := r.Pool.Query(ctx, query, key.Model, key.Series, key.Number, string(key.Type))
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query lines of document %s", key), err)
	}
	defer rows.Close()

	ms := []models.DocumentLine{}
	for rows.Next() {
		var m models.DocumentLine
		if err := rows.Scan(
			&m.Model, &m.Series, &m.Number, &m.Type, &m.ProductCode,
			&m.Quantity, &m.UnitPrice, &m.Total,
			&m.ICMSBase, &m.ICMSRate, &m.ICMSAmount,
			&m.IPIBase, &m.IPIRate, &m.IPIAmount,
			&m.PISBase, &m.PISRate, &m.PISAmount,
			&m.COFINSBase, &m.COFINSRate, &m.COFINSAmount,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan document line row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating document line rows", err)
	}
	return mapping.ToDomainDocumentLineSlice(ms), nil
}

// ListDocuments pages through documents newest emission first using an opaque
// keyset token over (data_emissao, criado_em).
func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, docType *domain.DocumentType, limit int, nextToken *string) ([]domain.FiscalDocument, *string, error) {
	query := `SELECT ` + documentColumns + ` FROM notas_fiscais`
	args := []interface{}{}
	conditions := []string{}

	if docType != nil {
		args = append(args, string(*docType))
		conditions = append(conditions, fmt.Sprintf("tipo = $%d", len(args)))
	}
	if nextToken != nil && *nextToken != "" {
		emission, created, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid pagination token")
		}
		args = append(args, emission, created)
		conditions = append(conditions, fmt.Sprintf("(data_emissao, criado_em) < ($%d, $%d)", len(args)-1, len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	// Fetch one extra row to know whether another page exists.
	fetchLimit := limit + 1
	args = append(args, fetchLimit)
	query += fmt.Sprintf(" ORDER BY data_emissao DESC, criado_em DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query documents", err)
	}
	defer rows.Close()

	ms := []models.FiscalDocument{}
	for rows.Next() {
		var m models.FiscalDocument
		if err := rows.Scan(
			&m.Model, &m.Series, &m.Number, &m.Type,
			&m.PersonCode, &m.EmissionDate, &m.ExitDate, &m.Total,
			&m.AccessKey, &m.AuthorizationProtocol, &m.CarrierCode,
			&m.FreightValue, &m.GrossWeightKg, &m.NetWeightKg, &m.PackageCount,
			&m.PaymentMethodCode, &m.PaymentConditionCode,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan document row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating document rows", err)
	}

	var token *string
	if len(ms) == fetchLimit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		encoded := pagination.EncodeToken(last.EmissionDate, last.CreatedAt)
		token = &encoded
	}

	out := make([]domain.FiscalDocument, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainFiscalDocument(m)
	}
	return out, token, nil
}
