package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/process"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/shopspring/decimal"
)

const processColumns = `id, tenant_id, numero_processo, tipo, objeto, status, secretaria, modalidade,
	responsavel, valor_estimado, valor_total, fornecedor, cnpj_fornecedor, data_abertura, data_inicio,
	data_fim, fonte_recursos, observacoes, created_at, updated_at, created_by, updated_by`

var processSortColumns = map[string]string{
	"created_at":      "created_at",
	"updated_at":      "updated_at",
	"numero_processo": "numero_processo",
	"data_abertura":   "data_abertura",
	"valor_estimado":  "valor_estimado",
	"status":          "status",
}

type processRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewProcessRepository(db *postgres.DB, logger *logger.Logger) process.Repository {
	return &processRepository{db: db, logger: logger}
}

func (r *processRepository) Create(ctx context.Context, p *process.Process) error {
	tenantID, err := postgres.RequireTenantID(ctx)
	if err != nil {
		return err
	}
	p.TenantID = tenantID

	r.logger.Debugw("creating process",
		"process_id", p.ID,
		"numero_processo", p.Number,
		"tenant_id", tenantID,
	)

	span := StartRepositorySpan(ctx, "process", "create", map[string]interface{}{
		"process_id": p.ID,
		"number":     p.Number,
	})
	defer FinishSpan(span)

	query := `
	INSERT INTO processos_administrativos (` + processColumns + `)
	VALUES (:id, :tenant_id, :numero_processo, :tipo, :objeto, :status, :secretaria, :modalidade,
		:responsavel, :valor_estimado, :valor_total, :fornecedor, :cnpj_fornecedor, :data_abertura,
		:data_inicio, :data_fim, :fonte_recursos, :observacoes, :created_at, :updated_at, :created_by, :updated_by)`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, p); err != nil {
		SetSpanError(span, err)
		return postgres.WrapError(err, "process")
	}

	SetSpanSuccess(span)
	return nil
}

func (r *processRepository) Get(ctx context.Context, id string) (*process.Process, error) {
	tenantID, err := postgres.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	span := StartRepositorySpan(ctx, "process", "get", map[string]interface{}{"process_id": id})
	defer FinishSpan(span)

	var p process.Process
	query := `SELECT ` + processColumns + ` FROM processos_administrativos WHERE id = $1 AND tenant_id = $2`
	err = r.db.ReadWithRetry(ctx, func(q postgres.Querier) error {
		return q.GetContext(ctx, &p, query, id, tenantID)
	})
	if err != nil {
		SetSpanError(span, err)
		if isNoRows(err) {
			return nil, process.NewNotFoundError(id)
		}
		return nil, postgres.WrapError(err, "process")
	}

	SetSpanSuccess(span)
	return &p, nil
}

func (r *processRepository) Update(ctx context.Context, p *process.Process) error {
	tenantID, err := postgres.RequireTenantID(ctx)
	if err != nil {
		return err
	}
	p.TenantID = tenantID

	span := StartRepositorySpan(ctx, "process", "update", map[string]interface{}{"process_id": p.ID})
	defer FinishSpan(span)

	// numero_processo and tipo are immutable
	query := `
	UPDATE processos_administrativos SET
		objeto = :objeto,
		status = :status,
		secretaria = :secretaria,
		modalidade = :modalidade,
		responsavel = :responsavel,
		valor_estimado = :valor_estimado,
		valor_total = :valor_total,
		fornecedor = :fornecedor,
		cnpj_fornecedor = :cnpj_fornecedor,
		data_abertura = :data_abertura,
		data_inicio = :data_inicio,
		data_fim = :data_fim,
		fonte_recursos = :fonte_recursos,
		observacoes = :observacoes,
		updated_at = :updated_at,
		updated_by = :updated_by
	WHERE id = :id AND tenant_id = :tenant_id`

	result, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, p)
	if err != nil {
		SetSpanError(span, err)
		return postgres.WrapError(err, "process")
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return process.NewNotFoundError(p.ID)
	}

	SetSpanSuccess(span)
	return nil
}

func (r *processRepository) List(ctx context.Context, filter *types.ProcessFilter) ([]*process.Process, error) {
	where, err := r.buildWhere(ctx, filter)
	if err != nil {
		return nil, err
	}

	span := StartRepositorySpan(ctx, "process", "list", nil)
	defer FinishSpan(span)

	sortColumn, ok := processSortColumns[filter.GetSort()]
	if !ok {
		sortColumn = "created_at"
	}
	order := "DESC"
	if filter.GetOrder() == types.OrderAsc {
		order = "ASC"
	}

	query := `SELECT ` + processColumns + ` FROM processos_administrativos` + where.sql() +
		fmt.Sprintf(" ORDER BY %s %s, id %s", sortColumn, order, order)
	args := where.args
	if !filter.IsUnlimited() {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.GetLimit(), filter.GetOffset())
	}
	query = r.db.Rebind(query)

	processes := make([]*process.Process, 0)
	err = r.db.ReadWithRetry(ctx, func(q postgres.Querier) error {
		return q.SelectContext(ctx, &processes, query, args...)
	})
	if err != nil {
		SetSpanError(span, err)
		return nil, postgres.WrapError(err, "process")
	}

	SetSpanSuccess(span)
	return processes, nil
}

func (r *processRepository) Count(ctx context.Context, filter *types.ProcessFilter) (int, error) {
	where, err := r.buildWhere(ctx, filter)
	if err != nil {
		return 0, err
	}

	query := r.db.Rebind(`SELECT COUNT(*) FROM processos_administrativos` + where.sql())

	var count int
	err = r.db.ReadWithRetry(ctx, func(q postgres.Querier) error {
		return q.GetContext(ctx, &count, query, where.args...)
	})
	if err != nil {
		return 0, postgres.WrapError(err, "process")
	}
	return count, nil
}

func (r *processRepository) buildWhere(ctx context.Context, filter *types.ProcessFilter) (*whereBuilder, error) {
	tenantID, err := postgres.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = types.NewNoLimitProcessFilter()
	}

	w := &whereBuilder{}
	w.add("tenant_id = ?", tenantID)

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		w.add("(numero_processo ILIKE ? OR objeto ILIKE ? OR responsavel ILIKE ?)", pattern, pattern, pattern)
	}
	if filter.Type != "" {
		w.add("tipo = ?", filter.Type)
	}
	if filter.Modality != "" {
		w.add("modalidade = ?", filter.Modality)
	}
	if filter.Status != "" {
		w.add("status = ?", filter.Status)
	} else if !filter.IncludeTerminal {
		w.add("status NOT IN (?, ?)", types.ProcessStatusCanceled, types.ContractStatusCanceled)
	}
	if filter.Department != "" {
		w.add("secretaria ILIKE ?", likePattern(filter.Department))
	}

	from, to, err := filter.OpenedRange()
	if err != nil {
		return nil, err
	}
	if from != nil {
		w.add("data_abertura >= ?", *from)
	}
	if to != nil {
		w.add("data_abertura <= ?", *to)
	}

	minValue, maxValue, err := filter.ValueRange()
	if err != nil {
		return nil, err
	}
	if minValue != nil {
		w.add("valor_estimado >= ?", *minValue)
	}
	if maxValue != nil {
		w.add("valor_estimado <= ?", *maxValue)
	}

	return w, nil
}

type groupCount struct {
	Key   *string `db:"key"`
	Count int     `db:"count"`
}

func (r *processRepository) Stats(ctx context.Context, now time.Time, window time.Duration) (*process.Stats, error) {
	tenantID, err := postgres.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	span := StartRepositorySpan(ctx, "process", "stats", nil)
	defer FinishSpan(span)

	stats := &process.Stats{
		ByStatus:          make(map[string]int),
		ByModality:        make(map[string]int),
		ByDepartment:      make(map[string]int),
		ExpiringContracts: make([]*process.Process, 0),
	}

	notCanceled := `tenant_id = $1 AND status NOT IN ('cancelada', 'cancelado')`

	groups := []struct {
		query  string
		target map[string]int
	}{
		{`SELECT status AS key, COUNT(*) AS count FROM processos_administrativos WHERE tenant_id = $1 GROUP BY status`, stats.ByStatus},
		{`SELECT modalidade AS key, COUNT(*) AS count FROM processos_administrativos WHERE ` + notCanceled + ` AND modalidade IS NOT NULL GROUP BY modalidade`, stats.ByModality},
		{`SELECT secretaria AS key, COUNT(*) AS count FROM processos_administrativos WHERE ` + notCanceled + ` AND secretaria IS NOT NULL GROUP BY secretaria`, stats.ByDepartment},
	}

	err = r.db.ReadWithRetry(ctx, func(q postgres.Querier) error {
		for _, g := range groups {
			var rows []groupCount
			if err := q.SelectContext(ctx, &rows, g.query, tenantID); err != nil {
				return err
			}
			for _, row := range rows {
				if row.Key != nil {
					g.target[*row.Key] = row.Count
				}
			}
		}

		var total decimal.NullDecimal
		if err := q.GetContext(ctx, &total,
			`SELECT SUM(valor_estimado) FROM processos_administrativos WHERE `+notCanceled, tenantID); err != nil {
			return err
		}
		stats.TotalEstimatedValue = decimal.Zero
		if total.Valid {
			stats.TotalEstimatedValue = total.Decimal
		}

		stats.ExpiringContracts = stats.ExpiringContracts[:0]
		return q.SelectContext(ctx, &stats.ExpiringContracts,
			`SELECT `+processColumns+` FROM processos_administrativos
			WHERE tenant_id = $1 AND tipo = $2 AND status = $3 AND data_fim BETWEEN $4 AND $5
			ORDER BY data_fim ASC`,
			tenantID, types.ProcessTypeContract, types.ContractStatusActive,
			types.DateOf(now), types.DateOf(now.Add(window)))
	})
	if err != nil {
		SetSpanError(span, err)
		return nil, postgres.WrapError(err, "process")
	}

	for _, n := range stats.ByStatus {
		stats.Total += n
	}

	SetSpanSuccess(span)
	return stats, nil
}
