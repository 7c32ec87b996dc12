package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrTableNotAllowed  = errors.New("tabela fora da lista permitida")
	ErrColumnNotAllowed = errors.New("coluna fora da lista permitida")
	ErrRowNotFound      = errors.New("linha não encontrada")
	ErrEmptyData        = errors.New("data não pode ser vazio")
)

// adminTables limita o data-manager às tabelas (e colunas) que o painel
// administrativo pode mexer. Nada de profiles nem tokens por aqui.
var adminTables = map[string]map[string]bool{
	"cold_call_leads": {
		"name": true, "phone": true, "email": true, "notes": true, "consultant_id": true,
	},
	"pipelines": {
		"name": true, "owner_id": true, "active": true,
	},
	"pipeline_stages": {
		"pipeline_id": true, "name": true, "order_index": true, "active": true,
	},
	"commissions": {
		"consultant_id": true, "lead_id": true, "amount_cents": true, "status": true,
	},
	"checklist_items": {
		"user_id": true, "title": true, "due_date": true, "done": true,
	},
}

// TableAdminRepository executa as operações genéricas do painel admin
// sobre a lista de tabelas permitidas.
type TableAdminRepository struct {
	DB *sql.DB
}

func NewTableAdminRepository(db *sql.DB) *TableAdminRepository {
	return &TableAdminRepository{DB: db}
}

func validateColumns(table string, data map[string]any) ([]string, error) {
	allowed, ok := adminTables[table]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotAllowed, table)
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	columns := make([]string, 0, len(data))
	for col := range data {
		if !allowed[col] {
			return nil, fmt.Errorf("%w: %s.%s", ErrColumnNotAllowed, table, col)
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns, nil
}

func (r *TableAdminRepository) Insert(ctx context.Context, table string, data map[string]any) (map[string]any, error) {
	columns, err := validateColumns(table, data)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	quoted := []string{pq.QuoteIdentifier("id")}
	placeholders := []string{"$1"}
	args := []any{id}

	for i, col := range columns {
		quoted = append(quoted, pq.QuoteIdentifier(col))
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
		args = append(args, data[col])
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		pq.QuoteIdentifier(table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}

	row := map[string]any{"id": id}
	for col, value := range data {
		row[col] = value
	}
	return row, nil
}

func (r *TableAdminRepository) Update(ctx context.Context, table, id string, data map[string]any) (map[string]any, error) {
	columns, err := validateColumns(table, data)
	if err != nil {
		return nil, err
	}

	sets := make([]string, 0, len(columns))
	args := []any{id}
	for i, col := range columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(col), i+2))
		args = append(args, data[col])
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1",
		pq.QuoteIdentifier(table),
		strings.Join(sets, ", "),
	)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrRowNotFound
	}

	row := map[string]any{"id": id}
	for col, value := range data {
		row[col] = value
	}
	return row, nil
}

func (r *TableAdminRepository) Delete(ctx context.Context, table, id string) error {
	if _, ok := adminTables[table]; !ok {
		return fmt.Errorf("%w: %s", ErrTableNotAllowed, table)
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", pq.QuoteIdentifier(table))
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRowNotFound
	}
	return nil
}

// UpdateConfig grava um valor de configuração do app (chave → JSONB).
func (r *TableAdminRepository) UpdateConfig(ctx context.Context, key string, value any) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("config key é obrigatória")
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO app_config (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	_, err = r.DB.ExecContext(ctx, query, key, encoded)
	return err
}
