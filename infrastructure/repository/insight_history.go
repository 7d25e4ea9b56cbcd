package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/gads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/pkg/utils"
)

const (
	insightHistoryTable = "insight_history ih"
)

// InsightHistoryRepository persiste as análises geradas para consulta posterior
type InsightHistoryRepository interface {
	Save(entry *domain.InsightEntry) error
	ListRecent(limit int) ([]*domain.InsightEntry, error)
	DeleteOlderThan(days int) (int64, error)
}

type insightHistoryRepository struct {
	conn *postgres.Connection
}

func NewInsightHistoryRepository(conn *postgres.Connection) InsightHistoryRepository {
	return &insightHistoryRepository{
		conn: conn,
	}
}

func (r *insightHistoryRepository) Save(entry *domain.InsightEntry) error {
	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar o identificador do insight: %w", err)
		}
		entry.ID = id
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	usageJSON, err := json.Marshal(entry.Usage)
	if err != nil {
		return fmt.Errorf("erro ao serializar o uso de tokens: %w", err)
	}

	query, args, err := squirrel.
		Insert("insight_history").
		Columns("id", "dataset", "prompt", "model", "content", "usage", "total_rows", "analyzed_rows", "created_at").
		Values(entry.ID, entry.Dataset, entry.Prompt, entry.Model, entry.Content, usageJSON, entry.TotalRows, entry.AnalyzedRows, entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar o insight: %w", err)
	}

	return nil
}

func (r *insightHistoryRepository) ListRecent(limit int) ([]*domain.InsightEntry, error) {
	query, args, err := squirrel.
		Select("ih.id, ih.dataset, ih.prompt, ih.model, ih.content, ih.usage, ih.total_rows, ih.analyzed_rows, ih.created_at").
		From(insightHistoryTable).
		OrderBy("ih.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.InsightEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear o histórico: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *insightHistoryRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("insight_history").
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover entradas antigas: %w", err)
	}

	return result.RowsAffected()
}

func (r *insightHistoryRepository) scanEntry(rows *sql.Rows) (*domain.InsightEntry, error) {
	var entry domain.InsightEntry
	var usageJSON []byte

	err := rows.Scan(
		&entry.ID,
		&entry.Dataset,
		&entry.Prompt,
		&entry.Model,
		&entry.Content,
		&usageJSON,
		&entry.TotalRows,
		&entry.AnalyzedRows,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(usageJSON) > 0 && string(usageJSON) != "null" {
		var usage domain.TokenUsage
		if err := json.Unmarshal(usageJSON, &usage); err == nil {
			entry.Usage = &usage
		}
	}

	return &entry, nil
}
