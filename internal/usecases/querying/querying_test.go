package querying_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/internal/usecases/querying"
)

func dailyRecords(rows []domain.AdMetric) []domain.Record {
	records := make([]domain.Record, len(rows))
	for i, row := range rows {
		records[i] = row
	}
	return records
}

func TestSchema(t *testing.T) {
	engine := querying.NewEngine()

	t.Run("deve classificar colunas da aba diária", func(t *testing.T) {
		records := dailyRecords([]domain.AdMetric{{Campaign: "Brand", CampaignID: "1", Date: "2025-08-01", Cost: 10}})

		schema := engine.Schema(domain.DatasetDaily, records)

		types := make(map[string]domain.ColumnType)
		for _, col := range schema {
			types[col.Key] = col.Type
		}

		assert.Len(t, schema, 8)
		assert.Equal(t, domain.ColumnDimension, types["campaign"])
		assert.Equal(t, domain.ColumnDimension, types["campaignId"])
		assert.Equal(t, domain.ColumnMetric, types["cost"])
		assert.Equal(t, domain.ColumnMetric, types["impr"])
		assert.Equal(t, domain.ColumnDate, types["date"])
	})

	t.Run("deve retornar esquema vazio para dataset vazio", func(t *testing.T) {
		schema := engine.Schema(domain.DatasetDaily, nil)

		assert.Empty(t, schema)
	})

	t.Run("deve gerar rótulos a partir das chaves", func(t *testing.T) {
		records := dailyRecords([]domain.AdMetric{{}})

		schema := engine.Schema(domain.DatasetDaily, records)

		labels := make(map[string]string)
		for _, col := range schema {
			labels[col.Key] = col.Label
		}
		assert.Equal(t, "Campaign Id", labels["campaignId"])
		assert.Equal(t, "Cost", labels["cost"])
		assert.Equal(t, "Impr", labels["impr"])
	})

	t.Run("deve preservar chaves que não começam com minúscula", func(t *testing.T) {
		schema := engine.Schema(domain.DatasetDaily, []domain.Record{oddKeyRecord{}})

		labels := make(map[string]string)
		for _, col := range schema {
			labels[col.Key] = col.Label
		}
		assert.Equal(t, "Status Final", labels["StatusFinal"])
		assert.Equal(t, "7day Clicks", labels["7dayClicks"])
	})
}

// oddKeyRecord simula uma linha com chaves fora do padrão camelCase minúsculo
type oddKeyRecord struct{}

func (oddKeyRecord) Columns() []string {
	return []string{"StatusFinal", "7dayClicks"}
}

func (oddKeyRecord) Get(key string) any {
	switch key {
	case "StatusFinal":
		return "enabled"
	case "7dayClicks":
		return 12.0
	}
	return nil
}

func TestFilterCombinaComAND(t *testing.T) {
	engine := querying.NewEngine()
	records := dailyRecords([]domain.AdMetric{
		{Campaign: "Brand X", Cost: 10},
		{Campaign: "Generic", Cost: 10},
		{Campaign: "Brand Y", Cost: 2},
	})
	schema := engine.Schema(domain.DatasetDaily, records)

	filters := []domain.FilterClause{
		{Column: "cost", Operator: "greater_than", Value: "5"},
		{Column: "campaign", Operator: "contains", Value: "brand"},
	}

	result := engine.Filter(records, filters, schema)

	assert.Len(t, result, 1)
	assert.Equal(t, "Brand X", result[0].Get("campaign"))
}

func TestFilterColunaDesconhecidaEhNoOp(t *testing.T) {
	engine := querying.NewEngine()
	records := dailyRecords([]domain.AdMetric{
		{Campaign: "A"},
		{Campaign: "B"},
	})
	schema := engine.Schema(domain.DatasetDaily, records)

	filters := []domain.FilterClause{
		{Column: "inexistente", Operator: "equals", Value: "qualquer"},
	}

	result := engine.Filter(records, filters, schema)

	assert.Len(t, result, 2)
}

func TestFilterPoliticaDeNaN(t *testing.T) {
	engine := querying.NewEngine()
	records := dailyRecords([]domain.AdMetric{{Campaign: "A", Cost: 10}})
	schema := engine.Schema(domain.DatasetDaily, records)

	operators := []string{"equals", "greater_than", "less_than", "greater_equal", "less_equal"}
	for _, op := range operators {
		t.Run(fmt.Sprintf("deve avaliar %s como falso com valor não numérico", op), func(t *testing.T) {
			filters := []domain.FilterClause{{Column: "cost", Operator: op, Value: ""}}

			result := engine.Filter(records, filters, schema)

			assert.Empty(t, result)
		})
	}

	t.Run("deve avaliar not_equals como verdadeiro com valor não numérico", func(t *testing.T) {
		filters := []domain.FilterClause{{Column: "cost", Operator: "not_equals", Value: ""}}

		result := engine.Filter(records, filters, schema)

		assert.Len(t, result, 1)
	})
}

func TestFilterOperadoresDeDimensao(t *testing.T) {
	engine := querying.NewEngine()
	records := dailyRecords([]domain.AdMetric{
		{Campaign: "Brand Search PT"},
		{Campaign: "Generic Search"},
		{Campaign: "Display Remarketing"},
	})
	schema := engine.Schema(domain.DatasetDaily, records)

	tests := []struct {
		name     string
		clause   domain.FilterClause
		expected []string
	}{
		{
			name:     "contains deve ignorar maiúsculas e minúsculas",
			clause:   domain.FilterClause{Column: "campaign", Operator: "contains", Value: "SEARCH"},
			expected: []string{"Brand Search PT", "Generic Search"},
		},
		{
			name:     "not_contains deve excluir as correspondências",
			clause:   domain.FilterClause{Column: "campaign", Operator: "not_contains", Value: "search"},
			expected: []string{"Display Remarketing"},
		},
		{
			name:     "starts_with deve comparar o prefixo",
			clause:   domain.FilterClause{Column: "campaign", Operator: "starts_with", Value: "brand"},
			expected: []string{"Brand Search PT"},
		},
		{
			name:     "ends_with deve comparar o sufixo",
			clause:   domain.FilterClause{Column: "campaign", Operator: "ends_with", Value: "pt"},
			expected: []string{"Brand Search PT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Filter(records, []domain.FilterClause{tt.clause}, schema)

			names := make([]string, len(result))
			for i, row := range result {
				names[i] = row.Get("campaign").(string)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestFilterOperadoresDeData(t *testing.T) {
	engine := querying.NewEngine()
	records := dailyRecords([]domain.AdMetric{
		{Campaign: "dia 1", Date: "2025-08-01"},
		{Campaign: "dia 2", Date: "2025-08-02"},
		{Campaign: "dia 3", Date: "2025-08-03"},
	})
	schema := engine.Schema(domain.DatasetDaily, records)

	tests := []struct {
		operator string
		value    string
		expected int
	}{
		{operator: "after", value: "2025-08-01", expected: 2},
		{operator: "before", value: "2025-08-03", expected: 2},
		{operator: "on_or_after", value: "2025-08-02", expected: 2},
		{operator: "on_or_before", value: "2025-08-02", expected: 2},
		{operator: "equals", value: "2025-08-02", expected: 1},
		{operator: "not_equals", value: "2025-08-02", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.operator, func(t *testing.T) {
			filters := []domain.FilterClause{{Column: "date", Operator: tt.operator, Value: tt.value}}

			result := engine.Filter(records, filters, schema)

			assert.Len(t, result, tt.expected)
		})
	}
}

func TestSort(t *testing.T) {
	engine := querying.NewEngine()
	records := dailyRecords([]domain.AdMetric{
		{Campaign: "b", Cost: 5, Date: "2025-08-03"},
		{Campaign: "a", Cost: 20, Date: "2025-08-01"},
		{Campaign: "c", Cost: 10, Date: "2025-08-02"},
	})
	schema := engine.Schema(domain.DatasetDaily, records)

	t.Run("deve ordenar métrica numericamente em ordem decrescente", func(t *testing.T) {
		result := engine.Sort(records, &domain.SortSpec{Column: "cost", Direction: domain.SortDesc}, schema)

		assert.Equal(t, 20.0, result[0].Get("cost"))
		assert.Equal(t, 10.0, result[1].Get("cost"))
		assert.Equal(t, 5.0, result[2].Get("cost"))
	})

	t.Run("deve ordenar dimensão como texto", func(t *testing.T) {
		result := engine.Sort(records, &domain.SortSpec{Column: "campaign", Direction: domain.SortAsc}, schema)

		assert.Equal(t, "a", result[0].Get("campaign"))
		assert.Equal(t, "b", result[1].Get("campaign"))
		assert.Equal(t, "c", result[2].Get("campaign"))
	})

	t.Run("deve ordenar data por calendário", func(t *testing.T) {
		result := engine.Sort(records, &domain.SortSpec{Column: "date", Direction: domain.SortAsc}, schema)

		assert.Equal(t, "2025-08-01", result[0].Get("date"))
		assert.Equal(t, "2025-08-03", result[2].Get("date"))
	})

	t.Run("deve ignorar ordenação por coluna fora do esquema", func(t *testing.T) {
		result := engine.Sort(records, &domain.SortSpec{Column: "inexistente", Direction: domain.SortAsc}, schema)

		assert.Equal(t, records, result)
	})

	t.Run("deve preservar a ordem original sem ordenação", func(t *testing.T) {
		result := engine.Sort(records, nil, schema)

		assert.Equal(t, records, result)
	})
}

func TestSortEstavel(t *testing.T) {
	engine := querying.NewEngine()
	records := dailyRecords([]domain.AdMetric{
		{Campaign: "primeiro", Cost: 10},
		{Campaign: "segundo", Cost: 10},
		{Campaign: "terceiro", Cost: 10},
	})
	schema := engine.Schema(domain.DatasetDaily, records)

	result := engine.Sort(records, &domain.SortSpec{Column: "cost", Direction: domain.SortDesc}, schema)

	// Empates preservam a ordem relativa original
	assert.Equal(t, "primeiro", result[0].Get("campaign"))
	assert.Equal(t, "segundo", result[1].Get("campaign"))
	assert.Equal(t, "terceiro", result[2].Get("campaign"))
}

func TestRunEExportComLimitesIndependentes(t *testing.T) {
	engine := querying.NewEngine()

	rows := make([]domain.AdMetric, 1500)
	for i := range rows {
		rows[i] = domain.AdMetric{Campaign: "Brand", CampaignID: "1", Cost: float64(i)}
	}
	records := dailyRecords(rows)

	result := engine.Run(domain.DatasetDaily, records, nil, nil, 10)

	assert.Len(t, result.Rows, 10)
	assert.Equal(t, 1500, result.TotalRows)
	assert.Equal(t, 1500, result.Filtered)

	exported := engine.Export(domain.DatasetDaily, records, nil, nil)

	assert.Len(t, exported, 1000)
}

func TestRunUsaLimitePadrao(t *testing.T) {
	engine := querying.NewEngine()
	records := dailyRecords(make([]domain.AdMetric, 20))

	result := engine.Run(domain.DatasetDaily, records, nil, nil, 0)

	assert.Len(t, result.Rows, querying.DefaultPreviewLimit)
}

func TestSummarize(t *testing.T) {
	engine := querying.NewEngine()
	records := dailyRecords([]domain.AdMetric{
		{Campaign: "Brand", Cost: 10},
		{Campaign: "Brand", Cost: 30},
		{Campaign: "Generic", Cost: 20},
	})
	schema := engine.Schema(domain.DatasetDaily, records)

	summary := engine.Summarize(records, schema)

	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, 10.0, summary.Metrics["cost"].Min)
	assert.Equal(t, 30.0, summary.Metrics["cost"].Max)
	assert.Equal(t, 60.0, summary.Metrics["cost"].Sum)
	assert.Equal(t, 20.0, summary.Metrics["cost"].Avg)
	assert.Equal(t, 2, summary.Dimensions["campaign"].UniqueCount)
	assert.Equal(t, "Brand", summary.Dimensions["campaign"].TopValues[0].Value)
	assert.Equal(t, 2, summary.Dimensions["campaign"].TopValues[0].Count)
}

func TestDescribeFilters(t *testing.T) {
	engine := querying.NewEngine()
	records := dailyRecords([]domain.AdMetric{{Campaign: "Brand", Cost: 10}})
	schema := engine.Schema(domain.DatasetDaily, records)

	filters := []domain.FilterClause{
		{Column: "cost", Operator: "greater_than", Value: "5"},
		{Column: "campaign", Operator: "contains", Value: "Brand"},
	}

	descriptions := engine.DescribeFilters(filters, schema)

	assert.Equal(t, []string{
		`Cost greater than "5"`,
		`Campaign contains "Brand"`,
	}, descriptions)
}

func TestOperatorsFor(t *testing.T) {
	metricOps := querying.OperatorsFor(domain.ColumnMetric)

	values := make([]string, len(metricOps))
	for i, op := range metricOps {
		values[i] = op.Value
	}
	assert.Equal(t, []string{"equals", "not_equals", "greater_than", "less_than", "greater_equal", "less_equal"}, values)
}

func TestNewClauseID(t *testing.T) {
	first := querying.NewClauseID()
	second := querying.NewClauseID()

	assert.Len(t, first, 6)
	assert.NotEqual(t, first, second)
}
