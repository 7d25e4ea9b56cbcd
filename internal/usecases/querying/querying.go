package querying

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/pkg/utils"
)

const (
	// DefaultPreviewLimit é o tamanho padrão da pré-visualização
	DefaultPreviewLimit = 5

	// MaxInsightRows é o teto de linhas enviadas para análise por modelo de
	// linguagem, aplicado sempre depois dos filtros e independente da
	// pré-visualização
	MaxInsightRows = 1000
)

// PreviewLimitChoices são os tamanhos de pré-visualização expostos ao cliente
var PreviewLimitChoices = []int{5, 10, 30, 50, 100}

// Engine é o motor de consulta tabular genérico. O esquema é inferido uma vez
// por dataset a partir da primeira linha; filtros combinam com AND e a
// ordenação é estável.
type Engine struct {
	collator *collate.Collator
}

func NewEngine() *Engine {
	return &Engine{
		collator: collate.New(language.English, collate.Loose),
	}
}

// Result agrupa as três visões derivadas de uma consulta
type Result struct {
	Schema    []domain.ColumnDescriptor `json:"schema"`
	Rows      []domain.Record           `json:"rows"`
	TotalRows int                       `json:"totalRows"`
	Filtered  int                       `json:"filteredRows"`
	Summary   domain.DataSummary        `json:"summary"`
}

// Rótulos das colunas de métrica conhecidas; as demais colunas recebem o
// rótulo derivado da própria chave
var metricLabels = map[string]string{
	"impr":        "Impr",
	"impressions": "Impressions",
	"clicks":      "Clicks",
	"cost":        "Cost",
	"conv":        "Conv",
	"conversions": "Conversions",
	"value":       "Value",
	"cpc":         "CPC",
	"ctr":         "CTR",
	"convRate":    "CvR",
	"cvr":         "CVR",
	"cpa":         "CPA",
	"roas":        "ROAS",
}

func labelFor(key string) string {
	if label, ok := metricLabels[key]; ok {
		return label
	}

	// Converte camelCase em palavras capitalizadas: campaignId -> Campaign Id
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			b.WriteRune(r)
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isNumeric(v any) bool {
	switch v.(type) {
	case float64, float32, int, int32, int64:
		return true
	}
	return false
}

// Schema infere os descritores de coluna a partir da primeira linha do
// dataset. Dataset vazio produz esquema vazio e torna qualquer filtro vácuo.
func (e *Engine) Schema(dataset domain.DatasetType, records []domain.Record) []domain.ColumnDescriptor {
	if len(records) == 0 {
		return []domain.ColumnDescriptor{}
	}

	first := records[0]
	columns := first.Columns()
	schema := make([]domain.ColumnDescriptor, 0, len(columns))

	for _, key := range columns {
		descriptor := domain.ColumnDescriptor{Key: key, Label: labelFor(key)}

		switch {
		case key == "date":
			descriptor.Type = domain.ColumnDate
		case isNumeric(first.Get(key)) && domain.IsMetricKey(dataset, key):
			descriptor.Type = domain.ColumnMetric
		default:
			descriptor.Type = domain.ColumnDimension
		}

		schema = append(schema, descriptor)
	}

	return schema
}

func schemaIndex(schema []domain.ColumnDescriptor) map[string]domain.ColumnType {
	index := make(map[string]domain.ColumnType, len(schema))
	for _, col := range schema {
		index[col.Key] = col.Type
	}
	return index
}

// matches avalia uma cláusula contra uma linha. Coluna desconhecida é no-op
// (passa todas as linhas); valores não numéricos em operadores de métrica
// seguem a política de NaN: tudo falso, exceto not_equals.
func (e *Engine) matches(row domain.Record, clause domain.FilterClause, columnType domain.ColumnType, known bool) bool {
	if !known {
		return true
	}

	switch columnType {
	case domain.ColumnMetric:
		return matchesMetric(row.Get(clause.Column), clause)
	case domain.ColumnDate:
		return matchesDate(row.Get(clause.Column), clause)
	default:
		return matchesDimension(row.Get(clause.Column), clause)
	}
}

func matchesDimension(value any, clause domain.FilterClause) bool {
	fieldValue := strings.ToLower(utils.CoerceString(value))
	clauseValue := strings.ToLower(clause.Value)

	switch clause.Operator {
	case "contains":
		return strings.Contains(fieldValue, clauseValue)
	case "not_contains":
		return !strings.Contains(fieldValue, clauseValue)
	case "starts_with":
		return strings.HasPrefix(fieldValue, clauseValue)
	case "ends_with":
		return strings.HasSuffix(fieldValue, clauseValue)
	case "equals":
		return fieldValue == clauseValue
	case "not_equals":
		return fieldValue != clauseValue
	}
	return true
}

func matchesMetric(value any, clause domain.FilterClause) bool {
	fieldValue, fieldOK := utils.ParseNumeric(value)
	clauseValue, clauseOK := utils.ParseNumeric(clause.Value)

	// Política de NaN: comparação com valor não numérico é falsa para todos
	// os operadores, exceto not_equals
	if !fieldOK || !clauseOK {
		return clause.Operator == "not_equals"
	}

	switch clause.Operator {
	case "equals":
		return fieldValue == clauseValue
	case "not_equals":
		return fieldValue != clauseValue
	case "greater_than":
		return fieldValue > clauseValue
	case "less_than":
		return fieldValue < clauseValue
	case "greater_equal":
		return fieldValue >= clauseValue
	case "less_equal":
		return fieldValue <= clauseValue
	}
	return true
}

func matchesDate(value any, clause domain.FilterClause) bool {
	fieldDay, fieldOK := utils.ParseRowDate(utils.CoerceString(value))
	clauseDay, clauseOK := utils.ParseRowDate(clause.Value)

	// Datas que não podem ser interpretadas seguem a mesma política de NaN
	if !fieldOK || !clauseOK {
		return clause.Operator == "not_equals"
	}

	switch clause.Operator {
	case "equals":
		return fieldDay.Equal(clauseDay)
	case "not_equals":
		return !fieldDay.Equal(clauseDay)
	case "after":
		return fieldDay.After(clauseDay)
	case "before":
		return fieldDay.Before(clauseDay)
	case "on_or_after":
		return !fieldDay.Before(clauseDay)
	case "on_or_before":
		return !fieldDay.After(clauseDay)
	}
	return true
}

// Filter aplica as cláusulas em AND sobre as linhas, usando o esquema já inferido
func (e *Engine) Filter(records []domain.Record, filters []domain.FilterClause, schema []domain.ColumnDescriptor) []domain.Record {
	if len(filters) == 0 {
		return records
	}

	index := schemaIndex(schema)
	out := make([]domain.Record, 0, len(records))

	for _, row := range records {
		keep := true
		for _, clause := range filters {
			columnType, known := index[clause.Column]
			if !e.matches(row, clause, columnType, known) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}

	return out
}

// Sort ordena as linhas de forma estável. Colunas de métrica comparam
// numericamente, datas por instante de calendário e dimensões por ordenação
// de texto sensível a localidade. Coluna fora do esquema não ordena.
func (e *Engine) Sort(records []domain.Record, spec *domain.SortSpec, schema []domain.ColumnDescriptor) []domain.Record {
	if spec == nil {
		return records
	}

	index := schemaIndex(schema)
	columnType, known := index[spec.Column]
	if !known {
		return records
	}

	out := make([]domain.Record, len(records))
	copy(out, records)

	less := func(a, b domain.Record) bool {
		switch columnType {
		case domain.ColumnMetric:
			return utils.CoerceFloat(a.Get(spec.Column)) < utils.CoerceFloat(b.Get(spec.Column))
		case domain.ColumnDate:
			da, _ := utils.ParseRowDate(utils.CoerceString(a.Get(spec.Column)))
			db, _ := utils.ParseRowDate(utils.CoerceString(b.Get(spec.Column)))
			return da.Before(db)
		default:
			return e.collator.CompareString(
				utils.CoerceString(a.Get(spec.Column)),
				utils.CoerceString(b.Get(spec.Column)),
			) < 0
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if spec.Direction == domain.SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})

	return out
}

// Run executa a consulta completa: esquema, filtro, ordenação e
// pré-visualização limitada a previewLimit linhas
func (e *Engine) Run(dataset domain.DatasetType, records []domain.Record, filters []domain.FilterClause, spec *domain.SortSpec, previewLimit int) Result {
	if previewLimit <= 0 {
		previewLimit = DefaultPreviewLimit
	}

	schema := e.Schema(dataset, records)
	filtered := e.Filter(records, filters, schema)
	sorted := e.Sort(filtered, spec, schema)

	preview := sorted
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}

	return Result{
		Schema:    schema,
		Rows:      preview,
		TotalRows: len(records),
		Filtered:  len(filtered),
		Summary:   e.Summarize(sorted, schema),
	}
}

// Export produz o conjunto filtrado e ordenado destinado à análise por modelo
// de linguagem, limitado a MaxInsightRows independentemente da pré-visualização
func (e *Engine) Export(dataset domain.DatasetType, records []domain.Record, filters []domain.FilterClause, spec *domain.SortSpec) []domain.Record {
	schema := e.Schema(dataset, records)
	filtered := e.Filter(records, filters, schema)
	sorted := e.Sort(filtered, spec, schema)

	if len(sorted) > MaxInsightRows {
		sorted = sorted[:MaxInsightRows]
	}
	return sorted
}

// Summarize agrega estatísticas do conjunto filtrado: min/max/média/soma por
// métrica e contagem de valores únicos por dimensão, com os cinco valores
// mais frequentes
func (e *Engine) Summarize(records []domain.Record, schema []domain.ColumnDescriptor) domain.DataSummary {
	summary := domain.DataSummary{
		TotalRows:  len(records),
		Metrics:    make(map[string]domain.MetricSummary),
		Dimensions: make(map[string]domain.DimensionSummary),
	}

	for _, col := range schema {
		switch col.Type {
		case domain.ColumnMetric:
			summary.Metrics[col.Key] = summarizeMetric(records, col.Key)
		case domain.ColumnDimension:
			summary.Dimensions[col.Key] = summarizeDimension(records, col.Key)
		}
	}

	return summary
}

func summarizeMetric(records []domain.Record, key string) domain.MetricSummary {
	if len(records) == 0 {
		return domain.MetricSummary{}
	}

	s := domain.MetricSummary{}
	for i, row := range records {
		v := utils.CoerceFloat(row.Get(key))
		if i == 0 {
			s.Min, s.Max = v, v
		}
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		s.Sum += v
	}
	s.Avg = s.Sum / float64(len(records))
	return s
}

func summarizeDimension(records []domain.Record, key string) domain.DimensionSummary {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, row := range records {
		v := utils.CoerceString(row.Get(key))
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	top := make([]domain.DimensionValueCount, 0, len(order))
	for _, v := range order {
		top = append(top, domain.DimensionValueCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > 5 {
		top = top[:5]
	}

	return domain.DimensionSummary{
		UniqueCount: len(counts),
		TopValues:   top,
	}
}

// DescribeFilters converte as cláusulas ativas em descrições legíveis para o
// contexto enviado ao modelo de linguagem
func (e *Engine) DescribeFilters(filters []domain.FilterClause, schema []domain.ColumnDescriptor) []string {
	labels := make(map[string]string, len(schema))
	for _, col := range schema {
		labels[col.Key] = col.Label
	}

	operatorLabels := make(map[string]string, len(domain.FilterOperators))
	for _, op := range domain.FilterOperators {
		operatorLabels[op.Value] = strings.ToLower(op.Label)
	}

	descriptions := make([]string, 0, len(filters))
	for _, clause := range filters {
		label, ok := labels[clause.Column]
		if !ok {
			label = clause.Column
		}
		opLabel, ok := operatorLabels[clause.Operator]
		if !ok {
			opLabel = clause.Operator
		}
		descriptions = append(descriptions, fmt.Sprintf("%s %s %q", label, opLabel, clause.Value))
	}
	return descriptions
}

// NewClauseID gera o identificador de uma nova cláusula de filtro
func NewClauseID() string {
	id, err := utils.GenerateID()
	if err != nil {
		return ""
	}
	return id
}

// OperatorsFor devolve os operadores aplicáveis a um tipo de coluna
func OperatorsFor(columnType domain.ColumnType) []domain.FilterOperator {
	out := make([]domain.FilterOperator, 0)
	for _, op := range domain.FilterOperators {
		for _, t := range op.Types {
			if t == columnType {
				out = append(out, op)
				break
			}
		}
	}
	return out
}
