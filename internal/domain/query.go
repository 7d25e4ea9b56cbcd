package domain

// ColumnType classifica uma coluna de um dataset para fins de filtro e ordenação
type ColumnType string

const (
	ColumnMetric    ColumnType = "metric"
	ColumnDimension ColumnType = "dimension"
	ColumnDate      ColumnType = "date"
)

// Record é uma linha tabular com colunas ordenadas e acesso por chave.
// Cada tipo de linha implementa a interface manualmente, sem reflexão.
type Record interface {
	Columns() []string
	Get(key string) any
}

// ColumnDescriptor descreve uma coluna inferida do dataset
type ColumnDescriptor struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Type  ColumnType `json:"type"`
}

// FilterOperator descreve um operador de filtro e os tipos de coluna que ele aceita
type FilterOperator struct {
	Value string       `json:"value"`
	Label string       `json:"label"`
	Types []ColumnType `json:"types"`
}

// Operadores de filtro suportados pelo motor de consulta
var FilterOperators = []FilterOperator{
	{Value: "contains", Label: "Contains", Types: []ColumnType{ColumnDimension}},
	{Value: "not_contains", Label: "Does not contain", Types: []ColumnType{ColumnDimension}},
	{Value: "equals", Label: "Equals", Types: []ColumnType{ColumnMetric, ColumnDimension, ColumnDate}},
	{Value: "not_equals", Label: "Not equals", Types: []ColumnType{ColumnMetric, ColumnDimension, ColumnDate}},
	{Value: "starts_with", Label: "Starts with", Types: []ColumnType{ColumnDimension}},
	{Value: "ends_with", Label: "Ends with", Types: []ColumnType{ColumnDimension}},
	{Value: "greater_than", Label: "Greater than", Types: []ColumnType{ColumnMetric}},
	{Value: "less_than", Label: "Less than", Types: []ColumnType{ColumnMetric}},
	{Value: "greater_equal", Label: "Greater than or equals", Types: []ColumnType{ColumnMetric}},
	{Value: "less_equal", Label: "Less than or equals", Types: []ColumnType{ColumnMetric}},
	{Value: "after", Label: "After", Types: []ColumnType{ColumnDate}},
	{Value: "before", Label: "Before", Types: []ColumnType{ColumnDate}},
	{Value: "on_or_after", Label: "On or after", Types: []ColumnType{ColumnDate}},
	{Value: "on_or_before", Label: "On or before", Types: []ColumnType{ColumnDate}},
}

// FilterClause é uma cláusula de filtro aplicada a uma coluna. Cláusulas
// múltiplas são combinadas com AND.
type FilterClause struct {
	ID       string `json:"id"`
	Column   string `json:"column"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec define a ordenação do resultado de uma consulta
type SortSpec struct {
	Column    string        `json:"column"`
	Direction SortDirection `json:"direction"`
}

// MetricSummary resume uma coluna numérica do resultado filtrado
type MetricSummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
	Sum float64 `json:"sum"`
}

// DimensionValueCount é um valor de dimensão e sua frequência
type DimensionValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// DimensionSummary resume uma coluna de dimensão do resultado filtrado
type DimensionSummary struct {
	UniqueCount int                   `json:"uniqueCount"`
	TopValues   []DimensionValueCount `json:"topValues,omitempty"`
}

// DataSummary agrega estatísticas do conjunto filtrado
type DataSummary struct {
	TotalRows  int                         `json:"totalRows"`
	Metrics    map[string]MetricSummary    `json:"metrics"`
	Dimensions map[string]DimensionSummary `json:"dimensions"`
}
