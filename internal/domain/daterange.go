package domain

import "time"

// DateRangeOption é uma opção simbólica de intervalo de datas
type DateRangeOption string

const (
	Last7Days   DateRangeOption = "last-7-days"
	Last14Days  DateRangeOption = "last-14-days"
	Last30Days  DateRangeOption = "last-30-days"
	Last90Days  DateRangeOption = "last-90-days"
	Last180Days DateRangeOption = "last-180-days"
	Last365Days DateRangeOption = "last-365-days"
	CustomRange DateRangeOption = "custom"
)

// DateRangeOptions lista as opções na ordem de exibição
var DateRangeOptions = []DateRangeOption{
	Last7Days,
	Last14Days,
	Last30Days,
	Last90Days,
	Last180Days,
	Last365Days,
	CustomRange,
}

// DateRange é um intervalo de datas inclusivo em granularidade de dia
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
