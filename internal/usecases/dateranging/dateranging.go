package dateranging

import (
	"time"

	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/pkg/utils"
)

// Pacote de resolução de intervalos de datas. A âncora final é sempre ontem,
// porque a exportação da planilha fecha o dia anterior; o início fica (N-1)
// dias antes, com intervalo inclusivo em granularidade de dia.

var optionDays = map[domain.DateRangeOption]int{
	domain.Last7Days:   7,
	domain.Last14Days:  14,
	domain.Last30Days:  30,
	domain.Last90Days:  90,
	domain.Last180Days: 180,
	domain.Last365Days: 365,
}

var optionLabels = map[domain.DateRangeOption]string{
	domain.Last7Days:   "Last 7 Days",
	domain.Last14Days:  "Last 14 Days",
	domain.Last30Days:  "Last 30 Days",
	domain.Last90Days:  "Last 90 Days",
	domain.Last180Days: "Last 180 Days",
	domain.Last365Days: "Last 365 Days",
	domain.CustomRange: "Custom",
}

// Days devolve o número de dias de uma opção simbólica. A opção custom usa a
// janela padrão de 30 dias quando nenhuma data é informada.
func Days(option domain.DateRangeOption) int {
	if days, ok := optionDays[option]; ok {
		return days
	}
	return 30
}

// Label devolve o rótulo de exibição de uma opção
func Label(option domain.DateRangeOption) string {
	if label, ok := optionLabels[option]; ok {
		return label
	}
	return string(option)
}

// Resolve traduz uma opção simbólica para um intervalo concreto relativo a now
func Resolve(option domain.DateRangeOption, now time.Time) domain.DateRange {
	end := utils.DayOf(now).AddDate(0, 0, -1)
	start := end.AddDate(0, 0, -(Days(option) - 1))
	return domain.DateRange{Start: start, End: end}
}

// ResolveCustom monta um intervalo a partir de datas explícitas, truncadas
// para granularidade de dia. Datas ausentes caem na janela padrão de 30 dias.
func ResolveCustom(start, end *time.Time, now time.Time) domain.DateRange {
	if start == nil || end == nil {
		return Resolve(domain.CustomRange, now)
	}
	return domain.DateRange{Start: utils.DayOf(*start), End: utils.DayOf(*end)}
}

// InRange indica se o dia de t cai dentro do intervalo inclusivo
func InRange(t time.Time, r domain.DateRange) bool {
	day := utils.DayOf(t)
	return !day.Before(r.Start) && !day.After(r.End)
}

// FilterDaily retém as linhas diárias cuja data cai dentro do intervalo.
// Linhas com data que não pode ser interpretada são descartadas.
func FilterDaily(rows []domain.AdMetric, r domain.DateRange) []domain.AdMetric {
	out := make([]domain.AdMetric, 0, len(rows))
	for _, row := range rows {
		day, ok := utils.ParseRowDate(row.Date)
		if !ok {
			continue
		}
		if InRange(day, r) {
			out = append(out, row)
		}
	}
	return out
}
