package dateranging_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/gads-insights-api/internal/domain"
	"github.com/vfg2006/gads-insights-api/internal/usecases/dateranging"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	// Meio-dia para garantir que a hora é descartada
	now := time.Date(2025, time.August, 15, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		option        domain.DateRangeOption
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "deve ancorar o fim em ontem para last-7-days",
			option:        domain.Last7Days,
			expectedStart: date(2025, time.August, 8),
			expectedEnd:   date(2025, time.August, 14),
		},
		{
			name:          "deve resolver last-30-days com inicio 29 dias antes do fim",
			option:        domain.Last30Days,
			expectedStart: date(2025, time.July, 16),
			expectedEnd:   date(2025, time.August, 14),
		},
		{
			name:          "deve resolver last-365-days atravessando o ano",
			option:        domain.Last365Days,
			expectedStart: date(2024, time.August, 15),
			expectedEnd:   date(2025, time.August, 14),
		},
		{
			name:          "deve usar a janela padrao de 30 dias para custom sem datas",
			option:        domain.CustomRange,
			expectedStart: date(2025, time.July, 16),
			expectedEnd:   date(2025, time.August, 14),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := dateranging.Resolve(tt.option, now)

			assert.Equal(t, tt.expectedStart, result.Start)
			assert.Equal(t, tt.expectedEnd, result.End)
		})
	}
}

func TestResolveCustom(t *testing.T) {
	now := date(2025, time.August, 15)
	start := time.Date(2025, time.July, 1, 18, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.July, 31, 6, 0, 0, 0, time.UTC)

	result := dateranging.ResolveCustom(&start, &end, now)

	assert.Equal(t, date(2025, time.July, 1), result.Start)
	assert.Equal(t, date(2025, time.July, 31), result.End)

	// Sem datas cai na janela padrão
	fallback := dateranging.ResolveCustom(nil, &end, now)
	assert.Equal(t, date(2025, time.July, 16), fallback.Start)
	assert.Equal(t, date(2025, time.August, 14), fallback.End)
}

func TestFilterDaily(t *testing.T) {
	r := domain.DateRange{Start: date(2025, time.August, 8), End: date(2025, time.August, 14)}

	rows := []domain.AdMetric{
		{Campaign: "dentro", Date: "2025-08-10"},
		{Campaign: "limite inicial", Date: "2025-08-08"},
		{Campaign: "limite final", Date: "2025-08-14"},
		{Campaign: "antes", Date: "2025-08-07"},
		{Campaign: "depois", Date: "2025-08-15"},
		{Campaign: "invalida", Date: "nao-e-data"},
	}

	result := dateranging.FilterDaily(rows, r)

	names := make([]string, len(result))
	for i, row := range result {
		names[i] = row.Campaign
	}
	assert.Equal(t, []string{"dentro", "limite inicial", "limite final"}, names)
}

func TestDays(t *testing.T) {
	assert.Equal(t, 7, dateranging.Days(domain.Last7Days))
	assert.Equal(t, 180, dateranging.Days(domain.Last180Days))
	assert.Equal(t, 30, dateranging.Days(domain.CustomRange))
}
