package stock

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Períodos de agregación soportados.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// SummaryUseCase totales IN/OUT por cubo de tiempo para las gráficas del
// dashboard. Lee el log de movimientos (solo lectura) y nunca muta estado.
type SummaryUseCase struct {
	movementRepo repository.MovementRepository
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(movementRepo repository.MovementRepository) *SummaryUseCase {
	return &SummaryUseCase{movementRepo: movementRepo}
}

// Summarize agrupa los movimientos del rango por calendario (día, semana ISO,
// mes o año) y devuelve los cubos en orden ascendente. Solo aparecen cubos
// con al menos un movimiento; rellenar huecos es cosa de la capa de
// presentación.
//
// `to` por defecto es ahora; `from` por defecto depende del período:
// day→29 días atrás (30 cubos), week→77 días (11 semanas), month→11 meses
// (12 meses), year→4 años (5 años), normalizado a medianoche local.
// Un período no reconocido cae a "day" (parsing permisivo, igual que el
// resto de la API pública).
func (uc *SummaryUseCase) Summarize(ctx context.Context, period string, from, to *time.Time) ([]dto.SummaryBucket, error) {
	period = normalizePeriod(period)

	end := time.Now()
	if to != nil {
		end = *to
	}
	start := defaultStart(period, end)
	if from != nil {
		start = *from
	}

	movements, err := uc.movementRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64]*dto.SummaryBucket)
	for _, m := range movements {
		bucket := truncatePeriod(m.CreatedAt, period)
		key := bucket.Unix()
		agg, ok := grouped[key]
		if !ok {
			agg = &dto.SummaryBucket{Bucket: bucket}
			grouped[key] = agg
		}
		switch m.Type {
		case entity.MovementTypeIN:
			agg.InQty += m.Quantity
		case entity.MovementTypeOUT:
			agg.OutQty += m.Quantity
		}
	}

	buckets := make([]dto.SummaryBucket, 0, len(grouped))
	for _, agg := range grouped {
		buckets = append(buckets, *agg)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Bucket.Before(buckets[j].Bucket)
	})
	return buckets, nil
}

// normalizePeriod valores desconocidos caen a "day".
func normalizePeriod(period string) string {
	switch period {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return period
	default:
		return PeriodDay
	}
}

// defaultStart ventana de retroceso por período, a medianoche local.
func defaultStart(period string, end time.Time) time.Time {
	var start time.Time
	switch period {
	case PeriodWeek:
		start = end.AddDate(0, 0, -7*11)
	case PeriodMonth:
		start = end.AddDate(0, -11, 0)
	case PeriodYear:
		start = end.AddDate(-4, 0, 0)
	default: // day
		start = end.AddDate(0, 0, -29)
	}
	return midnight(start)
}

// truncatePeriod trunca un instante al inicio de su cubo de calendario.
// La semana empieza en lunes (ISO), igual que date_trunc('week') en Postgres.
func truncatePeriod(t time.Time, period string) time.Time {
	switch period {
	case PeriodWeek:
		d := midnight(t)
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset)
	case PeriodMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case PeriodYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	default: // day
		return midnight(t)
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
