package compliance

import (
	"math"
	"time"

	"freight/internal/entities"
)

// Каноническое правило срока действия e-way bill: один день на каждые полные
// или неполные 100 км. Дискретная таблица диапазонов из старых форм тут
// сознательно не воспроизводится, источник правды один.
const kmPerValidityDay = 100.0

const expiringSoonWindowDays = 3

// ComputeExpiry возвращает дату, по которую включительно действует e-way bill:
// ceil(distanceKm/100) дней начиная со дня после бронирования.
func ComputeExpiry(bookingDate time.Time, distanceKm float64) time.Time {
	days := int(math.Ceil(distanceKm / kmPerValidityDay))
	if days < 1 {
		days = 1
	}
	return startOfDay(bookingDate).AddDate(0, 0, days)
}

// Classify относит дату истечения к expired / expiring_soon / valid
// относительно asOf. Чистая функция, результат не кешируется и не хранится.
func Classify(expiry time.Time, asOf time.Time) entities.EwayClassification {
	today := startOfDay(asOf)
	expiryDay := startOfDay(expiry)

	days := int(expiryDay.Sub(today).Hours() / 24)

	switch {
	case days < 0:
		return entities.EwayClassification{
			State: entities.EwayExpired,
			Days:  -days,
		}
	case days <= expiringSoonWindowDays:
		return entities.EwayClassification{
			State: entities.EwayExpiringSoon,
			Days:  days,
		}
	default:
		return entities.EwayClassification{
			State: entities.EwayValid,
			Days:  days,
		}
	}
}

// startOfDay нормализует момент времени к календарной дате в UTC. Даты из
// Postgres (DATE) приходят как полночь UTC, а asOf — локальное время сервера;
// сравнивать их стенными часами нельзя.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
