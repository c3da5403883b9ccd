package distance

import (
	"math"
	"strings"
)

const (
	earthRadiusKm = 6371.0

	// Коэффициент перевода расстояния по прямой в дорожное.
	roadDetourFactor = 1.2

	// Возвращается для неизвестных городов вместо ошибки.
	FallbackKm = 500.0
)

type Estimator struct {
	cities map[string]coordinate
}

func New() *Estimator {
	return &Estimator{cities: cityCentroids}
}

// Estimate возвращает оценку дорожного расстояния между городами в км.
// Детерминирована, для неизвестного города отдаёт FallbackKm и никогда
// не возвращает ошибку.
func (e *Estimator) Estimate(cityA, cityB string) float64 {
	a, okA := e.cities[normalizeCity(cityA)]
	b, okB := e.cities[normalizeCity(cityB)]
	if !okA || !okB {
		return FallbackKm
	}

	return math.Round(haversineKm(a, b) * roadDetourFactor)
}

func normalizeCity(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func haversineKm(a, b coordinate) float64 {
	latA := a.lat * math.Pi / 180
	latB := b.lat * math.Pi / 180
	dLat := (b.lat - a.lat) * math.Pi / 180
	dLon := (b.lon - a.lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
