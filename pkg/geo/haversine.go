package geo

import "math"

// EarthRadiusKM радиус сферы, по которой считается great-circle расстояние
const EarthRadiusKM = 6371.0

// HaversineKM возвращает расстояние между двумя точками (широта/долгота
// в градусах) в километрах по формуле гаверсинусов
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKM * math.Asin(math.Sqrt(a))
}
