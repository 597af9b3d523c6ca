package mock

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"pharmastore/p/domain"
	"pharmastore/p/internal/seed"
	"pharmastore/p/internal/service"
)

const defaultSearchRadiusKm = 10

// Pharmacy serves the read-only location directory from fixtures.
type Pharmacy struct {
	pharmacies []domain.Pharmacy
}

func NewPharmacy() *Pharmacy {
	return &Pharmacy{pharmacies: seed.Pharmacies}
}

func (p *Pharmacy) GetPharmacies(ctx context.Context, filter service.PharmacyFilter) *service.PharmaciesResponse {
	matches := make([]domain.Pharmacy, 0, len(p.pharmacies))
	for _, ph := range p.pharmacies {
		if filter.City != "" && !strings.Contains(strings.ToLower(ph.Address.City), strings.ToLower(filter.City)) {
			continue
		}
		if filter.State != "" && !strings.EqualFold(ph.Address.State, filter.State) {
			continue
		}
		if filter.Service != "" && !offersService(ph, filter.Service) {
			continue
		}
		if filter.PartnerOnly && !ph.IsPartner {
			continue
		}
		matches = append(matches, ph)
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Rating > matches[j].Rating })

	return &service.PharmaciesResponse{
		Envelope:   service.OK(""),
		Pharmacies: matches,
		Total:      len(matches),
	}
}

func (p *Pharmacy) GetPharmacyByID(ctx context.Context, id string) *service.PharmacyResponse {
	for _, ph := range p.pharmacies {
		if ph.ID == id {
			return &service.PharmacyResponse{Envelope: service.OK(""), Pharmacy: &ph}
		}
	}
	return &service.PharmacyResponse{Envelope: service.Fail(service.CodeNotFound, "Pharmacy not found")}
}

func (p *Pharmacy) GetNearbyPharmacies(ctx context.Context, lat, lng, radius float64) *service.NearbyResponse {
	if radius <= 0 {
		radius = defaultSearchRadiusKm
	}

	nearby := make([]service.NearbyPharmacy, 0, len(p.pharmacies))
	for _, ph := range p.pharmacies {
		distance := haversineKm(lat, lng, ph.Coordinates.Lat, ph.Coordinates.Lng)
		if distance > radius {
			continue
		}
		nearby = append(nearby, service.NearbyPharmacy{
			Pharmacy: ph,
			Distance: math.Round(distance*100) / 100,
		})
	}
	sort.SliceStable(nearby, func(i, j int) bool { return nearby[i].Distance < nearby[j].Distance })

	return &service.NearbyResponse{
		Envelope:     service.OK(""),
		Pharmacies:   nearby,
		SearchRadius: radius,
		TotalFound:   len(nearby),
	}
}

func (p *Pharmacy) GetPharmacyServices(ctx context.Context) *service.ServicesResponse {
	seen := map[string]bool{}
	var services []string
	for _, ph := range p.pharmacies {
		for _, s := range ph.Services {
			if !seen[s] {
				seen[s] = true
				services = append(services, s)
			}
		}
	}
	sort.Strings(services)

	return &service.ServicesResponse{Envelope: service.OK(""), Services: services}
}

func (p *Pharmacy) GetPharmacyHours(ctx context.Context, id, date string) *service.HoursResponse {
	var pharmacy *domain.Pharmacy
	for i := range p.pharmacies {
		if p.pharmacies[i].ID == id {
			pharmacy = &p.pharmacies[i]
			break
		}
	}
	if pharmacy == nil {
		return &service.HoursResponse{Envelope: service.Fail(service.CodeNotFound, "Pharmacy not found")}
	}

	target := time.Now()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return &service.HoursResponse{Envelope: service.Fail(service.CodeValidation, "date must be in YYYY-MM-DD format")}
		}
		target = parsed
	}
	day := strings.ToLower(target.Weekday().String())

	return &service.HoursResponse{
		Envelope:     service.OK(""),
		PharmacyID:   pharmacy.ID,
		PharmacyName: pharmacy.Name,
		Date:         target.Format("2006-01-02"),
		Day:          day,
		Hours:        domain.DeclaredHours(*pharmacy, target),
		IsOpen:       domain.OpenAt(*pharmacy, target),
		AllHours:     pharmacy.Hours,
	}
}

func offersService(pharmacy domain.Pharmacy, query string) bool {
	for _, s := range pharmacy.Services {
		if strings.Contains(strings.ToLower(s), strings.ToLower(query)) {
			return true
		}
	}
	return false
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371

	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
