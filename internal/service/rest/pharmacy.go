package rest

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"pharmastore/p/domain"
	"pharmastore/p/internal/config"
	"pharmastore/p/internal/service"
)

// Pharmacy talks to the backend pharmacy endpoints. The distinct-services
// aggregate and the hours view have no dedicated routes; they are derived
// from the fixed endpoints client-side.
type Pharmacy struct {
	c *Client
}

func NewPharmacy(c *Client) *Pharmacy {
	return &Pharmacy{c: c}
}

func (p *Pharmacy) GetPharmacies(ctx context.Context, filter service.PharmacyFilter) *service.PharmaciesResponse {
	var resp service.PharmaciesResponse
	if _, err := p.c.do(ctx, http.MethodGet, config.EndpointPharmacies, nil, filter.Values(), "", nil, &resp); err != nil {
		return &service.PharmaciesResponse{Envelope: networkFail()}
	}
	return &resp
}

func (p *Pharmacy) GetPharmacyByID(ctx context.Context, id string) *service.PharmacyResponse {
	params := map[string]string{"id": id}
	var resp service.PharmacyResponse
	if _, err := p.c.do(ctx, http.MethodGet, config.EndpointPharmacyDetail, params, nil, "", nil, &resp); err != nil {
		return &service.PharmacyResponse{Envelope: networkFail()}
	}
	return &resp
}

func (p *Pharmacy) GetNearbyPharmacies(ctx context.Context, lat, lng, radius float64) *service.NearbyResponse {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radius, 'f', -1, 64))

	var resp service.NearbyResponse
	if _, err := p.c.do(ctx, http.MethodGet, config.EndpointPharmacyNearby, nil, q, "", nil, &resp); err != nil {
		return &service.NearbyResponse{Envelope: networkFail()}
	}
	return &resp
}

func (p *Pharmacy) GetPharmacyServices(ctx context.Context) *service.ServicesResponse {
	list := p.GetPharmacies(ctx, service.PharmacyFilter{})
	if !list.Success {
		return &service.ServicesResponse{Envelope: list.Envelope}
	}

	seen := map[string]bool{}
	var services []string
	for _, ph := range list.Pharmacies {
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
	detail := p.GetPharmacyByID(ctx, id)
	if !detail.Success {
		return &service.HoursResponse{Envelope: detail.Envelope}
	}

	target := time.Now()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return &service.HoursResponse{Envelope: service.Fail(service.CodeValidation, "date must be in YYYY-MM-DD format")}
		}
		target = parsed
	}
	pharmacy := *detail.Pharmacy

	return &service.HoursResponse{
		Envelope:     service.OK(""),
		PharmacyID:   pharmacy.ID,
		PharmacyName: pharmacy.Name,
		Date:         target.Format("2006-01-02"),
		Day:          strings.ToLower(target.Weekday().String()),
		Hours:        domain.DeclaredHours(pharmacy, target),
		IsOpen:       domain.OpenAt(pharmacy, target),
		AllHours:     pharmacy.Hours,
	}
}
