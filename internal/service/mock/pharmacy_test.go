package mock

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmastore/p/internal/service"
)

func TestGetPharmacies(t *testing.T) {
	p := NewPharmacy()
	ctx := context.Background()

	t.Run("lists all sorted by rating", func(t *testing.T) {
		resp := p.GetPharmacies(ctx, service.PharmacyFilter{})
		require.True(t, resp.Success)
		require.Equal(t, 2, resp.Total)
		assert.Equal(t, "pharmacy_002", resp.Pharmacies[0].ID) // 4.8 beats 4.5
		assert.Equal(t, "pharmacy_001", resp.Pharmacies[1].ID)
	})

	t.Run("city filter is a substring match", func(t *testing.T) {
		resp := p.GetPharmacies(ctx, service.PharmacyFilter{City: "spring"})
		require.True(t, resp.Success)
		assert.Equal(t, 2, resp.Total)

		resp = p.GetPharmacies(ctx, service.PharmacyFilter{City: "Chicago"})
		assert.Zero(t, resp.Total)
	})

	t.Run("state filter is exact", func(t *testing.T) {
		resp := p.GetPharmacies(ctx, service.PharmacyFilter{State: "il"})
		assert.Equal(t, 2, resp.Total)

		resp = p.GetPharmacies(ctx, service.PharmacyFilter{State: "I"})
		assert.Zero(t, resp.Total)
	})

	t.Run("service filter", func(t *testing.T) {
		resp := p.GetPharmacies(ctx, service.PharmacyFilter{Service: "vaccin"})
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "pharmacy_001", resp.Pharmacies[0].ID)
	})

	t.Run("partner filter", func(t *testing.T) {
		resp := p.GetPharmacies(ctx, service.PharmacyFilter{PartnerOnly: true})
		assert.Equal(t, 2, resp.Total)
	})
}

func TestGetPharmacyByID(t *testing.T) {
	p := NewPharmacy()
	ctx := context.Background()

	resp := p.GetPharmacyByID(ctx, "pharmacy_001")
	require.True(t, resp.Success)
	assert.Equal(t, "Springfield Community Pharmacy", resp.Pharmacy.Name)

	missing := p.GetPharmacyByID(ctx, "pharmacy_999")
	require.False(t, missing.Success)
	assert.Equal(t, service.CodeNotFound, missing.Code)
}

func TestGetNearbyPharmacies(t *testing.T) {
	p := NewPharmacy()
	ctx := context.Background()

	t.Run("closest first within default radius", func(t *testing.T) {
		// Query from the first pharmacy's own coordinates; both fixtures
		// are under two kilometres apart.
		resp := p.GetNearbyPharmacies(ctx, 39.7817, -89.6501, 0)
		require.True(t, resp.Success)
		assert.Equal(t, 10.0, resp.SearchRadius)
		require.Equal(t, 2, resp.TotalFound)
		assert.Equal(t, "pharmacy_001", resp.Pharmacies[0].ID)
		assert.Equal(t, 0.0, resp.Pharmacies[0].Distance)
		assert.Greater(t, resp.Pharmacies[1].Distance, 0.0)
		assert.Less(t, resp.Pharmacies[1].Distance, 10.0)
	})

	t.Run("tight radius excludes the far one", func(t *testing.T) {
		resp := p.GetNearbyPharmacies(ctx, 39.7817, -89.6501, 1)
		require.True(t, resp.Success)
		assert.Equal(t, 1, resp.TotalFound)
	})

	t.Run("remote point finds nothing", func(t *testing.T) {
		resp := p.GetNearbyPharmacies(ctx, 0, 0, 25)
		require.True(t, resp.Success)
		assert.Zero(t, resp.TotalFound)
		assert.Empty(t, resp.Pharmacies)
	})
}

func TestGetPharmacyServices(t *testing.T) {
	p := NewPharmacy()

	resp := p.GetPharmacyServices(context.Background())
	require.True(t, resp.Success)
	assert.Len(t, resp.Services, 8)
	assert.True(t, sort.StringsAreSorted(resp.Services))
	assert.Contains(t, resp.Services, "Vaccinations")
	assert.Contains(t, resp.Services, "Compound Medications")
}

func TestGetPharmacyHours(t *testing.T) {
	p := NewPharmacy()
	ctx := context.Background()

	t.Run("specific date", func(t *testing.T) {
		// 2025-03-01 is a Saturday.
		resp := p.GetPharmacyHours(ctx, "pharmacy_001", "2025-03-01")
		require.True(t, resp.Success)
		assert.Equal(t, "pharmacy_001", resp.PharmacyID)
		assert.Equal(t, "saturday", resp.Day)
		assert.Equal(t, "9:00 AM - 6:00 PM", resp.Hours)
		// A parsed date carries midnight as its time of day, which falls
		// outside the open window.
		assert.False(t, resp.IsOpen)
		assert.Len(t, resp.AllHours, 7)
	})

	t.Run("empty date means today", func(t *testing.T) {
		resp := p.GetPharmacyHours(ctx, "pharmacy_002", "")
		require.True(t, resp.Success)
		assert.NotEmpty(t, resp.Date)
		assert.NotEmpty(t, resp.Day)
	})

	t.Run("malformed date", func(t *testing.T) {
		resp := p.GetPharmacyHours(ctx, "pharmacy_001", "01-03-2025")
		require.False(t, resp.Success)
		assert.Equal(t, service.CodeValidation, resp.Code)
		assert.Equal(t, "date must be in YYYY-MM-DD format", resp.Message)
	})

	t.Run("unknown pharmacy", func(t *testing.T) {
		resp := p.GetPharmacyHours(ctx, "pharmacy_999", "2025-03-01")
		require.False(t, resp.Success)
		assert.Equal(t, service.CodeNotFound, resp.Code)
	})
}
