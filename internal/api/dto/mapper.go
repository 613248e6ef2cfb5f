package dto

import (
	"github.com/munigo/civic-portal-api/internal/domain"
)

// ToReport converts a CreateReportRequest DTO to a Report domain model.
// CityID is intentionally absent: the tenancy scope stamps it at save time.
func (r *CreateReportRequest) ToReport() *domain.Report {
	return &domain.Report{
		BairroID:    r.BairroID,
		Category:    r.Category,
		Title:       r.Title,
		Description: r.Description,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Status:      domain.ReportStatusOpen,
	}
}

func FromReport(report *domain.Report) *ReportResponse {
	return &ReportResponse{
		ID:          report.ID,
		CityID:      report.CityID,
		BairroID:    report.BairroID,
		UserID:      report.UserID,
		Category:    report.Category,
		Title:       report.Title,
		Description: report.Description,
		Status:      string(report.Status),
		Latitude:    report.Latitude,
		Longitude:   report.Longitude,
		CreatedAt:   report.CreatedAt,
		UpdatedAt:   report.UpdatedAt,
	}
}

func FromReports(reports []domain.Report) []ReportResponse {
	responses := make([]ReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = *FromReport(&report)
	}
	return responses
}

func FromCity(city *domain.City) *CityResponse {
	return &CityResponse{
		ID:         city.ID,
		Slug:       city.Slug,
		Name:       city.Name,
		RegionCode: city.RegionCode,
		Domain:     city.Domain,
		Timezone:   city.Timezone,
		Latitude:   city.Latitude,
		Longitude:  city.Longitude,
	}
}

func FromCities(cities []domain.City) []CityResponse {
	responses := make([]CityResponse, len(cities))
	for i, city := range cities {
		responses[i] = *FromCity(&city)
	}
	return responses
}

func FromBairro(bairro *domain.Bairro) *BairroResponse {
	return &BairroResponse{
		ID:     bairro.ID,
		CityID: bairro.CityID,
		Name:   bairro.Name,
	}
}

func FromBairros(bairros []domain.Bairro) []BairroResponse {
	responses := make([]BairroResponse, len(bairros))
	for i, bairro := range bairros {
		responses[i] = *FromBairro(&bairro)
	}
	return responses
}

func FromRestriction(restriction *domain.Restriction) *RestrictionResponse {
	return &RestrictionResponse{
		ID:             restriction.ID,
		UserID:         restriction.UserID,
		Type:           string(restriction.Type),
		ScopeModuleKey: restriction.ScopeModuleKey,
		ScopeCityID:    restriction.ScopeCityID,
		Reason:         restriction.Reason,
		StartsAt:       restriction.StartsAt,
		EndsAt:         restriction.EndsAt,
		RevokedAt:      restriction.RevokedAt,
		CreatedBy:      restriction.CreatedBy,
		CreatedAt:      restriction.CreatedAt,
	}
}

func FromRestrictions(restrictions []domain.Restriction) []RestrictionResponse {
	responses := make([]RestrictionResponse, len(restrictions))
	for i, restriction := range restrictions {
		responses[i] = *FromRestriction(&restriction)
	}
	return responses
}

func FromIncident(incident *domain.TenancyIncident) *IncidentResponse {
	return &IncidentResponse{
		ID:          incident.ID,
		CityID:      incident.CityID,
		Kind:        string(incident.Kind),
		Fingerprint: incident.Fingerprint,
		Severity:    string(incident.Severity),
		ActorID:     incident.ActorID,
		Host:        incident.Host,
		Path:        incident.Path,
		Message:     incident.Message,
		Details:     incident.Details,
		OccurredAt:  incident.OccurredAt,
	}
}

func FromIncidents(incidents []domain.TenancyIncident) []IncidentResponse {
	responses := make([]IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = *FromIncident(&incident)
	}
	return responses
}
