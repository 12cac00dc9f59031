package usecase

import (
	"context"
	"strings"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/pkg/utils"
)

// CompanyStats counts a company's network
type CompanyStats struct {
	Stations int
	Routes   int
}

// CatalogService answers the public read queries
type CatalogService struct {
	accounts repository.AccountRepository
	stations repository.StationRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(accounts repository.AccountRepository, stations repository.StationRepository) *CatalogService {
	return &CatalogService{
		accounts: accounts,
		stations: stations,
	}
}

// ApprovedCompanies lists the companies visible to the public
func (s *CatalogService) ApprovedCompanies(ctx context.Context) ([]entity.Account, error) {
	accounts, err := s.accounts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var approved []entity.Account
	for _, a := range accounts {
		if a.IsApproved() {
			approved = append(approved, a)
		}
	}
	return approved, nil
}

// PendingCompanies lists the companies awaiting moderation
func (s *CatalogService) PendingCompanies(ctx context.Context) ([]entity.Account, error) {
	accounts, err := s.accounts.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var pending []entity.Account
	for _, a := range accounts {
		if a.IsCompany() && a.Status == entity.CompanyPending {
			pending = append(pending, a)
		}
	}
	return pending, nil
}

// CompanyStats counts the stations and routes of companyID
func (s *CatalogService) CompanyStats(ctx context.Context, companyID string) (CompanyStats, error) {
	nodes, err := s.stations.GetAll(ctx)
	if err != nil {
		return CompanyStats{}, err
	}
	var stats CompanyStats
	for _, n := range nodes {
		if n.CompanyID != companyID {
			continue
		}
		if n.IsRoute() {
			stats.Routes++
		} else {
			stats.Stations++
		}
	}
	return stats, nil
}

// RoutesForStation lists the routes attached to stationID
func (s *CatalogService) RoutesForStation(ctx context.Context, stationID string) ([]entity.Station, error) {
	nodes, err := s.stations.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var routes []entity.Station
	for _, n := range nodes {
		if n.IsRoute() && n.ParentID == stationID {
			routes = append(routes, n)
		}
	}
	return routes, nil
}

// Search returns the stations of approved companies located in departure.
// When arrival is set, a station also needs a route from departure to
// arrival. Matching is a case-insensitive substring test; empty terms match all.
func (s *CatalogService) Search(ctx context.Context, departure, arrival string) ([]entity.Station, error) {
	companies, err := s.ApprovedCompanies(ctx)
	if err != nil {
		return nil, err
	}
	approved := make(map[string]bool, len(companies))
	for _, c := range companies {
		approved[c.ID] = true
	}

	nodes, err := s.stations.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	departure = strings.TrimSpace(departure)
	arrival = strings.TrimSpace(arrival)

	routesByParent := make(map[string][]entity.Station)
	for _, n := range nodes {
		if approved[n.CompanyID] && n.IsRoute() && n.ParentID != "" {
			routesByParent[n.ParentID] = append(routesByParent[n.ParentID], n)
		}
	}

	var result []entity.Station
	for _, n := range nodes {
		if !approved[n.CompanyID] || n.Type != entity.NodeStation {
			continue
		}
		if departure != "" && !utils.ContainsFold(n.Location, departure) {
			continue
		}
		if arrival != "" && !hasRoute(routesByParent[n.ID], departure, arrival) {
			continue
		}
		result = append(result, n)
	}
	return result, nil
}

// OrphanedRoutes lists routes whose parent station no longer exists
func (s *CatalogService) OrphanedRoutes(ctx context.Context) ([]entity.Station, error) {
	nodes, err := s.stations.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	exists := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		exists[n.ID] = true
	}
	var orphans []entity.Station
	for _, n := range nodes {
		if n.IsRoute() && n.ParentID != "" && !exists[n.ParentID] {
			orphans = append(orphans, n)
		}
	}
	return orphans, nil
}

func hasRoute(routes []entity.Station, departure, arrival string) bool {
	for _, r := range routes {
		if departure != "" && !utils.ContainsFold(r.PointA, departure) {
			continue
		}
		if utils.ContainsFold(r.PointB, arrival) {
			return true
		}
	}
	return false
}
