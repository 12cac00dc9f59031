package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/pkg/logger"
	"voyagebj-service/pkg/utils"
	"voyagebj-service/templates"

	"github.com/google/uuid"
)

// NetworkService lets a company manage its stations and routes
type NetworkService struct {
	stations repository.StationRepository
	logger   logger.Logger
	newID    func() string
}

// NewNetworkService creates a new network service
func NewNetworkService(stations repository.StationRepository, logger logger.Logger) *NetworkService {
	return &NetworkService{
		stations: stations,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// ListForCompany returns every node owned by companyID
func (s *NetworkService) ListForCompany(ctx context.Context, companyID string) ([]entity.Station, error) {
	nodes, err := s.stations.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var owned []entity.Station
	for _, n := range nodes {
		if n.CompanyID == companyID {
			owned = append(owned, n)
		}
	}
	return owned, nil
}

// PrepareRoute returns a new route draft attached to parentID, starting where the station is
func (s *NetworkService) PrepareRoute(ctx context.Context, company entity.Account, parentID string) (*entity.Station, error) {
	parent, err := s.stations.FindByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent.CompanyID != company.ID {
		return nil, fmt.Errorf("station %s: %w", parentID, entity.ErrForbidden)
	}
	return &entity.Station{
		Type:      entity.NodeRoute,
		ParentID:  parent.ID,
		CompanyID: company.ID,
		Location:  parent.Location,
		PointA:    parent.Location,
	}, nil
}

// Save validates node, fills its defaults and stores it for company
func (s *NetworkService) Save(ctx context.Context, company entity.Account, node entity.Station) (*entity.Station, error) {
	if !company.IsCompany() {
		return nil, fmt.Errorf("account %s is not a company: %w", company.ID, entity.ErrForbidden)
	}
	if node.Type == "" {
		node.Type = entity.NodeStation
	}
	if err := validateNode(node); err != nil {
		return nil, err
	}

	if node.ID != "" {
		existing, err := s.stations.FindByID(ctx, node.ID)
		switch {
		case err == nil:
			if existing.CompanyID != company.ID {
				return nil, fmt.Errorf("station %s: %w", node.ID, entity.ErrForbidden)
			}
		case errors.Is(err, entity.ErrNotFound):
		default:
			return nil, err
		}
	} else {
		node.ID = s.newID()
	}

	if node.IsRoute() && node.ParentID != "" {
		if err := s.checkParent(ctx, company.ID, node.ParentID); err != nil {
			return nil, err
		}
	}

	applyDefaults(&node, company)

	if err := s.stations.Upsert(ctx, node); err != nil {
		return nil, fmt.Errorf("failed to save station: %w", err)
	}

	s.logger.Info("Station saved",
		"stationId", node.ID,
		"type", node.Type,
		"companyId", company.ID)
	return &node, nil
}

// Delete removes one of the company's nodes. Routes attached to a deleted
// station are kept and become orphans.
func (s *NetworkService) Delete(ctx context.Context, company entity.Account, id string) error {
	node, err := s.stations.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if node.CompanyID != company.ID {
		return fmt.Errorf("station %s: %w", id, entity.ErrForbidden)
	}
	if err := s.stations.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete station: %w", err)
	}
	s.logger.Info("Station deleted", "stationId", id, "companyId", company.ID)
	return nil
}

// Describe renders a commercial description for a route
func (s *NetworkService) Describe(node entity.Station) (string, error) {
	return templates.DescribeRoute(node)
}

func (s *NetworkService) checkParent(ctx context.Context, companyID, parentID string) error {
	parent, err := s.stations.FindByID(ctx, parentID)
	if errors.Is(err, entity.ErrNotFound) {
		return entity.NewValidationError("parentId", "parent station does not exist")
	}
	if err != nil {
		return err
	}
	if parent.Type != entity.NodeStation {
		return entity.NewValidationError("parentId", "parent must be a station")
	}
	if parent.CompanyID != companyID {
		return entity.NewValidationError("parentId", "parent station belongs to another company")
	}
	return nil
}

func validateNode(node entity.Station) error {
	switch node.Type {
	case entity.NodeStation:
		if strings.TrimSpace(node.Name) == "" || strings.TrimSpace(node.Location) == "" {
			return entity.NewValidationError("name", "a station needs a name and a location")
		}
	case entity.NodeRoute:
		if strings.TrimSpace(node.PointA) == "" || strings.TrimSpace(node.PointB) == "" {
			return entity.NewValidationError("pointA", "a route needs a departure and an arrival")
		}
		if node.Price <= 0 {
			return entity.NewValidationError("price", "must be positive")
		}
		if node.PricePremium < 0 {
			return entity.NewValidationError("pricePremium", "must not be negative")
		}
	default:
		return entity.NewValidationError("type", fmt.Sprintf("unknown node type %q", node.Type))
	}

	for _, d := range node.WorkDays {
		if !d.Valid() {
			return entity.NewValidationError("workDays", fmt.Sprintf("unknown day %q", d))
		}
	}
	for _, h := range node.DepartureHours {
		if !utils.IsClock(strings.TrimSpace(h)) {
			return entity.NewValidationError("departureHours", fmt.Sprintf("invalid time %q", h))
		}
	}
	for _, h := range node.ArrivalHours {
		if !utils.IsClock(strings.TrimSpace(h)) {
			return entity.NewValidationError("arrivalHours", fmt.Sprintf("invalid time %q", h))
		}
	}
	if len(node.ArrivalHours) > 0 && len(node.ArrivalHours) != len(node.DepartureHours) {
		return entity.NewValidationError("arrivalHours", "must match departure hours one to one")
	}
	return nil
}

func applyDefaults(node *entity.Station, company entity.Account) {
	node.CompanyID = company.ID
	node.CompanyName = company.CompanyName
	if node.CompanyName == "" {
		node.CompanyName = "Agence"
	}
	// stations are validated with a name, only routes fall back
	if node.IsRoute() && strings.TrimSpace(node.Name) == "" {
		node.Name = fmt.Sprintf("%s - %s", node.PointA, node.PointB)
	}
	if node.PhotoURL == "" {
		node.PhotoURL = "https://picsum.photos/seed/" + node.ID + "/400/300"
	}
	if node.WorkDays == nil {
		node.WorkDays = []entity.DayCode{}
	}
	node.DepartureHours = trimAll(node.DepartureHours)
	node.ArrivalHours = trimAll(node.ArrivalHours)
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	trimmed := make([]string, len(values))
	for i, v := range values {
		trimmed[i] = strings.TrimSpace(v)
	}
	return trimmed
}
