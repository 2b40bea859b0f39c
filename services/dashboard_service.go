package services

import (
	"context"

	"siteyonetim.app/models"
	"siteyonetim.app/repositories"
)

const recentIssueLimit = 5

// DashboardCounts panodaki sayaç kartlarıdır.
type DashboardCounts struct {
	Sites                int64 `json:"sites"`
	Blocks               int64 `json:"blocks"`
	Apartments           int64 `json:"apartments"`
	OpenIssues           int64 `json:"openIssues"`
	InventoryItems       int64 `json:"inventoryItems"`
	ScheduledMaintenance int64 `json:"scheduledMaintenance"`
}

type DashboardStats struct {
	Counts           DashboardCounts  `json:"counts"`
	IssuesByStatus   map[string]int64 `json:"issuesByStatus"`
	IssuesByPriority map[string]int64 `json:"issuesByPriority"`
	RecentIssues     []models.Issue   `json:"recentIssues"`
}

type IDashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type DashboardService struct {
	sites       repositories.ISiteRepository
	blocks      repositories.IBlockRepository
	apartments  repositories.IApartmentRepository
	issues      repositories.IIssueRepository
	inventory   repositories.IInventoryRepository
	maintenance repositories.IMaintenanceRepository
	locations   ILocationResolver
}

func NewDashboardService(
	sites repositories.ISiteRepository,
	blocks repositories.IBlockRepository,
	apartments repositories.IApartmentRepository,
	issues repositories.IIssueRepository,
	inventory repositories.IInventoryRepository,
	maintenance repositories.IMaintenanceRepository,
	locations ILocationResolver,
) IDashboardService {
	return &DashboardService{
		sites: sites, blocks: blocks, apartments: apartments, issues: issues,
		inventory: inventory, maintenance: maintenance, locations: locations,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error
	if stats.Counts.Sites, err = s.sites.Count(ctx, "is_active = ?", true); err != nil {
		return nil, err
	}
	if stats.Counts.Blocks, err = s.blocks.Count(ctx, "is_active = ?", true); err != nil {
		return nil, err
	}
	if stats.Counts.Apartments, err = s.apartments.Count(ctx, "is_active = ?", true); err != nil {
		return nil, err
	}
	if stats.Counts.OpenIssues, err = s.issues.Count(ctx, "status IN ?", []string{
		string(models.IssueStatusOpen), string(models.IssueStatusInProgress), string(models.IssueStatusWaiting),
	}); err != nil {
		return nil, err
	}
	if stats.Counts.InventoryItems, err = s.inventory.Count(ctx, "is_active = ?", true); err != nil {
		return nil, err
	}
	if stats.Counts.ScheduledMaintenance, err = s.maintenance.Count(ctx, "is_active = ? AND status = ?", true, models.MaintenanceStatusScheduled); err != nil {
		return nil, err
	}
	if stats.IssuesByStatus, err = s.issues.CountGrouped(ctx, "status"); err != nil {
		return nil, err
	}
	if stats.IssuesByPriority, err = s.issues.CountGrouped(ctx, "priority"); err != nil {
		return nil, err
	}
	if stats.RecentIssues, err = s.issues.Recent(ctx, recentIssueLimit); err != nil {
		return nil, err
	}
	cache := LocationCache{}
	for i := range stats.RecentIssues {
		stats.RecentIssues[i].LocationPath = s.locations.Path(ctx, stats.RecentIssues[i].Location, cache)
	}
	return stats, nil
}

var _ IDashboardService = (*DashboardService)(nil)
