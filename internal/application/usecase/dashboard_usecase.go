package usecase

import (
	"context"

	"github.com/kthaib/aqari-api/internal/application/dto"
	"github.com/kthaib/aqari-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

// DashboardUseCase assembles the landing-page summary: ledger totals,
// entity counters, recent payments and the recent audit trail.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
	auditRepo  repository.AuditRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(reportRepo repository.ReportRepository, auditRepo repository.AuditRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, auditRepo: auditRepo}
}

// Get runs the independent dashboard queries concurrently and merges
// the results.
func (uc *DashboardUseCase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	var (
		totals repository.LedgerTotals
		counts repository.DashboardCounts
		recent []repository.PaymentRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = uc.reportRepo.GetLedgerTotals(gctx, repository.ReportFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = uc.reportRepo.GetDashboardCounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = uc.reportRepo.GetRecentPayments(gctx, 10)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	trail, err := uc.auditRepo.ListRecent(10)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TotalPayments:    totals.Gross,
		TotalCommissions: totals.Commissions,
		TotalVAT:         totals.VAT,
		NetToOwners:      totals.NetToOwners,
		Owners:           counts.Owners,
		Tenants:          counts.Tenants,
		Projects:         counts.Projects,
		Units:            counts.Units,
		AvailableUnits:   counts.AvailableUnits,
		RentedUnits:      counts.RentedUnits,
		RecentPayments:   make([]dto.ReportRow, 0, len(recent)),
		RecentAudit:      make([]dto.AuditEntryDTO, 0, len(trail)),
	}
	for _, r := range recent {
		resp.RecentPayments = append(resp.RecentPayments, dto.ReportRow{
			ID:                r.ID,
			Date:              r.Date.Format("2006-01-02"),
			UnitNumber:        r.UnitNumber,
			ProjectName:       r.ProjectName,
			PayerType:         r.PayerType,
			PayerName:         r.PayerName,
			Amount:            r.Amount,
			CompanyCommission: r.CompanyCommission,
			VATOnCommission:   r.VATOnCommission,
			NetToOwner:        r.NetToOwner,
			Description:       r.Description,
		})
	}
	for _, a := range trail {
		resp.RecentAudit = append(resp.RecentAudit, dto.AuditEntryDTO{
			Action:    a.Action,
			User:      a.User,
			Timestamp: a.Timestamp,
		})
	}
	return resp, nil
}
