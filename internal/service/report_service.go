package service

import (
	"time"

	"go-pix-ranking/internal/model"
	"go-pix-ranking/internal/repository"
)

const (
	DefaultRecentLimit = 50
	DefaultReportLimit = 1000
)

// DateRange is an optional inclusive [StartDate, EndDate] filter. A nil bound
// leaves that side open; EndDate covers its whole calendar day.
type DateRange struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type ReportService interface {
	Ranking(dateRange DateRange) ([]model.OperatorRanking, error)
	RecentSales(dateRange DateRange, limit int) ([]model.SaleWithOperator, error)
	Summary(dateRange DateRange) (*model.SalesSummary, error)
}

type reportService struct {
	saleRepo repository.SaleRepository
}

func NewReportService(sRepo repository.SaleRepository) ReportService {
	return &reportService{saleRepo: sRepo}
}

// endOfDay extends the end bound to the last instant of its calendar day so
// a sale dated exactly on EndDate is included.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func (r DateRange) normalized() (startDate, endDate *time.Time) {
	startDate = r.StartDate
	if r.EndDate != nil {
		end := endOfDay(*r.EndDate)
		endDate = &end
	}
	return startDate, endDate
}

func (s *reportService) Ranking(dateRange DateRange) ([]model.OperatorRanking, error) {
	startDate, endDate := dateRange.normalized()
	ranking, err := s.saleRepo.Ranking(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if ranking == nil {
		ranking = []model.OperatorRanking{}
	}
	return ranking, nil
}

func (s *reportService) RecentSales(dateRange DateRange, limit int) ([]model.SaleWithOperator, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	startDate, endDate := dateRange.normalized()
	sales, err := s.saleRepo.RecentSales(startDate, endDate, limit)
	if err != nil {
		return nil, err
	}
	if sales == nil {
		sales = []model.SaleWithOperator{}
	}
	return sales, nil
}

func (s *reportService) Summary(dateRange DateRange) (*model.SalesSummary, error) {
	startDate, endDate := dateRange.normalized()
	return s.saleRepo.Summary(startDate, endDate)
}
