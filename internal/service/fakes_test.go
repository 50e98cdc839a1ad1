package service

import (
	"sort"
	"time"

	"go-pix-ranking/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stands-ins so the services can be exercised without a
// database. Behavior mirrors the SQL versions closely enough for the
// pipeline and report contracts to be tested end to end.

type fakeOperatorRepo struct {
	operators []model.Operator
	failWith  error
}

func (r *fakeOperatorRepo) add(name, registration string) model.Operator {
	operator := model.Operator{Name: name, RegistrationNumber: registration}
	operator.ID = uuid.New()
	operator.CreatedAt = time.Now()
	r.operators = append(r.operators, operator)
	return operator
}

func (r *fakeOperatorRepo) Create(operator *model.Operator) error {
	if r.failWith != nil {
		return r.failWith
	}
	operator.ID = uuid.New()
	operator.CreatedAt = time.Now()
	r.operators = append(r.operators, *operator)
	return nil
}

func (r *fakeOperatorRepo) Update(operator *model.Operator) error {
	for i := range r.operators {
		if r.operators[i].ID == operator.ID {
			r.operators[i] = *operator
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeOperatorRepo) Delete(id uuid.UUID) error {
	for i := range r.operators {
		if r.operators[i].ID == id {
			r.operators = append(r.operators[:i], r.operators[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeOperatorRepo) FindByID(id uuid.UUID) (*model.Operator, error) {
	for i := range r.operators {
		if r.operators[i].ID == id {
			operator := r.operators[i]
			return &operator, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOperatorRepo) FindAll(limit, skip int) ([]model.Operator, error) {
	if skip >= len(r.operators) {
		return nil, nil
	}
	end := skip + limit
	if end > len(r.operators) {
		end = len(r.operators)
	}
	return r.operators[skip:end], nil
}

func (r *fakeOperatorRepo) Count() (int64, error) {
	return int64(len(r.operators)), nil
}

func (r *fakeOperatorRepo) FindByRegistration(registration string) (*model.Operator, error) {
	for i := range r.operators {
		if r.operators[i].RegistrationNumber == registration {
			operator := r.operators[i]
			return &operator, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeOperatorRepo) FindByRegistrations(registrations []string) ([]model.Operator, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	wanted := make(map[string]bool, len(registrations))
	for _, registration := range registrations {
		wanted[registration] = true
	}
	var found []model.Operator
	for _, operator := range r.operators {
		if wanted[operator.RegistrationNumber] {
			found = append(found, operator)
		}
	}
	return found, nil
}

type fakeSaleRepo struct {
	operators *fakeOperatorRepo
	sales     []model.Sale
	failWith  error
}

func (r *fakeSaleRepo) ReplaceAll(sales []model.Sale) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.sales = append([]model.Sale(nil), sales...)
	return nil
}

func (r *fakeSaleRepo) CountByOperator(operatorID uuid.UUID) (int64, error) {
	var count int64
	for _, sale := range r.sales {
		if sale.OperatorID == operatorID {
			count++
		}
	}
	return count, nil
}

func inRange(saleDate time.Time, startDate, endDate *time.Time) bool {
	if startDate != nil && saleDate.Before(*startDate) {
		return false
	}
	if endDate != nil && saleDate.After(*endDate) {
		return false
	}
	return true
}

func (r *fakeSaleRepo) operatorByID(id uuid.UUID) *model.Operator {
	if r.operators == nil {
		return nil
	}
	operator, err := r.operators.FindByID(id)
	if err != nil {
		return nil
	}
	return operator
}

func (r *fakeSaleRepo) Ranking(startDate, endDate *time.Time) ([]model.OperatorRanking, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	grouped := make(map[uuid.UUID]*model.OperatorRanking)
	for _, sale := range r.sales {
		if !inRange(sale.SaleDate, startDate, endDate) {
			continue
		}
		entry, ok := grouped[sale.OperatorID]
		if !ok {
			operator := r.operatorByID(sale.OperatorID)
			entry = &model.OperatorRanking{
				OperatorID:  sale.OperatorID,
				TotalAmount: decimal.Zero,
			}
			if operator != nil {
				entry.Name = operator.Name
				entry.RegistrationNumber = operator.RegistrationNumber
				entry.ProfileImage = operator.ProfileImage
			}
			grouped[sale.OperatorID] = entry
		}
		entry.SalesCount++
		entry.TotalAmount = entry.TotalAmount.Add(sale.Amount)
	}

	var ranking []model.OperatorRanking
	for _, entry := range grouped {
		ranking = append(ranking, *entry)
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].SalesCount != ranking[j].SalesCount {
			return ranking[i].SalesCount > ranking[j].SalesCount
		}
		if !ranking[i].TotalAmount.Equal(ranking[j].TotalAmount) {
			return ranking[i].TotalAmount.GreaterThan(ranking[j].TotalAmount)
		}
		return ranking[i].RegistrationNumber < ranking[j].RegistrationNumber
	})
	return ranking, nil
}

func (r *fakeSaleRepo) RecentSales(startDate, endDate *time.Time, limit int) ([]model.SaleWithOperator, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var matching []model.Sale
	for _, sale := range r.sales {
		if inRange(sale.SaleDate, startDate, endDate) {
			matching = append(matching, sale)
		}
	}
	sort.Slice(matching, func(i, j int) bool {
		return matching[i].SaleDate.After(matching[j].SaleDate)
	})
	if len(matching) > limit {
		matching = matching[:limit]
	}

	var results []model.SaleWithOperator
	for _, sale := range matching {
		row := model.SaleWithOperator{
			ID:                   sale.ID,
			SaleDate:             sale.SaleDate,
			Amount:               sale.Amount,
			Product:              sale.Product,
			OperatorRegistration: sale.OperatorRegistration,
			CreatedAt:            sale.CreatedAt,
		}
		if operator := r.operatorByID(sale.OperatorID); operator != nil {
			row.OperatorName = operator.Name
		}
		results = append(results, row)
	}
	return results, nil
}

func (r *fakeSaleRepo) Summary(startDate, endDate *time.Time) (*model.SalesSummary, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	summary := &model.SalesSummary{TotalAmount: decimal.Zero}
	for _, sale := range r.sales {
		if inRange(sale.SaleDate, startDate, endDate) {
			summary.TotalSales++
			summary.TotalAmount = summary.TotalAmount.Add(sale.Amount)
		}
	}
	return summary, nil
}

// fakeImageStore records saves and removals without touching the disk

type fakeImageStore struct {
	saved   []string
	removed []string
}

func (s *fakeImageStore) Save(originalName string, data []byte) (string, error) {
	path := "/uploads/fake-" + originalName
	s.saved = append(s.saved, path)
	return path, nil
}

func (s *fakeImageStore) Remove(publicPath string) error {
	s.removed = append(s.removed, publicPath)
	return nil
}
