package repository

import (
	"time"

	"go-pix-ranking/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	// ReplaceAll swaps the whole ledger for the given rows. Delete and insert
	// run inside one transaction so readers never observe an empty ledger
	// between the two phases.
	ReplaceAll(sales []model.Sale) error
	CountByOperator(operatorID uuid.UUID) (int64, error)
	Ranking(startDate, endDate *time.Time) ([]model.OperatorRanking, error)
	RecentSales(startDate, endDate *time.Time, limit int) ([]model.SaleWithOperator, error)
	Summary(startDate, endDate *time.Time) (*model.SalesSummary, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) ReplaceAll(sales []model.Sale) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Sale{}).Error; err != nil {
			return err
		}
		if len(sales) == 0 {
			return nil
		}
		return tx.CreateInBatches(sales, 500).Error
	})
}

func (r *saleRepo) CountByOperator(operatorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Sale{}).Where("operator_id = ?", operatorID).Count(&count).Error
	return count, err
}

// dateFiltered applies the optional inclusive [startDate, endDate] filter.
// The caller already extends endDate to the last instant of its day.
func dateFiltered(query *gorm.DB, startDate, endDate *time.Time) *gorm.DB {
	if startDate != nil {
		query = query.Where("sale_date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("sale_date <= ?", *endDate)
	}
	return query
}

func (r *saleRepo) Ranking(startDate, endDate *time.Time) ([]model.OperatorRanking, error) {
	query := r.db.Model(&model.Sale{}).
		Select(`
			operators.id,
			operators.name,
			operators.registration_number,
			operators.profile_image,
			COUNT(sales.id) as sales_count,
			COALESCE(SUM(sales.amount), 0) as total_amount
		`).
		Joins("JOIN operators ON operators.id = sales.operator_id")

	rows, err := dateFiltered(query, startDate, endDate).
		Group("operators.id, operators.name, operators.registration_number, operators.profile_image").
		Order("sales_count DESC, total_amount DESC, operators.registration_number ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.OperatorRanking
	for rows.Next() {
		var entry model.OperatorRanking
		if err := rows.Scan(&entry.OperatorID, &entry.Name, &entry.RegistrationNumber,
			&entry.ProfileImage, &entry.SalesCount, &entry.TotalAmount); err != nil {
			return nil, err
		}
		results = append(results, entry)
	}
	return results, rows.Err()
}

func (r *saleRepo) RecentSales(startDate, endDate *time.Time, limit int) ([]model.SaleWithOperator, error) {
	query := r.db.Model(&model.Sale{}).
		Select(`
			sales.id,
			sales.sale_date,
			sales.amount,
			sales.product,
			operators.name as operator_name,
			sales.operator_registration,
			sales.created_at
		`).
		Joins("JOIN operators ON operators.id = sales.operator_id")

	rows, err := dateFiltered(query, startDate, endDate).
		Order("sales.sale_date DESC").
		Limit(limit).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.SaleWithOperator
	for rows.Next() {
		var sale model.SaleWithOperator
		if err := rows.Scan(&sale.ID, &sale.SaleDate, &sale.Amount, &sale.Product,
			&sale.OperatorName, &sale.OperatorRegistration, &sale.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, sale)
	}
	return results, rows.Err()
}

func (r *saleRepo) Summary(startDate, endDate *time.Time) (*model.SalesSummary, error) {
	var summary model.SalesSummary

	if err := dateFiltered(r.db.Model(&model.Sale{}), startDate, endDate).
		Count(&summary.TotalSales).Error; err != nil {
		return nil, err
	}

	// Row().Scan so the decimal lands via its sql.Scanner
	row := dateFiltered(r.db.Model(&model.Sale{}), startDate, endDate).
		Select("COALESCE(SUM(amount), 0)").
		Row()
	if err := row.Scan(&summary.TotalAmount); err != nil {
		return nil, err
	}

	return &summary, nil
}
