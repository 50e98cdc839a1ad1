package service

import (
	"encoding/json"
	"strings"
	"time"

	"go-pix-ranking/internal/model"
	"go-pix-ranking/internal/repository"
	"go-pix-ranking/internal/ws"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IngestService interface {
	// ProcessLedger runs one ingestion of an uploaded ledger: parse,
	// normalize, resolve operators, replace the sale collection and report.
	ProcessLedger(content string) (*model.IngestReport, error)
}

type ingestService struct {
	operatorRepo repository.OperatorRepository
	saleRepo     repository.SaleRepository
	wsHub        *ws.Hub
	logger       *zap.Logger
}

func NewIngestService(oRepo repository.OperatorRepository, sRepo repository.SaleRepository,
	hub *ws.Hub, logger *zap.Logger) IngestService {
	return &ingestService{
		operatorRepo: oRepo,
		saleRepo:     sRepo,
		wsHub:        hub,
		logger:       logger,
	}
}

func (s *ingestService) ProcessLedger(content string) (*model.IngestReport, error) {
	rows, err := parseLedger(content)
	if err != nil {
		return nil, err
	}

	// One batch lookup for every matricula in the file
	operators, err := s.resolveOperators(rows)
	if err != nil {
		return nil, err
	}

	report := &model.IngestReport{
		TotalProcessed:   len(rows),
		UnknownOperators: []string{},
	}

	var valid []model.Sale
	seenUnknown := make(map[string]bool)

	for _, row := range rows {
		registration := strings.TrimSpace(row.Registration)
		if registration == "" {
			report.Skipped.MissingRegistration++
			continue
		}

		saleDate, err := parseSaleDate(row.Date)
		if err != nil {
			report.Skipped.InvalidDate++
			continue
		}

		amount, err := parseAmount(row.Amount)
		if err != nil {
			report.Skipped.InvalidAmount++
			continue
		}

		product := strings.TrimSpace(row.Product)
		if product == "" {
			product = model.DefaultProduct
		}

		operatorID, ok := operators[registration]
		if !ok {
			report.Skipped.UnknownOperator++
			if !seenUnknown[registration] {
				seenUnknown[registration] = true
				report.UnknownOperators = append(report.UnknownOperators, registration)
			}
			continue
		}

		valid = append(valid, model.Sale{
			OperatorID:           operatorID,
			OperatorRegistration: registration,
			SaleDate:             saleDate,
			Amount:               amount,
			Product:              product,
		})
	}

	// Full replace: the ledger reflects exactly this upload, including when
	// every row was dropped.
	if err := s.saleRepo.ReplaceAll(valid); err != nil {
		return nil, err
	}

	report.Success = true
	report.ValidRecords = len(valid)
	report.IgnoredRecords = report.TotalProcessed - report.ValidRecords
	report.ProcessingDate = time.Now()
	report.IsReplacement = true

	s.logger.Info("ledger ingested",
		zap.Int("total", report.TotalProcessed),
		zap.Int("imported", report.ValidRecords),
		zap.Int("ignored", report.IgnoredRecords),
		zap.Int("unknown_operators", len(report.UnknownOperators)),
	)

	s.broadcast(report)

	return report, nil
}

// resolveOperators maps every distinct matricula in the file to its operator
// ID in a single query.
func (s *ingestService) resolveOperators(rows []ledgerRow) (map[string]uuid.UUID, error) {
	seen := make(map[string]bool)
	var registrations []string
	for _, row := range rows {
		registration := strings.TrimSpace(row.Registration)
		if registration == "" || seen[registration] {
			continue
		}
		seen[registration] = true
		registrations = append(registrations, registration)
	}

	operators, err := s.operatorRepo.FindByRegistrations(registrations)
	if err != nil {
		return nil, err
	}

	resolved := make(map[string]uuid.UUID, len(operators))
	for _, operator := range operators {
		resolved[operator.RegistrationNumber] = operator.ID
	}
	return resolved, nil
}

func (s *ingestService) broadcast(report *model.IngestReport) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "ingestion_completed",
			"report": report,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
