package service

import (
	"errors"
	"fmt"

	"go-pix-ranking/internal/model"
	"go-pix-ranking/internal/repository"
	"go-pix-ranking/pkg/storage"
	"go-pix-ranking/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrOperatorNotFound      = errors.New("operator not found")
	ErrDuplicateRegistration = errors.New("registration number already in use")
)

// OperatorInUseError blocks deletion of an operator that sales still
// reference; the count is surfaced to the caller.
type OperatorInUseError struct {
	SalesCount int64
}

func (e *OperatorInUseError) Error() string {
	return fmt.Sprintf("operator has %d associated sales", e.SalesCount)
}

// ImageUpload is a profile image taken from a multipart form
type ImageUpload struct {
	Filename string
	Data     []byte
}

type CreateOperatorRequest struct {
	Name               string
	RegistrationNumber string
	Image              *ImageUpload
}

type UpdateOperatorRequest struct {
	Name               string
	RegistrationNumber string
	Image              *ImageUpload
	KeepExistingImage  bool
}

type OperatorService interface {
	List(limit, skip int) (*model.OperatorListResponse, error)
	Get(id uuid.UUID) (*model.Operator, error)
	Create(req CreateOperatorRequest) (*model.Operator, error)
	Update(id uuid.UUID, req UpdateOperatorRequest) (*model.Operator, error)
	Delete(id uuid.UUID) error
}

type operatorService struct {
	operatorRepo repository.OperatorRepository
	saleRepo     repository.SaleRepository
	images       storage.ImageStore
	logger       *zap.Logger
}

func NewOperatorService(oRepo repository.OperatorRepository, sRepo repository.SaleRepository,
	images storage.ImageStore, logger *zap.Logger) OperatorService {
	return &operatorService{
		operatorRepo: oRepo,
		saleRepo:     sRepo,
		images:       images,
		logger:       logger,
	}
}

func (s *operatorService) List(limit, skip int) (*model.OperatorListResponse, error) {
	operators, err := s.operatorRepo.FindAll(limit, skip)
	if err != nil {
		return nil, err
	}
	if operators == nil {
		operators = []model.Operator{}
	}

	total, err := s.operatorRepo.Count()
	if err != nil {
		return nil, err
	}

	return &model.OperatorListResponse{
		Operators: operators,
		Pagination: model.Pagination{
			Total:   total,
			Limit:   limit,
			Skip:    skip,
			HasMore: total > int64(skip+limit),
		},
	}, nil
}

func (s *operatorService) Get(id uuid.UUID) (*model.Operator, error) {
	operator, err := s.operatorRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOperatorNotFound
	}
	return operator, err
}

func (s *operatorService) Create(req CreateOperatorRequest) (*model.Operator, error) {
	operator := &model.Operator{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
	}

	if errs := validator.ValidateStruct(operator); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	existing, _ := s.operatorRepo.FindByRegistration(req.RegistrationNumber)
	if existing != nil && existing.ID != uuid.Nil {
		return nil, ErrDuplicateRegistration
	}

	if req.Image != nil {
		path, err := s.images.Save(req.Image.Filename, req.Image.Data)
		if err != nil {
			return nil, err
		}
		operator.ProfileImage = &path
	}

	if err := s.operatorRepo.Create(operator); err != nil {
		return nil, err
	}

	s.logger.Info("operator registered",
		zap.String("registration", operator.RegistrationNumber),
		zap.String("id", operator.ID.String()),
	)
	return operator, nil
}

func (s *operatorService) Update(id uuid.UUID, req UpdateOperatorRequest) (*model.Operator, error) {
	operator, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	operator.Name = req.Name
	operator.RegistrationNumber = req.RegistrationNumber

	if errs := validator.ValidateStruct(operator); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	// Uniqueness re-checked against every other operator
	existing, _ := s.operatorRepo.FindByRegistration(req.RegistrationNumber)
	if existing != nil && existing.ID != uuid.Nil && existing.ID != id {
		return nil, ErrDuplicateRegistration
	}

	switch {
	case req.Image != nil:
		if operator.ProfileImage != nil {
			if err := s.images.Remove(*operator.ProfileImage); err != nil {
				s.logger.Warn("failed to remove old profile image", zap.Error(err))
			}
		}
		path, err := s.images.Save(req.Image.Filename, req.Image.Data)
		if err != nil {
			return nil, err
		}
		operator.ProfileImage = &path

	case !req.KeepExistingImage && operator.ProfileImage != nil:
		if err := s.images.Remove(*operator.ProfileImage); err != nil {
			s.logger.Warn("failed to remove profile image", zap.Error(err))
		}
		operator.ProfileImage = nil
	}

	if err := s.operatorRepo.Update(operator); err != nil {
		return nil, err
	}
	return operator, nil
}

func (s *operatorService) Delete(id uuid.UUID) error {
	operator, err := s.Get(id)
	if err != nil {
		return err
	}

	salesCount, err := s.saleRepo.CountByOperator(id)
	if err != nil {
		return err
	}
	if salesCount > 0 {
		return &OperatorInUseError{SalesCount: salesCount}
	}

	if operator.ProfileImage != nil {
		if err := s.images.Remove(*operator.ProfileImage); err != nil {
			s.logger.Warn("failed to remove profile image", zap.Error(err))
		}
	}

	return s.operatorRepo.Delete(id)
}
