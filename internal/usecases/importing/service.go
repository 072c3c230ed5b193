package importing

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/sales-analyzer-api/internal/domain"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
	"github.com/vfg2006/sales-analyzer-api/pkg/utils"
)

var (
	ErrInvalidRecord = errors.New("venda inválida")
	ErrEmptyImport   = errors.New("nenhuma venda para importar")
)

type Importer interface {
	// Import grava as vendas do usuário e retorna os registros com ID atribuído
	Import(ctx context.Context, userID int, records []domain.SaleRecord) ([]domain.SaleRecord, error)
}

type Service struct {
	saleRepo   repository.SaleRepository
	generateID func() (string, error)
}

func NewService(saleRepo repository.SaleRepository) *Service {
	return &Service{
		saleRepo:   saleRepo,
		generateID: utils.GenerateID,
	}
}

func (s *Service) Import(ctx context.Context, userID int, records []domain.SaleRecord) ([]domain.SaleRecord, error) {
	if len(records) == 0 {
		return nil, ErrEmptyImport
	}

	for i, record := range records {
		if err := validate(record); err != nil {
			return nil, &RecordError{Line: i + 1, Err: err}
		}
	}

	prepared := make([]domain.SaleRecord, len(records))
	for i, record := range records {
		id, err := s.generateID()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar ID da venda")
		}

		record.ID = id
		record.UserID = userID
		prepared[i] = record
	}

	if err := s.saleRepo.CreateBatch(ctx, prepared); err != nil {
		if errors.Is(err, repository.ErrInvalidSale) {
			return nil, errors.Wrap(ErrInvalidRecord, err.Error())
		}
		return nil, errors.Wrap(err, "erro ao gravar vendas")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":      userID,
		"user_records": len(prepared),
	}).Info("Vendas importadas")

	return prepared, nil
}

func validate(record domain.SaleRecord) error {
	if record.Date.IsZero() {
		return errors.Wrap(ErrInvalidRecord, "data obrigatória")
	}
	if err := validateAmount(record.Amount); err != nil {
		return err
	}
	if record.Margin != nil {
		return validateMargin(*record.Margin)
	}
	return nil
}

// validateAmount aceita apenas valores finitos e não negativos
func validateAmount(amount float64) error {
	if !isFinite(amount) {
		return errors.Wrapf(ErrInvalidRecord, "valor não numérico %v", amount)
	}
	if amount < 0 {
		return errors.Wrapf(ErrInvalidRecord, "valor negativo %v", amount)
	}
	return nil
}

// validateMargin aceita margens negativas, mas não NaN nem infinito
func validateMargin(margin float64) error {
	if !isFinite(margin) {
		return errors.Wrapf(ErrInvalidRecord, "margem não numérica %v", margin)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
