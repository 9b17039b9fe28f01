package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/PetHotelService/internal/domain"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	"github.com/m04kA/PetHotelService/internal/integrations/gemini"
	"github.com/m04kA/PetHotelService/pkg/types"
)

// Виды генерации для метрик
const (
	KindCareTips = "care_tips"
	KindWelcome  = "welcome"
	KindPreCheck = "precheck_summary"
	KindCareNote = "care_note"
	KindSearch   = "pet_search"
)

// Service тексты для персонала и владельцев поверх генератора текста
type Service struct {
	generator    TextGenerator
	petRepo      PetRepository
	preCheckRepo PreCheckRepository
	careLogRepo  CareLogRepository
	txManager    TransactionManager
	metrics      Metrics
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	generator TextGenerator,
	petRepo PetRepository,
	preCheckRepo PreCheckRepository,
	careLogRepo CareLogRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		generator:    generator,
		petRepo:      petRepo,
		preCheckRepo: preCheckRepo,
		careLogRepo:  careLogRepo,
		txManager:    txManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// CareTips советы по уходу за питомцем. При ошибке генерации - запасной текст
func (s *Service) CareTips(ctx context.Context, petID string) (string, error) {
	pet, err := s.getPet(ctx, petID)
	if err != nil {
		return "", err
	}
	return s.generateOr(ctx, KindCareTips, careTipsPrompt(pet), FallbackCareTips), nil
}

// Welcome приветствие владельцу. При ошибке генерации - запасной текст
func (s *Service) Welcome(ctx context.Context, petID string) (string, error) {
	pet, err := s.getPet(ctx, petID)
	if err != nil {
		return "", err
	}
	return s.generateOr(ctx, KindWelcome, welcomePrompt(pet), FallbackWelcome), nil
}

// PreCheckSummary сводка осмотра для владельца. Результат сохраняется в осмотр
func (s *Service) PreCheckSummary(ctx context.Context, bookingID, petID string) (string, error) {
	pet, err := s.getPet(ctx, petID)
	if err != nil {
		return "", err
	}

	record, err := s.loadPreCheck(ctx, bookingID, petID)
	if err != nil {
		return "", err
	}

	// Генерация вне транзакции: запрос к внешнему API не держит блокировку хранилища
	text, err := s.generate(ctx, KindPreCheck, preCheckPrompt(pet, record), gemini.Options{})
	if err != nil {
		return "", err
	}

	// Перечитываем осмотр: пока шла генерация, его могли перезаписать. Меняем только сводку
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.loadPreCheck(txCtx, bookingID, petID)
		if err != nil {
			return err
		}
		current.AISummary = text
		if err := s.preCheckRepo.SavePreCheck(txCtx, current); err != nil {
			return fmt.Errorf("%w: PreCheckSummary - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

func (s *Service) loadPreCheck(ctx context.Context, bookingID, petID string) (*domain.PreCheckRecord, error) {
	record, err := s.preCheckRepo.GetPreCheck(ctx, bookingID, petID)
	if err != nil {
		if errors.Is(err, state.ErrPreCheckNotFound) {
			return nil, ErrPreCheckNotFound
		}
		return nil, fmt.Errorf("%w: PreCheckSummary - repository error: %v", ErrInternal, err)
	}
	return record, nil
}

// CareNote разговорная заметка для владельца по дневнику за дату
func (s *Service) CareNote(ctx context.Context, petID, rawDate string) (string, error) {
	date, err := types.ParseDate(rawDate)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	pet, err := s.getPet(ctx, petID)
	if err != nil {
		return "", err
	}

	logs, err := s.careLogRepo.ListCareLogsByDate(ctx, date)
	if err != nil {
		return "", fmt.Errorf("%w: CareNote - repository error: %v", ErrInternal, err)
	}
	entry := &domain.DailyCareLog{PetID: petID, Date: date}
	for _, l := range logs {
		if l.PetID == petID {
			entry = l
			break
		}
	}

	return s.generate(ctx, KindCareNote, careNotePrompt(pet, entry), gemini.Options{})
}

// SearchPets подбор питомцев по описанию на естественном языке.
// Возвращаются только ID существующих питомцев
func (s *Service) SearchPets(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", ErrInvalidInput)
	}

	pets, err := s.petRepo.ListPets(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchPets - repository error: %v", ErrInternal, err)
	}
	if len(pets) == 0 {
		return []string{}, nil
	}

	prompt, err := searchPrompt(query, pets)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	text, err := s.generate(ctx, KindSearch, prompt, gemini.Options{JSON: true})
	if err != nil {
		return nil, err
	}

	ids, err := parseIDList(text)
	if err != nil {
		s.logger.Warn("SearchPets: unparsable response %q: %v", text, err)
		s.observe(KindSearch, "invalid")
		return nil, fmt.Errorf("%w: unparsable response", ErrGenerationFailed)
	}

	known := make(map[string]bool, len(pets))
	for _, p := range pets {
		known[p.ID] = true
	}
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if known[id] {
			result = append(result, id)
		}
	}
	return result, nil
}

func (s *Service) getPet(ctx context.Context, petID string) (*domain.Pet, error) {
	pet, err := s.petRepo.GetPetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, state.ErrPetNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return pet, nil
}

func (s *Service) generate(ctx context.Context, kind, prompt string, opts gemini.Options) (string, error) {
	text, err := s.generator.Generate(ctx, prompt, opts)
	if err != nil {
		s.logger.Warn("Assistant: %s generation failed: %v", kind, err)
		s.observe(kind, "error")
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	s.observe(kind, "ok")
	return text, nil
}

func (s *Service) generateOr(ctx context.Context, kind, prompt, fallback string) string {
	text, err := s.generate(ctx, kind, prompt, gemini.Options{})
	if err != nil {
		return fallback
	}
	return text
}

func (s *Service) observe(kind, result string) {
	if s.metrics != nil {
		s.metrics.IncTextGeneration(kind, result)
	}
}
