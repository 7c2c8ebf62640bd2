package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"mmex-search/internal/dto"
	"mmex-search/internal/models"
	"mmex-search/internal/repositories"
	"mmex-search/internal/search"
	"mmex-search/internal/validation"

	"github.com/google/uuid"
)

const (
	SavedSearchOpCreate = "create"
	SavedSearchOpDelete = "delete"
	SavedSearchOpRun    = "run"
)

// SavedSearchService stores named criteria and runs them on demand
type SavedSearchService struct {
	savedRepo repositories.SavedSearchRepositoryInterface
	searches  SearchServiceInterface
	logger    SearchLoggerInterface
	metrics   MetricsRecorderInterface
	validator *validation.Validator
}

// NewSavedSearchService creates a new saved search service
func NewSavedSearchService(
	savedRepo repositories.SavedSearchRepositoryInterface,
	searches SearchServiceInterface,
	logger SearchLoggerInterface,
	metrics MetricsRecorderInterface,
) SavedSearchServiceInterface {
	return &SavedSearchService{
		savedRepo: savedRepo,
		searches:  searches,
		logger:    logger,
		metrics:   metrics,
		validator: validation.GetValidator(),
	}
}

// Create parses and translates the criteria once before storing them, so
// a saved search always runs.
func (s *SavedSearchService) Create(ctx context.Context, req dto.SavedSearchRequest) (*dto.SavedSearchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		s.metrics.RecordSavedSearchOperation(SavedSearchOpCreate, SearchOutcomeInvalid)
		return nil, err
	}

	criteria, err := search.ParseForm(req.Criteria, s.searches.Locale())
	if err == nil {
		_, err = search.Translate(criteria)
	}
	if err != nil {
		s.metrics.RecordSavedSearchOperation(SavedSearchOpCreate, SearchOutcomeInvalid)
		return nil, err
	}

	data, err := json.Marshal(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to encode criteria: %w", err)
	}

	saved := &models.SavedSearch{
		Name:     strings.TrimSpace(req.Name),
		Criteria: string(data),
	}
	if err := s.savedRepo.Create(ctx, saved); err != nil {
		s.metrics.RecordSavedSearchOperation(SavedSearchOpCreate, SearchOutcomeError)
		if errors.Is(err, repositories.ErrSavedSearchNameExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create saved search: %w", err)
	}

	s.logger.LogSavedSearchCreated(ctx, saved.ID, saved.Name)
	s.metrics.RecordSavedSearchOperation(SavedSearchOpCreate, SearchOutcomeSuccess)
	return s.toResponse(saved, criteria), nil
}

func (s *SavedSearchService) List(ctx context.Context) ([]dto.SavedSearchResponse, error) {
	saved, err := s.savedRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved searches: %w", err)
	}

	out := make([]dto.SavedSearchResponse, 0, len(saved))
	for i := range saved {
		criteria, err := decodeCriteria(&saved[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *s.toResponse(&saved[i], criteria))
	}
	return out, nil
}

func (s *SavedSearchService) Get(ctx context.Context, id uuid.UUID) (*dto.SavedSearchResponse, error) {
	saved, err := s.savedRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	criteria, err := decodeCriteria(saved)
	if err != nil {
		return nil, err
	}
	return s.toResponse(saved, criteria), nil
}

func (s *SavedSearchService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.savedRepo.Delete(ctx, id); err != nil {
		s.metrics.RecordSavedSearchOperation(SavedSearchOpDelete, SearchOutcomeError)
		return err
	}
	s.logger.LogSavedSearchDeleted(ctx, id)
	s.metrics.RecordSavedSearchOperation(SavedSearchOpDelete, SearchOutcomeSuccess)
	return nil
}

// Run loads the stored criteria and executes them
func (s *SavedSearchService) Run(ctx context.Context, id uuid.UUID, offset, limit int) (*dto.SearchResult, error) {
	saved, err := s.savedRepo.GetByID(ctx, id)
	if err != nil {
		s.metrics.RecordSavedSearchOperation(SavedSearchOpRun, SearchOutcomeError)
		return nil, err
	}
	criteria, err := decodeCriteria(saved)
	if err != nil {
		s.metrics.RecordSavedSearchOperation(SavedSearchOpRun, SearchOutcomeError)
		return nil, err
	}

	result, err := s.searches.Execute(ctx, SearchSourceSaved, criteria, offset, limit)
	if err != nil {
		s.metrics.RecordSavedSearchOperation(SavedSearchOpRun, SearchOutcomeError)
		return nil, err
	}
	s.metrics.RecordSavedSearchOperation(SavedSearchOpRun, SearchOutcomeSuccess)
	return result, nil
}

func (s *SavedSearchService) toResponse(saved *models.SavedSearch, criteria search.Criteria) *dto.SavedSearchResponse {
	return &dto.SavedSearchResponse{
		ID:        saved.ID,
		Name:      saved.Name,
		Criteria:  search.FormFromCriteria(criteria, s.searches.Locale()),
		CreatedAt: saved.CreatedAt,
	}
}

func decodeCriteria(saved *models.SavedSearch) (search.Criteria, error) {
	var criteria search.Criteria
	if err := json.Unmarshal([]byte(saved.Criteria), &criteria); err != nil {
		return search.Criteria{}, fmt.Errorf("failed to decode saved search %s: %w", saved.ID, err)
	}
	return criteria, nil
}
