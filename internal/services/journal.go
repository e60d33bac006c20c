package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/journal-service/internal/models"
)

// JournalRepository определяет методы для работы с записями дневника в хранилище.
// Все операции ограничены владельцем записи: id чужого пользователя неотличим
// от несуществующего.
type JournalRepository interface {
	// CreateEntry добавляет новую запись и возвращает её в сохранённом виде.
	CreateEntry(ctx context.Context, entry models.JournalEntry) (*models.JournalEntry, error)
	// ReadEntry возвращает запись пользователя по ID.
	ReadEntry(ctx context.Context, id, userUID string) (*models.JournalEntry, error)
	// UpdateEntry применяет частичное обновление записи.
	UpdateEntry(ctx context.Context, req models.UpdateEntry, id, userUID string) (*models.JournalEntry, error)
	// RemoveEntry удаляет запись пользователя по ID.
	RemoveEntry(ctx context.Context, id, userUID string) error
	// ListEntries возвращает все записи пользователя в порядке вставки.
	ListEntries(ctx context.Context, userUID string) ([]*models.JournalEntry, error)
	// ListEntriesByCategory возвращает записи с данной категорией без учёта регистра.
	ListEntriesByCategory(ctx context.Context, userUID, category string) ([]*models.JournalEntry, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// JournalService реализует бизнес-логику работы с записями дневника, включая кеширование.
type JournalService struct {
	repo  JournalRepository
	cache Cache
	log   *slog.Logger
}

// NewJournalService создает новый экземпляр JournalService.
func NewJournalService(repo JournalRepository, cache Cache, log *slog.Logger) *JournalService {
	return &JournalService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новую запись дневника для пользователя, кеширует её
// и возвращает сохранённый вид с идентификатором и отметками времени.
//
// Категория сопоставляется без учёта регистра и сохраняется в канонической форме.
func (s *JournalService) Create(ctx context.Context, userUID string, req models.DummyEntry) (*models.JournalEntry, error) {
	category, ok := models.NormalizeCategory(req.Category)
	if !ok {
		return nil, ErrInvalidCategory
	}
	date, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	now := time.Now().UTC()
	entry := models.JournalEntry{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		Category:  category,
		Date:      date,
		UserUID:   userUID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.CreateEntry(ctx, entry)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new journal entry", slog.String("id", created.ID))

	cacheKey := fmt.Sprintf("journal:%s", created.ID)
	if err := s.cache.Set(cacheKey, created, time.Hour); err != nil {
		s.log.Warn("failed to cache journal entry", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return created, nil
}

// Read возвращает запись по ID, используя кеш или репозиторий.
func (s *JournalService) Read(ctx context.Context, id, userUID string) (*models.JournalEntry, error) {
	var result *models.JournalEntry
	cacheKey := fmt.Sprintf("journal:%s", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	// Кеш не хранит владельца отдельно, поэтому принадлежность проверяется и здесь.
	if found && result != nil && result.UserUID == userUID {
		return result, nil
	}

	result, err = s.repo.ReadEntry(ctx, id, userUID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Update применяет частичное обновление: только переданные поля меняются,
// категория и дата перепроверяются, если присутствуют в запросе.
// Запрос без единого поля отклоняется с ErrNoFieldsToUpdate.
func (s *JournalService) Update(ctx context.Context, id, userUID string, req models.DummyUpdateEntry) (*models.JournalEntry, error) {
	if req.Title == nil && req.Content == nil && req.Category == nil && req.Date == nil {
		return nil, ErrNoFieldsToUpdate
	}
	upd := models.UpdateEntry{
		Title:   req.Title,
		Content: req.Content,
	}
	if req.Category != nil {
		category, ok := models.NormalizeCategory(*req.Category)
		if !ok {
			return nil, ErrInvalidCategory
		}
		upd.Category = &category
	}
	if req.Date != nil {
		date, err := time.Parse(DateLayout, *req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		upd.Date = &date
	}

	updated, err := s.repo.UpdateEntry(ctx, upd, id, userUID)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated journal entry", slog.String("id", id))

	cacheKey := fmt.Sprintf("journal:%s", id)
	if err := s.cache.Set(cacheKey, updated, time.Hour); err != nil {
		s.log.Warn("failed to cache journal entry", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return updated, nil
}

// Remove удаляет запись по ID и инвалидирует кеш.
func (s *JournalService) Remove(ctx context.Context, id, userUID string) error {
	cacheKey := fmt.Sprintf("journal:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return s.repo.RemoveEntry(ctx, id, userUID)
}

// List возвращает все записи пользователя.
func (s *JournalService) List(ctx context.Context, userUID string) ([]*models.JournalEntry, error) {
	return s.repo.ListEntries(ctx, userUID)
}

// ListByCategory возвращает записи пользователя с данной категорией,
// сравнение без учёта регистра выполняет хранилище.
func (s *JournalService) ListByCategory(ctx context.Context, userUID, category string) ([]*models.JournalEntry, error) {
	return s.repo.ListEntriesByCategory(ctx, userUID, category)
}
