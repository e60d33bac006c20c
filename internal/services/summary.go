package services

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/magabrotheeeer/journal-service/internal/lib/period"
	"github.com/magabrotheeeer/journal-service/internal/models"
)

// SummaryRepository определяет выборку записей для агрегирования.
type SummaryRepository interface {
	// ListEntriesByDateRange возвращает записи пользователя с датой в [start, end],
	// упорядоченные по дате, затем по времени создания.
	ListEntriesByDateRange(ctx context.Context, userUID string, start, end time.Time) ([]*models.JournalEntry, error)
}

// SummaryService группирует записи дневника в корзины по периодам.
type SummaryService struct {
	repo SummaryRepository
	log  *slog.Logger
}

// NewSummaryService создает новый экземпляр SummaryService.
func NewSummaryService(repo SummaryRepository, log *slog.Logger) *SummaryService {
	return &SummaryService{
		repo: repo,
		log:  log,
	}
}

// Summarize группирует записи пользователя за период в корзины.
//
// Период: daily — по дате записи, weekly — по ISO году-неделе (понедельник — начало
// недели), monthly — по паре год-месяц. Внутри корзины считается количество записей,
// заголовки склеиваются через запятую в порядке совпадения. Корзины возвращаются
// отсортированными по возрастанию ключа. Пустой диапазон — корректный результат:
// пустой список, а не ошибка.
func (s *SummaryService) Summarize(ctx context.Context, userUID string, req models.DummySummaryFilter) ([]models.SummaryBucket, error) {
	filter, err := parseSummaryFilter(req)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ListEntriesByDateRange(ctx, userUID, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]*bucketAcc)
	var keys []string
	for _, entry := range entries {
		key := period.Key(filter.Period, entry.Date)
		acc, ok := byKey[key]
		if !ok {
			acc = &bucketAcc{}
			byKey[key] = acc
			keys = append(keys, key)
		}
		acc.count++
		acc.titles = append(acc.titles, entry.Title)
	}
	sort.Strings(keys)

	result := make([]models.SummaryBucket, 0, len(keys))
	for _, key := range keys {
		acc := byKey[key]
		result = append(result, models.SummaryBucket{
			Bucket:     key,
			EntryCount: acc.count,
			Titles:     strings.Join(acc.titles, ","),
		})
	}
	s.log.Info("summarized journal entries",
		slog.String("period", filter.Period), slog.Int("buckets", len(result)))
	return result, nil
}

// parseSummaryFilter валидирует сырые параметры запроса и превращает их
// в SummaryFilter с разобранными датами.
func parseSummaryFilter(req models.DummySummaryFilter) (*models.SummaryFilter, error) {
	if !period.IsValid(req.Period) {
		return nil, ErrInvalidPeriod
	}
	startDate, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := time.Parse(DateLayout, req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return &models.SummaryFilter{
		Period:    req.Period,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

type bucketAcc struct {
	count  int
	titles []string
}
