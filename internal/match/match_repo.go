package match

import (
	"context"
	"errors"
	"time"

	"github.com/DhavalSuthar-24/crease/internal/scoring"
	"gorm.io/gorm"
)

// MatchRepository stores whole match documents. Replace always writes the
// full document; there are no partial updates.
type MatchRepository interface {
	Create(ctx context.Context, m *scoring.Match) error
	Get(ctx context.Context, id string) (*scoring.Match, error)
	// List returns one page ordered by match date, newest first.
	List(ctx context.Context, filter ListFilter, page, pageSize int) ([]scoring.Match, int64, error)
	Replace(ctx context.Context, m *scoring.Match) error
	Delete(ctx context.Context, id string) error
}

// GormMatchRepository implements MatchRepository using GORM. Timestamps
// are kept to the millisecond so both stores agree.
type GormMatchRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db, now: time.Now}
}

// WithTransaction runs txFunc against a repository bound to one transaction.
func (r *GormMatchRepository) WithTransaction(ctx context.Context, txFunc func(*GormMatchRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return txFunc(&GormMatchRepository{db: tx, now: r.now})
	})
}

func (r *GormMatchRepository) Create(ctx context.Context, m *scoring.Match) error {
	m.LastUpdated = r.now().UTC().Truncate(time.Millisecond)
	rec := newRecord(*m)
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *GormMatchRepository) Get(ctx context.Context, id string) (*scoring.Match, error) {
	var rec MatchRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	m := rec.Document.Data
	m.ID = rec.ID
	return &m, nil
}

func (r *GormMatchRepository) List(ctx context.Context, filter ListFilter, page, pageSize int) ([]scoring.Match, int64, error) {
	var records []MatchRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&MatchRecord{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Team != "" {
		query = query.Where("team_a = ? OR team_b = ?", filter.Team, filter.Team)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("date DESC").Order("id").Offset(offset).Limit(pageSize).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	matches := make([]scoring.Match, len(records))
	for i, rec := range records {
		matches[i] = rec.Document.Data
		matches[i].ID = rec.ID
	}
	return matches, total, nil
}

// Replace overwrites the stored document and stamps LastUpdated on m.
func (r *GormMatchRepository) Replace(ctx context.Context, m *scoring.Match) error {
	return r.WithTransaction(ctx, func(tx *GormMatchRepository) error {
		var existing MatchRecord
		if err := tx.db.Select("id").Where("id = ?", m.ID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMatchNotFound
			}
			return err
		}

		updated := *m
		updated.LastUpdated = r.now().UTC().Truncate(time.Millisecond)
		rec := newRecord(updated)
		err := tx.db.Model(&MatchRecord{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
			"title":    rec.Title,
			"team_a":   rec.TeamA,
			"team_b":   rec.TeamB,
			"status":   rec.Status,
			"date":     rec.Date,
			"document": rec.Document,
		}).Error
		if err != nil {
			return err
		}
		m.LastUpdated = updated.LastUpdated
		return nil
	})
}

func (r *GormMatchRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&MatchRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}
	return nil
}
