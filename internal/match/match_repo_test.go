package match

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/crease/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	lions  = []string{"Ravi", "Kiran", "Arjun", "Sam", "Dev", "Mohit", "Nikhil", "Pranav", "Rahul", "Suresh", "Vikram"}
	tigers = []string{"Ben", "Chris", "Dan", "Ed", "Finn", "George", "Harry", "Ian", "Jack", "Kyle", "Liam"}
)

func fixture(id string, date time.Time) scoring.Match {
	return scoring.NewMatch(scoring.Match{
		ID:         id,
		Title:      "Lions vs Tigers",
		Date:       date,
		TeamA:      "Lions",
		TeamB:      "Tigers",
		TeamASquad: lions,
		TeamBSquad: tigers,
		TotalOvers: 20,
	})
}

func newGormRepo(t *testing.T) *GormMatchRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&MatchRecord{}))
	return NewGormMatchRepository(db)
}

var day = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// exerciseRepository runs the store contract against any implementation.
func exerciseRepository(t *testing.T, repo MatchRepository) {
	ctx := context.Background()

	first := fixture("m-first", day)
	second := fixture("m-second", day.Add(24*time.Hour))
	third := fixture("m-third", day.Add(48*time.Hour))
	third.TeamA, third.TeamB = "Hawks", "Eagles"
	for _, m := range []*scoring.Match{&first, &second, &third} {
		require.NoError(t, repo.Create(ctx, m))
		assert.False(t, m.LastUpdated.IsZero())
	}

	got, err := repo.Get(ctx, "m-second")
	require.NoError(t, err)
	assert.Equal(t, "m-second", got.ID)
	assert.Equal(t, lions, got.TeamASquad)
	assert.Equal(t, scoring.StatusUpcoming, got.Status)
	assert.True(t, got.Date.Equal(second.Date))

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMatchNotFound)

	page, total, err := repo.List(ctx, ListFilter{}, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "m-third", page[0].ID)
	assert.Equal(t, "m-second", page[1].ID)

	page, _, err = repo.List(ctx, ListFilter{}, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "m-first", page[0].ID)

	page, total, err = repo.List(ctx, ListFilter{Team: "Eagles"}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "m-third", page[0].ID)

	live := *got
	live.Status = scoring.StatusLive
	live.Score.BattingTeam = "Lions"
	live.Score.Runs = 42
	require.NoError(t, repo.Replace(ctx, &live))

	got, err = repo.Get(ctx, "m-second")
	require.NoError(t, err)
	assert.Equal(t, scoring.StatusLive, got.Status)
	assert.Equal(t, 42, got.Score.Runs)
	assert.True(t, got.LastUpdated.Equal(live.LastUpdated))

	page, total, err = repo.List(ctx, ListFilter{Status: scoring.StatusLive}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "m-second", page[0].ID)

	ghost := fixture("ghost", day)
	assert.ErrorIs(t, repo.Replace(ctx, &ghost), ErrMatchNotFound)

	require.NoError(t, repo.Delete(ctx, "m-first"))
	assert.ErrorIs(t, repo.Delete(ctx, "m-first"), ErrMatchNotFound)
	_, err = repo.Get(ctx, "m-first")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestGormMatchRepository(t *testing.T) {
	exerciseRepository(t, newGormRepo(t))
}

func TestGormReplaceStampsLastUpdated(t *testing.T) {
	repo := newGormRepo(t)
	clock := day
	repo.now = func() time.Time { return clock }
	ctx := context.Background()

	m := fixture("m1", day)
	require.NoError(t, repo.Create(ctx, &m))
	assert.True(t, m.LastUpdated.Equal(day))

	clock = day.Add(time.Minute)
	m.Title = "Final"
	require.NoError(t, repo.Replace(ctx, &m))
	assert.True(t, m.LastUpdated.Equal(clock))

	var rec MatchRecord
	require.NoError(t, repo.db.First(&rec, "id = ?", "m1").Error)
	assert.Equal(t, "Final", rec.Title)
	assert.Equal(t, "Final", rec.Document.Data.Title)
	assert.True(t, rec.Document.Data.LastUpdated.Equal(clock))
}

func TestGormKeepsHistory(t *testing.T) {
	repo := newGormRepo(t)
	ctx := context.Background()

	m := fixture("m1", day)
	require.NoError(t, repo.Create(ctx, &m))
	out, err := scoring.Apply(m, scoring.InitInnings{Striker: "Ravi", NonStriker: "Kiran", Bowler: "Ben"}, scoring.Context{})
	require.NoError(t, err)
	out, err = scoring.Apply(out.Match, scoring.Runs{N: 4}, out.Context)
	require.NoError(t, err)
	require.NoError(t, repo.Replace(ctx, &out.Match))

	got, err := repo.Get(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, got.History, 1)
	assert.Equal(t, 0, got.History[0].Score.Runs)
	assert.Equal(t, 4, got.Score.Runs)
}

// Runs against a real server when MONGO_URI_TEST is set.
func TestMongoMatchRepository(t *testing.T) {
	uri := os.Getenv("MONGO_URI_TEST")
	if uri == "" {
		t.Skip("MONGO_URI_TEST not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, err := NewMongoMatchRepository(ctx, uri, "crease_test")
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Database.Drop(context.Background())
		repo.Close(context.Background())
	})
	require.NoError(t, repo.collection.Drop(ctx))

	exerciseRepository(t, repo)
}
