package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CreditPathAI/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.CreateUser("Asha", "asha@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	u, err := s.GetUserByEmail("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Asha", u.Name)
}

func TestCreateUser(t *testing.T) {
	s := openTestStore(t)

	u, err := s.CreateUser("Asha Rao", "asha@example.com", "hash-1")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	second, err := s.CreateUser("Ben", "ben@example.com", "hash-2")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	got, err := s.GetUserByEmail("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "Asha Rao", got.Name)
	assert.Equal(t, "hash-1", got.PasswordHash)
	assert.True(t, u.CreatedAt.Equal(got.CreatedAt))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := openTestStore(t)

	_, err := s.CreateUser("Asha", "asha@example.com", "hash")
	require.NoError(t, err)
	_, err = s.CreateUser("Other Asha", "asha@example.com", "hash")
	assert.True(t, eris.Is(err, ErrEmailExists))
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetUserByEmail("nobody@example.com")
	assert.True(t, eris.Is(err, ErrUserNotFound))
}

func TestPredictions_InsertAndList(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, band := range []string{"Low", "Medium", "High"} {
		r := models.PredictionRecord{
			ID:          band,
			LoanAmnt:    500000,
			AnnualInc:   1800000,
			DTI:         35.5,
			OpenAcc:     8,
			CreditAge:   5.2,
			RevolUtil:   45.3,
			Probability: 0.1 + 0.3*float64(i),
			RiskBand:    band,
			Action:      "action-" + band,
			CreatedAt:   base.Add(time.Duration(i) * 1500 * time.Millisecond),
		}
		if band == "High" {
			r.Actor = "asha@example.com"
		}
		require.NoError(t, s.InsertPrediction(r))
	}

	all, err := s.ListPredictions(10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "High", all[0].ID)
	assert.Equal(t, "asha@example.com", all[0].Actor)
	assert.True(t, base.Add(3*time.Second).Equal(all[0].CreatedAt))
	assert.Equal(t, "Low", all[2].ID)
	assert.Empty(t, all[2].Actor)
	assert.Equal(t, 8, all[2].OpenAcc)
	assert.Equal(t, 45.3, all[2].RevolUtil)

	limited, err := s.ListPredictions(1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "High", limited[0].ID)
}

func TestListPredictions_Empty(t *testing.T) {
	s := openTestStore(t)

	records, err := s.ListPredictions(5)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
