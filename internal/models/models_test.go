package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeCreateAssignsID(t *testing.T) {
	job := &Job{}
	require.NoError(t, job.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, job.ID)

	// A pre-set ID is kept.
	fixed := uuid.New()
	job = &Job{ID: fixed}
	require.NoError(t, job.BeforeCreate(nil))
	assert.Equal(t, fixed, job.ID)
}

func TestJobJSONHidesModificationCode(t *testing.T) {
	job := Job{
		ID:               uuid.New(),
		Title:            "Backend Engineer",
		Tags:             pq.StringArray{"go"},
		ModificationCode: "SECRET12",
	}

	raw, err := json.Marshal(job)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "SECRET12")
	assert.Contains(t, string(raw), "Backend Engineer")
}
