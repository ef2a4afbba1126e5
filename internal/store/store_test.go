package store

import (
	"sync"
	"testing"

	"github.com/getmentor/formsdemo/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submission(name string) *models.FormSubmission {
	return &models.FormSubmission{
		Name:            name,
		Age:             30,
		Email:           "a@b.cd",
		Password:        "Abc123!@",
		ConfirmPassword: "Abc123!@",
		AcceptTerms:     true,
		Picture:         "data:image/png;base64,AAAA",
		Country:         "Chile",
	}
}

func TestStore_EmptyAtStart(t *testing.T) {
	s := New()

	for _, v := range models.Variants {
		got, ok := s.Get(v)
		assert.False(t, ok)
		assert.Nil(t, got)
	}
	assert.Empty(t, s.Snapshot())
}

func TestStore_SetOverwritesOnlyItsSlot(t *testing.T) {
	s := New()

	s.Set(models.VariantHookForm, submission("First"))
	s.Set(models.VariantHookForm, submission("Second"))

	got, ok := s.Get(models.VariantHookForm)
	require.True(t, ok)
	if diff := cmp.Diff(submission("Second"), got); diff != "" {
		t.Errorf("slot mismatch (-want +got):\n%s", diff)
	}

	_, ok = s.Get(models.VariantUncontrolled)
	assert.False(t, ok)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := New()
	s.Set(models.VariantUncontrolled, submission("Alice"))

	got, _ := s.Get(models.VariantUncontrolled)
	got.Name = "Mallory"

	again, _ := s.Get(models.VariantUncontrolled)
	assert.Equal(t, "Alice", again.Name)
}

func TestStore_SnapshotOrder(t *testing.T) {
	s := New()
	s.Set(models.VariantHookForm, submission("Hook"))
	s.Set(models.VariantUncontrolled, submission("Plain"))

	entries := s.Snapshot()
	require.Len(t, entries, 2)
	assert.Equal(t, models.VariantUncontrolled, entries[0].Variant)
	assert.Equal(t, "Plain", entries[0].Submission.Name)
	assert.Equal(t, models.VariantHookForm, entries[1].Variant)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set(models.VariantUncontrolled, submission("Writer"))
		}()
		go func() {
			defer wg.Done()
			s.Get(models.VariantUncontrolled)
			s.Snapshot()
		}()
	}
	wg.Wait()

	got, ok := s.Get(models.VariantUncontrolled)
	require.True(t, ok)
	assert.Equal(t, "Writer", got.Name)
}
