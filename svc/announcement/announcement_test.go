package announcement_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cruzhacks/portal/pkg/validator"
	"github.com/cruzhacks/portal/svc/announcement"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		message string
		want    []string
	}{
		{"valid", "Welcome", "Doors open at 9am.\nBring your ID, please.", nil},
		{"empty title", "", "hello", []string{announcement.MsgInvalidTitle}},
		{"title with space", "Opening Ceremony", "hello", []string{announcement.MsgInvalidTitle}},
		{"title at limit", strings.Repeat("a", 25), "hello", nil},
		{"title too long", strings.Repeat("a", 26), "hello", []string{announcement.MsgInvalidTitle}},
		{"empty message", "Welcome", "", []string{announcement.MsgInvalidMessage}},
		{"line breaks only", "0", "\n", nil},
		{"spaces only", "Welcome", "   ", nil},
		{"message at limit", "Welcome", strings.Repeat("m", 100), nil},
		{"message too long", "Welcome", strings.Repeat("m", 101), []string{announcement.MsgInvalidMessage}},
		{"message emoji", "Welcome", "see you 🎉", []string{announcement.MsgInvalidMessage}},
		{"both invalid", "Hi!", "", []string{announcement.MsgInvalidTitle, announcement.MsgInvalidMessage}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := announcement.Validate(tt.title, tt.message)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, validator.ExtractValidationErrors(err).Messages())
		})
	}
}

func TestValidate_AlphanumericTitlesProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		title := rapid.StringMatching(`[A-Za-z0-9]{1,25}`).Draw(t, "title")
		message := rapid.StringMatching(`[A-Za-z0-9 .,:;\n]{1,100}`).Draw(t, "message")
		if err := announcement.Validate(title, message); err != nil {
			t.Fatalf("Validate(%q, %q) = %v", title, message, err)
		}
	})
}

type memoryRepo struct {
	mu    sync.Mutex
	items []announcement.Announcement
	err   error
}

func (r *memoryRepo) Create(_ context.Context, a *announcement.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, *a)
	return nil
}

func (r *memoryRepo) Latest(_ context.Context, limit int) ([]announcement.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := slices.Clone(r.items)
	slices.SortFunc(out, func(a, b announcement.Announcement) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out[:min(limit, len(out))], nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.items = slices.DeleteFunc(r.items, func(a announcement.Announcement) bool { return a.ID == id })
	return nil
}

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) RecordAnnouncement(op, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, op+":"+outcome)
}

func newService(repo announcement.Repository, rec announcement.Recorder) *announcement.Service {
	clock := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	return announcement.NewService(repo,
		announcement.WithRecorder(rec),
		announcement.WithClock(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			clock = clock.Add(time.Minute)
			return clock
		}),
	)
}

func TestService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("latest four newest first", func(t *testing.T) {
		t.Parallel()
		repo := &memoryRepo{}
		svc := newService(repo, &recorder{})

		for _, title := range []string{"One", "Two", "Three", "Four", "Five", "Six"} {
			_, err := svc.Create(ctx, title, "message for "+title)
			require.NoError(t, err)
		}

		items, err := svc.Latest(ctx)
		require.NoError(t, err)
		require.Len(t, items, announcement.LatestLimit)

		titles := make([]string, 0, len(items))
		for _, a := range items {
			titles = append(titles, a.Title)
		}
		assert.Equal(t, []string{"Six", "Five", "Four", "Three"}, titles)
	})

	t.Run("create assigns id", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{}
		svc := newService(&memoryRepo{}, rec)

		a, err := svc.Create(ctx, "Welcome", "Hello hackers")
		require.NoError(t, err)
		_, err = uuid.Parse(a.ID)
		assert.NoError(t, err)
		assert.False(t, a.CreatedAt.IsZero())
		assert.Equal(t, []string{"create:ok"}, rec.calls)
	})

	t.Run("create invalid", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{}
		repo := &memoryRepo{}
		svc := newService(repo, rec)

		_, err := svc.Create(ctx, "Bad Title", "hello")
		assert.True(t, validator.IsValidationError(err))
		assert.Empty(t, repo.items)
		assert.Equal(t, []string{"create:invalid"}, rec.calls)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		repo := &memoryRepo{}
		svc := newService(repo, &recorder{})

		a, err := svc.Create(ctx, "Welcome", "Hello hackers")
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, strings.ToUpper(a.ID)))
		assert.Empty(t, repo.items)

		// Deleting twice is fine.
		assert.NoError(t, svc.Delete(ctx, a.ID))
		assert.ErrorIs(t, svc.Delete(ctx, "not-a-uuid"), announcement.ErrInvalidID)
	})

	t.Run("repository errors", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{}
		boom := errors.New("boom")
		svc := newService(&memoryRepo{err: boom}, rec)

		_, err := svc.Latest(ctx)
		assert.ErrorIs(t, err, boom)
		_, err = svc.Create(ctx, "Welcome", "hello")
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, svc.Delete(ctx, uuid.NewString()), boom)

		assert.Equal(t, []string{"list:error", "create:error", "delete:error"}, rec.calls)
	})
}
