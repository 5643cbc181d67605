package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hellodata/notes-web/internal/domain"
	"github.com/hellodata/notes-web/internal/dto"
	"github.com/hellodata/notes-web/pkg/code"
	"github.com/hellodata/notes-web/pkg/errors"
)

type stubSubscriberRepo struct {
	created []*domain.Subscriber
	err     error
}

func (r *stubSubscriberRepo) Create(_ context.Context, subscriber *domain.Subscriber) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, subscriber)
	return nil
}

func (r *stubSubscriberRepo) List(_ context.Context) ([]*domain.Subscriber, error) {
	return r.created, r.err
}

func TestSubscriberService_Subscribe(t *testing.T) {
	t.Run("normalizes fields before persisting", func(t *testing.T) {
		repo := &stubSubscriberRepo{}
		svc := NewSubscriberService(repo, zap.NewNop())

		err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{
			FirstName: "  Ada ",
			LastName:  " Lovelace ",
			Email:     " Ada@Example.COM ",
			Frequency: "weekly",
			Topics:    " go , postgres,, web ",
		})
		require.NoError(t, err)
		require.Len(t, repo.created, 1)

		got := repo.created[0]
		assert.Equal(t, "Ada", got.FirstName)
		assert.Equal(t, "Lovelace", got.LastName)
		assert.Equal(t, "ada@example.com", got.Email)
		assert.Equal(t, "weekly", got.Frequency)
		assert.Equal(t, []string{"go", "postgres", "web"}, got.Topics)
	})

	t.Run("duplicate email surfaces the dedicated code", func(t *testing.T) {
		repo := &stubSubscriberRepo{err: errors.NewAppError(code.ErrorSubscribeDuplicate, nil)}
		svc := NewSubscriberService(repo, zap.NewNop())

		err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Frequency: "weekly",
		})
		require.Error(t, err)
		assert.Equal(t, code.ErrorSubscribeDuplicate, errors.CodeOf(err))
	})
}

func TestSplitTopics(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty input", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"trims and drops empties", " a ,, b ,  ", []string{"a", "b"}},
		{"single topic", "golang", []string{"golang"}},
		{
			"caps at ten",
			"a,b,c,d,e,f,g,h,i,j,k,l",
			[]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTopics(tt.raw))
		})
	}
}
