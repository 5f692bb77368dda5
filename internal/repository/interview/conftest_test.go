package interview

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	dominterview "github.com/900robman/competitor-compass/internal/domain/interview"
)

// mockStore implements the store interface with overridable functions.
type mockStore struct {
	jsonSetFn      func(ctx context.Context, key string, data []byte) error
	jsonGetFn      func(ctx context.Context, key string) ([]byte, error)
	jsonGetMultiFn func(ctx context.Context, keys []string) ([][]byte, error)
	delFn          func(ctx context.Context, key string) error
	saddFn         func(ctx context.Context, key string, members ...string) error
	sremFn         func(ctx context.Context, key string, members ...string) error
	smembersFn     func(ctx context.Context, key string) ([]string, error)
}

func (m *mockStore) JSONSet(ctx context.Context, key string, data []byte) error {
	if m.jsonSetFn != nil {
		return m.jsonSetFn(ctx, key, data)
	}
	return nil
}

func (m *mockStore) JSONGet(ctx context.Context, key string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) JSONGetMulti(ctx context.Context, keys []string) ([][]byte, error) {
	if m.jsonGetMultiFn != nil {
		return m.jsonGetMultiFn(ctx, keys)
	}
	return nil, nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockStore) SAdd(ctx context.Context, key string, members ...string) error {
	if m.saddFn != nil {
		return m.saddFn(ctx, key, members...)
	}
	return nil
}

func (m *mockStore) SRem(ctx context.Context, key string, members ...string) error {
	if m.sremFn != nil {
		return m.sremFn(ctx, key, members...)
	}
	return nil
}

func (m *mockStore) SMembers(ctx context.Context, key string) ([]string, error) {
	if m.smembersFn != nil {
		return m.smembersFn(ctx, key)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func testInterview(t *testing.T, id string, createdAt time.Time) dominterview.Interview {
	t.Helper()
	return dominterview.Reconstruct(
		id, "proj-1",
		[]dominterview.Message{
			{Role: dominterview.RoleInterviewer, Content: "Who do you see as your biggest competitor?", At: createdAt},
			{Role: dominterview.RoleClient, Content: "Acme, mostly on pricing.", At: createdAt},
		},
		nil,
		dominterview.StatusActive,
		createdAt, createdAt,
	)
}

// rawDoc marshals the array-wrapped JSONPath answer the store returns.
func rawDoc(t *testing.T, iv dominterview.Interview) []byte {
	t.Helper()
	data, err := json.Marshal([]interviewDoc{buildDoc(&iv)})
	if err != nil {
		t.Fatalf("marshal test interview: %v", err)
	}
	return data
}
