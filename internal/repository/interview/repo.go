package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/900robman/competitor-compass/internal/db"
	"github.com/900robman/competitor-compass/internal/domain"
	dominterview "github.com/900robman/competitor-compass/internal/domain/interview"
)

// store is the consumer interface for interviews (ISP).
type store interface {
	JSONSet(ctx context.Context, key string, data []byte) error
	JSONGet(ctx context.Context, key string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string) ([][]byte, error)
	Del(ctx context.Context, key string) error
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Repo implements the interview storage contract of the use case layer.
type Repo struct {
	store store
}

// New creates an interview repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Save persists an interview transcript.
func (r *Repo) Save(ctx context.Context, iv *dominterview.Interview) error {
	data, err := json.Marshal(buildDoc(iv))
	if err != nil {
		return fmt.Errorf("marshal interview: %w", err)
	}
	key := interviewKey(iv.ID())
	if err := r.store.JSONSet(ctx, key, data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	if err := r.store.SAdd(ctx, projectInterviewsKey(iv.ProjectID()), iv.ID()); err != nil {
		return fmt.Errorf("index interview %s: %w", iv.ID(), err)
	}
	return nil
}

// Get returns an interview by ID.
func (r *Repo) Get(ctx context.Context, id string) (dominterview.Interview, error) {
	raw, err := r.store.JSONGet(ctx, interviewKey(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return dominterview.Interview{}, domain.ErrInterviewNotFound
		}
		return dominterview.Interview{}, fmt.Errorf("json.get %s: %w", interviewKey(id), err)
	}
	return parseDoc(raw)
}

// ListByProject returns a project's interviews, newest first.
func (r *Repo) ListByProject(ctx context.Context, projectID string) ([]dominterview.Interview, error) {
	ids, err := r.store.SMembers(ctx, projectInterviewsKey(projectID))
	if err != nil {
		return nil, fmt.Errorf("list interview ids of project %s: %w", projectID, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = interviewKey(id)
	}

	raws, err := r.store.JSONGetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch interviews: %w", err)
	}

	out := make([]dominterview.Interview, 0, len(raws))
	for _, raw := range raws {
		if raw == nil {
			continue
		}
		iv, err := parseDoc(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().After(out[j].CreatedAt())
	})
	return out, nil
}

// Delete removes an interview and its project membership.
func (r *Repo) Delete(ctx context.Context, id string) error {
	iv, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := r.store.Del(ctx, interviewKey(id)); err != nil {
		return fmt.Errorf("del %s: %w", interviewKey(id), err)
	}
	if err := r.store.SRem(ctx, projectInterviewsKey(iv.ProjectID()), id); err != nil {
		return fmt.Errorf("unindex interview %s: %w", id, err)
	}
	return nil
}

func interviewKey(id string) string {
	return domain.KeyPrefix + "interview:" + id
}

func projectInterviewsKey(projectID string) string {
	return domain.KeyPrefix + "project:" + projectID + ":interviews"
}
