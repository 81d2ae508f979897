package checklist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
)

// Store persists per-employee checklist state between validation requests.
type Store interface {
	Load(ctx context.Context, employee string) (Checklist, error)
	Save(ctx context.Context, employee string, cl Checklist) error
}

// RedisStore keeps checklists in redis as JSON blobs.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(employee string) string {
	return "onboardly:checklist:" + slug(employee)
}

// Load returns the stored checklist, or a fresh template when none exists.
func (s *RedisStore) Load(ctx context.Context, employee string) (Checklist, error) {
	data, err := s.client.Get(ctx, redisKey(employee)).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "load checklist from redis")
	}
	var cl Checklist
	if err := json.Unmarshal(data, &cl); err != nil {
		return nil, eris.Wrap(err, "decode stored checklist")
	}
	return cl, nil
}

func (s *RedisStore) Save(ctx context.Context, employee string, cl Checklist) error {
	data, err := json.Marshal(cl)
	if err != nil {
		return eris.Wrap(err, "encode checklist")
	}
	if err := s.client.Set(ctx, redisKey(employee), data, 0).Err(); err != nil {
		return eris.Wrap(err, "save checklist to redis")
	}
	return nil
}

// FileStore keeps one JSON file per employee under a local directory, the
// single-user behavior of the original desktop deployment.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(employee string) string {
	return filepath.Join(s.dir, fmt.Sprintf("checklist_%s.json", slug(employee)))
}

func (s *FileStore) Load(_ context.Context, employee string) (Checklist, error) {
	data, err := os.ReadFile(s.path(employee))
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "load checklist file")
	}
	var cl Checklist
	if err := json.Unmarshal(data, &cl); err != nil {
		return nil, eris.Wrap(err, "decode checklist file")
	}
	return cl, nil
}

func (s *FileStore) Save(_ context.Context, employee string, cl Checklist) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return eris.Wrap(err, "create checklist dir")
	}
	data, err := json.MarshalIndent(cl, "", "  ")
	if err != nil {
		return eris.Wrap(err, "encode checklist")
	}
	if err := os.WriteFile(s.path(employee), data, 0o644); err != nil {
		return eris.Wrap(err, "write checklist file")
	}
	return nil
}

// slug makes an employee name safe for keys and filenames.
func slug(employee string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(employee)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || r == '.':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "default"
	}
	return b.String()
}
