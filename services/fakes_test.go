package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/xpsc-club/xpsc-server/cache"
	"github.com/xpsc-club/xpsc-server/models"
	"github.com/xpsc-club/xpsc-server/realtime"
	"github.com/xpsc-club/xpsc-server/repositories"
	"github.com/xpsc-club/xpsc-server/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordedEvent struct {
	room  string
	event realtime.Event
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) BroadcastToRoom(roomID string, event realtime.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{room: roomID, event: event})
}

type stubAllUserRepo struct {
	mu      sync.Mutex
	users   map[string]models.Document
	lookups int
	err     error
	// afterLookup runs once a GetByEmail has read its document.
	afterLookup func()
}

func (r *stubAllUserRepo) List(context.Context) ([]models.Document, error) {
	out := make([]models.Document, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, r.err
}

func (r *stubAllUserRepo) GetByEmail(_ context.Context, email string) (models.Document, error) {
	r.mu.Lock()
	r.lookups++
	user, err := r.users[email], r.err
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if r.afterLookup != nil {
		r.afterLookup()
	}
	return user, nil
}

func (r *stubAllUserRepo) setRole(email, role string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[email] = models.Document{"email": email, "role": role}
}

func (r *stubAllUserRepo) Create(_ context.Context, user models.Document) (*models.InsertResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	email, _ := user["email"].(string)
	r.users[email] = user
	return &models.InsertResult{Acknowledged: true, InsertedID: email}, nil
}

func (r *stubAllUserRepo) Update(_ context.Context, id string, _ models.AllUserFields) (*models.UpdateResult, error) {
	if _, err := repositories.ParseObjectID(id); err != nil {
		return nil, err
	}
	return &models.UpdateResult{Acknowledged: true}, r.err
}

func (r *stubAllUserRepo) Delete(_ context.Context, id string) (*models.DeleteResult, error) {
	if _, err := repositories.ParseObjectID(id); err != nil {
		return nil, err
	}
	return &models.DeleteResult{Acknowledged: true}, r.err
}

// memoryRoleCache keeps flags per generation and counts flushes.
type memoryRoleCache struct {
	mu         sync.Mutex
	entries    map[string]bool
	generation int64
	flushes    int
	err        error
}

func (c *memoryRoleCache) Lookup(_ context.Context, email string) (cache.RoleEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return cache.RoleEntry{}, c.err
	}
	v, ok := c.entries[email]
	return cache.RoleEntry{IsAdmin: v, Found: ok, Generation: c.generation}, nil
}

func (c *memoryRoleCache) Store(_ context.Context, email string, generation int64, isAdmin bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	if generation != c.generation {
		return nil
	}
	c.entries[email] = isAdmin
	return nil
}

func (c *memoryRoleCache) Flush(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushes++
	c.generation++
	c.entries = map[string]bool{}
	return c.err
}

type stubClubUserRepo struct {
	matched  int64
	deleted  int64
	imageURL string
	setErr   error
}

func (r *stubClubUserRepo) List(context.Context) ([]models.Document, error) {
	return []models.Document{}, nil
}

func (r *stubClubUserRepo) Leaderboard(context.Context, models.Page) ([]models.Document, error) {
	return []models.Document{}, nil
}

func (r *stubClubUserRepo) GetByID(_ context.Context, id string) (models.Document, error) {
	if _, err := repositories.ParseObjectID(id); err != nil {
		return nil, err
	}
	return nil, nil
}

func (r *stubClubUserRepo) Count(context.Context) (int64, error) {
	return 0, nil
}

func (r *stubClubUserRepo) Create(context.Context, models.Document) (*models.InsertResult, error) {
	return &models.InsertResult{Acknowledged: true, InsertedID: "new-id"}, nil
}

func (r *stubClubUserRepo) Update(context.Context, string, models.ClubUserFields) (*models.UpdateResult, error) {
	return &models.UpdateResult{Acknowledged: true, MatchedCount: r.matched}, nil
}

func (r *stubClubUserRepo) SetImage(_ context.Context, _ string, imageURL string) (*models.UpdateResult, error) {
	if r.setErr != nil {
		return nil, r.setErr
	}
	r.imageURL = imageURL
	return &models.UpdateResult{Acknowledged: true, MatchedCount: r.matched, ModifiedCount: r.matched}, nil
}

func (r *stubClubUserRepo) Delete(context.Context, string) (*models.DeleteResult, error) {
	return &models.DeleteResult{Acknowledged: true, DeletedCount: r.deleted}, nil
}

type stubUploader struct {
	uploaded []string
	deleted  []string
	err      error
}

func (u *stubUploader) Upload(_ context.Context, key string, _ string, reader io.Reader) (*storage.UploadResult, error) {
	if u.err != nil {
		return nil, u.err
	}
	if _, err := io.ReadAll(reader); err != nil {
		return nil, err
	}
	u.uploaded = append(u.uploaded, key)
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *stubUploader) Delete(_ context.Context, key string) error {
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *stubUploader) GetPublicURL(key string) string {
	return "https://cdn.example/" + key
}

type stubResultRepo struct {
	deleted int64
	lastP   *models.Participation
}

func (r *stubResultRepo) CountByContest(_ context.Context, _ int64, p *models.Participation) (int64, error) {
	r.lastP = p
	return 0, nil
}

func (r *stubResultRepo) ListByContest(context.Context, int64, models.Participation, models.Page) ([]models.Document, error) {
	return []models.Document{}, nil
}

func (r *stubResultRepo) GetByContestAndUser(context.Context, int64, string) (models.Document, error) {
	return nil, nil
}

func (r *stubResultRepo) Create(context.Context, models.Document) (*models.InsertResult, error) {
	return &models.InsertResult{Acknowledged: true, InsertedID: "result-id"}, nil
}

func (r *stubResultRepo) DeleteByContest(context.Context, int64) (*models.DeleteResult, error) {
	return &models.DeleteResult{Acknowledged: true, DeletedCount: r.deleted}, nil
}

func (r *stubResultRepo) DeleteByUserName(context.Context, string) (*models.DeleteResult, error) {
	return &models.DeleteResult{Acknowledged: true, DeletedCount: r.deleted}, nil
}

var errStore = errors.New("store unavailable")
