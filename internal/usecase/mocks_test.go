package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	users map[uuid.UUID]user.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, err := f.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeUserRepo) List(_ context.Context, limit, offset int) ([]user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := make([]user.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	f.users[u.ID] = u
	return nil
}

type fakeJobRepo struct {
	jobs map[uuid.UUID]job.Job
	err  error
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]job.Job)}
}

func (f *fakeJobRepo) Create(_ context.Context, j job.Job) error {
	if f.err != nil {
		return f.err
	}
	j.CreatedAt = time.Now()
	j.UpdatedAt = j.CreatedAt
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeJobRepo) List(_ context.Context) ([]job.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	all := make([]job.Job, 0, len(f.jobs))
	for _, j := range f.jobs {
		all = append(all, j)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all, nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if f.err != nil {
		return job.Job{}, f.err
	}
	j, ok := f.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) Update(_ context.Context, j job.Job) error {
	if f.err != nil {
		return f.err
	}
	existing, ok := f.jobs[j.ID]
	if !ok {
		return job.ErrNotFound
	}
	j.CreatedAt = existing.CreatedAt
	j.UpdatedAt = time.Now()
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.jobs[id]; !ok {
		return job.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

type fakeApplicationRepo struct {
	// status by job then user
	apps map[uuid.UUID]map[uuid.UUID]string
	err  error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[uuid.UUID]map[uuid.UUID]string)}
}

func (f *fakeApplicationRepo) Insert(_ context.Context, jobID, userID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	byUser, ok := f.apps[jobID]
	if !ok {
		byUser = make(map[uuid.UUID]string)
		f.apps[jobID] = byUser
	}
	if _, exists := byUser[userID]; exists {
		return job.ErrAlreadyApplied
	}
	byUser[userID] = job.ApplicationPending
	return nil
}

func (f *fakeApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]job.Applicant, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]job.Applicant, 0)
	for userID, status := range f.apps[jobID] {
		out = append(out, job.Applicant{UserID: userID, Status: status})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID.String() < out[j].UserID.String() })
	return out, nil
}

func (f *fakeApplicationRepo) Accept(_ context.Context, jobID, userID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	byUser := f.apps[jobID]
	if byUser == nil || byUser[userID] != job.ApplicationPending {
		return false, nil
	}
	byUser[userID] = job.ApplicationAccepted
	return true, nil
}

func (f *fakeApplicationRepo) Reject(_ context.Context, jobID, userID uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	byUser := f.apps[jobID]
	if byUser == nil || byUser[userID] != job.ApplicationPending {
		return false, nil
	}
	delete(byUser, userID)
	return true, nil
}

type fakeListCache struct {
	entries map[string][]byte
	hits    int
	sets    int
	deletes int
}

func newFakeListCache() *fakeListCache {
	return &fakeListCache{entries: make(map[string][]byte)}
}

func (f *fakeListCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	f.hits++
	return true, nil
}

func (f *fakeListCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = b
	f.sets++
	return nil
}

func (f *fakeListCache) Delete(_ context.Context, key string) error {
	delete(f.entries, key)
	f.deletes++
	return nil
}
