package http_test

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jobnest/jobnest-api/internal/domain"
	"github.com/jobnest/jobnest-api/internal/repo"
)

// memStore is an in-memory stand-in for *repo.Store with the same lookup
// semantics (token expiry filters, unique email, unique saved-job pair).
type memStore struct {
	mu           sync.Mutex
	users        map[primitive.ObjectID]*domain.User
	jobs         map[primitive.ObjectID]*domain.Job
	companies    map[primitive.ObjectID]*domain.Company
	applications map[primitive.ObjectID]*domain.Application
	savedJobs    map[primitive.ObjectID]*domain.SavedJob
}

func newMemStore() *memStore {
	return &memStore{
		users:        map[primitive.ObjectID]*domain.User{},
		jobs:         map[primitive.ObjectID]*domain.Job{},
		companies:    map[primitive.ObjectID]*domain.Company{},
		applications: map[primitive.ObjectID]*domain.Application{},
		savedJobs:    map[primitive.ObjectID]*domain.SavedJob{},
	}
}

func (m *memStore) Ping(ctx context.Context) error { return nil }

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func (m *memStore) CreateUser(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	m.users[u.ID] = copyUser(u)
	return nil
}

func (m *memStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) FindUserByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return copyUser(u), nil
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) FindUserByVerificationToken(ctx context.Context, code string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for _, u := range m.users {
		if u.VerificationToken == code && u.VerificationToken != "" &&
			u.VerificationExpiresAt != nil && u.VerificationExpiresAt.After(now) {
			return copyUser(u), nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) FindUserByResetToken(ctx context.Context, token string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for _, u := range m.users {
		if u.ResetPasswordToken == token && u.ResetPasswordToken != "" &&
			u.ResetPasswordExpiresAt != nil && u.ResetPasswordExpiresAt.After(now) {
			return copyUser(u), nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) MarkVerified(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.IsVerified = true
	u.VerificationToken = ""
	u.VerificationExpiresAt = nil
	return nil
}

func (m *memStore) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, t time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.LastLogin = t.UTC()
	return nil
}

func (m *memStore) SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	exp := expiresAt.UTC()
	u.ResetPasswordToken = token
	u.ResetPasswordExpiresAt = &exp
	return nil
}

func (m *memStore) ReplacePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.PasswordHash = hash
	u.ResetPasswordToken = ""
	u.ResetPasswordExpiresAt = nil
	return nil
}

func (m *memStore) SetRole(ctx context.Context, id primitive.ObjectID, role domain.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.Role = role
	return nil
}

func (m *memStore) CreateJob(ctx context.Context, j *domain.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j.ID = primitive.NewObjectID()
	j.CreatedAt = time.Now().UTC()
	c := *j
	m.jobs[j.ID] = &c
	return nil
}

func (m *memStore) FindJobByID(ctx context.Context, id primitive.ObjectID) (*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j, ok := m.jobs[id]; ok {
		c := *j
		return &c, nil
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) ListJobs(ctx context.Context, limit, skip int) ([]domain.Job, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Job
	for _, j := range m.jobs {
		out = append(out, *j)
	}
	return out, int64(len(m.jobs)), nil
}

func (m *memStore) ListJobsByRecruiter(ctx context.Context, recruiterID primitive.ObjectID) ([]domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Job
	for _, j := range m.jobs {
		if j.RecruiterID == recruiterID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (m *memStore) UpdateJob(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return repo.ErrNotFound
	}
	if v, ok := set["title"].(string); ok {
		j.Title = v
	}
	if v, ok := set["description"].(string); ok {
		j.Description = v
	}
	if v, ok := set["location"].(string); ok {
		j.Location = v
	}
	if v, ok := set["requirements"].(string); ok {
		j.Requirements = v
	}
	if v, ok := set["is_open"].(bool); ok {
		j.IsOpen = v
	}
	return nil
}

func (m *memStore) DeleteJob(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

func (m *memStore) CreateCompany(ctx context.Context, c *domain.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.companies {
		if e.Name == c.Name {
			return repo.ErrDuplicate
		}
	}
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now().UTC()
	cp := *c
	m.companies[c.ID] = &cp
	return nil
}

func (m *memStore) FindCompanyByID(ctx context.Context, id primitive.ObjectID) (*domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.companies[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Company
	for _, c := range m.companies {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memStore) CreateApplication(ctx context.Context, a *domain.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now().UTC()
	cp := *a
	m.applications[a.ID] = &cp
	return nil
}

func (m *memStore) FindApplicationByID(ctx context.Context, id primitive.ObjectID) (*domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.applications[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (m *memStore) ListApplicationsByJob(ctx context.Context, jobID primitive.ObjectID) ([]domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Application
	for _, a := range m.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memStore) ListApplicationsByCandidate(ctx context.Context, candidateID primitive.ObjectID) ([]domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Application
	for _, a := range m.applications {
		if a.CandidateID == candidateID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memStore) UpdateApplicationStatus(ctx context.Context, id primitive.ObjectID, status domain.ApplicationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.applications[id]
	if !ok {
		return repo.ErrNotFound
	}
	a.Status = status
	return nil
}

func (m *memStore) SaveJob(ctx context.Context, userID, jobID primitive.ObjectID) (*domain.SavedJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sj := range m.savedJobs {
		if sj.UserID == userID && sj.JobID == jobID {
			return nil, repo.ErrDuplicate
		}
	}
	sj := &domain.SavedJob{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		JobID:     jobID,
		CreatedAt: time.Now().UTC(),
	}
	m.savedJobs[sj.ID] = sj
	cp := *sj
	return &cp, nil
}

func (m *memStore) ListSavedJobs(ctx context.Context, userID primitive.ObjectID) ([]domain.SavedJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.SavedJob
	for _, sj := range m.savedJobs {
		if sj.UserID == userID {
			out = append(out, *sj)
		}
	}
	return out, nil
}

func (m *memStore) DeleteSavedJob(ctx context.Context, userID, jobID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sj := range m.savedJobs {
		if sj.UserID == userID && sj.JobID == jobID {
			delete(m.savedJobs, id)
			return nil
		}
	}
	return repo.ErrNotFound
}

// test-only peeking helpers

func (m *memStore) userByEmail(email string) *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return copyUser(u)
		}
	}
	return nil
}

func (m *memStore) userCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

func (m *memStore) expireVerification(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email && u.VerificationExpiresAt != nil {
			past := time.Now().Add(-time.Minute)
			u.VerificationExpiresAt = &past
		}
	}
}

func (m *memStore) expireReset(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email && u.ResetPasswordExpiresAt != nil {
			past := time.Now().Add(-time.Minute)
			u.ResetPasswordExpiresAt = &past
		}
	}
}
