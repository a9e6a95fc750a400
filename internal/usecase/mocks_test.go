package usecase

import (
	"context"

	"career-connect/internal/domain/job"
	"career-connect/internal/domain/material"
	"career-connect/internal/domain/savedjob"
	"career-connect/internal/domain/user"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// mockJobRepo is an in-memory job.Repository. Documents are keyed by hex id;
// listErr/getErr force store faults.
type mockJobRepo struct {
	byID    map[string]job.Job
	listed  []job.Job
	listErr error
	getErr  error

	pinned   map[string]bool
	viewIncs map[string]int

	lastFilter job.StatusFilter
	lastToday  string
	lastIDs    []string
	lastUpdate map[string]any
	deleted    []string
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{
		byID:     map[string]job.Job{},
		pinned:   map[string]bool{},
		viewIncs: map[string]int{},
	}
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	if m.getErr != nil {
		return job.Job{}, m.getErr
	}
	j.ID = bson.NewObjectID()
	m.byID[j.ID.Hex()] = j
	return j, nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id string) (job.Job, error) {
	if m.getErr != nil {
		return job.Job{}, m.getErr
	}
	j, ok := m.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) GetDetailByID(_ context.Context, id string) (job.OverviewDetail, error) {
	if m.getErr != nil {
		return job.OverviewDetail{}, m.getErr
	}
	j, ok := m.byID[id]
	if !ok {
		return job.OverviewDetail{}, job.ErrNotFound
	}
	return job.OverviewDetail{ID: j.ID, Title: j.Title, Views: j.Views}, nil
}

func (m *mockJobRepo) List(context.Context) ([]job.Job, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listed, nil
}

func (m *mockJobRepo) ListByStatus(_ context.Context, f job.StatusFilter, today string) ([]job.Job, error) {
	m.lastFilter = f
	m.lastToday = today
	if m.listErr != nil {
		return nil, m.listErr
	}
	if f == job.FilterAll {
		return m.listed, nil
	}
	out := make([]job.Job, 0, len(m.listed))
	for _, j := range m.listed {
		switch f {
		case job.FilterLive:
			if j.EndDate == "" || j.EndDate > today || j.Status == job.StatusLive {
				out = append(out, j)
			}
		case job.FilterExpired:
			if (j.EndDate != "" && j.EndDate < today) || j.Status == job.StatusExpired {
				out = append(out, j)
			}
		}
	}
	return out, nil
}

func (m *mockJobRepo) ListByIDs(_ context.Context, ids []string) ([]job.Job, error) {
	m.lastIDs = ids
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]job.Job, 0, len(ids))
	for _, id := range ids {
		if j, ok := m.byID[id]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepo) Update(_ context.Context, id string, fields map[string]any) (job.Job, error) {
	m.lastUpdate = fields
	j, ok := m.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return job.ErrNotFound
	}
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockJobRepo) SetPinned(_ context.Context, id string, pinned bool) error {
	j, ok := m.byID[id]
	if !ok {
		return job.ErrNotFound
	}
	j.Pinned = pinned
	m.byID[id] = j
	m.pinned[id] = pinned
	return nil
}

func (m *mockJobRepo) IncrementViews(_ context.Context, id string) error {
	j, ok := m.byID[id]
	if !ok {
		return job.ErrNotFound
	}
	j.Views++
	m.byID[id] = j
	m.viewIncs[id]++
	return nil
}

type mockSavedJobRepo struct {
	assocs  []savedjob.SavedJob
	listErr error
	created []savedjob.SavedJob
}

func (m *mockSavedJobRepo) ListByUser(_ context.Context, userID string) ([]savedjob.SavedJob, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]savedjob.SavedJob, 0)
	for _, a := range m.assocs {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockSavedJobRepo) Exists(_ context.Context, userID, jobID string) (bool, error) {
	for _, a := range m.assocs {
		if a.UserID == userID && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSavedJobRepo) Create(_ context.Context, s savedjob.SavedJob) error {
	m.assocs = append(m.assocs, s)
	m.created = append(m.created, s)
	return nil
}

func (m *mockSavedJobRepo) Delete(_ context.Context, userID, jobID string) error {
	for i, a := range m.assocs {
		if a.UserID == userID && a.JobID == jobID {
			m.assocs = append(m.assocs[:i], m.assocs[i+1:]...)
			return nil
		}
	}
	return savedjob.ErrNotFound
}

type mockMaterialRepo struct {
	byID map[string]material.Material
	err  error
}

func newMockMaterialRepo() *mockMaterialRepo {
	return &mockMaterialRepo{byID: map[string]material.Material{}}
}

func (m *mockMaterialRepo) Create(_ context.Context, mat material.Material) (material.Material, error) {
	if m.err != nil {
		return material.Material{}, m.err
	}
	mat.ID = bson.NewObjectID()
	m.byID[mat.ID.Hex()] = mat
	return mat, nil
}

func (m *mockMaterialRepo) GetByID(_ context.Context, id string) (material.Material, error) {
	if m.err != nil {
		return material.Material{}, m.err
	}
	mat, ok := m.byID[id]
	if !ok {
		return material.Material{}, material.ErrNotFound
	}
	return mat, nil
}

func (m *mockMaterialRepo) List(_ context.Context, f material.ListFilter) ([]material.Material, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]material.Material, 0)
	for _, mat := range m.byID {
		if f.Category != "" && mat.Category != f.Category {
			continue
		}
		if f.Type != "" && mat.Type != f.Type {
			continue
		}
		out = append(out, mat)
	}
	return out, nil
}

func (m *mockMaterialRepo) Update(_ context.Context, id string, _ map[string]any) (material.Material, error) {
	mat, ok := m.byID[id]
	if !ok {
		return material.Material{}, material.ErrNotFound
	}
	return mat, nil
}

func (m *mockMaterialRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return material.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type mockUserRepo struct {
	byID    map[string]user.User
	byEmail map[string]user.User

	verified  map[string]bool
	passwords map[string]string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:      map[string]user.User{},
		byEmail:   map[string]user.User{},
		verified:  map[string]bool{},
		passwords: map[string]string{},
	}
}

func (m *mockUserRepo) add(u user.User) user.User {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	m.byID[u.ID.Hex()] = u
	m.byEmail[u.Email] = u
	return u
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	return m.add(u), nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockUserRepo) SetVerified(_ context.Context, id string, verified bool) error {
	if _, ok := m.byID[id]; !ok {
		return user.ErrNotFound
	}
	m.verified[id] = verified
	return nil
}

func (m *mockUserRepo) SetPasswordHash(_ context.Context, id string, hash string) error {
	if _, ok := m.byID[id]; !ok {
		return user.ErrNotFound
	}
	m.passwords[id] = hash
	return nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, id string, _, _ string) error {
	if _, ok := m.byID[id]; !ok {
		return user.ErrNotFound
	}
	return nil
}

type mockAdminRepo struct {
	admins map[string]bool
	err    error
}

func (m *mockAdminRepo) IsAdmin(_ context.Context, userID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.admins[userID], nil
}
