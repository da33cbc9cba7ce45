package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"

	"github.com/google/uuid"
)

// memoryStore backs every repository with maps so the HTTP surface can be
// exercised end to end without PostgreSQL. Deleting a patient removes its
// visits like the ON DELETE CASCADE foreign key does.
type memoryStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*entity.User
	profiles map[uuid.UUID]*entity.Profile
	sessions map[uuid.UUID]*entity.Session
	patients map[uuid.UUID]*entity.Patient
	visits   map[uuid.UUID]*entity.Visit
	seq      time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    make(map[uuid.UUID]*entity.User),
		profiles: make(map[uuid.UUID]*entity.Profile),
		sessions: make(map[uuid.UUID]*entity.Session),
		patients: make(map[uuid.UUID]*entity.Patient),
		visits:   make(map[uuid.UUID]*entity.Visit),
		seq:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns strictly increasing creation times so newest-first ordering is deterministic.
func (s *memoryStore) tick() time.Time {
	s.seq = s.seq.Add(time.Second)

	return s.seq
}

type memoryUsers struct{ s *memoryStore }

func (r memoryUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	cp.Profile = r.s.profiles[id]

	return &cp, nil
}

func (r memoryUsers) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			cp.Profile = r.s.profiles[u.ID]

			return &cp, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r memoryUsers) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	if err == repository.ErrUserNotFound {
		return false, nil
	}

	return err == nil, err
}

func (r memoryUsers) Create(ctx context.Context, user *entity.User) error {
	if exists, _ := r.ExistsByUsername(ctx, user.Username); exists {
		return repository.ErrUsernameTaken
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = r.s.tick()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	cp.Profile = nil
	r.s.users[user.ID] = &cp

	return nil
}

type memoryProfiles struct{ s *memoryStore }

func (r memoryProfiles) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	cp := *p

	return &cp, nil
}

func (r memoryProfiles) Create(_ context.Context, profile *entity.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.profiles[profile.UserID]; ok {
		return repository.ErrProfileExists
	}
	cp := *profile
	r.s.profiles[profile.UserID] = &cp

	return nil
}

type memorySessions struct{ s *memoryStore }

func (r memorySessions) Create(_ context.Context, session *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session.CreatedAt = r.s.tick()
	cp := *session
	r.s.sessions[session.ID] = &cp

	return nil
}

func (r memorySessions) FindByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session, ok := r.s.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	cp := *session

	return &cp, nil
}

func (r memorySessions) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.sessions, id)

	return nil
}

func (r memorySessions) DeleteExpiredByUser(_ context.Context, userID uuid.UUID, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, session := range r.s.sessions {
		if session.UserID == userID && !session.ExpiresAt.After(now) {
			delete(r.s.sessions, id)
			n++
		}
	}

	return n, nil
}

type memoryPatients struct{ s *memoryStore }

func (r memoryPatients) Create(_ context.Context, patient *entity.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	patient.ID = uuid.New()
	patient.CreatedAt = r.s.tick()
	patient.UpdatedAt = patient.CreatedAt
	cp := *patient
	r.s.patients[patient.ID] = &cp

	return nil
}

func (r memoryPatients) FindByID(_ context.Context, id uuid.UUID) (*entity.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.patients[id]
	if !ok {
		return nil, repository.ErrPatientNotFound
	}
	cp := *p

	return &cp, nil
}

func (r memoryPatients) FindOwned(ctx context.Context, owner, id uuid.UUID) (*entity.Patient, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.CreatedBy != owner {
		return nil, repository.ErrPatientNotFound
	}

	return p, nil
}

func (r memoryPatients) ListByOwner(_ context.Context, owner uuid.UUID) ([]*entity.Patient, error) {
	return r.list(func(p *entity.Patient) bool { return p.CreatedBy == owner }), nil
}

func (r memoryPatients) CountByOwner(ctx context.Context, owner uuid.UUID) (int64, error) {
	patients, _ := r.ListByOwner(ctx, owner)

	return int64(len(patients)), nil
}

func (r memoryPatients) ListAll(_ context.Context) ([]*entity.Patient, error) {
	return r.list(func(*entity.Patient) bool { return true }), nil
}

func (r memoryPatients) DeleteOwned(_ context.Context, owner, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.patients[id]
	if !ok || p.CreatedBy != owner {
		return repository.ErrPatientNotFound
	}
	delete(r.s.patients, id)
	for visitID, v := range r.s.visits {
		if v.PatientID == id {
			delete(r.s.visits, visitID)
		}
	}

	return nil
}

func (r memoryPatients) list(keep func(*entity.Patient) bool) []*entity.Patient {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*entity.Patient, 0, len(r.s.patients))
	for _, p := range r.s.patients {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out
}

type memoryVisits struct{ s *memoryStore }

func (r memoryVisits) Create(_ context.Context, visit *entity.Visit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.patients[visit.PatientID]; !ok {
		return repository.ErrPatientNotFound
	}
	visit.ID = uuid.New()
	visit.CreatedAt = r.s.tick()
	cp := *visit
	r.s.visits[visit.ID] = &cp

	return nil
}

func (r memoryVisits) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*entity.Visit, error) {
	return r.list(func(v *entity.Visit) bool { return v.PatientID == patientID }, 0), nil
}

func (r memoryVisits) ListRecentByDoctor(_ context.Context, doctorID uuid.UUID, limit int) ([]*entity.Visit, error) {
	return r.list(func(v *entity.Visit) bool { return v.DoctorID == doctorID }, limit), nil
}

func (r memoryVisits) list(keep func(*entity.Visit) bool, limit int) []*entity.Visit {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*entity.Visit, 0, len(r.s.visits))
	for _, v := range r.s.visits {
		if keep(v) {
			cp := *v
			if p, ok := r.s.patients[v.PatientID]; ok {
				patient := *p
				cp.Patient = &patient
			}
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].VisitDate.Equal(out[j].VisitDate) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}

		return out[i].VisitDate.After(out[j].VisitDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

type memoryFactory struct{ s *memoryStore }

func (f memoryFactory) UserRepo() repository.UserRepository       { return memoryUsers(f) }
func (f memoryFactory) ProfileRepo() repository.ProfileRepository { return memoryProfiles(f) }
func (f memoryFactory) SessionRepo() repository.SessionRepository { return memorySessions(f) }

// memoryTx runs fn directly; the store has no partial writes to roll back in these tests.
type memoryTx struct{ s *memoryStore }

func (t memoryTx) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(memoryFactory(t))
}
