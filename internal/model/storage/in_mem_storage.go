package storage

import (
	"context"
	"sort"
	"sync"

	"max.ks1230/bills-bot/internal/entity/bill"
	"max.ks1230/bills-bot/internal/entity/user"
)

type InMemStorage struct {
	mu      sync.RWMutex
	userMap map[int64]user.Profile
}

func NewInMemStorage() *InMemStorage {
	s := make(map[int64]user.Profile)
	return &InMemStorage{userMap: s}
}

func (s *InMemStorage) GetProfile(_ context.Context, id int64) (user.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.userMap[id]
	if !ok {
		return user.Profile{}, ErrNotFound
	}
	return clone(p), nil
}

// SaveProfile stores everything but the bills, which only grow through AddBill.
func (s *InMemStorage) SaveProfile(_ context.Context, p user.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.userMap[p.ID]
	if !ok {
		stored = user.NewProfile(p.ID)
	}
	stored.Name = p.Name
	stored.PayFrequency = p.PayFrequency
	stored.Payday = p.Payday
	s.userMap[p.ID] = stored
	return nil
}

func (s *InMemStorage) AddBill(_ context.Context, userID int64, b bill.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.userMap[userID]
	if !ok {
		return ErrNotFound
	}
	p.AddBill(b)
	s.userMap[userID] = p
	return nil
}

func (s *InMemStorage) ListUserIDs(_ context.Context) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.userMap))
	for id := range s.userMap {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *InMemStorage) Ping(context.Context) error {
	return nil
}

func (s *InMemStorage) Close() error {
	return nil
}

// snapshot returns all profiles ordered by id.
func (s *InMemStorage) snapshot() []user.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]user.Profile, 0, len(s.userMap))
	for _, p := range s.userMap {
		res = append(res, clone(p))
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

// load replaces all stored profiles.
func (s *InMemStorage) load(profiles []user.Profile) {
	userMap := make(map[int64]user.Profile, len(profiles))
	for _, p := range profiles {
		userMap[p.ID] = clone(p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.userMap = userMap
}

func clone(p user.Profile) user.Profile {
	bills := make([]bill.Bill, len(p.Bills))
	copy(bills, p.Bills)
	p.Bills = bills
	return p
}
