package auth

import "sync"

type InMemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[int]*User
	byName map[string]int
	nextID int
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:  make(map[int]*User),
		byName: make(map[string]int),
		nextID: 1,
	}
}

func (r *InMemoryUserRepository) Create(user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[user.Username]; exists {
		return ErrDuplicateUsername
	}

	user.ID = r.nextID
	r.nextID++

	stored := *user
	r.users[user.ID] = &stored
	r.byName[user.Username] = user.ID
	return nil
}

func (r *InMemoryUserRepository) GetByID(id int) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *InMemoryUserRepository) GetByUsername(username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *r.users[id]
	return &copied, nil
}
