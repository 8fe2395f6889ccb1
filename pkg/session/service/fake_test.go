package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ShahiTechnovation/X4PN/pkg/node"
	"github.com/ShahiTechnovation/X4PN/pkg/nodestore"
	"github.com/ShahiTechnovation/X4PN/pkg/session"
	"github.com/ShahiTechnovation/X4PN/pkg/sessionstore"
	"github.com/ShahiTechnovation/X4PN/pkg/user"
	"github.com/ShahiTechnovation/X4PN/pkg/userstore"
)

// memStore keeps sessions, users and nodes behind one mutex and applies the
// same compare-and-set rules as the postgres store.
type memStore struct {
	mu       sync.Mutex
	seq      int64
	sessions map[int64]*session.Session
	users    map[string]*user.User
	nodes    map[uuid.UUID]*node.Node
	applied  int
}

func newMemStore() *memStore {
	return &memStore{
		sessions: make(map[int64]*session.Session),
		users:    make(map[string]*user.User),
		nodes:    make(map[uuid.UUID]*node.Node),
	}
}

func (m *memStore) addUser(u *user.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.WalletAddress] = u
}

func (m *memStore) addNode(n *node.Node) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes[n.ID] = n
}

func (m *memStore) user(address string) user.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.users[address]
}

func (m *memStore) node(id uuid.UUID) node.Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.nodes[id]
}

func (m *memStore) appliedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applied
}

func copySession(s *session.Session) *session.Session {
	c := *s
	if s.EndedAt != nil {
		ended := *s.EndedAt
		c.EndedAt = &ended
	}
	return &c
}

// sessionstore.Store

func (m *memStore) CreateSession(_ context.Context, s *session.Session) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.sessions {
		if existing.UserID == s.UserID && existing.IsActive {
			return nil, session.ErrAlreadyActive
		}
	}
	n, ok := m.nodes[s.NodeID]
	if !ok {
		return nil, session.ErrNodeUnavailable
	}
	m.seq++
	created := copySession(s)
	created.ID = m.seq
	m.sessions[created.ID] = created
	n.ActiveUsers++
	return copySession(created), nil
}

func (m *memStore) GetSession(_ context.Context, id int64) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return copySession(s), nil
}

func (m *memStore) GetActiveSession(_ context.Context, userAddress string) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.UserAddress == userAddress && s.IsActive {
			return copySession(s), nil
		}
	}
	return nil, session.ErrNotFound
}

func (m *memStore) ListSessionsByUser(_ context.Context, userAddress string, limit int) ([]*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*session.Session
	for _, s := range m.sessions {
		if s.UserAddress == userAddress {
			out = append(out, copySession(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) ListActiveSessions(_ context.Context, opts ...sessionstore.ListOption) ([]*session.Session, error) {
	options := &sessionstore.ListOptions{Limit: 100}
	for _, opt := range opts {
		opt(options)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*session.Session
	for _, s := range m.sessions {
		if !s.IsActive {
			continue
		}
		if options.NodeID != nil && s.NodeID != *options.NodeID {
			continue
		}
		if options.SettledBefore != nil && !s.LastSettledAt.Before(*options.SettledBefore) {
			continue
		}
		if options.OnInactiveNodes && m.nodes[s.NodeID].IsActive {
			continue
		}
		out = append(out, copySession(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastSettledAt.Before(out[j].LastSettledAt) })
	if len(out) > options.Limit {
		out = out[:options.Limit]
	}
	return out, nil
}

func (m *memStore) CountActiveSessions(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, s := range m.sessions {
		if s.IsActive {
			n++
		}
	}
	return n, nil
}

func (m *memStore) ApplySettlement(_ context.Context, st *session.Settlement) (*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[st.SessionID]
	if !ok {
		return nil, session.ErrNotFound
	}
	if !s.IsActive || !s.LastSettledAt.Equal(st.PreviousSettledAt) {
		return nil, session.ErrConcurrentModification
	}
	u := m.users[st.UserAddress]
	if u.UsdcBalance.LessThan(st.Cost) {
		return nil, session.ErrConcurrentModification
	}

	u.UsdcBalance = u.UsdcBalance.Sub(st.Cost)
	u.X4pnBalance = u.X4pnBalance.Add(st.Reward)
	u.TotalSpent = u.TotalSpent.Add(st.Cost)
	u.TotalEarnedX4pn = u.TotalEarnedX4pn.Add(st.Reward)

	n := m.nodes[st.NodeID]
	n.TotalEarnedUsdc = n.TotalEarnedUsdc.Add(st.Cost)
	n.TotalEarnedX4pn = n.TotalEarnedX4pn.Add(st.Reward)

	s.TotalCost = s.TotalCost.Add(st.Cost)
	s.X4pnEarned = s.X4pnEarned.Add(st.Reward)
	s.TotalDuration += st.SecondsPaid
	s.LastSettledAt = st.SettledAt
	if st.Signature != "" {
		s.AttestationSignature = st.Signature
	}
	m.applied++
	return copySession(s), nil
}

func (m *memStore) Terminate(_ context.Context, t *session.Termination) (*session.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[t.SessionID]
	if !ok {
		return nil, false, session.ErrNotFound
	}
	if !s.IsActive {
		return copySession(s), false, nil
	}
	ended := t.EndedAt
	s.IsActive = false
	s.Status = t.Status
	s.EndedAt = &ended
	if n := m.nodes[s.NodeID]; n.ActiveUsers > 0 {
		n.ActiveUsers--
	}
	return copySession(s), true, nil
}

// UserStore

func (m *memStore) CreateUser(_ context.Context, u *user.User) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.users[u.WalletAddress]; ok {
		c := *existing
		return &c, nil
	}
	c := *u
	m.users[u.WalletAddress] = &c
	out := c
	return &out, nil
}

func (m *memStore) GetUser(_ context.Context, opts ...userstore.QueryOption) (*user.User, error) {
	options := &userstore.QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if options.WalletAddress == nil {
		return nil, userstore.ErrUserNotFound
	}
	u, ok := m.users[*options.WalletAddress]
	if !ok {
		return nil, userstore.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

// NodeStore

func (m *memStore) GetNode(_ context.Context, id uuid.UUID) (*node.Node, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.nodes[id]
	if !ok {
		return nil, nodestore.ErrNodeNotFound
	}
	c := *n
	return &c, nil
}

// testClock is a settable time source shared by concurrent callers.
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
