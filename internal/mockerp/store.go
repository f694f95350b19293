package mockerp

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const maxCallLogs = 10000

// Store is the in-memory state of the fake ERP. Safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	now   func() time.Time
	newID func() string

	usersByOpenID map[string]*User
	usersByID     map[string]*User
	invites       map[string]Company
	bindings      map[string]Binding
	orders        []*Order
	messages      map[string][]*Message
	uploads       []Upload
	reports       []ErrorReport
	calls         []CallLog
}

// Option customises a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces uuid generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// NewStore returns a store loaded with the demo companies and orders.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:           time.Now,
		newID:         uuid.NewString,
		usersByOpenID: make(map[string]*User),
		usersByID:     make(map[string]*User),
		invites:       make(map[string]Company),
		bindings:      make(map[string]Binding),
		messages:      make(map[string][]*Message),
	}
	for _, opt := range opts {
		opt(s)
	}
	seed(s)
	return s
}

// Login resolves a login code to a user, creating it on first sight. The same code always
// maps to the same user.
func (s *Store) Login(code, nickName string) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	openID := "mock-" + code
	if u, ok := s.usersByOpenID[openID]; ok {
		if nickName != "" {
			u.NickName = nickName
		}
		return *u
	}

	u := &User{ID: s.newID(), OpenID: openID, UnionID: "union-" + code, NickName: nickName}
	s.usersByOpenID[openID] = u
	s.usersByID[u.ID] = u
	s.messages[u.ID] = seedMessages(u.ID, s.now(), s.newID)
	return *u
}

// User returns the user with id.
func (s *Store) User(id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.usersByID[id]
	if !ok {
		return User{}, ErrUnknownUser
	}
	return *u, nil
}

// Bind links userID to the company behind inviteCode. An existing binding is kept and
// reported with existed=true.
func (s *Store) Bind(userID, inviteCode string) (b Binding, existed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usersByID[userID]; !ok {
		return Binding{}, false, ErrUnknownUser
	}
	if b, ok := s.bindings[userID]; ok {
		return b, true, nil
	}
	company, ok := s.invites[strings.ToUpper(strings.TrimSpace(inviteCode))]
	if !ok {
		return Binding{}, false, ErrInvalidInviteCode
	}
	b = Binding{Company: company, InviteCode: inviteCode, BoundAt: s.now()}
	s.bindings[userID] = b
	return b, false, nil
}

// Binding returns the company binding of userID.
func (s *Store) Binding(userID string) (Binding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bindings[userID]
	if !ok {
		return Binding{}, ErrNotBound
	}
	return b, nil
}

// SearchOrders pages through a customer's orders, newest first. keyword matches the order
// number as a substring; status matches exactly.
func (s *Store) SearchOrders(customerID, keyword, status string, page, pageSize int) ([]Order, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*Order
	for _, o := range s.orders {
		if o.CustomerID != customerID {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToUpper(o.No), strings.ToUpper(keyword)) {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		matched = append(matched, o)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })

	total := int64(len(matched))
	start := (page - 1) * pageSize
	if start < 0 || start >= len(matched) {
		return nil, total
	}
	end := min(start+pageSize, len(matched))

	out := make([]Order, 0, end-start)
	for _, o := range matched[start:end] {
		out = append(out, *o)
	}
	return out, total
}

// Order finds an order of customerID by number or id.
func (s *Store) Order(customerID, noOrID string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.CustomerID == customerID && (o.No == noOrID || o.ID == noOrID) {
			return *o, nil
		}
	}
	return Order{}, ErrOrderNotFound
}

// Material finds a material of customerID across its orders.
func (s *Store) Material(customerID, materialID string) (Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.CustomerID != customerID {
			continue
		}
		for _, m := range o.Materials {
			if m.ID == materialID {
				return m, nil
			}
		}
	}
	return Material{}, ErrMaterialNotFound
}

// Messages pages through userID's feed, newest first. It also returns whether more pages
// follow and the unread count across the filtered feed.
func (s *Store) Messages(userID, msgType string, page, pageSize int) (msgs []Message, hasMore bool, unread int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*Message
	for _, m := range s.messages[userID] {
		if msgType != "" && m.Type != msgType {
			continue
		}
		if !m.IsRead {
			unread++
		}
		matched = append(matched, m)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	start := (page - 1) * pageSize
	if start < 0 || start >= len(matched) {
		return nil, false, unread
	}
	end := min(start+pageSize, len(matched))
	for _, m := range matched[start:end] {
		msgs = append(msgs, *m)
	}
	return msgs, end < len(matched), unread
}

// MarkRead marks one message read. Marking a read message again is not an error.
func (s *Store) MarkRead(userID, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages[userID] {
		if m.ID == messageID {
			m.IsRead = true
			return nil
		}
	}
	return ErrMessageNotFound
}

// MarkAllRead marks every message of userID read and returns how many changed.
func (s *Store) MarkAllRead(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := 0
	for _, m := range s.messages[userID] {
		if !m.IsRead {
			m.IsRead = true
			changed++
		}
	}
	return changed
}

// ClearAll deletes userID's feed and returns how many messages were removed.
func (s *Store) ClearAll(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.messages[userID])
	s.messages[userID] = nil
	return n
}

// SaveUpload records an uploaded file.
func (s *Store) SaveUpload(name string, size int64) Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := Upload{ID: s.newID(), Name: name, Size: size}
	s.uploads = append(s.uploads, u)
	return u
}

// AddErrorReport records a client-side error.
func (s *Store) AddErrorReport(r ErrorReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, r)
}

// ErrorReports returns every recorded report, oldest first.
func (s *Store) ErrorReports() []ErrorReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]ErrorReport(nil), s.reports...)
}

// RecordCall appends to the call log used by the monitor endpoints. The log is capped.
func (s *Store) RecordCall(endpoint string, status int, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, CallLog{Endpoint: endpoint, Status: status, Duration: d, At: s.now()})
	if len(s.calls) > maxCallLogs {
		s.calls = s.calls[len(s.calls)-maxCallLogs:]
	}
}

// CallStats aggregates calls made since `since`, grouped by label(call). Groups are sorted
// by label.
func (s *Store) CallStats(since time.Time, label func(CallLog) string) []EndpointStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make(map[string]*EndpointStats)
	totalMs := make(map[string]float64)
	for _, c := range s.calls {
		if c.At.Before(since) {
			continue
		}
		key := label(c)
		g, ok := groups[key]
		if !ok {
			g = &EndpointStats{Label: key}
			groups[key] = g
		}
		ms := float64(c.Duration) / float64(time.Millisecond)
		g.TotalCalls++
		if c.Status >= 400 {
			g.ErrorCalls++
		}
		if ms > g.MaxMs {
			g.MaxMs = ms
		}
		totalMs[key] += ms
	}

	out := make([]EndpointStats, 0, len(groups))
	for key, g := range groups {
		g.AvgMs = totalMs[key] / float64(g.TotalCalls)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Now returns the store clock.
func (s *Store) Now() time.Time {
	return s.now()
}
