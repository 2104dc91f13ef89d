package resource

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/palepusrinivas/guava-adminpanel-sub002/logging"
	"github.com/palepusrinivas/guava-adminpanel-sub002/upstream"
)

// ErrSubmissionInFlight is returned when a mutation starts while another one
// on the same resource has not settled.
var ErrSubmissionInFlight = errors.New("a previous submission is still in progress")

// UnavailableMessage is the banner text shown next to sample data.
const UnavailableMessage = "live data unavailable, showing sample data"

// Lister is the fetch side of a backend collection.
type Lister[T any] interface {
	List(ctx context.Context, q upstream.Query) (upstream.Page[T], error)
}

// ChangeFunc is called after a mutation succeeded.
type ChangeFunc func(ctx context.Context, resource, action string)

// State is the cached view of one resource collection.
type State[T any] struct {
	Items       []T    `json:"items"`
	IsLoading   bool   `json:"loading"`
	Error       string `json:"error,omitempty"`
	Filter      string `json:"filter"`
	SearchQuery string `json:"search"`
	Total       int    `json:"total"`
	TotalPages  int    `json:"totalPages"`
	Page        int    `json:"page"`
	Demo        bool   `json:"demo"`
}

// Option configures a Manager.
type Option[T any] func(*Manager[T])

// WithSampleData enables the demo fallback: when demo is true and a fetch fails
// with a not-implemented status, sample() replaces the list.
func WithSampleData[T any](demo bool, sample func() []T) Option[T] {
	return func(m *Manager[T]) {
		m.demo = demo
		m.sample = sample
	}
}

// WithLogger sets the logger.
func WithLogger[T any](log *zap.Logger) Option[T] {
	return func(m *Manager[T]) { m.log = log }
}

// OnChange registers a listener for successful mutations.
func OnChange[T any](fn ChangeFunc) Option[T] {
	return func(m *Manager[T]) { m.listeners = append(m.listeners, fn) }
}

// WithIdleTTL sets how long an unused session state is kept.
func WithIdleTTL[T any](ttl time.Duration) Option[T] {
	return func(m *Manager[T]) { m.idleTTL = ttl }
}

// DefaultIdleTTL is how long a session state survives without requests.
const DefaultIdleTTL = time.Hour

type sessionKey struct{}

// WithSession scopes resource state on ctx to one console session.
func WithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionFrom returns the session id stored on ctx, or "".
func SessionFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// session is the state one console session holds for one resource.
type session[T any] struct {
	state      State[T]
	generation uint64
	lastQuery  upstream.Query
	submitting bool
	lastUsed   time.Time
}

// Manager owns the state of one resource: fetch, client-side filter, mutations.
// State, the fetch generation and the in-flight guard are kept per session, so
// admins never see each other's pages or block each other's submissions.
type Manager[T any] struct {
	name   string
	lister Lister[T]
	filter Filter[T]
	log    *zap.Logger

	demo   bool
	sample func() []T

	idleTTL time.Duration
	now     func() time.Time

	mu         sync.Mutex
	sessions   map[string]*session[T]
	lastPruned time.Time
	listeners  []ChangeFunc
}

// NewManager builds a manager for the named resource.
func NewManager[T any](name string, lister Lister[T], filter Filter[T], opts ...Option[T]) *Manager[T] {
	m := &Manager[T]{
		name:     name,
		lister:   lister,
		filter:   filter,
		log:      zap.NewNop(),
		idleTTL:  DefaultIdleTTL,
		now:      time.Now,
		sessions: make(map[string]*session[T]),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(zap.String("resource", name))
	return m
}

// Name returns the resource name.
func (m *Manager[T]) Name() string { return m.name }

// Subscribe adds a change listener after construction.
func (m *Manager[T]) Subscribe(fn ChangeFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// sessionFor returns the session state for ctx. Callers hold m.mu.
func (m *Manager[T]) sessionFor(ctx context.Context) *session[T] {
	now := m.now()
	if now.Sub(m.lastPruned) >= m.idleTTL {
		for id, s := range m.sessions {
			if !s.submitting && !s.state.IsLoading && now.Sub(s.lastUsed) >= m.idleTTL {
				delete(m.sessions, id)
			}
		}
		m.lastPruned = now
	}
	id := SessionFrom(ctx)
	s, ok := m.sessions[id]
	if !ok {
		s = &session[T]{state: State[T]{Items: []T{}, Filter: TagAll}}
		m.sessions[id] = s
	}
	s.lastUsed = now
	return s
}

// view narrows the client-side filter and search of a list request.
type view struct {
	filter string
	search string
}

// load issues one list request for the session on ctx and returns the state
// that request produced. The session state only takes the result when no newer
// fetch of the same session started meanwhile.
func (m *Manager[T]) load(ctx context.Context, q upstream.Query, v *view) (State[T], error) {
	m.mu.Lock()
	s := m.sessionFor(ctx)
	s.generation++
	gen := s.generation
	s.lastQuery = q
	s.state.IsLoading = true
	out := s.state
	m.mu.Unlock()

	if v != nil {
		out.Filter = v.filter
		out.SearchQuery = v.search
	}
	out.IsLoading = false

	page, err := m.lister.List(ctx, q)
	switch {
	case err != nil && m.demo && m.sample != nil && upstream.IsNotImplemented(err):
		items := m.sample()
		out.Items = items
		out.Total = len(items)
		out.TotalPages = 1
		out.Page = 0
		out.Demo = true
		out.Error = UnavailableMessage
		logging.For(ctx, m.log).Info("serving sample data", zap.String("action", "fetch_demo"), zap.Error(err))
		err = nil
	case err != nil:
		out.Error = fetchMessage(err)
		logging.For(ctx, m.log).Warn("fetch failed", zap.String("action", "fetch_failed"), zap.Error(err))
	default:
		if page.Items == nil {
			page.Items = []T{}
		}
		out.Items = page.Items
		out.Total = page.TotalElements
		out.TotalPages = page.TotalPages
		out.Page = page.Number
		out.Demo = false
		out.Error = ""
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != s.generation {
		logging.For(ctx, m.log).Debug("discarding stale response", zap.String("action", "fetch_stale"), zap.Uint64("generation", gen))
	} else {
		s.state = out
	}
	out.Items = append([]T{}, out.Items...)
	return out, err
}

// Fetch issues one list request. A response that is not from the session's
// latest Fetch does not overwrite its fresher state.
func (m *Manager[T]) Fetch(ctx context.Context, q upstream.Query) error {
	_, err := m.load(ctx, q, nil)
	return err
}

// Refetch repeats the session's last query.
func (m *Manager[T]) Refetch(ctx context.Context) error {
	m.mu.Lock()
	q := m.sessionFor(ctx).lastQuery
	m.mu.Unlock()
	return m.Fetch(ctx, q)
}

// SetFilter changes the session's active status tag.
func (m *Manager[T]) SetFilter(ctx context.Context, tag string) {
	if tag == "" {
		tag = TagAll
	}
	m.mu.Lock()
	m.sessionFor(ctx).state.Filter = tag
	m.mu.Unlock()
}

// SetSearchQuery changes the session's free-text query.
func (m *Manager[T]) SetSearchQuery(ctx context.Context, q string) {
	m.mu.Lock()
	m.sessionFor(ctx).state.SearchQuery = q
	m.mu.Unlock()
}

// Snapshot returns a copy of the session's raw state.
func (m *Manager[T]) Snapshot(ctx context.Context) State[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessionFor(ctx).state
	s.Items = append([]T{}, s.Items...)
	return s
}

// View returns the session's state with Items replaced by the filtered list.
func (m *Manager[T]) View(ctx context.Context) State[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessionFor(ctx).state
	s.Items = m.filter.Apply(s.Items, s.Filter, s.SearchQuery)
	return s
}

// Mutate runs fn as the single in-flight submission of this resource for the
// session on ctx. On success the list is refetched and listeners are notified;
// on failure state is untouched.
func (m *Manager[T]) Mutate(ctx context.Context, action string, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	s := m.sessionFor(ctx)
	if s.submitting {
		m.mu.Unlock()
		return ErrSubmissionInFlight
	}
	s.submitting = true
	m.mu.Unlock()

	err := fn(ctx)

	m.mu.Lock()
	s.submitting = false
	listeners := append([]ChangeFunc(nil), m.listeners...)
	m.mu.Unlock()

	log := logging.For(ctx, m.log).With(zap.String("action", action))
	if err != nil {
		log.Warn("mutation failed", zap.Error(err))
		return err
	}
	log.Info("mutation applied")

	if ferr := m.Refetch(ctx); ferr != nil {
		log.Warn("refetch after mutation failed", zap.Error(ferr))
	}
	for _, l := range listeners {
		l(ctx, m.name, action)
	}
	return nil
}

func fetchMessage(err error) string {
	if upstream.IsNotImplemented(err) {
		return upstream.NotImplementedMessage
	}
	return upstream.Message(err)
}

// ListParams is one list screen request: pagination and server params go to
// the backend, Filter and Search narrow the result client-side.
type ListParams struct {
	Page   int
	Size   int
	Filter string
	Search string
	Params map[string]string
}

// List fetches and returns the view derived from this request's own response
// and parameters. A failed fetch still returns the view so the caller can
// show the banner.
func (m *Manager[T]) List(ctx context.Context, p ListParams) (State[T], error) {
	tag := p.Filter
	if tag == "" {
		tag = TagAll
	}
	st, err := m.load(ctx, upstream.Query{Page: p.Page, Size: p.Size, Params: p.Params}, &view{filter: tag, search: p.Search})
	st.Items = m.filter.Apply(st.Items, tag, p.Search)
	return st, err
}
