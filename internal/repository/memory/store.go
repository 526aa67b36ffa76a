// Package memory содержит хранилище в памяти для STORAGE_TYPE=memory и тестов.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"fcp-bot-service/internal/domain"
)

// Store хранит все сущности в памяти. Правила уникальности и каскадного удаления
// совпадают с PostgreSQL.
type Store struct {
	mu sync.RWMutex
	// txMu сериализует изменения предложений так же, как блокировка строки issue.
	txMu sync.Mutex

	users        map[int64]domain.GitHubUser
	userByLogin  map[string]int64
	issues       map[int64]domain.Issue
	issueByKey   map[string]int64
	comments     map[int64]domain.Comment
	proposals    map[int64]domain.Proposal
	reviews      map[int64]domain.ReviewRequest
	concerns     map[int64]domain.Concern
	feedback     map[int64]domain.FeedbackRequest
	nextIssue    int64
	nextProposal int64
	nextReview   int64
	nextConcern  int64
	nextFeedback int64
}

// NewStore создает пустое хранилище.
func NewStore() *Store {
	return &Store{
		users:       make(map[int64]domain.GitHubUser),
		userByLogin: make(map[string]int64),
		issues:      make(map[int64]domain.Issue),
		issueByKey:  make(map[string]int64),
		comments:    make(map[int64]domain.Comment),
		proposals:   make(map[int64]domain.Proposal),
		reviews:     make(map[int64]domain.ReviewRequest),
		concerns:    make(map[int64]domain.Concern),
		feedback:    make(map[int64]domain.FeedbackRequest),
	}
}

// Users возвращает хранилище пользователей.
func (s *Store) Users() domain.UserRepository {
	return &userRepo{s: s}
}

// Issues возвращает хранилище issue.
func (s *Store) Issues() domain.IssueRepository {
	return &issueRepo{s: s}
}

// Comments возвращает хранилище комментариев.
func (s *Store) Comments() domain.CommentRepository {
	return &commentRepo{s: s}
}

// Proposals возвращает хранилище предложений.
func (s *Store) Proposals() domain.ProposalRepository {
	return &proposalRepo{s: s}
}

// snapshot - копия изменяемого состояния предложений для отката.
type snapshot struct {
	proposals    map[int64]domain.Proposal
	reviews      map[int64]domain.ReviewRequest
	concerns     map[int64]domain.Concern
	feedback     map[int64]domain.FeedbackRequest
	nextProposal int64
	nextReview   int64
	nextConcern  int64
	nextFeedback int64
}

func (s *Store) takeSnapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return snapshot{
		proposals:    cloneMap(s.proposals),
		reviews:      cloneMap(s.reviews),
		concerns:     cloneMap(s.concerns),
		feedback:     cloneMap(s.feedback),
		nextProposal: s.nextProposal,
		nextReview:   s.nextReview,
		nextConcern:  s.nextConcern,
		nextFeedback: s.nextFeedback,
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.proposals = snap.proposals
	s.reviews = snap.reviews
	s.concerns = snap.concerns
	s.feedback = snap.feedback
	s.nextProposal = snap.nextProposal
	s.nextReview = snap.nextReview
	s.nextConcern = snap.nextConcern
	s.nextFeedback = snap.nextFeedback
}

// Ссылки *int64 в сущностях только заменяются, поэтому поверхностной копии достаточно.
func cloneMap[V any](m map[int64]V) map[int64]V {
	out := make(map[int64]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func issueKey(repository string, number int32) string {
	return fmt.Sprintf("%s#%d", repository, number)
}

func idRef(id int64) *int64 {
	return &id
}
