package enrich

import (
	"context"
	"sync"

	"github.com/graphbio/helix/internal/core/model"
)

type MockFetcher struct {
	mu      sync.Mutex
	Calls   int
	Summary *model.SummaryRecord
	Err     error
	// Block, when set, holds every fetch until the channel is closed.
	Block chan struct{}
}

func (m *MockFetcher) Fetch(ctx context.Context, id string) (*model.SummaryRecord, error) {
	m.mu.Lock()
	m.Calls++
	block := m.Block
	m.mu.Unlock()

	if block != nil {
		<-block
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summary, nil
}

func (m *MockFetcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

func (m *MockFetcher) SetErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}

type MockSummarizer struct {
	Summary *model.SummaryRecord
	Err     error
}

func (m *MockSummarizer) Summarize(ctx context.Context, rec *model.EntityRecord) (*model.SummaryRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summary, nil
}
