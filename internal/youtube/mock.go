package youtube

import (
	"context"
	"sync"

	"github.com/hahaha-network/revsync/internal/model"
	"github.com/hahaha-network/revsync/internal/service"
)

// MockSource is a mock implementation of RevenueSource for testing.
type MockSource struct {
	// QueryFunc, when set, answers QueryRevenue calls.
	QueryFunc func(ctx context.Context, groupID string, region model.RegionFilter, month model.Month) (model.RevenueObservation, error)
	// QueryRangeFunc, when set, answers QueryRevenueRange calls.
	QueryRangeFunc func(ctx context.Context, groupID string, region model.RegionFilter, from, to model.Month) (map[model.Month]model.RevenueObservation, error)

	QueryCalls []MockQueryCall
	mu         sync.Mutex
}

// MockQueryCall records one query issued against the mock.
type MockQueryCall struct {
	GroupID string
	Region  model.RegionFilter
	From    model.Month
	To      model.Month
}

var _ service.RevenueSource = (*MockSource)(nil)

// QueryRevenue implements the RevenueSource interface.
func (m *MockSource) QueryRevenue(ctx context.Context, groupID string, region model.RegionFilter, month model.Month) (model.RevenueObservation, error) {
	m.record(MockQueryCall{GroupID: groupID, Region: region, From: month, To: month})

	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, groupID, region, month)
	}
	return model.NoDataObservation(groupID, month), nil
}

// QueryRevenueRange implements the RevenueSource interface. When only
// QueryFunc is configured, the range is answered month by month.
func (m *MockSource) QueryRevenueRange(ctx context.Context, groupID string, region model.RegionFilter, from, to model.Month) (map[model.Month]model.RevenueObservation, error) {
	m.record(MockQueryCall{GroupID: groupID, Region: region, From: from, To: to})

	if m.QueryRangeFunc != nil {
		return m.QueryRangeFunc(ctx, groupID, region, from, to)
	}

	out := make(map[model.Month]model.RevenueObservation)
	for _, month := range model.MonthsBetween(from, to) {
		if m.QueryFunc == nil {
			continue
		}
		obs, err := m.QueryFunc(ctx, groupID, region, month)
		if err != nil {
			return nil, err
		}
		if obs.Present {
			out[month] = obs
		}
	}
	return out, nil
}

func (m *MockSource) record(call MockQueryCall) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QueryCalls = append(m.QueryCalls, call)
}

// Calls returns a copy of all recorded query calls.
func (m *MockSource) Calls() []MockQueryCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]MockQueryCall, len(m.QueryCalls))
	copy(calls, m.QueryCalls)
	return calls
}
