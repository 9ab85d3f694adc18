package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCalculateCostRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CalculateCostRequest
		wantErr error
	}{
		{name: "zero is valid", req: CalculateCostRequest{Quantity: int64Ptr(0)}},
		{name: "positive is valid", req: CalculateCostRequest{Quantity: int64Ptr(26)}},
		{name: "missing", req: CalculateCostRequest{}, wantErr: ErrMissingQuantity},
		{name: "negative", req: CalculateCostRequest{Quantity: int64Ptr(-1)}, wantErr: ErrNegativeQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestBatchCostRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       BatchCostRequest
		wantErr   bool
		wantField string
	}{
		{name: "valid", req: BatchCostRequest{Quantities: []int64{0, 1, 26}}},
		{name: "empty", req: BatchCostRequest{}, wantErr: true, wantField: "quantities"},
		{name: "negative element", req: BatchCostRequest{Quantities: []int64{1, -2}}, wantErr: true, wantField: "quantities"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestHistoryQuery_Validate(t *testing.T) {
	assert.NoError(t, (&HistoryQuery{}).Validate())
	assert.NoError(t, (&HistoryQuery{Limit: 10, Quantity: int64Ptr(26)}).Validate())
	assert.Equal(t, ErrInvalidLimit, (&HistoryQuery{Limit: -1}).Validate())
	assert.Equal(t, ErrNegativeQuantity, (&HistoryQuery{Quantity: int64Ptr(-5)}).Validate())
}

func TestLogsQuery_Validate(t *testing.T) {
	early := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	tests := []struct {
		name    string
		query   LogsQuery
		wantErr error
	}{
		{name: "empty", query: LogsQuery{}},
		{name: "full range", query: LogsQuery{Since: &early, Until: &late, Limit: 10, Skip: 20}},
		{name: "open range", query: LogsQuery{Until: &early}},
		{name: "negative limit", query: LogsQuery{Limit: -1}, wantErr: ErrInvalidLimit},
		{name: "negative skip", query: LogsQuery{Skip: -1}, wantErr: ErrInvalidSkip},
		{name: "inverted range", query: LogsQuery{Since: &late, Until: &early}, wantErr: ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, tt.query.Validate())
		})
	}
}

func TestLogsQuery_Options(t *testing.T) {
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	opts := (&LogsQuery{RequestID: "r", Level: "warn", Method: "POST", Path: "/api/deals/batch", Since: &since, Skip: 5}).Options()
	assert.Equal(t, "r", opts.RequestID)
	assert.Equal(t, "warn", opts.Level)
	assert.Equal(t, "POST", opts.Method)
	assert.Equal(t, "/api/deals/batch", opts.Path)
	assert.Equal(t, &since, opts.StartTime)
	assert.Nil(t, opts.EndTime)
	assert.Equal(t, DefaultLogsLimit, opts.Limit)
	assert.Equal(t, 5, opts.Skip)

	assert.Equal(t, MaxLogsLimit, (&LogsQuery{Limit: MaxLogsLimit + 1}).Options().Limit)
	assert.Equal(t, 7, (&LogsQuery{Limit: 7}).Options().Limit)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "quantity: is required", ErrMissingQuantity.Error())
}
