package feecalc

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeHTTPClient struct {
	statusCode int
	body       []byte
	err        error
	calls      int
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, errors.New("not used")
}

func (f *fakeHTTPClient) Get(url string, headers http.Header) (int, []byte, http.Header, error) {
	f.calls++
	return f.statusCode, f.body, nil, f.err
}

func TestCheckCoverage(t *testing.T) {
	tests := []struct {
		name          string
		client        *fakeHTTPClient
		expected      *Coverage
		expectedError error
		expectedCalls int
	}{
		{
			name: "Covered location",
			client: &fakeHTTPClient{
				statusCode: http.StatusOK,
				body:       []byte(`{"has_coverage":true,"base_fee":700,"zone_id":"centro"}`),
			},
			expected:      &Coverage{HasCoverage: true, BaseFee: 700, ZoneID: "centro"},
			expectedCalls: 1,
		},
		{
			name: "Outside coverage",
			client: &fakeHTTPClient{
				statusCode: http.StatusOK,
				body:       []byte(`{"has_coverage":false}`),
			},
			expectedError: ErrNoCoverage,
			expectedCalls: 1,
		},
		{
			name:          "Remote down retries then fails",
			client:        &fakeHTTPClient{err: errors.New("connection refused")},
			expectedError: ErrUnavailable,
			expectedCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("http://feecalc", tt.client)
			coverage, err := c.CheckCoverage(context.Background(), -12.04, -77.03)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, coverage)
			}
			assert.Equal(t, tt.expectedCalls, tt.client.calls)
		})
	}
}
