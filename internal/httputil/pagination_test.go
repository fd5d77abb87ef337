package httputil

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginationContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/images?"+rawQuery, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		rawQuery   string
		wantOffset int
		wantLimit  int
		wantErr    bool
	}{
		{name: "Defaults", rawQuery: "", wantOffset: 0, wantLimit: 50},
		{name: "ExplicitValues", rawQuery: "offset=10&limit=25", wantOffset: 10, wantLimit: 25},
		{name: "MaxLimit", rawQuery: "limit=100", wantOffset: 0, wantLimit: 100},
		{name: "NegativeOffset", rawQuery: "offset=-1", wantErr: true},
		{name: "ZeroLimit", rawQuery: "limit=0", wantErr: true},
		{name: "LimitTooLarge", rawQuery: "limit=101", wantErr: true},
		{name: "NonNumeric", rawQuery: "offset=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit, err := ParsePagination(paginationContext(t, tt.rawQuery))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
