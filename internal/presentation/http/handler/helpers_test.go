package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestDateRangeUsesBusinessTimezone(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*60*60)
	c := queryContext(t, "from=2025-03-10&to=2025-03-10")

	from, to := dateRange(c, loc)
	if from == nil || to == nil {
		t.Fatal("expected both bounds")
	}

	if !from.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, loc)) {
		t.Errorf("from = %v, want local midnight", from)
	}

	// a sale at 00:30 local on the from day is inside the range; with
	// UTC parsing it would fall before the lower bound
	early := time.Date(2025, 3, 10, 0, 30, 0, 0, loc)
	if early.Before(*from) {
		t.Errorf("00:30 local excluded: sale %v < from %v", early, from)
	}

	// the whole to day is included, exclusive of the next local midnight
	late := time.Date(2025, 3, 10, 23, 59, 59, 0, loc)
	if !late.Before(*to) {
		t.Errorf("23:59:59 local excluded: sale %v >= to %v", late, to)
	}
	next := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)
	if next.Before(*to) {
		t.Errorf("next local midnight included: %v < to %v", next, to)
	}
}

func TestParseDateQueryMalformed(t *testing.T) {
	c := queryContext(t, "from=10-03-2025")
	if got := parseDateQuery(c, "from", time.UTC); got != nil {
		t.Errorf("malformed date parsed to %v, want nil", got)
	}
	if got := parseDateQuery(c, "absent", time.UTC); got != nil {
		t.Errorf("absent parameter parsed to %v, want nil", got)
	}
}
