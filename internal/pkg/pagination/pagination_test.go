package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMeta(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty set", 1, 20, 0, 0, false, false},
		{"partial last page", 1, 20, 45, 3, true, false},
		{"exact pages", 2, 20, 40, 2, false, true},
		{"middle page", 2, 10, 35, 4, true, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			meta := GetMeta(&Params{Page: tc.page, Limit: tc.limit}, tc.total)
			assert.Equal(t, tc.totalPages, meta.TotalPages)
			assert.Equal(t, tc.hasNext, meta.HasNext)
			assert.Equal(t, tc.hasPrev, meta.HasPrev)
			assert.Equal(t, tc.total, meta.Total)
		})
	}
}
