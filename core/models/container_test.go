package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContainers_StringAndNumberCreated(t *testing.T) {
	body := `[
		{"Id":"a1","Names":["/web"],"Image":"nginx","State":"running","Created":"200",
		 "Ports":[{"PrivatePort":80,"PublicPort":8080,"Type":"tcp"}],"Labels":{"x":"y"}},
		{"Id":"b2","Names":["/db"],"Image":"postgres","State":"running","Created":100,
		 "Ports":[{"PrivatePort":5432,"Type":"tcp"}]}
	]`

	records, err := DecodeContainers(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Timestamp(200), records[0].Created)
	assert.Equal(t, Timestamp(100), records[1].Created)
	assert.True(t, records[0].Ports[0].Published())
	assert.False(t, records[1].Ports[0].Published())
	assert.Equal(t, "/web", records[0].FirstName())
	assert.Equal(t, "web", records[0].DisplayName())
}

func TestDecodeContainers_BadCreated(t *testing.T) {
	_, err := DecodeContainers(strings.NewReader(`[{"Id":"a","Names":["/x"],"Created":"yesterday"}]`))
	assert.Error(t, err)
}

func TestTimestamp_Time(t *testing.T) {
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), Timestamp(1700000000).Time())
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		expected string
	}{
		{name: "leading slash", names: []string{"/web"}, expected: "web"},
		{name: "no slash", names: []string{"web"}, expected: "web"},
		{name: "only first slash", names: []string{"//web"}, expected: "/web"},
		{name: "no names", names: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ContainerRecord{Names: tt.names}
			assert.Equal(t, tt.expected, c.DisplayName())
		})
	}
}

func TestParseSortOption(t *testing.T) {
	for _, s := range []string{"name-asc", "name-desc", "created-asc", "created-desc"} {
		opt, ok := ParseSortOption(s)
		assert.True(t, ok, s)
		assert.Equal(t, SortOption(s), opt)
	}

	opt, ok := ParseSortOption("size-asc")
	assert.False(t, ok)
	assert.Equal(t, SortNameAsc, opt)
}
