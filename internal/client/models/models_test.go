package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreatedAt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "rfc3339", input: "2025-08-14T10:30:00Z",
			want: time.Date(2025, 8, 14, 10, 30, 0, 0, time.UTC)},
		{name: "naive with micros", input: "2025-08-14T10:30:00.123456",
			want: time.Date(2025, 8, 14, 10, 30, 0, 123456000, time.UTC)},
		{name: "naive without fraction", input: "2025-08-14T10:30:00",
			want: time.Date(2025, 8, 14, 10, 30, 0, 0, time.UTC)},
		{name: "garbage", input: "yesterday", want: time.Time{}},
		{name: "empty", input: "", want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, ParseCreatedAt(tt.input).Equal(tt.want))
		})
	}
}

func TestUserProfile_FirstName(t *testing.T) {
	assert.Equal(t, "Aisha", UserProfile{Name: "Aisha Rahman"}.FirstName())
	assert.Equal(t, "Omar", UserProfile{Name: "  Omar "}.FirstName())
	assert.Equal(t, "", UserProfile{Name: ""}.FirstName())
}

func TestUserProfile_Initials(t *testing.T) {
	assert.Equal(t, "AR", UserProfile{Name: "Aisha Rahman"}.Initials())
	assert.Equal(t, "O", UserProfile{Name: "omar"}.Initials())
	assert.Equal(t, "AB", UserProfile{Name: "Abu Bakr as-Siddiq"}.Initials())
	assert.Equal(t, "", UserProfile{Name: ""}.Initials())
}

func TestSessionRecord_NullScoreUnmarshal(t *testing.T) {
	var s SessionRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"createdAt":"2025-08-14T10:30:00","score":null,"recognizedText":""}`), &s))
	assert.Nil(t, s.Score)

	require.NoError(t, json.Unmarshal([]byte(`{"id":8,"score":87.5}`), &s))
	require.NotNil(t, s.Score)
	assert.Equal(t, 87.5, *s.Score)
}

func TestGoal_OptionalFields(t *testing.T) {
	var g Goal
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"dailyVerses":5,"dailyMinutes":null,"createdAt":"2025-08-14T10:30:00"}`), &g))
	require.NotNil(t, g.DailyVerses)
	assert.Equal(t, 5, *g.DailyVerses)
	assert.Nil(t, g.DailyMinutes)
}
