package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albot-uz/albot/internal/dal/testutil"
	"github.com/albot-uz/albot/internal/service"
)

func TestChannels_Add(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		handle   string
		wantErr  assert.ErrorAssertionFunc
		want     []string
	}{
		{
			name:    "success",
			handle:  "@news",
			wantErr: assert.NoError,
			want:    []string{"@news"},
		},
		{
			name:    "trims_whitespace",
			handle:  "  @news \n",
			wantErr: assert.NoError,
			want:    []string{"@news"},
		},
		{
			name:     "duplicate",
			existing: []string{"@news"},
			handle:   "@news",
			wantErr:  testutil.AssertErrorIsAndContains(service.ErrChannelExists, "@news"),
			want:     []string{"@news"},
		},
		{
			name:    "empty",
			handle:  "",
			wantErr: testutil.AssertErrorIsAndContains(service.ErrInvalidChannelHandle, "invalid channel handle"),
		},
		{
			name:    "missing_prefix",
			handle:  "news",
			wantErr: testutil.AssertErrorIsAndContains(service.ErrInvalidChannelHandle, "news"),
		},
		{
			name:    "bare_at",
			handle:  "@",
			wantErr: testutil.AssertErrorIsAndContains(service.ErrInvalidChannelHandle, "@"),
		},
		{
			name:    "inner_whitespace",
			handle:  "@ne ws",
			wantErr: testutil.AssertErrorIsAndContains(service.ErrInvalidChannelHandle, "@ne ws"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &channelsStoreStub{channels: tt.existing}
			svc := service.NewChannels(store, discardLogger())

			err := svc.Add(tt.handle)

			tt.wantErr(t, err)
			assert.Equal(t, tt.want, store.channels)
		})
	}
}

func TestChannels_Remove(t *testing.T) {
	store := &channelsStoreStub{channels: []string{"@news", "@sport"}}
	svc := service.NewChannels(store, discardLogger())

	require.NoError(t, svc.Remove("@news"))
	assert.Equal(t, []string{"@sport"}, store.channels)

	err := svc.Remove("@news")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrChannelNotFound)
	assert.Equal(t, []string{"@sport"}, store.channels)
}

func TestChannels_List(t *testing.T) {
	store := &channelsStoreStub{channels: []string{"@zeta", "@alpha"}}
	svc := service.NewChannels(store, discardLogger())

	channels, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"@zeta", "@alpha"}, channels, "stored order must be preserved")
}
