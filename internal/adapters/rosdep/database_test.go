package rosdep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rosbrew/internal/adapters/rosdep"
	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const homebrewRules = `
boost:
  osx:
    homebrew:
      packages: [boost]
eigen:
  osx:
    homebrew:
      packages: [eigen]
`

const baseRules = `
boost:
  ubuntu: [libboost-all-dev]
  osx:
    macports: [boost]
python-yaml:
  osx:
    pip:
      packages: [PyYAML]
`

var sources = []string{"homebrew.yaml", "base.yaml"}

func TestDatabase_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), "homebrew.yaml", false).Return([]byte(homebrewRules), nil).Times(1)
	fetcher.EXPECT().Fetch(gomock.Any(), "base.yaml", false).Return([]byte(baseRules), nil).Times(1)

	db := rosdep.NewDatabase(fetcher)

	def, err := db.Lookup(t.Context(), sources, "boost")
	require.NoError(t, err)
	assert.Equal(t, domain.Definition{
		"osx": map[string]any{"homebrew": map[string]any{"packages": []any{"boost"}}},
	}, def, "the first source defining a key wins")

	def, err = db.Lookup(t.Context(), sources, "python-yaml")
	require.NoError(t, err)
	assert.Contains(t, def, "osx")

	_, err = db.Lookup(t.Context(), sources, "unknown_key")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownKey.Error())
}

func TestDatabase_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	gomock.InOrder(
		fetcher.EXPECT().Fetch(gomock.Any(), "base.yaml", false).Return([]byte(baseRules), nil),
		fetcher.EXPECT().Fetch(gomock.Any(), "base.yaml", true).Return([]byte(homebrewRules), nil),
	)

	db := rosdep.NewDatabase(fetcher)
	only := []string{"base.yaml"}

	_, err := db.Lookup(t.Context(), only, "eigen")
	require.Error(t, err)

	require.NoError(t, db.Refresh(t.Context(), only))

	_, err = db.Lookup(t.Context(), only, "eigen")
	require.NoError(t, err, "lookups after a refresh use the new view")
}

func TestDatabase_Errors(t *testing.T) {
	t.Run("fetch failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mocks.NewMockFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any(), "base.yaml", false).Return(nil, domain.ErrSourceFetchFailed)

		_, err := rosdep.NewDatabase(fetcher).Lookup(t.Context(), []string{"base.yaml"}, "boost")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrSourceFetchFailed.Error())
	})

	t.Run("malformed rules", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fetcher := mocks.NewMockFetcher(ctrl)
		fetcher.EXPECT().Fetch(gomock.Any(), "base.yaml", false).Return([]byte("- not\n- a mapping\n"), nil)

		_, err := rosdep.NewDatabase(fetcher).Lookup(t.Context(), []string{"base.yaml"}, "boost")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrRulesParseFailed.Error())
	})
}
