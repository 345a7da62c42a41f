package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports/mocks"
	"go.trai.ch/rosbrew/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	db         *mocks.MockRuleDatabase
	installers *mocks.MockInstallerRegistry
	installer  *mocks.MockInstaller
	prompter   *mocks.MockPrompter
	logger     *mocks.MockLogger
	factory    *resolver.Factory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		db:         mocks.NewMockRuleDatabase(ctrl),
		installers: mocks.NewMockInstallerRegistry(ctrl),
		installer:  mocks.NewMockInstaller(ctrl),
		prompter:   mocks.NewMockPrompter(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
	}
	f.factory = resolver.NewFactory(f.db, f.installers, f.prompter, f.logger)
	return f
}

func testConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Distro = "noetic"
	cfg.OSVersion = "mojave"
	cfg.RosdepSources = []string{"rules.yaml"}
	return cfg
}

func testDistribution() *domain.Distribution {
	return &domain.Distribution{
		Name: "noetic",
		Repositories: map[string]domain.Repository{
			"ros_comm": {Name: "ros_comm", Version: "1.15.0-1", Packages: []string{"roscpp", "rosbag"}},
		},
	}
}

func homebrewDefinition(names ...any) domain.Definition {
	return domain.Definition{"osx": map[string]any{"homebrew": map[string]any{"packages": names}}}
}

func TestSession_ResolveHomebrew(t *testing.T) {
	f := newFixture(t)
	rule := map[string]any{"packages": []any{"boost"}}

	f.db.EXPECT().Lookup(gomock.Any(), []string{"rules.yaml"}, "boost").Return(homebrewDefinition("boost"), nil)
	f.installers.EXPECT().Get("homebrew").Return(f.installer, true)
	f.installer.EXPECT().Resolve(rule).Return([]string{"boost"}, nil)

	s, err := f.factory.NewSession(testConfig(), nil, nil)
	require.NoError(t, err)

	dep, err := s.Resolve(t.Context(), "boost")
	require.NoError(t, err)
	assert.Equal(t, &domain.ResolvedDependency{
		Key:          "boost",
		Installer:    domain.InstallerHomebrew,
		InstallerKey: "homebrew",
		Names:        []string{"boost"},
	}, dep)
}

func TestSession_ResolvePip(t *testing.T) {
	f := newFixture(t)
	def := domain.Definition{"osx": map[string]any{"pip": map[string]any{"packages": []any{"PyYAML"}}}}

	f.db.EXPECT().Lookup(gomock.Any(), gomock.Any(), "python-yaml").Return(def, nil)
	f.installers.EXPECT().Get("pip").Return(f.installer, true)
	f.installer.EXPECT().Resolve(gomock.Any()).Return([]string{"PyYAML"}, nil)

	s, err := f.factory.NewSession(testConfig(), nil, nil)
	require.NoError(t, err)

	dep, err := s.Resolve(t.Context(), "python-yaml")
	require.NoError(t, err)
	require.NotNil(t, dep)
	assert.Equal(t, domain.InstallerPip, dep.Installer)
	assert.Equal(t, []string{"PyYAML"}, dep.Names)
}

func TestSession_DropsUnsupportedInstaller(t *testing.T) {
	f := newFixture(t)
	def := domain.Definition{"osx": map[string]any{"macports": []any{"qt4-mac"}}}

	f.db.EXPECT().Lookup(gomock.Any(), gomock.Any(), "qt4").Return(def, nil)
	f.installers.EXPECT().Get("macports").Return(nil, false)
	f.logger.EXPECT().Warn(gomock.Any()).Times(1)

	s, err := f.factory.NewSession(testConfig(), nil, nil)
	require.NoError(t, err)

	dep, err := s.Resolve(t.Context(), "qt4")
	require.NoError(t, err)
	assert.Nil(t, dep)
}

func TestSession_NonInteractiveAbort(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	cfg.NonInteractive = true

	f.db.EXPECT().Lookup(gomock.Any(), gomock.Any(), "nope").Return(nil, domain.ErrUnknownKey)
	f.logger.EXPECT().Error(gomock.Any()).Times(1)
	f.prompter.EXPECT().Choose(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s, err := f.factory.NewSession(cfg, nil, nil)
	require.NoError(t, err)

	dep, err := s.Resolve(t.Context(), "nope")
	require.Error(t, err)
	assert.Nil(t, dep)
	assert.ErrorContains(t, err, domain.ErrUnresolvedKey.Error())
}

func TestSession_PromptAbortedCountsAsAbort(t *testing.T) {
	f := newFixture(t)

	f.db.EXPECT().Lookup(gomock.Any(), gomock.Any(), "nope").Return(nil, domain.ErrUnknownKey)
	f.logger.EXPECT().Error(gomock.Any())
	f.prompter.EXPECT().
		Choose(gomock.Any(), gomock.Any(), []string{"retry", "skip", "abort"}, "abort").
		Return("", domain.ErrPromptAborted)

	s, err := f.factory.NewSession(testConfig(), nil, nil)
	require.NoError(t, err)

	_, err = s.Resolve(t.Context(), "nope")
	assert.ErrorContains(t, err, domain.ErrUnresolvedKey.Error())
}

func TestSession_SkipIgnoresKeyForTheSession(t *testing.T) {
	f := newFixture(t)

	f.db.EXPECT().Lookup(gomock.Any(), gomock.Any(), "nope").Return(nil, domain.ErrUnknownKey).Times(2)
	f.logger.EXPECT().Error(gomock.Any()).Times(1)
	f.prompter.EXPECT().Choose(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("skip", nil).Times(1)
	f.logger.EXPECT().Warn("Skipping dependency nope")

	s, err := f.factory.NewSession(testConfig(), nil, nil)
	require.NoError(t, err)

	dep, err := s.Resolve(t.Context(), "nope")
	require.NoError(t, err)
	assert.Nil(t, dep)

	dep, err = s.Resolve(t.Context(), "nope")
	require.NoError(t, err)
	assert.Nil(t, dep)
}

func TestSession_RetryRefreshesRules(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.db.EXPECT().Lookup(gomock.Any(), gomock.Any(), "boost").Return(nil, domain.ErrUnknownKey),
		f.logger.EXPECT().Error(gomock.Any()),
		f.prompter.EXPECT().Choose(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("retry", nil),
		f.db.EXPECT().Refresh(gomock.Any(), []string{"rules.yaml"}).Return(nil),
		f.db.EXPECT().Lookup(gomock.Any(), gomock.Any(), "boost").Return(homebrewDefinition("boost"), nil),
	)
	f.installers.EXPECT().Get("homebrew").Return(f.installer, true)
	f.installer.EXPECT().Resolve(gomock.Any()).Return([]string{"boost"}, nil)

	s, err := f.factory.NewSession(testConfig(), nil, nil)
	require.NoError(t, err)

	dep, err := s.Resolve(t.Context(), "boost")
	require.NoError(t, err)
	require.NotNil(t, dep)
	assert.Equal(t, []string{"boost"}, dep.Names)
}

func TestSession_PeerUsesFallbackWithoutPrompt(t *testing.T) {
	f := newFixture(t)

	f.db.EXPECT().Lookup(gomock.Any(), gomock.Any(), "foo_msgs").Return(nil, domain.ErrUnknownKey)
	f.prompter.EXPECT().Choose(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.logger.EXPECT().Error(gomock.Any()).Times(0)

	s, err := f.factory.NewSession(testConfig(), testDistribution(), []string{"foo", "foo_msgs"})
	require.NoError(t, err)

	dep, err := s.Resolve(t.Context(), "foo_msgs")
	require.NoError(t, err)
	require.NotNil(t, dep)
	assert.Equal(t, domain.InstallerHomebrew, dep.Installer)
	assert.Equal(t, []string{"ros/noetic/ros-noetic-foo-msgs"}, dep.Names)
}

func TestSession_AbortFallsBackToReleasedPackage(t *testing.T) {
	f := newFixture(t)

	f.db.EXPECT().Lookup(gomock.Any(), gomock.Any(), "roscpp").Return(nil, domain.ErrUnknownKey)
	f.logger.EXPECT().Error(gomock.Any())
	f.prompter.EXPECT().Choose(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("abort", nil)

	s, err := f.factory.NewSession(testConfig(), testDistribution(), []string{"foo"})
	require.NoError(t, err)

	dep, err := s.Resolve(t.Context(), "roscpp")
	require.NoError(t, err)
	require.NotNil(t, dep)
	assert.Equal(t, []string{"ros/noetic/ros-noetic-roscpp"}, dep.Names)
}

func TestSession_ResolutionErrorIsReported(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	cfg.NonInteractive = true
	def := domain.Definition{"ubuntu": []any{"libboost-dev"}}

	f.db.EXPECT().Lookup(gomock.Any(), gomock.Any(), "boost").Return(def, nil)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrResolution.Error())
	})

	s, err := f.factory.NewSession(cfg, nil, nil)
	require.NoError(t, err)

	_, err = s.Resolve(t.Context(), "boost")
	assert.ErrorContains(t, err, domain.ErrUnresolvedKey.Error())
}

func TestFactory_UnknownOS(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	cfg.OSName = "plan9"

	_, err := f.factory.NewSession(cfg, nil, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownOS.Error())
}

func TestPeerFallback(t *testing.T) {
	fallback := resolver.PeerFallback(testDistribution(), []string{"foo_bar"})

	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{key: "foo_bar", want: "ros/noetic/ros-noetic-foo-bar", ok: true},
		{key: "rosbag", want: "ros/noetic/ros-noetic-rosbag", ok: true},
		{key: "boost", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			dep, ok := fallback(tt.key)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Nil(t, dep)
				return
			}
			assert.Equal(t, []string{tt.want}, dep.Names)
			assert.Equal(t, tt.key, dep.Key)
		})
	}
}
