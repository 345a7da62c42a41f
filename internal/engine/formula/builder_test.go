package formula_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports/mocks"
	"go.trai.ch/rosbrew/internal/engine/formula"
	"go.uber.org/mock/gomock"
)

func testConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Distro = "noetic"
	return cfg
}

func testDistribution() *domain.Distribution {
	return &domain.Distribution{
		Name: "noetic",
		Repositories: map[string]domain.Repository{
			"foo": {
				Name:        "foo",
				URL:         "https://github.com/ros-gbp/foo-release.git",
				Version:     "1.2.3-1",
				TagTemplate: "release/noetic/{package}/{version}",
				Packages:    []string{"foo_bar", "foo_msgs"},
			},
		},
	}
}

func testPackage() *domain.Package {
	return &domain.Package{
		Name:        "foo_bar",
		Version:     "1.2.3",
		Description: "Foo bar utilities.",
		Maintainers: []domain.Person{{Name: "Jane Doe", Email: "jane@example.com"}, {Name: "Bot"}},
		Licenses:    []string{"BSD", "Apache-2.0"},
		URLs:        []domain.URL{{Type: "website", Value: "http://wiki.ros.org/foo_bar"}},
	}
}

func homebrew(key string, names ...string) *domain.ResolvedDependency {
	return &domain.ResolvedDependency{
		Key:          key,
		Installer:    domain.InstallerHomebrew,
		InstallerKey: domain.InstallerKeyHomebrew,
		Names:        names,
	}
}

func TestBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockResolverFactory(ctrl)
	session := mocks.NewMockDependencyResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	pkg := testPackage()
	pkg.RunDepends = []string{"boost", "python-yaml", "foo_msgs", "eigen"}
	pkg.BuildDepends = []string{"boost"}
	pkg.BuildtoolDepends = []string{"catkin"}

	cfg := testConfig()
	cfg.DebIncrement = 2
	dist := testDistribution()

	factory.EXPECT().NewSession(cfg, dist, []string{"foo_bar", "foo_msgs"}).Return(session, nil)
	session.EXPECT().Resolve(gomock.Any(), "boost").Return(homebrew("boost", "boost"), nil).Times(2)
	session.EXPECT().Resolve(gomock.Any(), "python-yaml").Return(&domain.ResolvedDependency{
		Key:          "python-yaml",
		Installer:    domain.InstallerPip,
		InstallerKey: domain.InstallerKeyPip,
		Names:        []string{"PyYAML"},
	}, nil)
	session.EXPECT().Resolve(gomock.Any(), "foo_msgs").Return(homebrew("foo_msgs", "ros/noetic/ros-noetic-foo-msgs"), nil)
	session.EXPECT().Resolve(gomock.Any(), "eigen").Return(nil, nil)
	session.EXPECT().Resolve(gomock.Any(), "catkin").Return(homebrew("catkin", "ros/noetic/ros-noetic-catkin", "cmake"), nil)

	got, err := formula.NewBuilder(factory, logger).Build(t.Context(), cfg, pkg, dist)
	require.NoError(t, err)

	want := &domain.Substitutions{
		ClassName:          "RosNoeticFooBar",
		FormulaName:        "ros-noetic-foo-bar",
		Version:            "1.2.3-2",
		Homepage:           "http://wiki.ros.org/foo_bar",
		SourceURL:          "https://github.com/ros-gbp/foo-release.git",
		ReleaseTag:         "release/noetic/foo_bar/1.2.3-1",
		Branch:             "noetic-devel",
		InstallationPrefix: "/opt/ros/noetic",
		Package:            "foo_bar",
		Distro:             "noetic",
		Description:        "Foo bar utilities.",
		Maintainers:        []string{"Jane Doe <jane@example.com>", "Bot"},
		License:            "BSD, Apache-2.0",
		RunDepends: []string{
			"# depends_on 'PyYAML' => :python",
			"depends_on 'boost'",
			"depends_on 'ros/noetic/ros-noetic-foo-msgs'",
		},
		BuildDepends: []string{
			"depends_on 'boost' => :build",
			"depends_on 'cmake' => :build",
			"depends_on 'ros/noetic/ros-noetic-catkin' => :build",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilder_NoDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockResolverFactory(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	factory.EXPECT().NewSession(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := formula.NewBuilder(factory, logger).Build(t.Context(), testConfig(), testPackage(), testDistribution())
	require.NoError(t, err)
	assert.Empty(t, got.RunDepends)
	assert.Empty(t, got.BuildDepends)
	assert.NotNil(t, got.RunDepends)
	assert.NotNil(t, got.BuildDepends)
}

func TestBuilder_DeduplicatesLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockResolverFactory(ctrl)
	session := mocks.NewMockDependencyResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	pkg := testPackage()
	pkg.RunDepends = []string{"libboost", "boost"}

	factory.EXPECT().NewSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(session, nil)
	session.EXPECT().Resolve(gomock.Any(), "libboost").Return(homebrew("libboost", "boost"), nil)
	session.EXPECT().Resolve(gomock.Any(), "boost").Return(homebrew("boost", "boost"), nil)

	got, err := formula.NewBuilder(factory, logger).Build(t.Context(), testConfig(), pkg, testDistribution())
	require.NoError(t, err)
	assert.Equal(t, []string{"depends_on 'boost'"}, got.RunDepends)
}

func TestBuilder_MissingHomepage(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockResolverFactory(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	pkg := testPackage()
	pkg.URLs = []domain.URL{{Type: "bugtracker", Value: "https://github.com/ros/foo/issues"}}

	logger.EXPECT().Warn("No homepage set for package foo_bar")

	got, err := formula.NewBuilder(factory, logger).Build(t.Context(), testConfig(), pkg, testDistribution())
	require.NoError(t, err)
	assert.Empty(t, got.Homepage)
}

func TestBuilder_InvalidVersion(t *testing.T) {
	for _, version := range []string{"1.2", "v1.2.3", "1.2.3-alpha", "1.2.3+meta", ""} {
		t.Run(version, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			factory := mocks.NewMockResolverFactory(ctrl)
			logger := mocks.NewMockLogger(ctrl)

			pkg := testPackage()
			pkg.Version = version

			_, err := formula.NewBuilder(factory, logger).Build(t.Context(), testConfig(), pkg, testDistribution())
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrInvalidVersion.Error())
		})
	}
}

func TestBuilder_NotReleased(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockResolverFactory(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	pkg := testPackage()
	pkg.Name = "unreleased"

	_, err := formula.NewBuilder(factory, logger).Build(t.Context(), testConfig(), pkg, testDistribution())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPackageNotReleased.Error())
}

func TestBuilder_ResolverErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockResolverFactory(ctrl)
	session := mocks.NewMockDependencyResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	pkg := testPackage()
	pkg.RunDepends = []string{"nope", "boost"}

	factory.EXPECT().NewSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(session, nil)
	session.EXPECT().Resolve(gomock.Any(), "nope").Return(nil, domain.ErrUnresolvedKey)
	session.EXPECT().Resolve(gomock.Any(), "boost").Times(0)

	_, err := formula.NewBuilder(factory, logger).Build(t.Context(), testConfig(), pkg, testDistribution())
	require.ErrorIs(t, err, domain.ErrUnresolvedKey)
}

func TestBuilder_UnsupportedInstallerIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockResolverFactory(ctrl)
	session := mocks.NewMockDependencyResolver(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	pkg := testPackage()
	pkg.RunDepends = []string{"qt4"}

	factory.EXPECT().NewSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(session, nil)
	session.EXPECT().Resolve(gomock.Any(), "qt4").Return(&domain.ResolvedDependency{
		Key:          "qt4",
		Installer:    domain.InstallerUnsupported,
		InstallerKey: domain.InstallerKeyMacports,
		Names:        []string{"qt4-mac"},
	}, nil)

	_, err := formula.NewBuilder(factory, logger).Build(t.Context(), testConfig(), pkg, testDistribution())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnexpectedInstaller.Error())
}
