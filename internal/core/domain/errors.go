package domain

import "go.trai.ch/zerr"

var (
	// ErrNoPackagesFound is returned when no package.xml is found under the given path.
	ErrNoPackagesFound = zerr.New("no packages found")

	// ErrMultiplePackages is returned when more than one package is found under the given path.
	ErrMultiplePackages = zerr.New("multiple packages found, only one package at a time is supported")

	// ErrPackageReadFailed is returned when a package descriptor cannot be read.
	ErrPackageReadFailed = zerr.New("failed to read package descriptor")

	// ErrPackageParseFailed is returned when a package descriptor cannot be parsed.
	ErrPackageParseFailed = zerr.New("failed to parse package descriptor")

	// ErrMissingPackageName is returned when a package descriptor has no name.
	ErrMissingPackageName = zerr.New("package descriptor is missing a name")

	// ErrInvalidVersion is returned when a package version is not MAJOR.MINOR.PATCH.
	ErrInvalidVersion = zerr.New("package version must be of the form MAJOR.MINOR.PATCH")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigMergeFailed is returned when the config file cannot be merged over the defaults.
	ErrConfigMergeFailed = zerr.New("failed to merge config file")

	// ErrInvalidDebIncrement is returned when the deb increment is negative.
	ErrInvalidDebIncrement = zerr.New("deb increment must not be negative")

	// ErrSourceFetchFailed is returned when a remote or local metadata source cannot be fetched.
	ErrSourceFetchFailed = zerr.New("failed to fetch source")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheWriteFailed is returned when writing to the cache fails.
	ErrCacheWriteFailed = zerr.New("failed to write to cache")

	// ErrIndexParseFailed is returned when the distribution index cannot be parsed.
	ErrIndexParseFailed = zerr.New("failed to parse distribution index")

	// ErrDistributionParseFailed is returned when a distribution file cannot be parsed.
	ErrDistributionParseFailed = zerr.New("failed to parse distribution file")

	// ErrUnknownDistro is returned when the distribution index has no entry for a distro.
	ErrUnknownDistro = zerr.New("distro not found in distribution index")

	// ErrPackageNotReleased is returned when a package has no release in the distribution.
	ErrPackageNotReleased = zerr.New("package is not released in distribution")

	// ErrRulesParseFailed is returned when a dependency rule source cannot be parsed.
	ErrRulesParseFailed = zerr.New("failed to parse dependency rules")

	// ErrUnknownKey is returned when a dependency key has no definition at all.
	ErrUnknownKey = zerr.New("no definition for dependency key")

	// ErrResolution is returned when a known dependency key cannot be resolved for the target platform.
	ErrResolution = zerr.New("dependency key cannot be resolved for platform")

	// ErrUnresolvedKey is returned when resolution failed and the operator did not recover it.
	ErrUnresolvedKey = zerr.New("failed to resolve dependency key, aborting")

	// ErrUnknownOS is returned when no installers are known for the target OS.
	ErrUnknownOS = zerr.New("no installers known for operating system")

	// ErrInvalidRule is returned when an installer rule has an unexpected shape.
	ErrInvalidRule = zerr.New("invalid installer rule")

	// ErrUnexpectedInstaller is returned when a dependency of an inexpressible installer type reaches rendering.
	ErrUnexpectedInstaller = zerr.New("installer type cannot be expressed in a formula")

	// ErrPromptAborted is returned when the operator closes the input while being prompted.
	ErrPromptAborted = zerr.New("prompt aborted")

	// ErrTemplateDirMissing is returned when processing is requested but no template directory exists.
	ErrTemplateDirMissing = zerr.New("template directory not found, place the templates first")

	// ErrTemplateWriteFailed is returned when a template file cannot be written.
	ErrTemplateWriteFailed = zerr.New("failed to write template file")

	// ErrTemplateParseFailed is returned when a template has malformed syntax.
	ErrTemplateParseFailed = zerr.New("failed to parse template")

	// ErrTemplateExecFailed is returned when a template cannot be expanded.
	ErrTemplateExecFailed = zerr.New("failed to expand template")

	// ErrTemplateRemoveFailed is returned when a processed template cannot be removed.
	ErrTemplateRemoveFailed = zerr.New("failed to remove processed template")

	// ErrFormulaGenerationFailed marks any failure of the generate command.
	ErrFormulaGenerationFailed = zerr.New("formula generation failed")
)
