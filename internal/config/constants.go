package config

// Version is the toolchain version, stamped into bundles and --version.
const Version = "0.3.0"

const SourceFileExt = ".lina"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".lina", ".ln"}

// BundleFileExt is the extension of compiled bundle files.
const BundleFileExt = ".lnab"

// ProjectFileName is the optional per-project configuration file.
const ProjectFileName = "lina.yaml"

// DefaultCacheFile is the build cache location under the user cache dir.
const DefaultCacheFile = "lina/build-cache.db"
