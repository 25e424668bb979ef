// Package semver parses and formats MAJOR.MINOR.PATCH[-PRE][+BUILD] version
// strings.
//
// Parsing is strict about the numeric core: major, minor and patch must be
// decimal numbers without leading zeros that fit in 64 bits. Pre-release and
// build components are more forgiving. A component made only of digits that
// has a leading zero or does not fit in 64 bits is kept verbatim as an
// alphanumeric identifier instead of being rejected, so "1.0.0+0851523" parses.
//
// Versions have a total order (see Compare) in which build metadata is
// significant. For the ordering used by the Go toolchain see CompareGoModule.
package semver
