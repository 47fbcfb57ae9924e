package version

// Version is the tool version stamped into release builds.
var Version = "v0.3.0"
