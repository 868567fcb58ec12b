package version

// Version is the current release of the code assistant.
// Overridden at build time with -ldflags "-X ...version.Version=x.y.z".
var Version = "0.1.0"
