package types

// Version is the application version, overwritten by -ldflags at release time
var Version = "dev"
