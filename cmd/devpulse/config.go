package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose = "verbose"
	FlagConfig  = "config"
	FlagLogFile = "log-file"

	// Watch command flags
	FlagTUI            = "tui"
	FlagAppURL         = "app-url"
	FlagClientFeed     = "client-feed"
	FlagServerFeed     = "server-feed"
	FlagValidationFeed = "validation-feed"
)
