package main

// Global configuration of the editor. Settings are populated from
// command-line flags during initialization.

import "flag"

// Configuration holds all adjustable settings for the editor.
type Configuration struct {
	DefaultTabWidth int    // Number of spaces a tab character represents.
	UseLogFile      bool   // Whether to write debug logs to a file.
	LogFilePath     string // Where to store the debug logs.
	ShowColors      bool   // Command-line flag to show available colors and exit.
	ShowInfo        bool   // Command-line flag to show file types and exit.
	ShowVersion     bool   // Command-line flag to show version and exit.
}

// Config is the global configuration instance.
var Config = Configuration{DefaultTabWidth: 4}

// InitConfig sets up command-line flags and parses them into the global
// Config.
func InitConfig() {
	flag.IntVar(&Config.DefaultTabWidth, "tab-width", 4, "Default tab width")
	flag.BoolVar(&Config.UseLogFile, "log", false, "Enable logging to file")
	flag.StringVar(&Config.LogFilePath, "log-path", "/tmp/vix-debug.log", "Path to log file")
	flag.BoolVar(&Config.ShowColors, "colors", false, "Show available colors")
	flag.BoolVar(&Config.ShowInfo, "info", false, "Show file type associations")
	flag.BoolVar(&Config.ShowVersion, "version", false, "Show version")

	flag.Parse()
}
