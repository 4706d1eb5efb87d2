package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/ini.v1"
)

const (
	defaultPort       = "6969"
	defaultHost       = "127.0.0.1"
	defaultLogLevel   = "info"
	defaultConfigFile = "collector.ini"

	logLevelEnv = "COLLECTOR_LOG_LEVEL"
)

// LoadConfig resolves the listener configuration from the process arguments
// (without the program name) and the optional config file.
func LoadConfig(args []string) (Config, error) {
	config := Config{
		Host:     defaultHost,
		LogLevel: defaultLogLevel,
	}

	port, ok := argumentValue("--port", args)
	if !ok {
		port, ok = argumentValue("-p", args)
	}
	if !ok {
		port = defaultPort
		config.DefaultPort = true
	}
	config.Port = port

	path, ok := argumentValue("--config", args)
	if !ok {
		path, ok = argumentValue("-c", args)
	}
	if !ok {
		path = defaultConfigFile
	}

	fileConf, err := loadFileConf(path)
	if err != nil {
		return Config{}, err
	}
	if fileConf.Host != "" {
		config.Host = fileConf.Host
	}
	if fileConf.Level != "" {
		config.LogLevel = fileConf.Level
	}
	if fileConf.ReadTimeout > 0 {
		config.ReadTimeout = time.Duration(fileConf.ReadTimeout) * time.Second
	}
	overrideFromEnv(&config.LogLevel, logLevelEnv)

	return config, nil
}

// loadFileConf reads an ini config file. A missing file yields the zero
// FileConf.
func loadFileConf(path string) (FileConf, error) {
	var fileConf FileConf

	iniFile, err := ini.LoadSources(ini.LoadOptions{Loose: true}, path)
	if err != nil {
		return fileConf, fmt.Errorf("failed to load config file '%s': %w", path, err)
	}
	if err := iniFile.StrictMapTo(&fileConf); err != nil {
		return fileConf, fmt.Errorf("failed to map config file '%s': %w", path, err)
	}
	return fileConf, nil
}

// argumentValue returns the token following the first occurrence of flag.
// It reports false when flag is absent or is the last token.
func argumentValue(flag string, args []string) (string, bool) {
	for i, arg := range args {
		if arg != flag {
			continue
		}
		if i+1 < len(args) {
			return args[i+1], true
		}
		return "", false
	}
	return "", false
}

func overrideFromEnv(target *string, envName string) {
	if envValue := os.Getenv(envName); envValue != "" {
		*target = envValue
	}
}
