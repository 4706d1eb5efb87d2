package main

import (
	"context"
	"net"
	"time"

	"github.com/rs/zerolog"
)

type (
	Server interface {
		Start(ctx context.Context) error
		Serve() error
		Flush(path string) error
		Addr() net.Addr
	}

	Config struct {
		Host        string
		Port        string
		DefaultPort bool // no --port/-p value was given
		ReadTimeout time.Duration
		LogLevel    string
	}

	// LogConf is the [log] section of the config file.
	LogConf struct {
		Level string `ini:"level"`
	}

	// ListenerConf is the [listener] section of the config file.
	ListenerConf struct {
		Host        string `ini:"host"`
		ReadTimeout int    `ini:"read_timeout"` // seconds, 0 means unbounded
	}

	FileConf struct {
		LogConf      `ini:"log"`
		ListenerConf `ini:"listener"`
	}

	server struct {
		config   Config
		log      zerolog.Logger
		listener net.Listener
		done     chan struct{}

		output []string // accumulated fragments in arrival order
		exit   bool     // set once END has been received
	}
)
