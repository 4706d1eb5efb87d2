package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/google/uuid"
)

func NewServer(config Config) Server {
	if config.Host == "" {
		config.Host = defaultHost
	}

	if config.Port == "" {
		config.Port = defaultPort
	}
	return &server{
		config: config,
		log:    WithComponent("collector"),
		done:   make(chan struct{}),
	}
}

// Start binds the listener. Cancelling shutdownCtx closes it, which ends Serve
// after the connection currently being handled.
func (s *server) Start(shutdownCtx context.Context) error {
	listener, err := net.Listen("tcp", net.JoinHostPort(s.config.Host, s.config.Port))
	if err != nil {
		return err
	}
	s.listener = listener

	s.log.Info().Str("port", s.config.Port).Msgf("Running on port '%s'", s.config.Port)

	go func() {
		select {
		case <-shutdownCtx.Done():
			s.log.Info().Msg("Shutdown requested, closing listener")
		case <-s.done:
		}
		if err := listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			s.log.Warn().Err(err).Msg("Error closing listener")
		}
	}()
	return nil
}

// Serve accepts and handles connections one at a time until END is received
// or the listener is closed. A returned error means a connection carried a
// malformed request; the collected output must then be discarded.
func (s *server) Serve() error {
	defer close(s.done)

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil // no more connections will be accepted
			}

			s.log.Warn().Err(err).Msg("Invalid stream")
			continue
		}

		if err := s.handleConnection(conn); err != nil {
			return err
		}
		if s.exit {
			return nil
		}
	}
}

func (s *server) Flush(path string) error {
	if err := writeOutput(path, s.output); err != nil {
		return err
	}
	s.log.Info().Str("file", path).Int("fragments", len(s.output)).
		Msgf("Successfully wrote data to %s", path)
	return nil
}

func (s *server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *server) handleConnection(conn net.Conn) error {
	traceID := uuid.NewString()
	l := s.log.With().Str("conn", traceID).Logger()

	defer func() {
		if err := conn.Close(); err != nil {
			l.Debug().Err(err).Msg("Error closing connection")
		}
	}()

	l.Debug().Str("remote", conn.RemoteAddr().String()).Msg("Accepted connection")

	if s.config.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout)); err != nil {
			return fmt.Errorf("connection %s: %w", traceID, err)
		}
	}

	lines, err := readRequestHead(conn)
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			l.Warn().Dur("timeout", s.config.ReadTimeout).Msg("Read timed out, dropping connection")
			return nil
		}
		return fmt.Errorf("connection %s: %w", traceID, err)
	}

	if len(lines) == 0 {
		l.Debug().Msg("Connection closed before sending a request")
		return nil
	}

	target, err := parseRequestLine(lines[0])
	if err != nil {
		return fmt.Errorf("connection %s: %w", traceID, err)
	}

	if isTerminal(target) {
		l.Info().Msg("Received END, no longer accepting connections")
		s.exit = true
		return nil
	}

	fields := splitPayload(target)
	l.Info().Strs("data", fields).Msg("Data")
	s.output = append(s.output, fields...)
	return nil
}
