package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/example/task-manager/client"
)

const defaultServer = "localhost:8080"

// Session is the persisted login state of the CLI.
type Session struct {
	Server string `toml:"server"`
	Token  string `toml:"token"`
}

func sessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "taskcli", "session.toml"), nil
}

// loadSession reads the session file. A missing file is an empty session.
func loadSession() (*Session, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}

	var session Session
	if _, err := toml.DecodeFile(path, &session); err != nil {
		if os.IsNotExist(err) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	return &session, nil
}

// saveSession writes the session file, creating its directory if needed.
func saveSession(session *Session) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(session); err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}
	return nil
}

// resolveServer picks the server address from the --server flag, then the
// session file, then the default.
func resolveServer(session *Session) string {
	if serverFlag != "" {
		return serverFlag
	}
	if session.Server != "" {
		return session.Server
	}
	return defaultServer
}

// apiClient builds a client from the stored session. Commands that need
// authentication fail early when no token is stored.
func apiClient(requireToken bool) (*client.Client, error) {
	session, err := loadSession()
	if err != nil {
		return nil, err
	}
	if requireToken && session.Token == "" {
		return nil, fmt.Errorf("not logged in, run 'taskcli login' first")
	}

	c := client.New(resolveServer(session))
	c.SetToken(session.Token)
	return c, nil
}
