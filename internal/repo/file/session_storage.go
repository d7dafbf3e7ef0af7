// Package file persists the console session under the user's state
// directory, mirroring the two localStorage keys of the web console.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	tokenFile = "ms_token"
	userFile  = "ms_user.json"
)

type SessionStorage struct {
	dir string
}

func NewSessionStorage(dir string) (*SessionStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage dir is empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &SessionStorage{dir: dir}, nil
}

func (s *SessionStorage) ReadToken(_ context.Context) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return string(data), nil
}

func (s *SessionStorage) ReadUser(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read user file: %w", err)
	}
	return data, nil
}

// WriteSession writes the user record before the token so that a readable
// token always has its user alongside, even after a mid-write crash.
func (s *SessionStorage) WriteSession(_ context.Context, token string, user []byte) error {
	if err := s.write(userFile, user); err != nil {
		return err
	}
	return s.write(tokenFile, []byte(token))
}

func (s *SessionStorage) WriteUser(_ context.Context, user []byte) error {
	return s.write(userFile, user)
}

func (s *SessionStorage) Clear(_ context.Context) error {
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}

func (s *SessionStorage) write(name string, data []byte) error {
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
