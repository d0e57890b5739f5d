package dotstencil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileMode is the permission the .stencil file is written with. It holds an access token.
const FileMode os.FileMode = 0o600

// Marshal renders the document as JSON indented with two spaces.
func (f *File) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(f.Map(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes f to path, replacing any existing file.
// The content goes to a temporary file in the same directory which is then
// renamed over path, so readers never see a partial document.
func Save(path string, f *File) error {
	data, err := f.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, FileMode); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
