package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed images
var builtin embed.FS

// Loader resolves a texture by its relative path.
type Loader interface {
	Load(path string) (*Texture, error)
}

// FSLoader reads textures from a file system.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader over any file system.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// NewEmbeddedLoader serves the built-in sprite set compiled into the binary.
func NewEmbeddedLoader() *FSLoader {
	return NewFSLoader(builtin)
}

// NewDirLoader reads textures from a directory on disk.
func NewDirLoader(dir string) (*FSLoader, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %s is not a directory", dir)
	}
	return NewFSLoader(os.DirFS(dir)), nil
}

// Load reads and parses the texture at path.
func (l *FSLoader) Load(path string) (*Texture, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot load texture %s: %w", path, err)
	}
	tex, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot load texture %s: %w", path, err)
	}
	return tex, nil
}
