package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/syednoorhussain2025/hopgen/snapshot"
)

func CreateFile(fname string) (*os.File, error) {
	path := filepath.Dir(fname)

	if err := os.MkdirAll(path, 0777); err != nil {
		return nil, fmt.Errorf("create path: %w", err)
	}

	f, err := os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	return f, nil
}

// writeDoc renders a page into the site tree and records it for the
// manifest.
func (s *Site) writeDoc(d snapshot.Node, root string, fname string) error {
	f, err := CreateFile(filepath.Join(root, fname))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := d.WriteTo(f); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	s.written = append(s.written, filepath.ToSlash(fname))

	return nil
}

// writeString writes prerendered content into the site tree and records it
// for the manifest.
func (s *Site) writeString(root string, fname string, content string) error {
	f, err := CreateFile(filepath.Join(root, fname))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	s.written = append(s.written, filepath.ToSlash(fname))

	return nil
}
