package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sessionout "chatreport/internal/modules/session/port/out"
)

// FileArtifactWriter writes documents into a single directory, replacing
// any existing files of the same name. Every artifact is staged in a
// temporary file first; targets are only replaced once all staging
// succeeded.
type FileArtifactWriter struct {
	dir string
}

func NewFileArtifactWriter(dir string) sessionout.ArtifactWriter {
	return &FileArtifactWriter{dir: dir}
}

type stagedArtifact struct {
	temp   string
	target string
}

func (w *FileArtifactWriter) Write(_ context.Context, artifacts []sessionout.Artifact) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	staged := make([]stagedArtifact, 0, len(artifacts))
	discard := func() {
		for _, s := range staged {
			_ = os.Remove(s.temp)
		}
	}
	for _, artifact := range artifacts {
		target := filepath.Join(w.dir, artifact.Name)
		temp, err := stage(target, artifact.Content)
		if err != nil {
			discard()
			return nil, fmt.Errorf("write %s: %w", artifact.Name, err)
		}
		staged = append(staged, stagedArtifact{temp: temp, target: target})
	}

	paths := make([]string, 0, len(staged))
	for i, s := range staged {
		if err := os.Rename(s.temp, s.target); err != nil {
			discard()
			return nil, fmt.Errorf("write %s: %w", artifacts[i].Name, err)
		}
		paths = append(paths, s.target)
	}
	return paths, nil
}

func stage(target string, content []byte) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return "", err
	}
	name := f.Name()
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return "", err
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", err
	}
	return name, nil
}
