package model

import (
	"bytes"
	"encoding/gob"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
)

// ArtifactVersion is bumped whenever the encoded layout changes.
const ArtifactVersion = 1

type artifact struct {
	Version   int
	TrainedAt time.Time
	Model     FittedModel
}

// Encode writes m as a versioned gob blob.
func Encode(w io.Writer, m *FittedModel, trainedAt time.Time) error {
	if err := m.validate(); err != nil {
		return err
	}
	a := artifact{Version: ArtifactVersion, TrainedAt: trainedAt.UTC(), Model: *m}
	if err := gob.NewEncoder(w).Encode(&a); err != nil {
		return eris.Wrap(err, "model: encode artifact")
	}
	return nil
}

// Decode reads an artifact and checks it against the serving feature order.
func Decode(r io.Reader) (*FittedModel, error) {
	var a artifact
	if err := gob.NewDecoder(r).Decode(&a); err != nil {
		return nil, eris.Wrapf(ErrArtifactCorrupt, "decode: %v", err)
	}
	if a.Version != ArtifactVersion {
		return nil, eris.Wrapf(ErrArtifactCorrupt, "artifact version %d, expected %d", a.Version, ArtifactVersion)
	}
	m := a.Model
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save writes the artifact to path, creating parent directories.
// The file is replaced atomically so a running server never reads a partial write.
func Save(path string, m *FittedModel, trainedAt time.Time) error {
	var buf bytes.Buffer
	if err := Encode(&buf, m, trainedAt); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return eris.Wrap(err, "model: create artifact directory")
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return eris.Wrap(err, "model: write artifact")
	}
	if err := os.Rename(tmp, path); err != nil {
		return eris.Wrap(err, "model: rename artifact")
	}
	return nil
}
