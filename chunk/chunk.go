package chunk

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/makamdex/constants"
	"github.com/jsphweid/makamdex/model"
	"github.com/jsphweid/makamdex/util"
	"github.com/pkg/errors"
)

var ErrBadHeader = errors.New("bad snapshot header")

// maxHeaderSize guards against reading garbage as a length.
const maxHeaderSize = 1 << 20

func NewOverview(makam string) model.SnapshotOverview {
	id := uuid.New().String()
	return model.SnapshotOverview{
		ID:       id,
		Created:  time.Now().UTC(),
		Makam:    makam,
		Filename: id + constants.SnapshotExt,
	}
}

// Write stores snap in dir as <uuid>.dat: a little endian uint32 length,
// the gob encoded overview, then the gob encoded snapshot. It returns the
// path written.
func Write(dir string, snap *model.Snapshot) (string, error) {
	if snap.Overview.ID == "" {
		snap.Overview = NewOverview(snap.Overview.Makam)
	}
	snap.Overview.NumFiles = len(snap.Files)
	snap.Overview.NumNotes = 0
	for _, seq := range snap.Notes {
		snap.Overview.NumNotes += len(seq)
	}

	headerBuf := new(bytes.Buffer)
	if err := util.EncodeBinary(headerBuf, snap.Overview); err != nil {
		return "", errors.Wrap(err, "snapshot overview")
	}
	dataBuf := new(bytes.Buffer)
	if err := util.EncodeBinary(dataBuf, snap); err != nil {
		return "", errors.Wrap(err, "snapshot")
	}

	var finalBytes []byte
	finalBytes = binary.LittleEndian.AppendUint32(finalBytes, uint32(headerBuf.Len()))
	finalBytes = append(finalBytes, headerBuf.Bytes()...)
	finalBytes = append(finalBytes, dataBuf.Bytes()...)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "could not create %s", dir)
	}
	path := filepath.Join(dir, snap.Overview.Filename)
	if err := os.WriteFile(path, finalBytes, 0644); err != nil {
		return "", errors.Wrap(err, "write failed for snapshot file")
	}
	return path, nil
}

// ReadOverview reads only the header, leaving r positioned at the snapshot
// body.
func ReadOverview(r io.Reader) (model.SnapshotOverview, error) {
	var overview model.SnapshotOverview

	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return overview, errors.Wrap(ErrBadHeader, err.Error())
	}
	size := binary.LittleEndian.Uint32(buf)
	if size == 0 || size > maxHeaderSize {
		return overview, errors.Wrapf(ErrBadHeader, "header size %d", size)
	}

	buf = make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return overview, errors.Wrap(ErrBadHeader, err.Error())
	}
	overview, err := util.DecodeBinary[model.SnapshotOverview](bytes.NewReader(buf))
	if err != nil {
		return overview, errors.Wrap(ErrBadHeader, err.Error())
	}
	return overview, nil
}

func Read(path string) (*model.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open snapshot")
	}
	defer f.Close()

	if _, err := ReadOverview(f); err != nil {
		return nil, errors.Wrapf(err, "snapshot %s", path)
	}
	snap, err := util.DecodeBinary[model.Snapshot](f)
	if err != nil {
		return nil, errors.Wrapf(err, "snapshot %s", path)
	}
	return &snap, nil
}

// Latest returns the path of the most recently created snapshot in dir.
func Latest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrap(err, "could not read index dir")
	}

	var latest string
	var latestTime time.Time
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, constants.SnapshotExt) {
			continue
		}
		if _, err := uuid.Parse(strings.TrimSuffix(name, constants.SnapshotExt)); err != nil {
			continue
		}
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			return "", errors.Wrap(err, "could not open snapshot")
		}
		overview, err := ReadOverview(f)
		f.Close()
		if err != nil {
			continue
		}
		if latest == "" || overview.Created.After(latestTime) {
			latest, latestTime = path, overview.Created
		}
	}

	if latest == "" {
		return "", errors.Errorf("no snapshot found in %s", dir)
	}
	return latest, nil
}
