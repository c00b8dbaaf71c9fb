package jsonstorage

import (
	"github.com/pkg/errors"
	"io"
	"os"
	"path/filepath"
)

var ErrFileTooLarge = errors.New("file exceeds read limit")

// ReadAll reads the whole file at path. A limit above zero caps the
// number of bytes accepted.
func ReadAll(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "could not stat file %s", path)
	}

	if info.IsDir() {
		return nil, errors.Errorf("%s is a directory", path)
	}

	if limit > 0 && info.Size() > limit {
		return nil, errors.Wrapf(ErrFileTooLarge, "%s is %d bytes, limit %d", path, info.Size(), limit)
	}

	size := int(info.Size())
	size++ // one byte for final read at EOF

	// files in /proc claim size 0, read at least 512 bytes
	if size < 512 {
		size = 512
	}

	data := make([]byte, 0, size)
	for {
		if len(data) >= cap(data) {
			d := append(data[:cap(data)], 0)
			data = d[:len(data)]
		}

		n, err := f.Read(data[len(data):cap(data)])
		data = data[:len(data)+n]
		if limit > 0 && int64(len(data)) > limit {
			return nil, errors.Wrapf(ErrFileTooLarge, "%s grew beyond limit %d", path, limit)
		}

		if err != nil {
			if err == io.EOF {
				break
			}

			return nil, errors.Wrapf(err, "could not read file %s", path)
		}
	}

	return data, nil
}

// Replace writes b to path. Contents go to a temporary file in the same
// directory which is then renamed over path, so readers see either the
// previous file or the complete new one.
func Replace(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "could not create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "could not create temporary file in %s", dir)
	}

	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(b); err != nil {
		return errors.Wrapf(err, "could not write to file %s", tmpName)
	}

	if err := tmp.Sync(); err != nil {
		return errors.Wrapf(err, "could not sync file %s", tmpName)
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "could not close file %s", tmpName)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		return errors.Wrapf(err, "could not chmod file %s", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "could not move %s to %s", tmpName, path)
	}

	committed = true
	return nil
}

func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, errors.Wrapf(err, "could not stat file %s", path)
}
