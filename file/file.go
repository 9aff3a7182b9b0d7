package file

import (
	"path/filepath"
	"strings"

	"github.com/jsphweid/makamdex/constants"
	"github.com/jsphweid/makamdex/model"
)

func CreateFileNumMap(paths []string) model.FileNumToPath {
	res := make(model.FileNumToPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}

// ParseWorkName reads the SymbTr naming convention
// makam--form--usul--name--composer.txt. Missing parts stay empty.
func ParseWorkName(path string) model.WorkMetadata {
	base := strings.TrimSuffix(filepath.Base(path), constants.TranscriptionExt)
	parts := strings.Split(base, constants.MakamSeparator)

	var m model.WorkMetadata
	fields := []*string{&m.Makam, &m.Form, &m.Usul, &m.Name, &m.Composer}
	if len(parts) == 1 {
		m.Name = base
		return m
	}
	for i, p := range parts {
		if i >= len(fields) {
			break
		}
		*fields[i] = p
	}
	return m
}
