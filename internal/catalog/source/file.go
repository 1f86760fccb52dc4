package source

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/darkkaiser/catalog-server/internal/pkg/errors"
)

// FileSource root 디렉토리 아래의 파일을 읽습니다. root 밖을 가리키는 경로는 거부합니다.
type FileSource struct {
	root string
}

var _ Fetcher = (*FileSource)(nil)

func NewFileSource(root string) *FileSource {
	return &FileSource{root: root}
}

func (s *FileSource) Fetch(ctx context.Context, location string) (*Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := s.resolve(location)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrapf(err, apperrors.NotFound, "카탈로그 원본 파일(%s)이 없습니다", location)
		}
		return nil, apperrors.Wrapf(err, apperrors.System, "카탈로그 원본 파일(%s)을 읽을 수 없습니다", location)
	}

	return &Resource{Location: p, ContentType: contentTypeByExt(p), Body: bytes.TrimPrefix(data, utf8BOM)}, nil
}

func (s *FileSource) resolve(location string) (string, error) {
	location = strings.TrimPrefix(location, "file://")
	if s.root == "" {
		return filepath.Clean(location), nil
	}

	rel := filepath.Clean("/" + strings.TrimPrefix(filepath.ToSlash(location), "/"))
	p := filepath.Join(s.root, rel)

	root := filepath.Clean(s.root)
	if p != root && !strings.HasPrefix(p, root+string(filepath.Separator)) {
		return "", apperrors.Newf(apperrors.InvalidInput, "허용되지 않은 카탈로그 원본 경로입니다: %s", location)
	}
	return p, nil
}
