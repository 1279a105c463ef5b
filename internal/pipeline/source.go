package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/thanujayalath/checkstyle/internal/source/gosrc"
	"github.com/thanujayalath/checkstyle/internal/source/javasrc"
	"github.com/thanujayalath/checkstyle/internal/syntax"
)

// ErrUnsupportedSource is returned for a file no front end handles.
var ErrUnsupportedSource = errors.New("unsupported source file")

// Extensions lists the file extensions ParseFile handles.
var Extensions = []string{".go", ".java"}

// ParseFile reads a Go or Java file and converts it with the front end
// matching its extension. It is a ParseFunc.
func ParseFile(ctx context.Context, path string) (*syntax.File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !lo.Contains(Extensions, ext) {
		return nil, errors.Wrapf(ErrUnsupportedSource, "%s", path)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if ext == ".go" {
		return gosrc.ParseFile(path, src)
	}
	return javasrc.ParseFile(ctx, path, src)
}
