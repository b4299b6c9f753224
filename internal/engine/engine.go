package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/phyten/minigrep/internal/search"
	"github.com/phyten/minigrep/internal/source"
)

// ErrNoPath はファイルパスが指定されていない場合のエラーです。
var ErrNoPath = errors.New("no file path given")

// Run は opts.Path のファイルを読み込み、opts.Query を含む行を元の順序で返します。
//
// ファイルの読み込みに失敗した場合は何も返さずにエラーを返します。
// 空のクエリはすべての行に一致します。
func Run(opts Options) (*Result, error) {
	start := time.Now()
	if strings.TrimSpace(opts.Path) == "" {
		return nil, ErrNoPath
	}
	if opts.MaxFileBytes < 0 {
		return nil, fmt.Errorf("max_file_bytes must be >= 0")
	}

	contents, err := source.ReadText(opts.Path, opts.MaxFileBytes)
	if err != nil {
		return nil, err
	}

	lines := search.Filter(opts.Query, contents, opts.Mode)
	return &Result{
		Lines:     lines,
		Total:     len(search.Lines(contents)),
		Matched:   len(lines),
		Mode:      opts.Mode.String(),
		ElapsedMS: msSince(start),
	}, nil
}

func msSince(t time.Time) int64 {
	return time.Since(t).Milliseconds()
}
