package engine

import "github.com/phyten/minigrep/internal/search"

// Options は 1 回の検索の入力
type Options struct {
	Query        string
	Path         string
	Mode         search.CaseMode
	MaxFileBytes int // 0 は無制限
}

// Result は検索結果
type Result struct {
	Lines     []string
	Total     int
	Matched   int
	Mode      string
	ElapsedMS int64
}
