// Package dto はdatasetフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// FilterOptionsResponse はダッシュボードが提示するフィルタの選択肢を表します。
// 国とセクターはデータセット上の出現順です。
type FilterOptionsResponse struct {
	Countries []string `json:"countries"`
	Sectors   []string `json:"sectors"`
	MinYear   int      `json:"min_year"`
	MaxYear   int      `json:"max_year"`
}
