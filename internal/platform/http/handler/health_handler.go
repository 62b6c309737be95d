// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import "github.com/gin-gonic/gin"

// SnapshotSizer はデータセットスナップショットの件数を報告します。
type SnapshotSizer interface {
	Len() int
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// データセットが読み込み済みであることの確認として件数を応答に含めます。
func Health(snapshot SnapshotSizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		// すべてのGET/HEAD/OPTIONSリクエストに対して200または204を返す
		switch c.Request.Method {
		case "HEAD":
			c.Status(200)
		case "OPTIONS":
			c.Status(204)
		default:
			c.JSON(200, gin.H{"status": "ok", "records": snapshot.Len()})
		}
	}
}
