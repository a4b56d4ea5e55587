package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration
		"Converting %s (dataset '%s')...": "%s を変換中 (データセット '%s')...",
		"Output saved to %s":              "出力を %s に保存しました",
		"Conversion completed":            "変換が完了しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",

		// Load stage
		"Reading dataset '%s' from %s": "%[2]s からデータセット '%[1]s' を読み込み中",
		"Loaded stack %s (%d bytes)":   "スタック %s を読み込みました (%d バイト)",

		// Normalize stage
		"Normalizing stack %s":            "スタック %s を正規化中",
		"Normalized to %s":                "%s に正規化しました",
		"Saving debug frames":             "デバッグフレームを保存中",
		"Failed to save debug output: %s": "デバッグ出力の保存に失敗しました: %s",

		// Encode stage
		"Encoding %d frames at %d fps (%dx%d, %s)": "%d フレームを %d fps でエンコード中 (%dx%d, %s)",
		"Scaling frames from %dx%d to %dx%d":       "フレームを %dx%d から %dx%d に拡大縮小します",
		"Fitting frames from %dx%d to %dx%d":       "フレームを %dx%d から偶数サイズ %dx%d に合わせます",
		"Encoding cancelled after %d frames":       "%d フレームでエンコードが中断されました",
		"Video written: %d bytes":                  "動画の書き込み完了: %d バイト",
		"Failed to stat output: %s":                "出力ファイルの確認に失敗しました: %s",

		// Verification and summary
		"Verified: %s %dx%d, %d frames, %d ms": "検証完了: %s %dx%d, %d フレーム, %d ms",
		"Verification failed: %s":              "検証に失敗しました: %s",
		"Summary saved to %s":                  "サマリーを %s に保存しました",

		// Errors
		"Failed to convert: %s": "変換に失敗しました: %s",
	})
}
