// Package main provides localization for the h5tomp4 CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Convert HDF5 frame datasets into MP4 videos.": "HDF5のフレームデータセットをMP4動画に変換します。",

		// Version command
		"h5tomp4 version %s": "h5tomp4 バージョン %s",

		// Runtime messages
		"Wrote MP4 to: %s":            "MP4を書き出しました: %s",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",

		// Probe command
		"Codec: %s":                      "コーデック: %s",
		"Size: %dx%d":                    "サイズ: %dx%d",
		"Frames: %d":                     "フレーム数: %d",
		"Duration: %d ms (timescale %d)": "再生時間: %d ms (タイムスケール %d)",
		"Layout: fragmented":             "構成: フラグメント化",

		// Summary content
		"Conversion Summary": "変換サマリー",
		"Generated":          "生成日時",
		"Input":              "入力",
		"Settings":           "設定",
		"Video Details":      "動画詳細",
		"Item":               "項目",
		"Value":              "値",
		"File":               "ファイル",
		"Dataset":            "データセット",
		"Shape":              "形状",
		"Codec":              "コーデック",
		"Frame Rate":         "フレームレート",
		"Quantizer":          "量子化パラメータ",
		"encoder default":    "エンコーダー既定値",
		"Frames":             "フレーム数",
		"Size":               "サイズ",
		"Source Size":        "元のサイズ",
		"resized":            "リサイズ済み",
		"Duration":           "再生時間",
		"File Size":          "ファイルサイズ",
		"Verified":           "検証",
		"yes":                "はい",
		"no":                 "いいえ",
	})
}
