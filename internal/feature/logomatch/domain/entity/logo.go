// Package entity はlogomatchフィーチャーのドメインモデルを定義します。
package entity

// DetectedLogo は画像から検出されたロゴを表します。
type DetectedLogo struct {
	Name       string  // 検出されたブランド名
	Confidence float32 // 信頼度スコア（0.0 ~ 1.0）
}

// CoinMatch は検出されたロゴとカタログのコインの対応です。
type CoinMatch struct {
	CoinID     string  // カタログ上のコインID
	Name       string  // コイン名
	Symbol     string  // ティッカーシンボル
	Detected   string  // 検出結果の元のブランド名
	Confidence float32 // 検出の信頼度スコア
}
