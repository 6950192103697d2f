package entity

// ProjectBrief はプロジェクトの要約結果を表します。
type ProjectBrief struct {
	Name    string // 要約対象のプロジェクト名
	Summary string // AI生成の要約
}
