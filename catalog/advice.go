package catalog

// AdviceTemplate is one canned coaching message. Real advice generation is
// out of scope; selection among templates is the advice service's job.
type AdviceTemplate struct {
	Type        string
	Title       string
	Content     string
	Priority    string
	ActionItems []string
}

var adviceTemplates = []AdviceTemplate{
	{
		Type:        "meal",
		Title:       "タンパク質を増やしましょう",
		Content:     "今日のお食事はタンパク質が少し不足しています。次の食事では鶏胸肉、豆腐、卵などを取り入れてみましょう。",
		Priority:    "medium",
		ActionItems: []string{"夕食に鶏胸肉100gを追加", "間食にゆで卵1個を食べる"},
	},
	{
		Type:        "meal",
		Title:       "野菜をもっと摂りましょう",
		Content:     "野菜の摂取量が目標の半分以下です。食物繊維とビタミンを補給するため、サラダや温野菜を追加しましょう。",
		Priority:    "high",
		ActionItems: []string{"昼食にサラダを追加", "夕食に温野菜を100g以上"},
	},
	{
		Type:        "lifestyle",
		Title:       "水分補給を忘れずに",
		Content:     "適切な水分補給は代謝を促進し、満腹感も得られます。1日2リットルを目標に、こまめに水を飲みましょう。",
		Priority:    "medium",
		ActionItems: []string{"食事の30分前にコップ1杯の水", "1時間ごとに水分補給"},
	},
	{
		Type:     "motivation",
		Title:    "素晴らしい継続です！",
		Content:  "3日連続で食事記録を続けていますね。この調子で続けることが、健康的な習慣作りの第一歩です。",
		Priority: "low",
	},
}

func AdviceTemplates() []AdviceTemplate {
	out := make([]AdviceTemplate, len(adviceTemplates))
	copy(out, adviceTemplates)
	return out
}
