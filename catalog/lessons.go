package catalog

import "github.com/yuichi-nagakura/diet-app-prototype/models"

var lessons = []models.Lesson{
	{
		ID:       "lesson_001",
		Title:    "食事と心理の関係を理解する",
		Content:  "私たちが食べる理由は、単に空腹を満たすためだけではありません。ストレス、退屈、喜び、悲しみなど、様々な感情が食欲に影響を与えます。まずは自分がどんな時に食べたくなるのか、観察してみましょう。",
		Duration: 5,
		Category: "psychology",
		Order:    1,
	},
	{
		ID:       "lesson_002",
		Title:    "バランスの良い食事とは",
		Content:  "バランスの良い食事は、炭水化物、タンパク質、脂質を適切な割合で摂ることです。目安は炭水化物50-60%、タンパク質15-20%、脂質20-30%です。極端な制限は長続きしません。",
		Duration: 5,
		Category: "nutrition",
		Order:    2,
	},
	{
		ID:       "lesson_003",
		Title:    "適切な目標設定の方法",
		Content:  "体重を1ヶ月で10kg減らすような極端な目標は、リバウンドの原因になります。健康的な減量ペースは1ヶ月1-2kgです。小さな成功体験を積み重ねることが、長期的な成功につながります。",
		Duration: 5,
		Category: "psychology",
		Order:    3,
	},
	{
		ID:       "lesson_004",
		Title:    "運動と食事の相乗効果",
		Content:  "運動は単にカロリーを消費するだけでなく、基礎代謝を上げ、ストレスを軽減し、睡眠の質を向上させます。週3回、30分程度の運動から始めてみましょう。",
		Duration: 5,
		Category: "exercise",
		Order:    4,
	},
	{
		ID:       "lesson_005",
		Title:    "睡眠とダイエットの関係",
		Content:  "睡眠不足は食欲を増進させるホルモンを分泌させます。7-8時間の質の良い睡眠は、ダイエット成功の重要な要素です。寝る前のスマホは控えめにしましょう。",
		Duration: 5,
		Category: "lifestyle",
		Order:    5,
	},
}

// Lessons returns the ordered lesson series with completion state zeroed.
func Lessons() []models.Lesson {
	out := make([]models.Lesson, len(lessons))
	copy(out, lessons)
	return out
}
