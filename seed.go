package studiosite

import "time"

// Seed records written when a backing file does not exist yet. Fixed ids,
// slugs, and timestamps so a fresh install always starts from the same state.

func seedPosts() []BlogPost {
	return []BlogPost{
		{
			ID:          "1",
			Title:       "React 18の新機能とパフォーマンス向上",
			Content:     "# React 18の新機能とパフォーマンス向上\n\nReact 18で導入されたConcurrent FeaturesやSuspenseの活用方法について詳しく解説します。\n\n## Concurrent Features\n\nReact 18の最大の特徴は、Concurrent Featuresの導入です。これにより、アプリケーションの応答性が大幅に向上します。\n\n## Suspenseの活用\n\nSuspenseを使用することで、データの読み込み状態をより直感的に管理できます。",
			Excerpt:     "React 18で導入されたConcurrent FeaturesやSuspenseの活用方法について詳しく解説します。",
			Category:    "技術",
			Author:      "Flium Team",
			PublishedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"React", "JavaScript", "フロントエンド"},
			Featured:    true,
			Slug:        "react-18-new-features-performance",
			CoverImage:  "/images/blog/react-18.jpg",
		},
		{
			ID:          "2",
			Title:       "3Dデザインの未来とWeb体験",
			Content:     "# 3Dデザインの未来とWeb体験\n\nThree.jsを活用した3Dデザインの可能性と、ユーザー体験への影響について考察します。\n\n## Three.jsの活用\n\nThree.jsを使用することで、Web上で高度な3D体験を提供できます。\n\n## ユーザー体験の向上\n\n3Dデザインは、ユーザーの関心を引きつけ、より印象的な体験を提供します。",
			Excerpt:     "Three.jsを活用した3Dデザインの可能性と、ユーザー体験への影響について考察します。",
			Category:    "デザイン",
			Author:      "Flium Team",
			PublishedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"3D", "デザイン", "Three.js", "Web体験"},
			Featured:    false,
			Slug:        "3d-design-future-web-experience",
			CoverImage:  "/images/blog/3d-design.jpg",
		},
		{
			ID:          "3",
			Title:       "新オフィス移転のお知らせ",
			Content:     "# 新オフィス移転のお知らせ\n\nより良い環境でクリエイティブな活動を行うため、新オフィスに移転いたしました。\n\n## 新オフィスの特徴\n\n- より広いスペース\n- 最新の設備\n- アクセスの良い立地\n\n## 今後の展望\n\n新オフィスでの活動を通じて、より良いサービスを提供していきます。",
			Excerpt:     "より良い環境でクリエイティブな活動を行うため、新オフィスに移転いたしました。",
			Category:    "会社",
			Author:      "Flium Team",
			PublishedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"お知らせ", "オフィス", "移転"},
			Featured:    false,
			Slug:        "new-office-relocation-announcement",
			CoverImage:  "/images/blog/new-office.jpg",
		},
	}
}

func seedCategories() []BlogCategory {
	return []BlogCategory{
		{
			ID:          "1",
			Name:        "技術",
			Slug:        "technology",
			Color:       "#00F5D4",
			Description: "技術に関する記事",
		},
		{
			ID:          "2",
			Name:        "デザイン",
			Slug:        "design",
			Color:       "#8E94F2",
			Description: "デザインに関する記事",
		},
		{
			ID:          "3",
			Name:        "会社",
			Slug:        "company",
			Color:       "#F0F3F5",
			Description: "会社に関するお知らせ",
		},
	}
}
