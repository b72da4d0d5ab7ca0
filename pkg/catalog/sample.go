package catalog

// Sample returns a small built-in forest used when no catalog file is
// configured, so the CLI and TUI have something to browse on first run.
func Sample() []Node {
	return []Node{
		{
			ID:   "daily",
			Name: "일일 숙제",
			Children: []Node{
				{ID: "daily-login", Name: "출석 체크"},
				{
					ID:   "daily-dungeon",
					Name: "일일 던전",
					Children: []Node{
						{ID: "daily-dungeon-gold", Name: "골드 던전"},
						{ID: "daily-dungeon-exp", Name: "경험치 던전"},
					},
				},
				{ID: "daily-arena", Name: "아레나 3회"},
			},
		},
		{
			ID:   "weekly",
			Name: "주간 숙제",
			Children: []Node{
				{ID: "weekly-raid", Name: "주간 레이드"},
				{ID: "weekly-boss", Name: "월드 보스"},
				{ID: "weekly-shop", Name: "상점 초기화 구매"},
			},
		},
		{
			ID:   "growth",
			Name: "성장",
			Children: []Node{
				{
					ID:   "growth-gear",
					Name: "장비",
					Children: []Node{
						{ID: "growth-gear-weapon", Name: "무기 강화"},
						{ID: "growth-gear-armor", Name: "방어구 강화"},
					},
				},
				{ID: "growth-level", Name: "레벨업"},
			},
		},
	}
}
