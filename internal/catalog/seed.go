package catalog

// Seed returns the fixed collection every session starts from.
// A fresh slice is returned on each call.
func Seed() []Video {
	return []Video{
		{
			ID:          "1",
			Title:       "Топ 10 трендов 2026",
			Channel:     "TrendWatch",
			Thumbnail:   "https://images.unsplash.com/photo-1611162617474-5b21e879e113?w=800&q=80",
			MediaURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
			Views:       "1.2M",
			Duration:    "10:24",
			Platform:    PlatformYouTube,
			Favorite:    false,
			Description: "Ten trends that will shape the year, from creator tools to short-form formats.",
		},
		{
			ID:          "2",
			Title:       "Крутой лайфхак дня",
			Channel:     "LifeHacks Pro",
			Thumbnail:   "https://images.unsplash.com/photo-1598387993441-a364f854c3e1?w=800&q=80",
			MediaURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
			Views:       "850K",
			Duration:    "0:45",
			Platform:    PlatformTikTok,
			Favorite:    true,
			Description: "A forty-five second trick you will use every day.",
		},
		{
			ID:          "3",
			Title:       "Новый вызов принят!",
			Channel:     "Challenge Masters",
			Thumbnail:   "https://images.unsplash.com/photo-1611162616305-c69b3fa7fbe0?w=800&q=80",
			MediaURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
			Views:       "2.5M",
			Duration:    "0:58",
			Platform:    PlatformTikTok,
			Favorite:    false,
			Description: "The crew takes on this week's viral challenge.",
		},
		{
			ID:          "4",
			Title:       "Обзор лучших гаджетов",
			Channel:     "Tech Review",
			Thumbnail:   "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=800&q=80",
			MediaURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
			Views:       "3.1M",
			Duration:    "15:32",
			Platform:    PlatformYouTube,
			Favorite:    true,
			Description: "Hands-on with the best gadgets of the season, ranked.",
		},
		{
			ID:          "5",
			Title:       "Танцевальный челлендж",
			Channel:     "Dance Vibes",
			Thumbnail:   "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=800&q=80",
			MediaURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerMeltdowns.mp4",
			Views:       "5.2M",
			Duration:    "0:30",
			Platform:    PlatformTikTok,
			Favorite:    false,
			Description: "Thirty seconds of choreography everyone is copying.",
		},
		{
			ID:          "6",
			Title:       "Как это работает?",
			Channel:     "Science Today",
			Thumbnail:   "https://images.unsplash.com/photo-1532094349884-543bc11b234d?w=800&q=80",
			MediaURL:    "https://storage.googleapis.com/gtv-videos-bucket/sample/SubaruOutbackOnStreetAndDirt.mp4",
			Views:       "920K",
			Duration:    "12:15",
			Platform:    PlatformYouTube,
			Favorite:    false,
			Description: "How everyday machines actually work, explained from first principles.",
		},
	}
}
