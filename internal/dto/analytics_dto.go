package dto

// AnalyticsOverview is the flat counter object backing the admin
// dashboard. The dashboard frontend consumes these keys in camelCase,
// unlike the snake_case on the rest of the API. Bot status buckets
// fold legacy stored values into the current five-value set.
type AnalyticsOverview struct {
	TotalBots         int `json:"totalBots"`
	TotalTesters      int `json:"totalTesters"`
	TotalSessions     int `json:"totalSessions"`
	LiveSessions      int `json:"liveSessions"`
	CompletedSessions int `json:"completedSessions"`
	ReviewedSessions  int `json:"reviewedSessions"`
	TotalMessages     int `json:"totalMessages"`
	TotalLikes        int `json:"totalLikes"`
	TotalDislikes     int `json:"totalDislikes"`
	BotsInReview      int `json:"botsInReview"`
	BotsTesting       int `json:"botsTesting"`
	BotsLive          int `json:"botsLive"`
	BotsNotLive       int `json:"botsNotLive"`
	BotsCancelled     int `json:"botsCancelled"`
}
