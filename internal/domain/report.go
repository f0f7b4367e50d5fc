package domain

// EmailPerformance agrupa as métricas de campanhas de e-mail.
// O conjunto de campos é fixo e conhecido em tempo de compilação,
// por isso é um struct e não um mapa genérico.
type EmailPerformance struct {
	Delivered string `json:"delivered"`
	Opened    string `json:"opened"`
	Clicked   string `json:"clicked"`
	Converted string `json:"converted"`
}

// SMSPerformance agrupa as métricas de campanhas de SMS
type SMSPerformance struct {
	Sent      string `json:"sent"`
	Delivered string `json:"delivered"`
	Clicked   string `json:"clicked"`
	Recovered string `json:"recovered"`
}

// CampaignPerformance combina as métricas de e-mail e SMS
type CampaignPerformance struct {
	Email EmailPerformance `json:"email"`
	SMS   SMSPerformance   `json:"sms"`
}

// SEOPerformance agrupa as métricas de SEO do catálogo
type SEOPerformance struct {
	OptimizedProducts  int    `json:"optimized_products"`
	RankingImprovement string `json:"ranking_improvement"`
	OrganicTraffic     string `json:"organic_traffic"`
	KeywordRankings    string `json:"keyword_rankings"`
}

// ReportDataset é o documento normalizado montado a cada exportação
// de relatório. É construído uma única vez por exportação, nunca é
// mutado depois de montado e não possui recursos externos.
type ReportDataset struct {
	KeyMetrics       []KeyMetric      `json:"key_metrics"`
	Products         []Product        `json:"products"`
	EmailPerformance EmailPerformance `json:"email_performance"`
	SMSPerformance   SMSPerformance   `json:"sms_performance"`
	SEOPerformance   SEOPerformance   `json:"seo_performance"`
}
