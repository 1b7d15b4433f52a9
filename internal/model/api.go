package model

// ShortenRequest тело запроса POST /shorturls
type ShortenRequest struct {
	URL       string `json:"url"`
	Validity  *int   `json:"validity,omitempty"`
	Shortcode string `json:"shortcode,omitempty"`
}

// ShortenResponse ответ на создание короткой ссылки
type ShortenResponse struct {
	ShortLink string `json:"shortLink"`
	Expiry    string `json:"expiry"`
}

// ClickResponse элемент истории переходов
type ClickResponse struct {
	ID         string `json:"id"`
	Timestamp  string `json:"timestamp"`
	Referrer   string `json:"referrer"`
	Location   string `json:"location"`
	DeviceType string `json:"deviceType,omitempty"`
	Browser    string `json:"browser,omitempty"`
	OS         string `json:"os,omitempty"`
}

// StatsResponse ответ GET /shorturls/{shortcode}
type StatsResponse struct {
	OriginalURL string          `json:"originalUrl"`
	CreatedAt   string          `json:"createdAt"`
	Expiry      string          `json:"expiry"`
	TotalClicks int64           `json:"totalClicks"`
	Clicks      []ClickResponse `json:"clicks"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
