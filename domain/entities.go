package domain

import "time"

// User represents a registered account
type User struct {
	ID           uint
	Username     string
	Email        string
	PasswordHash string `gorm:"column:password"`
	IsActive     bool
	LastLogin    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User  *User
	Token string
}

// ProfileUpdate carries the optional fields of a profile change.
// Empty string means "leave unchanged".
type ProfileUpdate struct {
	Username string
	Email    string
}

// ChatMessage is a single utterance inside a chat session
type ChatMessage struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// Chat represents one assistant conversation owned by a user
type Chat struct {
	ID        uint
	UserID    uint
	SessionID string
	Messages  []ChatMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatSessionSummary is the listing form of a chat session
type ChatSessionSummary struct {
	SessionID    string    `json:"sessionId"`
	MessageCount int       `json:"messageCount"`
	LastMessage  string    `json:"lastMessage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CurrentWeather is the formatted current-conditions payload
type CurrentWeather struct {
	Location      string  `json:"location"`
	Country       string  `json:"country"`
	Temperature   int     `json:"temperature"`
	FeelsLike     int     `json:"feelsLike"`
	Humidity      int     `json:"humidity"`
	Pressure      int     `json:"pressure"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	WindSpeed     int     `json:"windSpeed"`
	WindDirection int     `json:"windDirection"`
	Visibility    float64 `json:"visibility"`
	Sunrise       string  `json:"sunrise"`
	Sunset        string  `json:"sunset"`
	Timestamp     string  `json:"timestamp"`
}

// DailyForecast is one aggregated day of a forecast
type DailyForecast struct {
	Date        string `json:"date"`
	Temperature int    `json:"temperature"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Forecast is the multi-day forecast payload
type Forecast struct {
	Location  string          `json:"location"`
	Country   string          `json:"country"`
	Forecasts []DailyForecast `json:"forecasts"`
}

// Translation is the result of a translate call
type Translation struct {
	OriginalText   string `json:"originalText"`
	TranslatedText string `json:"translatedText"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

// Language is one supported translation language
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
