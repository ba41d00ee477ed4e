package templates

import (
	"encoding/json"
	"time"

	"github.com/oksasatya/go-ddd-wallet/config"
)

// EmailData holds the fields the templates read.
type EmailData struct {
	Name        string `json:"Name"`
	Email       string `json:"Email"`
	AppName     string `json:"AppName"`
	CompanyName string `json:"CompanyName"`
	SupportURL  string `json:"SupportURL"`
	Time        string `json:"Time"`
}

type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) { d.Time = t.UTC().Format("02 January 2006, 15:04") }
}

// ToMap converts EmailData to the map carried in EmailJob.Data.
func ToMap(d EmailData) map[string]any {
	b, _ := json.Marshal(d)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

func NewBaseEmailData(cfg *config.Config, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:        name,
		Email:       email,
		AppName:     cfg.AppName,
		CompanyName: cfg.CompanyName,
		SupportURL:  cfg.SupportURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(cfg *config.Config, name, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, name, email, opts...))
}
