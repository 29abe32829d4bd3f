package dto

import "time"

type GenerateInput struct {
	UserMessages     float64
	AIResponses      float64
	ValidationErrors float64
	SessionTime      float64
	CTALeft          *bool
	SummaryPath      string
}

type GenerateOutput struct {
	RunID            string
	UserMessages     int
	AIResponses      int
	ValidationErrors int
	CTALeft          bool
	SessionTime      int
	ErrorRate        float64
	ErrorRatePercent string
	Status           string
	HealthScore      int
	Health           string
	GeneratedAt      time.Time
	TextPath         string
	HTMLPath         string
	SummaryPath      string
}
