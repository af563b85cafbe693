package services

import (
	"context"
	"path"
	"strings"

	"go.uber.org/zap"

	"gezi/internal/backend"
	"gezi/internal/enrichment"
	"gezi/internal/itinerary"
	"gezi/internal/models/db_models"
	"gezi/internal/models/response_models"
	"gezi/internal/repositories"
)

type EnrichmentServiceInterface interface {
	Airline(text string) response_models.AirlineResponse
	CityImage(title, location string) response_models.CityImageResponse
	EnrichDays(days []itinerary.ScheduleDay) []response_models.DayView
	TravelCards(blurbs backend.TravelBlurbs) *response_models.TravelCards
}

type EnrichmentService struct {
	detector           *enrichment.CityImageDetector
	cityImageBaseURL   string
	airlineLogoBaseURL string
}

func NewEnrichmentService(detector *enrichment.CityImageDetector, cityImageBaseURL, airlineLogoBaseURL string) EnrichmentServiceInterface {
	return &EnrichmentService{
		detector:           detector,
		cityImageBaseURL:   cityImageBaseURL,
		airlineLogoBaseURL: airlineLogoBaseURL,
	}
}

func (s *EnrichmentService) Airline(text string) response_models.AirlineResponse {
	brand := enrichment.DetectAirlineBrand(text)
	return response_models.AirlineResponse{Brand: brand, LogoURL: s.logoURL(brand)}
}

func (s *EnrichmentService) CityImage(title, location string) response_models.CityImageResponse {
	key, ok := s.detector.Detect(title, location)
	if !ok {
		return response_models.CityImageResponse{}
	}
	return response_models.CityImageResponse{Found: true, AssetKey: key, ImageURL: s.imageURL(key)}
}

// EnrichDays attaches image URLs without changing the schedule itself.
func (s *EnrichmentService) EnrichDays(days []itinerary.ScheduleDay) []response_models.DayView {
	views := make([]response_models.DayView, 0, len(days))
	for _, d := range days {
		view := response_models.DayView{Day: d.Day, Activities: make([]response_models.ActivityView, 0, len(d.Activities))}
		for _, a := range d.Activities {
			av := response_models.ActivityView{Activity: a}
			if key, ok := s.detector.Detect(a.Name, a.Location); ok {
				av.ImageURL = s.imageURL(key)
			}
			view.Activities = append(view.Activities, av)
		}
		views = append(views, view)
	}
	return views
}

// TravelCards returns nil when every blurb is empty. Only the flight card
// gets an airline logo.
func (s *EnrichmentService) TravelCards(blurbs backend.TravelBlurbs) *response_models.TravelCards {
	cards := &response_models.TravelCards{
		Flight:    card(blurbs.Flight),
		Hotel:     card(blurbs.Hotel),
		CarRental: card(blurbs.CarRental),
	}
	if cards.Flight != nil {
		cards.Flight.Brand = enrichment.DetectAirlineBrand(cards.Flight.Text)
		cards.Flight.LogoURL = s.logoURL(cards.Flight.Brand)
	}
	if cards.Flight == nil && cards.Hotel == nil && cards.CarRental == nil {
		return nil
	}
	return cards
}

func card(b backend.Blurb) *response_models.TravelCard {
	if b.Text == "" {
		return nil
	}
	return &response_models.TravelCard{Text: b.Text, Link: b.Link}
}

func (s *EnrichmentService) imageURL(key string) string {
	return joinAsset(s.cityImageBaseURL, key+".jpg")
}

func (s *EnrichmentService) logoURL(brand *enrichment.AirlineBrand) string {
	if brand == nil {
		return ""
	}
	return joinAsset(s.airlineLogoBaseURL, brand.ID+".png")
}

func joinAsset(base, file string) string {
	if base == "" {
		return "/" + file
	}
	if strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
		return base + "/" + file
	}
	return path.Join(base, file)
}

// LoadCityImageDetector builds the detector from the city_aliases table,
// seeding it with the built-in aliases when empty. A nil repo, a database
// error or an empty table all fall back to the built-in aliases.
func LoadCityImageDetector(ctx context.Context, repo repositories.CityAliasRepositoryInterface, logger *zap.Logger) *enrichment.CityImageDetector {
	defaults := enrichment.DefaultCityAliases()
	if repo == nil {
		return enrichment.NewCityImageDetector(defaults)
	}

	seed := make([]db_models.CityAlias, len(defaults))
	for i, a := range defaults {
		seed[i] = db_models.CityAlias{Alias: a.Alias, AssetKey: a.AssetKey, Position: i}
	}
	if n, err := repo.SeedAliases(ctx, seed); err != nil {
		logger.Warn("Seeding city aliases failed", zap.Error(err))
	} else if n > 0 {
		logger.Info("Seeded city aliases", zap.Int("count", n))
	}

	rows, err := repo.ListAliases(ctx)
	if err != nil {
		logger.Warn("Loading city aliases failed, using built-in table", zap.Error(err))
		return enrichment.NewCityImageDetector(defaults)
	}
	if len(rows) == 0 {
		return enrichment.NewCityImageDetector(defaults)
	}

	aliases := make([]enrichment.CityAlias, len(rows))
	for i, r := range rows {
		aliases[i] = enrichment.CityAlias{Alias: r.Alias, AssetKey: r.AssetKey}
	}
	logger.Info("Loaded city aliases", zap.Int("count", len(aliases)))
	return enrichment.NewCityImageDetector(aliases)
}
